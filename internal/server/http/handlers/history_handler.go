package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/talleres-esperanza/comedor/internal/server/http/dto"
	"github.com/talleres-esperanza/comedor/internal/usecase"
)

// HistoryHandler serves the committed-order archive.
type HistoryHandler struct {
	facade HistoryFacade
}

// NewHistoryHandler constructs HistoryHandler.
func NewHistoryHandler(facade HistoryFacade) *HistoryHandler {
	return &HistoryHandler{facade: facade}
}

// List handles GET /api/history?from=YYYY-MM-DD&to=YYYY-MM-DD.
func (h *HistoryHandler) List(c *gin.Context) {
	from, ok := dateParam(c, "from")
	if !ok {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid from date"})
		return
	}
	to, ok := dateParam(c, "to")
	if !ok {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid to date"})
		return
	}

	view, err := h.facade.History(c.Request.Context(), from, to)
	if err != nil {
		abortWithError(c, err)
		return
	}

	groups := make([]dto.HistoryGroupResponse, 0, len(view.Groups))
	for _, g := range view.Groups {
		orders := make([]dto.HistoryOrderResponse, 0, len(g.Records))
		for _, r := range g.Records {
			orders = append(orders, dto.HistoryOrderResponse{
				ID:            r.ID,
				PersonID:      r.PersonID,
				Name:          r.PersonName,
				Menu:          usecase.DescribeRecord(r),
				Observations:  r.Note,
				PaymentMethod: string(r.PaymentMethod),
				OrderDate:     r.OrderDate,
			})
		}
		groups = append(groups, dto.HistoryGroupResponse{Date: g.Date, Orders: orders})
	}

	c.JSON(http.StatusOK, dto.HistoryResponse{
		Groups: groups,
		Totals: totalsResponse(view.Totals),
		Source: string(view.Source),
	})
}

// Export handles GET /api/history/export?from=YYYY-MM-DD&to=YYYY-MM-DD.
func (h *HistoryHandler) Export(c *gin.Context) {
	from, ok := dateParam(c, "from")
	if !ok {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid from date"})
		return
	}
	to, ok := dateParam(c, "to")
	if !ok {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid to date"})
		return
	}

	artifact, err := h.facade.ExportHistory(c.Request.Context(), from, to)
	if err != nil {
		abortWithError(c, err)
		return
	}
	writeArtifact(c, artifact)
}

// Reports handles GET /api/reports.
func (h *HistoryHandler) Reports(c *gin.Context) {
	reports, source, err := h.facade.Reports(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}

	resp := make([]dto.ReportResponse, 0, len(reports))
	for _, r := range reports {
		resp = append(resp, dto.ReportResponse{
			ID:            r.ID,
			ReportDate:    r.ReportDate,
			TotalOrders:   r.TotalOrders,
			CashOrders:    r.CashOrders,
			VoucherOrders: r.VoucherOrders,
			CreatedAt:     r.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, dto.ReportsResponse{Reports: resp, Source: string(source)})
}
