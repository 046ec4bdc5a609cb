package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/talleres-esperanza/comedor/internal/app"
	"github.com/talleres-esperanza/comedor/internal/domain/model"
	"github.com/talleres-esperanza/comedor/internal/server/http/dto"
	"github.com/talleres-esperanza/comedor/internal/usecase"
)

// SessionHandler manages the current batch endpoints.
type SessionHandler struct {
	facade SessionFacade
}

// NewSessionHandler constructs SessionHandler.
func NewSessionHandler(facade SessionFacade) *SessionHandler {
	return &SessionHandler{facade: facade}
}

func draftInput(req dto.OrderDraftRequest) app.DraftInput {
	in := app.DraftInput{
		Note:          req.Observations,
		PaymentMethod: model.PaymentMethod(req.PaymentMethod),
	}
	if req.FruitOrSoup != nil {
		v := model.Starter(*req.FruitOrSoup)
		in.Starter = &v
	}
	if req.JuiceOrLemonade != nil {
		v := model.Drink(*req.JuiceOrLemonade)
		in.Drink = &v
	}
	if req.MainDish != nil {
		v := model.MainDish(*req.MainDish)
		in.MainDish = &v
	}
	return in
}

// Upsert handles PUT /api/session/orders/:personID.
func (h *SessionHandler) Upsert(c *gin.Context) {
	var req dto.OrderDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "malformed request body"})
		return
	}

	draft, err := h.facade.UpsertDraft(c.Request.Context(), c.Param("personID"), draftInput(req))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, draftResponse(*draft))
}

// NoMeal handles POST /api/session/orders/:personID/no-meal. The body is
// optional; an empty one uses the default note.
func (h *SessionHandler) NoMeal(c *gin.Context) {
	var req dto.NoMealRequest
	_ = c.ShouldBindJSON(&req)

	draft, err := h.facade.DeclineMeal(c.Request.Context(), c.Param("personID"), req.Observations)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, draftResponse(*draft))
}

func summaryResponse(view *app.SummaryView) dto.SummaryResponse {
	orders := make([]dto.SummaryOrderResponse, 0, len(view.Drafts))
	for _, d := range view.Drafts {
		orders = append(orders, dto.SummaryOrderResponse{
			PersonID:      d.PersonID,
			Name:          d.PersonName,
			Menu:          usecase.DescribeDraft(d),
			Observations:  d.Note,
			PaymentMethod: string(d.PaymentMethod),
			OrderDate:     d.OrderDate,
		})
	}
	return dto.SummaryResponse{Orders: orders, Totals: totalsResponse(view.Totals)}
}

// Summary handles GET /api/session/summary.
func (h *SessionHandler) Summary(c *gin.Context) {
	view, err := h.facade.Summary(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, summaryResponse(view))
}

// Commit handles POST /api/session/commit. A failed write keeps the session
// intact and reports a gateway failure so the operator can retry.
func (h *SessionHandler) Commit(c *gin.Context) {
	result, err := h.facade.Commit(c.Request.Context())
	if err != nil {
		switch {
		case isBatchStateError(err):
			abortWithError(c, err)
		default:
			c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: "batch not saved: " + err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.CommitResponse{
		Records: result.Records,
		Report: dto.ReportResponse{
			ID:            result.Report.ID,
			ReportDate:    result.Report.ReportDate,
			TotalOrders:   result.Report.TotalOrders,
			CashOrders:    result.Report.CashOrders,
			VoucherOrders: result.Report.VoucherOrders,
			CreatedAt:     result.Report.CreatedAt,
		},
	})
}

// Export handles GET /api/session/export?format=xlsx|pdf.
func (h *SessionHandler) Export(c *gin.Context) {
	artifact, err := h.facade.ExportSummary(c.Request.Context(), c.Query("format"))
	if err != nil {
		if isBatchStateError(err) {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	writeArtifact(c, artifact)
}
