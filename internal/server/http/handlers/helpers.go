package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/talleres-esperanza/comedor/internal/app"
	domainErrors "github.com/talleres-esperanza/comedor/internal/domain/errors"
	"github.com/talleres-esperanza/comedor/internal/domain/model"
	"github.com/talleres-esperanza/comedor/internal/server/http/dto"
	"github.com/talleres-esperanza/comedor/internal/usecase"
)

func enumString[T ~string](v *T) *string {
	if v == nil {
		return nil
	}
	s := string(*v)
	return &s
}

func draftResponse(d model.OrderDraft) dto.OrderDraftResponse {
	return dto.OrderDraftResponse{
		PersonID:        d.PersonID,
		PersonName:      d.PersonName,
		FruitOrSoup:     enumString(d.Starter),
		JuiceOrLemonade: enumString(d.Drink),
		MainDish:        enumString(d.MainDish),
		Observations:    d.Note,
		PaymentMethod:   string(d.PaymentMethod),
		OrderDate:       d.OrderDate,
		Status:          string(d.Status()),
	}
}

func totalsResponse(s usecase.Summary) dto.TotalsResponse {
	perPerson := make([]dto.PersonStatResponse, 0, len(s.PerPerson))
	for _, stat := range s.PerPerson {
		perPerson = append(perPerson, dto.PersonStatResponse{
			Name:     stat.Name,
			Count:    stat.Count,
			Vouchers: stat.Vouchers,
			Cash:     stat.Cash,
		})
	}
	return dto.TotalsResponse{
		Total:        s.Total,
		Cash:         s.CashCount,
		Vouchers:     s.VoucherCount,
		VouchersUsed: s.VouchersUsed,
		PerPerson:    perPerson,
	}
}

// dateParam reads an optional YYYY-MM-DD query parameter. The second result is
// false when the value is present but not a valid date.
func dateParam(c *gin.Context, name string) (string, bool) {
	value := c.Query(name)
	if value == "" {
		return "", true
	}
	if _, err := time.Parse(model.DateLayout, value); err != nil {
		return "", false
	}
	return value, true
}

func writeArtifact(c *gin.Context, artifact *app.ExportArtifact) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", artifact.Filename))
	c.Data(http.StatusOK, artifact.ContentType, artifact.Data)
}

func isBatchStateError(err error) bool {
	return errors.Is(err, domainErrors.ErrEmptyBatch) || errors.Is(err, domainErrors.ErrIncompleteBatch)
}

func abortWithError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domainErrors.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, domainErrors.ErrMalformedDraft):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, domainErrors.ErrEmptyBatch), errors.Is(err, domainErrors.ErrIncompleteBatch):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, domainErrors.ErrUnavailable):
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: err.Error()})
	default:
		c.Status(http.StatusInternalServerError)
	}
}
