package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/talleres-esperanza/comedor/internal/server/http/dto"
)

// RosterHandler serves the order-entry roster.
type RosterHandler struct {
	facade RosterFacade
}

// NewRosterHandler constructs RosterHandler.
func NewRosterHandler(facade RosterFacade) *RosterHandler {
	return &RosterHandler{facade: facade}
}

// List handles GET /api/people.
func (h *RosterHandler) List(c *gin.Context) {
	view, err := h.facade.Roster(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}

	people := make([]dto.PersonResponse, 0, len(view.Entries))
	for _, entry := range view.Entries {
		resp := dto.PersonResponse{
			ID:       entry.Person.ID,
			Name:     entry.Person.Name,
			Photo:    entry.Person.PhotoURL,
			Category: string(entry.Person.Category),
			Status:   string(entry.Status),
		}
		if entry.Draft != nil {
			draft := draftResponse(*entry.Draft)
			resp.Order = &draft
		}
		people = append(people, resp)
	}

	c.JSON(http.StatusOK, dto.RosterResponse{
		People:   people,
		Source:   string(view.Source),
		Complete: view.Complete,
	})
}
