package usecase

import (
	"github.com/talleres-esperanza/comedor/internal/domain/model"
	"github.com/talleres-esperanza/comedor/internal/session"
)

// Status derives a person's place in the current batch: pending when no draft
// exists, no-meal when a draft exists with every menu field declined, ordered
// otherwise.
func Status(personID string, store *session.Store) model.OrderStatus {
	if store == nil {
		return model.StatusPending
	}
	draft, ok := store.Get(personID)
	if !ok {
		return model.StatusPending
	}
	return draft.Status()
}

// IsComplete reports whether the operator may proceed to the summary step:
// every person on the roster has some draft entry, ordered or no-meal alike.
// An empty roster is never complete.
func IsComplete(roster []model.Person, store *session.Store) bool {
	if len(roster) == 0 {
		return false
	}
	for _, p := range roster {
		if Status(p.ID, store) == model.StatusPending {
			return false
		}
	}
	return true
}
