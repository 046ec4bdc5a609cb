package repository

import (
	"context"

	"github.com/talleres-esperanza/comedor/internal/domain/model"
)

// PersonRepository describes roster reads.
type PersonRepository interface {
	// List returns every person ordered by category then name, matching the
	// grouping on the ordering screen.
	List(ctx context.Context) ([]model.Person, error)
	GetByID(ctx context.Context, id string) (*model.Person, error)
}
