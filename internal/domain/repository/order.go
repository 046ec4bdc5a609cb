package repository

import (
	"context"

	"github.com/talleres-esperanza/comedor/internal/domain/model"
)

// OrderRepository describes persistence operations with committed orders.
// Records are insert-only; history never updates or deletes.
type OrderRepository interface {
	// InsertBatch stores the finalized records and the daily rollup in a
	// single transaction.
	InsertBatch(ctx context.Context, records []model.OrderRecord, report *model.DailyReport) error
	// ListAll returns all records, most recently created first.
	ListAll(ctx context.Context) ([]model.OrderRecord, error)
}
