package repository

import (
	"context"

	"github.com/talleres-esperanza/comedor/internal/domain/model"
)

// ReportRepository describes access to persisted daily rollups.
type ReportRepository interface {
	// ListAll returns reports ordered by report date descending.
	ListAll(ctx context.Context) ([]model.DailyReport, error)
}
