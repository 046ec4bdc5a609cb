package handlers

import (
	"context"

	"github.com/talleres-esperanza/comedor/internal/app"
	"github.com/talleres-esperanza/comedor/internal/domain/model"
	"github.com/talleres-esperanza/comedor/internal/fallback"
	"github.com/talleres-esperanza/comedor/internal/usecase"
)

// RosterFacade describes roster reads required by handlers.
type RosterFacade interface {
	Roster(ctx context.Context) (*app.RosterView, error)
}

// SessionFacade encapsulates current-batch operations exposed via HTTP.
type SessionFacade interface {
	UpsertDraft(ctx context.Context, personID string, in app.DraftInput) (*model.OrderDraft, error)
	DeclineMeal(ctx context.Context, personID, note string) (*model.OrderDraft, error)
	Summary(ctx context.Context) (*app.SummaryView, error)
	Commit(ctx context.Context) (*usecase.CommitResult, error)
	ExportSummary(ctx context.Context, format string) (*app.ExportArtifact, error)
}

// HistoryFacade provides archive reads and exports.
type HistoryFacade interface {
	History(ctx context.Context, from, to string) (*app.HistoryView, error)
	ExportHistory(ctx context.Context, from, to string) (*app.ExportArtifact, error)
	Reports(ctx context.Context) ([]model.DailyReport, fallback.Source, error)
}

// HealthFacade exposes the liveness probe.
type HealthFacade interface {
	Health(ctx context.Context) app.HealthStatus
}

// ComedorFacade aggregates the full set of operations used across handlers.
type ComedorFacade interface {
	RosterFacade
	SessionFacade
	HistoryFacade
	HealthFacade
}
