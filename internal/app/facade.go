package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	domainErrors "github.com/talleres-esperanza/comedor/internal/domain/errors"
	"github.com/talleres-esperanza/comedor/internal/domain/model"
	"github.com/talleres-esperanza/comedor/internal/domain/repository"
	"github.com/talleres-esperanza/comedor/internal/export"
	"github.com/talleres-esperanza/comedor/internal/fallback"
	"github.com/talleres-esperanza/comedor/internal/session"
	"github.com/talleres-esperanza/comedor/internal/usecase"
)

// Pinger checks connectivity of the persistence gateway.
type Pinger interface {
	HealthCheck(ctx context.Context) error
}

// DraftInput is the operator's selection for one person. Nil menu fields mean
// the item is declined; all three nil makes the draft a "no meal" entry.
type DraftInput struct {
	Starter       *model.Starter
	Drink         *model.Drink
	MainDish      *model.MainDish
	Note          string
	PaymentMethod model.PaymentMethod
}

// PersonEntry pairs a roster member with their place in the current batch.
type PersonEntry struct {
	Person model.Person
	Status model.OrderStatus
	Draft  *model.OrderDraft
}

// RosterView is the order-entry screen state.
type RosterView struct {
	Entries  []PersonEntry
	Source   fallback.Source
	Complete bool
}

// SummaryView is the pre-commit review: the drafts in entry order plus their
// aggregate counts.
type SummaryView struct {
	Drafts []model.OrderDraft
	Totals usecase.Summary
}

// HistoryView is the archive screen state: committed lunches grouped by date,
// their aggregate counts and the stored daily rollups.
type HistoryView struct {
	Groups  []usecase.DateGroup
	Totals  usecase.Summary
	Reports []model.DailyReport
	Source  fallback.Source
}

// ExportArtifact is a generated downloadable file.
type ExportArtifact struct {
	Filename    string
	ContentType string
	Data        []byte
}

const (
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypePDF  = "application/pdf"

	// noMealNote is stamped on declined-meal drafts that carry no note of
	// their own, matching what the kitchen expects to read.
	noMealNote = "No almuerza hoy"
)

// ComedorFacade is the single entry point the HTTP layer talks to. Reads fall
// back to sample data when the database is missing or unreachable; writes
// never do.
type ComedorFacade struct {
	sessions *session.Manager
	commits  *usecase.OrderUseCase
	people   repository.PersonRepository
	orders   repository.OrderRepository
	reports  repository.ReportRepository
	pinger   Pinger
	logger   *slog.Logger
}

// NewComedorFacade constructs the facade. Repository arguments are nil when no
// database is configured.
func NewComedorFacade(
	sessions *session.Manager,
	commits *usecase.OrderUseCase,
	people repository.PersonRepository,
	orders repository.OrderRepository,
	reports repository.ReportRepository,
	pinger Pinger,
	logger *slog.Logger,
) *ComedorFacade {
	return &ComedorFacade{
		sessions: sessions,
		commits:  commits,
		people:   people,
		orders:   orders,
		reports:  reports,
		pinger:   pinger,
		logger:   logger,
	}
}

func (f *ComedorFacade) resolveRoster(ctx context.Context) fallback.Roster {
	if f.people == nil {
		return fallback.RosterFallback(domainErrors.ErrUnavailable)
	}
	people, err := f.people.List(ctx)
	if err != nil {
		f.logger.Warn("roster read failed, serving sample data", slog.String("error", err.Error()))
		return fallback.RosterFallback(err)
	}
	if len(people) == 0 {
		f.logger.Info("roster is empty, serving sample data")
		return fallback.RosterFallback(nil)
	}
	return fallback.LiveRoster(people)
}

func (f *ComedorFacade) resolveHistory(ctx context.Context) fallback.History {
	if f.orders == nil || f.reports == nil {
		return fallback.HistoryFallback(domainErrors.ErrUnavailable)
	}
	records, err := f.orders.ListAll(ctx)
	if err != nil {
		f.logger.Warn("history read failed, serving sample data", slog.String("error", err.Error()))
		return fallback.HistoryFallback(err)
	}
	reports, err := f.reports.ListAll(ctx)
	if err != nil {
		f.logger.Warn("reports read failed, serving sample data", slog.String("error", err.Error()))
		return fallback.HistoryFallback(err)
	}
	if len(records) == 0 && len(reports) == 0 {
		return fallback.HistoryFallback(nil)
	}
	return fallback.LiveHistory(records, reports)
}

func (f *ComedorFacade) findPerson(ctx context.Context, roster fallback.Roster, id string) (*model.Person, error) {
	if roster.Source == fallback.SourceLive && f.people != nil {
		person, err := f.people.GetByID(ctx, id)
		if err == nil {
			return person, nil
		}
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, err
		}
		f.logger.Warn("person lookup failed, searching sample roster", slog.String("error", err.Error()))
	}
	for _, p := range roster.People {
		if p.ID == id {
			person := p
			return &person, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// Roster returns every person with their derived batch status.
func (f *ComedorFacade) Roster(ctx context.Context) (*RosterView, error) {
	roster := f.resolveRoster(ctx)
	store := f.sessions.Load()

	entries := make([]PersonEntry, 0, len(roster.People))
	for _, p := range roster.People {
		entry := PersonEntry{Person: p, Status: usecase.Status(p.ID, store)}
		if draft, ok := store.Get(p.ID); ok {
			d := draft
			entry.Draft = &d
		}
		entries = append(entries, entry)
	}

	return &RosterView{
		Entries:  entries,
		Source:   roster.Source,
		Complete: usecase.IsComplete(roster.People, store),
	}, nil
}

func validateInput(in DraftInput) error {
	if in.Starter != nil {
		switch *in.Starter {
		case model.StarterFruit, model.StarterSoup:
		default:
			return fmt.Errorf("%w: unknown starter %q", domainErrors.ErrMalformedDraft, *in.Starter)
		}
	}
	if in.Drink != nil {
		switch *in.Drink {
		case model.DrinkJuice, model.DrinkLemonade:
		default:
			return fmt.Errorf("%w: unknown drink %q", domainErrors.ErrMalformedDraft, *in.Drink)
		}
	}
	if in.MainDish != nil {
		switch *in.MainDish {
		case model.MainDishSpaghetti, model.MainDishBeef, model.MainDishChicken:
		default:
			return fmt.Errorf("%w: unknown main dish %q", domainErrors.ErrMalformedDraft, *in.MainDish)
		}
	}
	switch in.PaymentMethod {
	case model.PaymentCash, model.PaymentVoucher, "":
	default:
		return fmt.Errorf("%w: unknown payment method %q", domainErrors.ErrMalformedDraft, in.PaymentMethod)
	}
	return nil
}

// UpsertDraft records or replaces a person's selection for the current batch.
func (f *ComedorFacade) UpsertDraft(ctx context.Context, personID string, in DraftInput) (*model.OrderDraft, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	roster := f.resolveRoster(ctx)
	person, err := f.findPerson(ctx, roster, personID)
	if err != nil {
		return nil, err
	}

	payment := in.PaymentMethod
	if payment == "" {
		payment = model.PaymentCash
	}

	store := f.sessions.Load()
	draft := model.OrderDraft{
		PersonID:      person.ID,
		PersonName:    person.Name,
		PersonPhoto:   person.PhotoURL,
		Starter:       in.Starter,
		Drink:         in.Drink,
		MainDish:      in.MainDish,
		Note:          in.Note,
		PaymentMethod: payment,
		OrderDate:     model.Today(),
	}
	store.Put(draft)
	if err := f.sessions.Save(store); err != nil {
		return nil, err
	}
	return &draft, nil
}

// DeclineMeal marks a person as not having lunch today. The entry still counts
// toward batch completeness but never toward totals.
func (f *ComedorFacade) DeclineMeal(ctx context.Context, personID, note string) (*model.OrderDraft, error) {
	if note == "" {
		note = noMealNote
	}
	return f.UpsertDraft(ctx, personID, DraftInput{Note: note, PaymentMethod: model.PaymentCash})
}

func (f *ComedorFacade) summaryView(ctx context.Context) (*SummaryView, error) {
	store := f.sessions.Load()
	if store.Len() == 0 {
		return nil, domainErrors.ErrEmptyBatch
	}

	roster := f.resolveRoster(ctx)
	if !usecase.IsComplete(roster.People, store) {
		return nil, domainErrors.ErrIncompleteBatch
	}

	drafts := store.Drafts()
	return &SummaryView{
		Drafts: drafts,
		Totals: usecase.Aggregate(usecase.RecordsFromDrafts(drafts)),
	}, nil
}

// Summary returns the pre-commit review for a complete batch.
func (f *ComedorFacade) Summary(ctx context.Context) (*SummaryView, error) {
	return f.summaryView(ctx)
}

// Commit persists the batch and clears the working session. The session
// survives a failed write so the operator can retry without re-entering
// anything.
func (f *ComedorFacade) Commit(ctx context.Context) (*usecase.CommitResult, error) {
	view, err := f.summaryView(ctx)
	if err != nil {
		return nil, err
	}
	if f.orders == nil {
		return nil, domainErrors.ErrUnavailable
	}

	result, err := f.commits.Commit(ctx, view.Drafts)
	if err != nil {
		return nil, err
	}

	f.sessions.Clear()
	f.logger.Info("batch committed",
		slog.Int("records", result.Records),
		slog.String("report_date", result.Report.ReportDate),
	)
	return result, nil
}

// ExportSummary renders the current batch as a downloadable file.
func (f *ComedorFacade) ExportSummary(ctx context.Context, format string) (*ExportArtifact, error) {
	view, err := f.summaryView(ctx)
	if err != nil {
		return nil, err
	}

	switch format {
	case "", "xlsx":
		data, err := export.Excel(export.SummaryTable(view.Drafts, view.Totals))
		if err != nil {
			return nil, err
		}
		return &ExportArtifact{
			Filename:    export.SummaryFilename("xlsx"),
			ContentType: contentTypeXLSX,
			Data:        data,
		}, nil
	case "pdf":
		data, err := export.PDF(export.SummaryDocument(view.Drafts, view.Totals))
		if err != nil {
			return nil, err
		}
		return &ExportArtifact{
			Filename:    export.SummaryFilename("pdf"),
			ContentType: contentTypePDF,
			Data:        data,
		}, nil
	default:
		return nil, fmt.Errorf("unsupported export format %q", format)
	}
}

// History returns committed lunches inside the optional [from, to] date range,
// grouped by date with aggregate counts.
func (f *ComedorFacade) History(ctx context.Context, from, to string) (*HistoryView, error) {
	history := f.resolveHistory(ctx)

	filtered := usecase.FilterByDate(history.Orders, from, to)
	return &HistoryView{
		Groups:  usecase.GroupByDate(filtered),
		Totals:  usecase.Aggregate(filtered),
		Reports: history.Reports,
		Source:  history.Source,
	}, nil
}

// ExportHistory renders the filtered archive as a spreadsheet.
func (f *ComedorFacade) ExportHistory(ctx context.Context, from, to string) (*ExportArtifact, error) {
	history := f.resolveHistory(ctx)

	filtered := usecase.FilterByDate(history.Orders, from, to)
	data, err := export.Excel(export.HistoryTable(filtered))
	if err != nil {
		return nil, err
	}
	return &ExportArtifact{
		Filename:    export.HistoryFilename("xlsx"),
		ContentType: contentTypeXLSX,
		Data:        data,
	}, nil
}

// Reports returns the stored daily rollups, most recent first.
func (f *ComedorFacade) Reports(ctx context.Context) ([]model.DailyReport, fallback.Source, error) {
	history := f.resolveHistory(ctx)
	return history.Reports, history.Source, nil
}

// HealthStatus reports service and gateway liveness.
type HealthStatus struct {
	Status   string
	Database string
}

// Health probes the persistence gateway. The service itself is always "ok";
// the database field tells whether live data or samples are being served.
func (f *ComedorFacade) Health(ctx context.Context) HealthStatus {
	status := HealthStatus{Status: "ok", Database: "disabled"}
	if f.pinger == nil {
		return status
	}
	if err := f.pinger.HealthCheck(ctx); err != nil {
		f.logger.Warn("database health check failed", slog.String("error", err.Error()))
		status.Database = "unavailable"
		return status
	}
	status.Database = "ok"
	return status
}
