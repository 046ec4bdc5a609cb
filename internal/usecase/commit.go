package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	domainErrors "github.com/talleres-esperanza/comedor/internal/domain/errors"
	"github.com/talleres-esperanza/comedor/internal/domain/model"
	"github.com/talleres-esperanza/comedor/internal/domain/repository"
)

// OrderUseCase finalizes draft batches into persisted records.
type OrderUseCase struct {
	orders repository.OrderRepository
	now    func() time.Time
	newID  func() string
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{
		orders: orders,
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

// CommitResult reports what a successful commit wrote.
type CommitResult struct {
	Records int
	Report  model.DailyReport
}

// RecordsFromDrafts maps drafts to their record shape without assigning
// identity or timestamps. Used for summary previews and as the first half of
// Finalize.
func RecordsFromDrafts(drafts []model.OrderDraft) []model.OrderRecord {
	records := make([]model.OrderRecord, 0, len(drafts))
	for _, d := range drafts {
		records = append(records, model.OrderRecord{
			PersonID:      d.PersonID,
			PersonName:    d.PersonName,
			PersonPhoto:   d.PersonPhoto,
			Starter:       d.Starter,
			Drink:         d.Drink,
			MainDish:      d.MainDish,
			Note:          d.Note,
			PaymentMethod: d.PaymentMethod,
			OrderDate:     d.OrderDate,
		})
	}
	return records
}

// Finalize turns drafts into committable records: identifiers, creation
// timestamps and a stamped order date for drafts that never got one.
func (u *OrderUseCase) Finalize(drafts []model.OrderDraft) []model.OrderRecord {
	now := u.now()
	today := model.FormatDate(now)

	records := RecordsFromDrafts(drafts)
	for i := range records {
		records[i].ID = u.newID()
		records[i].CreatedAt = now
		if records[i].OrderDate == "" {
			records[i].OrderDate = today
		}
	}
	return records
}

// Commit persists the batch and its daily rollup in one transaction. A failed
// write is returned to the caller so the operator learns the batch was not
// saved; nothing is exported or cleared on the strength of a lost commit.
func (u *OrderUseCase) Commit(ctx context.Context, drafts []model.OrderDraft) (*CommitResult, error) {
	if len(drafts) == 0 {
		return nil, domainErrors.ErrEmptyBatch
	}

	records := u.Finalize(drafts)
	summary := Aggregate(records)

	report := model.DailyReport{
		ID:            u.newID(),
		ReportDate:    model.FormatDate(u.now()),
		TotalOrders:   summary.Total,
		CashOrders:    summary.CashCount,
		VoucherOrders: summary.VoucherCount,
		CreatedAt:     u.now(),
	}

	if err := u.orders.InsertBatch(ctx, records, &report); err != nil {
		return nil, fmt.Errorf("commit batch: %w", err)
	}

	return &CommitResult{Records: len(records), Report: report}, nil
}
