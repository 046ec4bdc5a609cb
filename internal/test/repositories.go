package test

import (
	"context"

	domainErrors "github.com/talleres-esperanza/comedor/internal/domain/errors"
	"github.com/talleres-esperanza/comedor/internal/domain/model"
)

// PersonRepositoryStub serves an in-memory roster for tests.
type PersonRepositoryStub struct {
	People  []model.Person
	ListErr error
	GetErr  error
}

// List returns the configured roster or the configured error.
func (s *PersonRepositoryStub) List(ctx context.Context) ([]model.Person, error) {
	if s.ListErr != nil {
		return nil, s.ListErr
	}
	return s.People, nil
}

// GetByID fetches a person by identifier or returns not found.
func (s *PersonRepositoryStub) GetByID(ctx context.Context, id string) (*model.Person, error) {
	if s.GetErr != nil {
		return nil, s.GetErr
	}
	for _, p := range s.People {
		if p.ID == id {
			person := p
			return &person, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// InsertCall stores information about one InsertBatch invocation.
type InsertCall struct {
	Records []model.OrderRecord
	Report  *model.DailyReport
}

// OrderRepositoryStub records inserted batches and serves configured history.
type OrderRepositoryStub struct {
	Inserts   []InsertCall
	Records   []model.OrderRecord
	InsertErr error
	ListErr   error
	InsertFn  func(context.Context, []model.OrderRecord, *model.DailyReport) error
}

// InsertBatch records the call and appends the batch to served history.
func (s *OrderRepositoryStub) InsertBatch(ctx context.Context, records []model.OrderRecord, report *model.DailyReport) error {
	if s.InsertFn != nil {
		return s.InsertFn(ctx, records, report)
	}
	if s.InsertErr != nil {
		return s.InsertErr
	}
	s.Inserts = append(s.Inserts, InsertCall{Records: records, Report: report})
	s.Records = append(s.Records, records...)
	return nil
}

// ListAll returns the configured records or the configured error.
func (s *OrderRepositoryStub) ListAll(ctx context.Context) ([]model.OrderRecord, error) {
	if s.ListErr != nil {
		return nil, s.ListErr
	}
	return s.Records, nil
}

// ReportRepositoryStub serves configured daily rollups.
type ReportRepositoryStub struct {
	Reports []model.DailyReport
	ListErr error
}

// ListAll returns the configured reports or the configured error.
func (s *ReportRepositoryStub) ListAll(ctx context.Context) ([]model.DailyReport, error) {
	if s.ListErr != nil {
		return nil, s.ListErr
	}
	return s.Reports, nil
}

// PingerStub simulates the persistence health probe.
type PingerStub struct {
	Err error
}

// HealthCheck returns the configured error.
func (s *PingerStub) HealthCheck(ctx context.Context) error {
	return s.Err
}
