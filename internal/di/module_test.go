package di

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"go.uber.org/fx"

	"github.com/talleres-esperanza/comedor/internal/app"
	"github.com/talleres-esperanza/comedor/internal/config"
	"github.com/talleres-esperanza/comedor/internal/domain/repository"
	"github.com/talleres-esperanza/comedor/internal/storage/postgres"
	"github.com/talleres-esperanza/comedor/internal/test"
)

func TestModuleComposesGraphWithReplacements(t *testing.T) {
	cfg := &config.Config{
		RunAddress:      ":0",
		DatabaseURI:     "postgres://stub",
		StoreTimeout:    time.Millisecond,
		ShutdownTimeout: time.Millisecond,
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	personRepo := &test.PersonRepositoryStub{}
	orderRepo := &test.OrderRepositoryStub{}
	reportRepo := &test.ReportRepositoryStub{}

	var facade *app.ComedorFacade
	fxApp := fx.New(
		fx.NopLogger,
		fx.Supply(context.Background()),
		Module(
			fx.Replace(cfg),
			fx.Replace(logger),
			fx.Replace(&postgres.Storage{}),
			fx.Replace(repository.PersonRepository(personRepo)),
			fx.Replace(repository.OrderRepository(orderRepo)),
			fx.Replace(repository.ReportRepository(reportRepo)),
		),
		fx.Populate(&facade),
	)

	if err := fxApp.Err(); err != nil {
		t.Fatalf("fx app returned error: %v", err)
	}
	t.Cleanup(func() { _ = fxApp.Stop(context.Background()) })
	if facade == nil {
		t.Fatal("expected comedor facade instance")
	}
}
