package postgres

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/talleres-esperanza/comedor/internal/config"
	"github.com/talleres-esperanza/comedor/internal/domain/repository"
)

// Module wires PostgreSQL storage and repository adapters.
var Module = fx.Options(
	fx.Provide(newStorage),
	fx.Provide(
		func(s *Storage) repository.PersonRepository {
			if s == nil {
				return nil
			}
			return s.People()
		},
		func(s *Storage) repository.OrderRepository {
			if s == nil {
				return nil
			}
			return s.Orders()
		},
		func(s *Storage) repository.ReportRepository {
			if s == nil {
				return nil
			}
			return s.Reports()
		},
	),
	fx.Invoke(registerLifecycle),
)

type storageParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// newStorage returns a nil storage when no DSN is configured; the application
// then serves sample data and rejects commits.
func newStorage(p storageParams) (*Storage, error) {
	if p.Config.DatabaseURI == "" {
		p.Logger.Warn("database not configured, running on sample data")
		return nil, nil
	}
	return New(p.Ctx, p.Config.DatabaseURI, p.Config.StoreTimeout, p.Logger)
}

func registerLifecycle(lc fx.Lifecycle, storage *Storage) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			storage.Close()
			return nil
		},
	})
}
