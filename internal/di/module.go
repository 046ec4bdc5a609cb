package di

import (
	"github.com/talleres-esperanza/comedor/internal/app"
	"github.com/talleres-esperanza/comedor/internal/config"
	"github.com/talleres-esperanza/comedor/internal/logger"
	"github.com/talleres-esperanza/comedor/internal/server/http/handlers"
	"github.com/talleres-esperanza/comedor/internal/server/http/router"
	"github.com/talleres-esperanza/comedor/internal/session"
	"github.com/talleres-esperanza/comedor/internal/storage/postgres"
	"github.com/talleres-esperanza/comedor/internal/usecase"
	"go.uber.org/fx"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		postgres.Module,
		session.Module,
		usecase.Module,
		fx.Provide(func(f *app.ComedorFacade) handlers.ComedorFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
