package di

import (
	"go.uber.org/fx"

	"github.com/innovshop/marketplace/internal/adapter/mailer"
	"github.com/innovshop/marketplace/internal/app"
	"github.com/innovshop/marketplace/internal/config"
	"github.com/innovshop/marketplace/internal/logger"
	"github.com/innovshop/marketplace/internal/pkg/auth"
	"github.com/innovshop/marketplace/internal/server/http/handlers"
	"github.com/innovshop/marketplace/internal/server/http/router"
	"github.com/innovshop/marketplace/internal/storage/postgres"
	"github.com/innovshop/marketplace/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		mailer.Module,
		usecase.Module,
		fx.Provide(func(f *app.MarketplaceFacade) handlers.MarketplaceFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
