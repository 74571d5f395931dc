package di

import (
	"github.com/polkiloo/agromart/internal/adapter/webhook"
	"github.com/polkiloo/agromart/internal/app"
	"github.com/polkiloo/agromart/internal/config"
	"github.com/polkiloo/agromart/internal/logger"
	"github.com/polkiloo/agromart/internal/notification"
	"github.com/polkiloo/agromart/internal/pkg/auth"
	"github.com/polkiloo/agromart/internal/server/http/handlers"
	"github.com/polkiloo/agromart/internal/server/http/router"
	"github.com/polkiloo/agromart/internal/storage/postgres"
	"github.com/polkiloo/agromart/internal/usecase"
	"go.uber.org/fx"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		webhook.Module,
		notification.Module,
		usecase.Module,
		fx.Provide(func(f *app.MarketFacade) handlers.MarketFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
