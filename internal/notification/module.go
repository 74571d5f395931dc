package notification

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/agromart/internal/adapter/webhook"
	"github.com/polkiloo/agromart/internal/config"
)

// Module exposes the notification dispatcher to the fx graph.
var Module = fx.Provide(newDispatcher)

type dispatcherParams struct {
	fx.In

	Sink   webhook.Sink
	Config *config.Config
	Logger *slog.Logger
}

func newDispatcher(p dispatcherParams) *Dispatcher {
	return NewDispatcher(p.Sink, p.Config.NotificationBuffer, p.Logger)
}
