package webhook

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/agromart/internal/config"
)

// Module exposes the webhook sink implementation to the fx graph.
var Module = fx.Provide(newSink)

type sinkParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newSink(p sinkParams) (Sink, error) {
	if p.Config.WebhookAddress == "" {
		return NopSink{}, nil
	}
	return NewHTTPSink(p.Config.WebhookAddress, p.Logger)
}
