package logger

import (
	"log/slog"
	"os"
)

// New creates the service-wide slog.Logger. Agromart logs operational
// events only; business state changes live in the order status history.
func New() *slog.Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	return slog.New(handler).With(slog.String("service", "agromart"))
}
