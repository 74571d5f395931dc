package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/fx"
)

// run drives the fx app until the signal context or the app itself
// says to stop. Stop gets a fresh context so shutdown is not cut short
// by the signal that initiated it.
func run(ctx context.Context, app *fx.App) {
	if err := app.Start(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "failed to start agromart: %v\n", err)
		os.Exit(1)
	}

	select {
	case <-ctx.Done():
	case <-app.Done():
	}

	if err := app.Stop(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "failed to stop agromart: %v\n", err)
		os.Exit(1)
	}
}
