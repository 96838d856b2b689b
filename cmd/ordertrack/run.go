package main

import (
	"context"
	"fmt"
	"io"
	"os"
)

type runnable interface {
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
	Done() <-chan os.Signal
}

// run starts the application, waits for a signal or an fx shutdown and stops it.
// It returns the process exit code.
func run(ctx context.Context, app runnable, stderr io.Writer) int {
	if err := app.Start(ctx); err != nil {
		fmt.Fprintf(stderr, "failed to start ordertrack: %v\n", err)
		return 1
	}

	select {
	case <-ctx.Done():
	case <-app.Done():
	}

	if err := app.Stop(context.Background()); err != nil {
		fmt.Fprintf(stderr, "failed to stop ordertrack: %v\n", err)
		return 1
	}
	return 0
}
