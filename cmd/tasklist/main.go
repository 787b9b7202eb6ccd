package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mkarpenko/tasklist/internal/cli"
	"github.com/mkarpenko/tasklist/internal/config"
	"github.com/mkarpenko/tasklist/internal/store"
)

func main() {
	cfg := config.Load()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer cancel()

	root := cli.NewRootCmd(cfg, os.Stdout)
	root.SilenceErrors = true

	if err := root.ExecuteContext(ctx); err != nil {
		reportError(err)
		os.Exit(1)
	}
}

// reportError translates engine errors into user-facing messages at the
// outermost boundary, the one place that decides how failures look.
func reportError(err error) {
	var (
		validationErr  *store.ValidationError
		notFoundErr    *store.NotFoundError
		persistenceErr *store.PersistenceError
	)
	switch {
	case errors.As(err, &validationErr):
		fmt.Fprintf(os.Stderr, "rejected: %s %s\n", validationErr.Field, validationErr.Reason)
	case errors.As(err, &notFoundErr):
		fmt.Fprintf(os.Stderr, "task %d not found\n", notFoundErr.ID)
	case errors.As(err, &persistenceErr):
		fmt.Fprintf(os.Stderr, "storage failure: %v\n", persistenceErr.Err)
	default:
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
	}
}
