// Package cli is the presentation layer: it collects command input,
// dispatches single commands to the task store, and renders engine output.
// All task state lives behind the store; the only state owned here is the
// session-local filter selection on the list command.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/mkarpenko/tasklist/internal/config"
	"github.com/mkarpenko/tasklist/internal/storage"
	"github.com/mkarpenko/tasklist/internal/store"
)

type App struct {
	cfg    config.Config
	logger *zap.Logger
	store  *store.Store
	out    io.Writer

	closers []func()
}

// NewRootCmd builds the command tree. The store is opened once per
// invocation, before the subcommand runs, and every subcommand is one
// discrete engine command.
func NewRootCmd(cfg config.Config, out io.Writer) *cobra.Command {
	app := &App{cfg: cfg, out: out}

	root := &cobra.Command{
		Use:           "tasklist",
		Short:         "Manage a personal task list",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		return app.open(cmd.Context())
	}
	root.PersistentPostRun = func(*cobra.Command, []string) {
		app.close()
	}

	root.AddCommand(
		newAddCmd(app),
		newEditCmd(app),
		newDoneCmd(app),
		newReopenCmd(app),
		newRmCmd(app),
		newListCmd(app),
	)
	return root
}

func (a *App) open(ctx context.Context) error {
	level := zapcore.WarnLevel
	if a.cfg.Verbose {
		level = zapcore.DebugLevel
	}
	logCfg := zap.NewDevelopmentConfig()
	logCfg.Level = zap.NewAtomicLevelAt(level)
	logger, err := logCfg.Build()
	if err != nil {
		return err
	}
	a.logger = logger
	a.closers = append(a.closers, func() { logger.Sync() })

	adapter, err := a.newAdapter(ctx)
	if err != nil {
		return err
	}

	s, err := store.New(ctx, adapter, logger)
	if err != nil {
		return err
	}
	a.store = s
	return nil
}

func (a *App) newAdapter(ctx context.Context) (storage.Adapter, error) {
	switch a.cfg.Backend {
	case "file":
		return storage.NewFile(a.cfg.FilePath)
	case "redis":
		client := redis.NewClient(&redis.Options{Addr: a.cfg.RedisAddr})
		a.closers = append(a.closers, func() { client.Close() })
		return storage.NewRedis(client, a.cfg.RedisKey), nil
	case "postgres":
		pool, err := pgxpool.New(ctx, a.cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("connect to database: %w", err)
		}
		a.closers = append(a.closers, pool.Close)
		return storage.NewPostgres(ctx, pool)
	default:
		return nil, fmt.Errorf("unknown backend %q (want file, redis or postgres)", a.cfg.Backend)
	}
}

func (a *App) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}
