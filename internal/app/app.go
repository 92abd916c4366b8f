package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"svw.info/numbers/internal/adapters/terminal"
	"svw.info/numbers/internal/config"
	"svw.info/numbers/internal/ctxlog"
	"svw.info/numbers/internal/generator"
	"svw.info/numbers/internal/hint"
	"svw.info/numbers/internal/infrastructure/storage"
	"svw.info/numbers/internal/ports"
	"svw.info/numbers/internal/usecase"
	"svw.info/numbers/internal/validator"
)

// App owns one game session's dependencies.
type App struct {
	logger  *slog.Logger
	console *terminal.Console
	closer  io.Closer
}

// New builds the app. in and out carry the game; logs go to logW.
func New(cfg *config.Config, in io.Reader, out, logW io.Writer) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)

	st, closer, err := openStorage(cfg)
	if err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Debug("app configured",
		"backend", cfg.LeaderboardBackend,
		"leaderboard", cfg.LeaderboardPath,
		"log_level", cfg.LogLevel,
		"log_format", cfg.LogFormat,
		"seed", seed,
	)

	// Wire providers → use cases → terminal adapter
	uc := usecase.NewService(generator.NewRandomSource(seed), validator.New(), hint.NewWindow(), st)
	return &App{
		logger:  logger,
		console: terminal.New(uc, in, out),
		closer:  closer,
	}, nil
}

func openStorage(cfg *config.Config) (ports.Storage, io.Closer, error) {
	switch cfg.LeaderboardBackend {
	case config.BackendSQLite:
		db, err := storage.OpenSQLite(cfg.LeaderboardPath)
		if err != nil {
			return nil, nil, fmt.Errorf("open leaderboard: %w", err)
		}
		return db, db, nil
	default:
		return storage.NewFS(cfg.LeaderboardPath), nil, nil
	}
}

// Run plays one session and releases storage.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	defer a.Close()
	return a.console.Run(ctx)
}

func (a *App) Close() error {
	if a.closer == nil {
		return nil
	}
	err := a.closer.Close()
	a.closer = nil
	return err
}
