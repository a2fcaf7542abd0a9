package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/abhisek/mathstar/internal/config"
	"github.com/abhisek/mathstar/internal/logger"
	"github.com/abhisek/mathstar/internal/player"
	"github.com/abhisek/mathstar/internal/store"
	"github.com/abhisek/mathstar/internal/store/memory"
	redisstore "github.com/abhisek/mathstar/internal/store/redis"
)

// env is what every subcommand needs: resolved config, a logger and a
// loaded player service over the configured backend.
type env struct {
	cfg     config.Config
	log     *slog.Logger
	player  *player.Service
	closers []io.Closer
}

func (e *env) Close() error {
	var errs []error
	for i := len(e.closers) - 1; i >= 0; i-- {
		errs = append(errs, e.closers[i].Close())
	}
	return errors.Join(errs...)
}

// loadConfig reads the config file and environment, then applies flags.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}

	if p, _ := cmd.Flags().GetString("db"); p != "" {
		cfg.DBPath = p
	}
	if b, _ := cmd.Flags().GetString("backend"); b != "" {
		cfg.Backend = b
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// newEnv opens the backend and loads the player. When tui is true logs go
// to the log file since the terminal belongs to the UI; otherwise to stderr.
func newEnv(cmd *cobra.Command, tui bool) (*env, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	e := &env{cfg: cfg}

	if tui {
		path := cfg.Log.File
		if path == "" {
			if path, err = config.DefaultLogPath(); err != nil {
				return nil, err
			}
		}
		log, closer, err := logger.OpenFile(path, cfg.Log.Level)
		if err != nil {
			return nil, err
		}
		e.log = log
		e.closers = append(e.closers, closer)
	} else {
		if e.log, err = logger.New(cmd.ErrOrStderr(), cfg.Log.Level); err != nil {
			return nil, err
		}
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	records, history, err := openBackend(ctx, cfg)
	if err != nil {
		e.Close()
		return nil, err
	}
	e.closers = append(e.closers, records)
	e.log.Debug("backend opened", "backend", cfg.Backend)

	e.player = player.NewService(records,
		player.WithHistory(history),
		player.WithLogger(e.log),
	)
	e.player.Load(ctx)
	return e, nil
}

// openBackend returns the record store and session history for cfg.Backend.
func openBackend(ctx context.Context, cfg config.Config) (store.RecordStore, store.HistoryRepo, error) {
	switch cfg.Backend {
	case config.BackendMemory:
		m := memory.New()
		return m, m, nil

	case config.BackendRedis:
		rs, err := redisstore.Open(ctx, &redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}, cfg.Redis.Prefix)
		if err != nil {
			return nil, nil, fmt.Errorf("open redis store: %w", err)
		}
		return rs, rs, nil

	default:
		path, err := resolveDBPath(cfg)
		if err != nil {
			return nil, nil, fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(path)
		if err != nil {
			return nil, nil, fmt.Errorf("open store: %w", err)
		}
		return st, st, nil
	}
}

// resolveDBPath returns the configured path (from --db, MATHSTAR_DB or the
// config file), then the default XDG path.
func resolveDBPath(cfg config.Config) (string, error) {
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}
