package commands

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"taskpad/internal/app"
	"taskpad/internal/clock"
	"taskpad/internal/config"
	"taskpad/internal/logging"
	"taskpad/internal/storage"
	"taskpad/internal/task"
)

type env struct {
	cfg     config.Config
	logger  *slog.Logger
	clock   clock.Clock
	app     *app.App
	closers []io.Closer
}

// setup loads config, opens the slot and builds the app with the given
// dialogs.
func setup(ro *rootOptions, dialogs *terminal) (*env, error) {
	cfg, err := config.LoadOrCreate(ro.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	logger, logCloser, err := logging.New(cfg.LogPath, cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	clk, err := clock.New(cfg.Timezone)
	if err != nil {
		logCloser.Close()
		return nil, err
	}
	slot, err := storage.Open(cfg.Backend, cfg.StoreDir, cfg.Slot)
	if err != nil {
		logCloser.Close()
		return nil, fmt.Errorf("open store: %w", err)
	}
	logger.Debug("store opened", "backend", cfg.Backend, "dir", cfg.StoreDir, "slot", slot.Name())

	a := app.New(app.Options{
		Slot: slot,
		Commands: task.Commands{
			Confirm: dialogs.confirm,
			Prompt:  dialogs.prompt,
			Now:     time.Now,
			NewID:   task.IDFuncFor(cfg.IDs),
		},
		Logger: logger,
	})
	return &env{
		cfg:     cfg,
		logger:  logger,
		clock:   clk,
		app:     a,
		closers: []io.Closer{slot, logCloser},
	}, nil
}

func (e *env) Close() {
	for _, c := range e.closers {
		_ = c.Close()
	}
}
