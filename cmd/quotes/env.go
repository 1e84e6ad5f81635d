package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/kerbaras/quotes/pkg/config"
	"github.com/kerbaras/quotes/pkg/data"
	"github.com/kerbaras/quotes/pkg/logging"
	"github.com/kerbaras/quotes/pkg/services"
	"github.com/kerbaras/quotes/pkg/sources"
	"github.com/kerbaras/quotes/pkg/utils"
)

// environment holds everything a command needs, built from config.
type environment struct {
	cfg        *config.Config
	logger     *logging.Logger
	store      *data.FileStore
	history    *data.HistoryRepository
	controller *services.QuoteController
}

// setup loads config and wires the logger, source, store, history and
// controller. CLI commands also log to stderr.
func setup(stderr bool) (*environment, error) {
	overrides := map[string]any{}
	if logLevel != "" {
		overrides["log.level"] = logLevel
	}
	cfg, err := config.LoadWithOverrides(configPath, overrides)
	if err != nil {
		return nil, err
	}

	var extra []io.Writer
	if stderr {
		extra = append(extra, os.Stderr)
	}
	logger, err := logging.New(cfg.Log, extra...)
	if err != nil {
		return nil, fmt.Errorf("failed to open log: %w", err)
	}

	source, err := sources.NewForismatic(
		cfg.Source.Endpoint,
		utils.WithTimeout(cfg.Source.Timeout),
		utils.WithRateLimit(cfg.Source.RateLimit, 1),
	)
	if err != nil {
		logger.Close()
		return nil, err
	}

	env := &environment{
		cfg:    cfg,
		logger: logger,
		store:  data.NewFileStore(cfg.Storage.Favourites),
	}

	opts := []services.ControllerOption{}
	history, err := data.OpenHistory(cfg.Storage.History)
	if err != nil {
		// history is a nice-to-have; the app works without it
		logger.Warn("history unavailable", "path", cfg.Storage.History, "err", err)
	} else {
		env.history = history
		opts = append(opts, services.WithHistory(history))
	}

	env.controller = services.NewQuoteController(source, env.store, logger.Logger, opts...)
	logger.Debug("ready", "favourites", env.store.Path(), "endpoint", cfg.Source.Endpoint)
	return env, nil
}

// loadFavourites loads the favourites into the controller without fetching.
// A missing file is an empty list.
func (e *environment) loadFavourites() ([]data.Quote, error) {
	if err := e.controller.LoadFavourites(); err != nil && !errors.Is(err, data.ErrNotFound) {
		return nil, err
	}
	return e.controller.State().Favourites, nil
}

func (e *environment) Close() {
	if e.history != nil {
		if err := e.history.Close(); err != nil {
			e.logger.Warn("failed to close history", "err", err)
		}
	}
	e.logger.Close()
}
