package main

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"reel/internal/catalog"
	"reel/internal/config"
	"reel/internal/history"
	"reel/internal/lists"
	"reel/internal/logging"
	"reel/internal/storage"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger

	serviceOnce sync.Once
	service     *catalog.Service
	serviceErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) ensureLogger() *slog.Logger {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.logger = logging.NewNop()
			return
		}
		logger, err := logging.New(logging.Options{
			Level:  cfg.Logging.Level,
			Format: cfg.Logging.Format,
		})
		if err != nil {
			c.logger = logging.NewNop()
			return
		}
		c.logger = logger
	})
	return c.logger
}

func (c *commandContext) ensureService() (*catalog.Service, error) {
	c.serviceOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.serviceErr = err
			return
		}
		c.service, c.serviceErr = catalog.New(cfg, c.ensureLogger())
	})
	return c.service, c.serviceErr
}

// withLists opens the local store for the duration of fn. The catalog
// service is attached as the backfill source when available; list
// operations still work without a valid API credential.
func (c *commandContext) withLists(ctx context.Context, fn func(*lists.Store) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	db, err := storage.OpenSQLite(cfg.Storage.Dir)
	if err != nil {
		return err
	}
	defer db.Close()

	var source lists.DetailSource
	if svc, err := c.ensureService(); err == nil {
		source = svc
	}
	store, err := lists.Open(ctx, db, source, c.ensureLogger())
	if err != nil {
		return err
	}
	return fn(store)
}

func (c *commandContext) withHistory(ctx context.Context, fn func(*history.Store) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	db, err := storage.OpenSQLite(cfg.Storage.Dir)
	if err != nil {
		return err
	}
	defer db.Close()

	h, err := history.Open(ctx, db, c.ensureLogger())
	if err != nil {
		return err
	}
	return fn(h)
}
