package main

import (
	"context"
	"log/slog"
	"time"

	"gorm.io/gorm"

	"github.com/Skotchmaster/bookstore/internal/bootstrap"
	"github.com/Skotchmaster/bookstore/internal/config"
	"github.com/Skotchmaster/bookstore/internal/db"
	"github.com/Skotchmaster/bookstore/internal/logging"
	"github.com/Skotchmaster/bookstore/internal/search"
)

// app holds what both commands need: configuration, the root logger and an
// open store with its schema and seed catalog in place.
type app struct {
	cfg *config.Config
	log *slog.Logger
	db  *gorm.DB
	es  *search.ElasticSearcher
}

func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	log := logging.New(cfg.LogLevel).With("service", cfg.ServiceName)
	slog.SetDefault(log)
	ctx = logging.IntoContext(ctx, log)

	initCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	gdb, err := db.Open(initCtx, cfg.DatabaseURL, cfg.DBDriver)
	if err != nil {
		return nil, err
	}

	a := &app{cfg: cfg, log: log, db: gdb}
	opts := bootstrap.Options{}
	if cfg.ESURL != "" {
		a.es, err = search.NewElasticSearcher(search.ElasticConfig{
			URL:      cfg.ESURL,
			User:     cfg.ESUser,
			Password: cfg.ESPassword,
			Index:    cfg.ESIndex,
		})
		if err != nil {
			_ = db.Close(gdb)
			return nil, err
		}
		opts.Indexer = a.es
	}

	if err := bootstrap.Run(initCtx, gdb, opts); err != nil {
		_ = db.Close(gdb)
		return nil, err
	}
	return a, nil
}

func (a *app) close() {
	if err := db.Close(a.db); err != nil {
		a.log.Error("db_close_error", "error", err)
	}
}
