package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/cobra"

	"github.com/Skotchmaster/bookstore/internal/events"
	"github.com/Skotchmaster/bookstore/internal/httpserver"
	"github.com/Skotchmaster/bookstore/internal/identity"
	"github.com/Skotchmaster/bookstore/internal/metrics"
	loggingmw "github.com/Skotchmaster/bookstore/internal/middleware/logging"
	"github.com/Skotchmaster/bookstore/internal/repo"
	"github.com/Skotchmaster/bookstore/internal/search"
	"github.com/Skotchmaster/bookstore/internal/service"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Prepare the store and start the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(cmd.Context())
	},
}

func serve(ctx context.Context) error {

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()
	cfg, log := a.cfg, a.log

	var publisher events.Publisher = events.Nop{}
	if len(cfg.KafkaBrokers) > 0 {
		kp, err := events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
		if err != nil {
			return err
		}
		publisher = kp
		log.Info("kafka_enabled", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic)
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			log.Error("kafka_close_error", "error", err)
		}
	}()

	rp := &repo.GormRepo{DB: a.db}

	var searcher search.Searcher = &search.StoreSearcher{Store: rp}
	if a.es != nil {
		searcher = a.es
		log.Info("elasticsearch_enabled", "url", cfg.ESURL, "index", cfg.ESIndex)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(
		middleware.Recover(),
		middleware.RequestID(),
		loggingmw.RequestLogger(log),
		middleware.CORS(),
		metrics.Middleware(),
		identity.Middleware(cfg.JWTSecret),
	)

	httpserver.Register(e, &httpserver.Deps{
		BooksHandler: &httpserver.BooksHTTP{Svc: &service.CatalogService{Repo: rp, Search: searcher}},
		CartHandler:  &httpserver.CartHTTP{Svc: &service.CartService{Repo: rp, Events: publisher}},
		Ready:        rp.Ping,
		BooksDir:     cfg.BooksDir,
		FrontendDir:  cfg.FrontendDir,
	})

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.Port),
		Handler:           e,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 3 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("http_server_started", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		log.Info("shutting_down", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("http_shutdown_error", "error", err)
	}

	log.Info("shutdown_complete")
	return nil
}
