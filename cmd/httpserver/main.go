package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"moviecatalog/category"
	"moviecatalog/httpserver"
	"moviecatalog/movie"
	"moviecatalog/pkg/config"
	"moviecatalog/pkg/logger"
	"moviecatalog/pkg/sentry"
	"moviecatalog/store"

	sentrygo "github.com/getsentry/sentry-go"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// @title Movie Catalog API
// @version 1.0
// @description CRUD API for movies and their categories with HAL pagination.
// @BasePath /
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		exit("Cannot load config", err)
	}

	log, err := logger.New(cfg.AppEnv)
	if err != nil {
		exit("Cannot build logger", err)
	}
	defer func() { _ = log.Sync() }()

	err = sentrygo.Init(sentrygo.ClientOptions{
		Dsn:              cfg.SentryDSN,
		Environment:      cfg.AppEnv,
		AttachStacktrace: true,
	})
	if err != nil {
		log.Fatalw("Cannot init sentry", zap.Error(err))
	}
	defer sentrygo.Flush(sentry.FlushTime)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s, err := store.Open(ctx, cfg)
	if err != nil {
		log.Fatalw("Cannot open store", zap.String("driver", cfg.StoreDriver), zap.Error(err))
	}
	defer func() {
		if err := s.Close(context.Background()); err != nil {
			log.Errorw("Cannot close store", zap.Error(err))
		}
	}()

	server, err := httpserver.New(
		httpserver.WithConfig(cfg),
		httpserver.WithLogger(log),
		httpserver.WithMovieService(movie.NewUsecase(s.Movies)),
		httpserver.WithCategoryService(category.NewUsecase(s.Categories, s.Movies)),
	)
	if err != nil {
		log.Fatalw("Cannot create server", zap.Error(err))
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infow("server started!", zap.String("addr", server.Addr), zap.String("store", s.Driver))
		errCh <- server.Start()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Errorw("server stopped with error", zap.Error(err))
		}
		return
	case <-ctx.Done():
	}

	log.Infow("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Errorw("server shutdown failed", zap.Error(err))
	}
}

// exit reports failures that happen before the logger exists.
func exit(msg string, err error) {
	fmt.Fprintf(os.Stderr, "%s: %v\n", msg, err)
	os.Exit(1)
}
