package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"moviestore/database"
	"moviestore/httpserver"
	"moviestore/movie"
	"moviestore/pkg/config"
	"moviestore/pkg/sentry"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Cannot load config", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)

	if err := sentry.Init(cfg); err != nil {
		slog.Error("Cannot init sentry", "error", err)
		os.Exit(1)
	}
	defer sentry.Flush()

	db, err := database.NewConnection(database.OptionsFromConfig(cfg))
	if err != nil {
		slog.Error("Cannot open database connection", "driver", cfg.DB.Driver, "error", err)
		os.Exit(1)
	}
	defer database.Close(db)

	applied, err := database.Migrate(db, cfg.DB.Driver)
	if err != nil {
		slog.Error("Cannot apply migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("database ready", "driver", cfg.DB.Driver, "migrations_applied", applied)

	server, err := httpserver.New(
		httpserver.WithConfig(cfg),
		httpserver.WithLogger(logger),
		httpserver.WithMovieService(movie.NewUsecase(database.NewMovieRepository(db))),
	)
	if err != nil {
		slog.Error("Cannot create server", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errChan := make(chan error, 1)
	go func() {
		slog.Info("server started!", "addr", server.Addr)
		errChan <- server.Start()
	}()

	select {
	case err := <-errChan:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server stopped with error", "error", err)
			sentry.Error(err)
			os.Exit(1)
		}
	case <-ctx.Done():
		slog.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("graceful shutdown failed", "error", err)
		}
	}
}

