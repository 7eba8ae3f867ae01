package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"moviestore/database"
	"moviestore/movie"
	"moviestore/pkg/config"
	"moviestore/pkg/sentry"
)

func main() {
	var (
		csvPath string
		limit   int
	)

	flag.StringVar(&csvPath, "csv", "", "Path to movies CSV (id,title,director,release_year,rating)")
	flag.IntVar(&limit, "limit", 0, "Limit number of rows to import (0 = all)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if csvPath == "" {
		slog.Error("missing -csv flag")
		os.Exit(2)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("load config failed", "error", err)
		os.Exit(1)
	}

	if err := sentry.Init(cfg); err != nil {
		slog.Error("cannot init sentry", "error", err)
		os.Exit(1)
	}
	defer sentry.Flush()

	db, err := database.NewConnection(database.OptionsFromConfig(cfg))
	if err != nil {
		slog.Error("cannot open database connection", "error", err)
		os.Exit(1)
	}
	defer database.Close(db)

	if _, err := database.Migrate(db, cfg.DB.Driver); err != nil {
		slog.Error("cannot apply migrations", "error", err)
		os.Exit(1)
	}

	file, err := os.Open(csvPath)
	if err != nil {
		slog.Error("cannot open csv", "error", err)
		os.Exit(1)
	}
	defer file.Close()

	svc := movie.NewUsecase(database.NewMovieRepository(db))
	stats, err := importMovies(context.Background(), svc, file, limit)
	if err != nil {
		slog.Error("import failed", "error", err, "imported", stats.Imported)
		os.Exit(1)
	}

	slog.Info("import completed", "imported", stats.Imported, "skipped", stats.Skipped)
}
