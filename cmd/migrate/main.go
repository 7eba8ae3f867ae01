package main

import (
	"log/slog"
	"os"

	"moviestore/database"
	"moviestore/pkg/config"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("cannot load config", "error", err)
		os.Exit(1)
	}

	db, err := database.NewConnection(database.OptionsFromConfig(cfg))
	if err != nil {
		logger.Error("cannot connecting to db", "error", err)
		os.Exit(1)
	}
	defer database.Close(db)

	total, err := database.Migrate(db, cfg.DB.Driver)
	if err != nil {
		logger.Error("cannot execute migration", "error", err)
		os.Exit(1)
	}

	logger.Info("applied migrations", "total", total)
}
