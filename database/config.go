package database

import (
	"strconv"

	"moviestore/pkg/config"
)

// OptionsFromConfig maps the DB_* settings onto connection options.
func OptionsFromConfig(cfg *config.Config) Options {
	opts := Options{
		Driver:   cfg.DB.Driver,
		Path:     cfg.DB.Path,
		DBName:   cfg.DB.Name,
		DBUser:   cfg.DB.User,
		Password: cfg.DB.Pass,
		Host:     cfg.DB.Host,
		SSLMode:  cfg.DB.EnableSSL,
	}
	if cfg.DB.Port > 0 {
		opts.Port = strconv.Itoa(cfg.DB.Port)
	}
	return opts
}
