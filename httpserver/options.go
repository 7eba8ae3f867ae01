package httpserver

import (
	"fmt"
	"log/slog"

	"moviestore/movie"
	"moviestore/pkg/config"
)

type Options func(s *Server) error

// WithConfig applies listen address, CORS and rate limiting from cfg.
func WithConfig(cfg *config.Config) Options {
	return func(s *Server) error {
		s.Config = cfg
		if cfg.Port > 0 {
			s.Addr = fmt.Sprintf(":%d", cfg.Port)
		}
		s.AllowOrigins = cfg.Origins()
		s.RateLimit = cfg.RateLimit
		return nil
	}
}

func WithLogger(logger *slog.Logger) Options {
	return func(s *Server) error {
		s.Logger = logger
		return nil
	}
}

func WithMovieService(svc movie.Service) Options {
	return func(s *Server) error {
		s.MovieService = svc
		return nil
	}
}
