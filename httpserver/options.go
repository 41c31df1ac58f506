package httpserver

import (
	"fmt"
	"strings"

	"moviecatalog/category"
	"moviecatalog/movie"
	"moviecatalog/pkg/config"

	"go.uber.org/zap"
)

type Options func(s *Server) error

// WithConfig applies the listen port and CORS origins of cfg.
func WithConfig(cfg *config.Config) Options {
	return func(s *Server) error {
		if cfg == nil {
			return nil
		}
		if cfg.Port != 0 {
			s.Addr = fmt.Sprintf(":%d", cfg.Port)
		}
		if cfg.AllowOrigins != "" {
			s.AllowOrigins = strings.Split(cfg.AllowOrigins, ",")
		}
		return nil
	}
}

func WithLogger(logger *zap.SugaredLogger) Options {
	return func(s *Server) error {
		if logger == nil {
			return fmt.Errorf("httpserver: logger is nil")
		}
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

func WithCategoryService(svc category.Service) Options {
	return func(s *Server) error {
		s.CategoryService = svc
		return nil
	}
}
