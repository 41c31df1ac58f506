package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"moviecatalog/category"
	"moviecatalog/errs"
	"moviecatalog/movie"
	"moviecatalog/pkg/config"
	"moviecatalog/pkg/logger"
	"moviecatalog/pkg/sentry"

	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

type Server struct {
	// Router is the Echo router instance
	Router *echo.Echo

	// Addr represents the address the server will listen on
	Addr string

	// Allowed origins for CORS
	AllowOrigins []string

	Logger *zap.SugaredLogger

	MovieService    movie.Service
	CategoryService category.Service
}

func New(options ...Options) (*Server, error) {
	s := Server{
		Router:       echo.New(),
		Addr:         ":3000",
		AllowOrigins: []string{"*"},
		Logger:       logger.NOOPLogger,
	}

	for _, fn := range options {
		if err := fn(&s); err != nil {
			return nil, err
		}
	}

	s.Router.HideBanner = true
	s.Router.Validator = NewValidator()
	s.Router.HTTPErrorHandler = s.handleError
	s.RegisterGlobalMiddlewares()

	s.RegisterHealthRoutes()
	s.RegisterSwaggerRoutes()
	s.RegisterMovieRoutes(s.Router.Group("/movies"))
	s.RegisterCategoryRoutes(s.Router.Group("/categories"))

	return &s, nil
}

// Default builds a server from cfg without services; callers assign
// MovieService and CategoryService before serving.
func Default(cfg *config.Config) *Server {
	s, err := New(WithConfig(cfg))
	if err != nil {
		panic(err)
	}
	return s
}

func (s *Server) RegisterGlobalMiddlewares() {
	s.Router.Use(middleware.Recover())
	s.Router.Use(middleware.Secure())
	s.Router.Use(middleware.RequestID())
	s.Router.Use(middleware.Gzip())
	s.Router.Use(sentryecho.New(sentryecho.Options{Repanic: true}))

	// CORS
	if len(s.AllowOrigins) > 0 {
		s.Router.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins: s.AllowOrigins,
		}))
	}
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}

func (s *Server) Start() error {
	return s.Router.Start(s.Addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.Router.Shutdown(ctx)
}

// handleError maps application errors to HTTP status codes. Server side
// failures keep their message and are logged and reported to Sentry.
func (s *Server) handleError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status, message := errorStatus(err)
	if status >= http.StatusInternalServerError {
		id := requestID(c)
		s.Logger.Errorw(
			err.Error(),
			zap.String("request_id", id),
			zap.String("method", c.Request().Method),
			zap.String("path", c.Path()),
		)
		sentry.WithContext(c).
			WithTags(map[string]string{"request_id": id, "route": c.Path()}).
			Error(err)
	}

	if err := writeError(c, status, message, "", err); err != nil {
		s.Logger.Errorw("cannot write error response", zap.Error(err))
	}
}

func errorStatus(err error) (int, string) {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, httpErrorMessage(he)
	}

	switch errs.ErrorCode(err) {
	case errs.EINVALID:
		return http.StatusBadRequest, errs.ErrorMessage(err)
	case errs.ENOTFOUND:
		return http.StatusNotFound, errs.ErrorMessage(err)
	case errs.ECONFLICT:
		return http.StatusConflict, errs.ErrorMessage(err)
	case errs.EUNAUTHORIZED:
		return http.StatusUnauthorized, errs.ErrorMessage(err)
	case errs.ENOTIMPLEMENTED:
		return http.StatusNotImplemented, errs.ErrorMessage(err)
	}

	var appErr *errs.Error
	if errors.As(err, &appErr) {
		return http.StatusInternalServerError, appErr.Message
	}
	return http.StatusInternalServerError, err.Error()
}

func httpErrorMessage(he *echo.HTTPError) string {
	switch m := he.Message.(type) {
	case string:
		return m
	case error:
		return m.Error()
	default:
		return fmt.Sprint(m)
	}
}

func requestID(c echo.Context) string {
	if id := c.Response().Header().Get(echo.HeaderXRequestID); id != "" {
		return id
	}
	return c.Request().Header.Get(echo.HeaderXRequestID)
}
