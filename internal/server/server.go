package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/shinyyama/street-transform/internal/config"
	"github.com/shinyyama/street-transform/internal/handler"
	appmw "github.com/shinyyama/street-transform/internal/middleware"
)

// Deps are the wired handlers. Auth gates /api/transform when non-nil.
type Deps struct {
	Config    *config.Config
	Transform *handler.TransformHandler
	Presets   *handler.PresetHandler
	Health    *handler.HealthHandler
	Auth      *appmw.AuthMiddleware
}

type Server struct {
	e *echo.Echo
}

func New(d Deps) *Server {
	cfg := d.Config
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = errorHandler
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderContentType, echo.HeaderAuthorization},
		AllowCredentials: true,
		AllowOriginFunc:  allowOrigin(cfg.AllowedOrigins),
	}))

	e.GET("/", func(c echo.Context) error {
		return c.File(filepath.Join(cfg.StaticDir, "index.html"))
	})
	e.Static("/static", cfg.StaticDir)
	e.GET("/healthz", d.Health.Get)

	api := e.Group("/api")
	api.GET("/presets", d.Presets.List)
	limit := middleware.BodyLimit(fmt.Sprintf("%dM", cfg.MaxUploadMB))
	if d.Auth != nil {
		api.POST("/transform", d.Transform.Transform, limit, d.Auth.RequireAuth)
	} else {
		api.POST("/transform", d.Transform.Transform, limit)
	}

	return &Server{e: e}
}

func (s *Server) Handler() http.Handler {
	return s.e
}

func (s *Server) Start(addr string) error {
	return s.e.Start(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.e.Shutdown(ctx)
}

// errorHandler renders framework errors in the handlers' JSON envelope.
func errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	status := http.StatusInternalServerError
	msg := http.StatusText(status)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		status = he.Code
		msg = fmt.Sprint(he.Message)
	} else {
		log.Printf("[server] rid=%s stage=unhandled err=%v", c.Response().Header().Get(echo.HeaderXRequestID), err)
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(status)
	} else {
		err = c.JSON(status, handler.NewErrorResponse(errorCode(status), msg))
	}
	if err != nil {
		log.Printf("[server] stage=error_response err=%v", err)
	}
}

func errorCode(status int) string {
	switch status {
	case http.StatusBadRequest, http.StatusRequestEntityTooLarge, http.StatusUnsupportedMediaType:
		return "invalid_input"
	case http.StatusUnauthorized:
		return "unauthorized"
	case http.StatusNotFound:
		return "not_found"
	case http.StatusMethodNotAllowed:
		return "method_not_allowed"
	}
	if status >= 500 {
		return "internal_error"
	}
	return "invalid_input"
}

func allowOrigin(extra []string) func(origin string) (bool, error) {
	allowed := make(map[string]bool, len(extra))
	for _, o := range extra {
		if o = strings.TrimRight(strings.ToLower(strings.TrimSpace(o)), "/"); o != "" {
			allowed[o] = true
		}
	}
	return func(origin string) (bool, error) {
		low := strings.ToLower(origin)
		u, err := url.Parse(low)
		if err != nil {
			return false, nil
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return false, nil
		}
		switch u.Hostname() {
		case "localhost", "127.0.0.1":
			return true, nil
		}
		return allowed[low], nil
	}
}
