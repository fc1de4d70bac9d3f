package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/growmedevelopment/Shopify-Products-Fetcher/internal/config"
	"github.com/growmedevelopment/Shopify-Products-Fetcher/internal/export"
	"github.com/growmedevelopment/Shopify-Products-Fetcher/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Server exposes the feed over HTTP: a JSON products API and a downloadable
// Google Merchant CSV.
type Server struct {
	echo    *echo.Echo
	service *service.Service
	config  config.ServerConfig
}

func New(cfg config.ServerConfig, svc *service.Service) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization, "X-Requested-With"},
	}))

	s := &Server{
		echo:    e,
		service: svc,
		config:  cfg,
	}

	e.GET("/api/products", s.handleProducts)
	e.GET("/feeds/google.csv", s.handleGoogleCSV)

	return s
}

// Start blocks until the server stops.
func (s *Server) Start() error {
	return s.echo.Start(fmt.Sprintf("%s:%d", s.config.Host, s.config.Port))
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

func (s *Server) handleProducts(c echo.Context) error {
	records, err := s.service.BuildFeed(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, export.ErrorEnvelope(err))
	}
	return c.JSON(http.StatusOK, export.SuccessEnvelope(records))
}

func (s *Server) handleGoogleCSV(c echo.Context) error {
	records, err := s.service.BuildFeed(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, export.ErrorEnvelope(err))
	}

	filename := fmt.Sprintf("products_%s.csv", time.Now().Format("2006-01-02_15-04"))
	c.Response().Header().Set(echo.HeaderContentType, "text/csv; charset=utf-8")
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("inline; filename=%q", filename))
	c.Response().WriteHeader(http.StatusOK)

	return export.WriteGoogleCSV(c.Response(), records)
}
