// Package worker serves the Pub/Sub push endpoint that fans order events out
// to customer devices. The same process runs the scheduled maintenance jobs.
package worker

import (
	"log/slog"
	"net/http"

	"marketplace/config"
	"marketplace/internal/delivery"
	"marketplace/internal/delivery/middleware"
	"marketplace/internal/delivery/worker/handler"
	"marketplace/internal/jobs"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
)

const (
	// PushPath is the route Pub/Sub push subscriptions target.
	PushPath = "/push"

	// Pub/Sub caps messages at 10MB before base64 and the JSON envelope.
	maxPushBodySize = "16M"
)

// ServerParams holds dependencies for the worker server
type ServerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	PushHandler *handler.PushHandler
	Jobs        *jobs.Manager
}

type healthResponse struct {
	Status string   `json:"status"`
	Jobs   []string `json:"jobs"`
}

// NewEcho builds the worker's echo instance. jobNames are reported by /health.
func NewEcho(cfg *config.Config, logger *slog.Logger, push *handler.PushHandler, jobNames []string) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadHeaderTimeout = cfg.HTTP.Timeouts.ReadHeaderTimeout
	e.Server.IdleTimeout = cfg.HTTP.Timeouts.IdleTimeout

	e.Use(echomiddleware.Recover())
	e.Use(middleware.NewRequestIDMiddleware(logger).Process)
	e.Use(middleware.NewAccessLogMiddleware(logger, cfg).Handle)

	health := healthResponse{Status: "ok", Jobs: jobNames}
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, health)
	})
	e.POST(PushPath, push.HandlePush, echomiddleware.BodyLimit(maxPushBodySize))

	return e
}

// NewServer serves the push endpoint and /health. The scheduler it reports
// on is started and stopped by its own lifecycle hook.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	names := make([]string, 0, len(params.Jobs.Jobs()))
	for _, job := range params.Jobs.Jobs() {
		names = append(names, job.Name)
	}

	logger := params.Logger.With(slog.String("component", "worker"))
	e := NewEcho(params.Cfg, logger, params.PushHandler, names)

	return delivery.NewEchoServer(params.Lc, logger, params.Cfg.HTTP.Port, e, nil), nil
}
