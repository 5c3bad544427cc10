package middleware

import (
	"log/slog"
	"time"

	"marketplace/config"
	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/constants"

	"github.com/labstack/echo/v4"
)

// AccessLogMiddleware writes one access-log line per request when debug is on.
type AccessLogMiddleware struct {
	logger  *slog.Logger
	enabled bool
}

// NewAccessLogMiddleware creates the access-log middleware.
func NewAccessLogMiddleware(logger *slog.Logger, cfg *config.Config) *AccessLogMiddleware {
	return &AccessLogMiddleware{
		logger:  logger,
		enabled: cfg.Env.Debug,
	}
}

// Handle wraps next with access logging.
func (m *AccessLogMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	if !m.enabled {
		return next
	}

	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)
		if err != nil {
			// Let the error handler write the response so the logged status is final.
			c.Error(err)
		}
		m.write(c, start, err)

		return nil
	}
}

func (m *AccessLogMiddleware) write(c echo.Context, start time.Time, err error) {
	req := c.Request()
	res := c.Response()

	attrs := []slog.Attr{
		slog.String(constants.AttrRequestID, deliverycontext.GetRequestID(c)),
		slog.String("method", req.Method),
		slog.String("route", c.Path()),
		slog.String("uri", req.URL.RequestURI()),
		slog.Int("status", res.Status),
		slog.Int64("bytes_out", res.Size),
		slog.Duration("latency", time.Since(start)),
		slog.String("remote_ip", c.RealIP()),
	}
	if principal, ok := deliverycontext.GetPrincipal(c); ok {
		attrs = append(attrs,
			slog.String("user_id", principal.UserID.String()),
			slog.String("role", principal.Role.String()),
		)
	}
	if err != nil {
		attrs = append(attrs, slog.Any("error", err))
	}

	level := slog.LevelInfo
	switch {
	case res.Status >= 500:
		level = slog.LevelError
	case res.Status >= 400:
		level = slog.LevelWarn
	}

	m.logger.LogAttrs(req.Context(), level, "http request", attrs...)
}
