package delivery

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"marketplace/internal/domain/lifecycle"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

// EchoServer serves an echo instance until the fx application stops.
type EchoServer struct {
	addr   string
	echo   *echo.Echo
	h2c    *http2.Server
	logger *slog.Logger
}

// NewEchoServer listens on all interfaces at port. A non-nil h2c also accepts
// cleartext HTTP/2 on the same port.
func NewEchoServer(lc fx.Lifecycle, logger *slog.Logger, port int, e *echo.Echo, h2c *http2.Server) *EchoServer {
	s := &EchoServer{
		addr:   net.JoinHostPort("0.0.0.0", strconv.Itoa(port)),
		echo:   e,
		h2c:    h2c,
		logger: logger,
	}
	lc.Append(fx.Hook{OnStop: s.stop})

	return s
}

// Serve blocks until the server is shut down, which is not an error.
func (s *EchoServer) Serve(context.Context) error {
	s.logger.Info("HTTP server listening", slog.String("addr", s.addr), slog.Bool("h2c", s.h2c != nil))

	var err error
	if s.h2c != nil {
		err = s.echo.StartH2CServer(s.addr, s.h2c)
	} else {
		err = s.echo.Start(s.addr)
	}
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

// Addr is the bound address once Serve is listening, and nil before.
func (s *EchoServer) Addr() net.Addr {
	return s.echo.ListenerAddr()
}

func (s *EchoServer) stop(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("HTTP server shutting down", slog.String("addr", s.addr))

	return errors.WithStack(s.echo.Shutdown(ctx))
}
