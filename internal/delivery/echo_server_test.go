package delivery

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
	"golang.org/x/net/http2"
)

func TestEchoServer_ServeUntilStopped(t *testing.T) {
	for name, h2c := range map[string]*http2.Server{"http1": nil, "h2c": {}} {
		t.Run(name, func(t *testing.T) {
			lc := fxtest.NewLifecycle(t)
			e := echo.New()
			e.HideBanner = true
			e.HidePort = true
			e.GET("/ping", func(c echo.Context) error { return c.String(http.StatusOK, "pong") })

			srv := NewEchoServer(lc, slog.New(slog.NewTextHandler(io.Discard, nil)), 0, e, h2c)
			lc.RequireStart()

			done := make(chan error, 1)
			go func() { done <- srv.Serve(context.Background()) }()

			require.Eventually(t, func() bool { return srv.Addr() != nil }, 5*time.Second, 10*time.Millisecond)

			resp, err := http.Get("http://" + srv.Addr().String() + "/ping")
			require.NoError(t, err)
			body, _ := io.ReadAll(resp.Body)
			_ = resp.Body.Close()
			assert.Equal(t, "pong", string(body))

			lc.RequireStop()
			select {
			case err := <-done:
				assert.NoError(t, err)
			case <-time.After(5 * time.Second):
				t.Fatal("Serve did not return after stop")
			}
		})
	}
}
