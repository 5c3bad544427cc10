package app

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"marketplace/internal/delivery"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
)

type deliveryFunc func(ctx context.Context) error

func (f deliveryFunc) Serve(ctx context.Context) error { return f(ctx) }

func testApp(t *testing.T, d delivery.Delivery) *fxtest.App {
	t.Helper()

	return fxtest.New(t,
		fx.Provide(
			context.Background,
			func() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) },
		),
		AsDelivery(func() delivery.Delivery { return d }),
		Serve(),
	)
}

func TestServe_FailingDeliveryShutsDown(t *testing.T) {
	app := testApp(t, deliveryFunc(func(context.Context) error {
		return errors.New("listen tcp :80: bind: permission denied")
	}))
	app.RequireStart()
	defer app.RequireStop()

	select {
	case sig := <-app.Wait():
		assert.Equal(t, 1, sig.ExitCode)
	case <-time.After(5 * time.Second):
		t.Fatal("application did not shut down")
	}
}

func TestServe_RunsEveryDelivery(t *testing.T) {
	served := make(chan struct{})
	app := testApp(t, deliveryFunc(func(context.Context) error {
		close(served)

		return nil
	}))
	app.RequireStart()
	defer app.RequireStop()

	select {
	case <-served:
	case <-time.After(5 * time.Second):
		require.Fail(t, "delivery was not started")
	}
}
