// Package app holds the fx wiring shared by the marketplace and worker binaries.
package app

import (
	"context"
	"log/slog"
	"os"

	"marketplace/config"
	"marketplace/internal/delivery"
	logs "marketplace/internal/infra/log"
	"marketplace/internal/infra/persistence/postgres"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

// Infra provides configuration, logging and the database, and routes fx's own
// lifecycle events through the service logger at debug level.
func Infra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
		),
		fx.WithLogger(func(logger *slog.Logger) fxevent.Logger {
			l := &fxevent.SlogLogger{Logger: logger.With(slog.String("component", "fx"))}
			l.UseLogLevel(slog.LevelDebug)

			return l
		}),
	)
}

// AsDelivery registers a server constructor in the deliveries group started by Serve.
func AsDelivery(constructor any) fx.Option {
	return fx.Provide(fx.Annotate(constructor, fx.ResultTags(`group:"deliveries"`)))
}

type serveParams struct {
	fx.In

	Shutdowner fx.Shutdowner
	Ctx        context.Context
	Logger     *slog.Logger
	Deliveries []delivery.Delivery `group:"deliveries"`
}

// Serve runs every delivery in its own goroutine. A delivery that fails stops
// the whole application through fx so every OnStop hook runs.
func Serve() fx.Option {
	return fx.Invoke(func(p serveParams) {
		for _, d := range p.Deliveries {
			go func() {
				err := d.Serve(p.Ctx)
				if err == nil {
					return
				}
				p.Logger.Error("Server stopped unexpectedly", slog.Any("error", err))

				if err := p.Shutdowner.Shutdown(fx.ExitCode(1)); err != nil {
					p.Logger.Error("Shutdown failed", slog.Any("error", err))
					os.Exit(1)
				}
			}()
		}
	})
}
