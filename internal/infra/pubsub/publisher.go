package pubsub

import (
	"context"
	"log/slog"

	"marketplace/config"
	"marketplace/internal/domain/constants"
	"marketplace/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// discardPublisher drops events when no provider is configured.
type discardPublisher struct {
	logger *slog.Logger
}

func (p discardPublisher) PublishOrderEvent(_ context.Context, event *service.OrderEvent) error {
	p.logger.Debug("Order event dropped, no pubsub provider",
		slog.String(constants.AttrOrderID, event.OrderID),
		slog.String(constants.AttrEventType, event.EventType))

	return nil
}

func (discardPublisher) Close() error { return nil }

// PublisherParams holds dependencies for the EventPublisher, injected by Fx.
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher picks the transport named by pubsub.provider.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	logger := params.Logger.With(slog.String("component", "pubsub"))

	if cfg == nil || cfg.Provider == "" {
		logger.Info("Order events are not published")

		return discardPublisher{logger: logger}, nil
	}

	var publisher service.EventPublisher
	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("local provider needs localEndpoint")
		}
		logger.Info("Order events are pushed to the worker", slog.String("endpoint", cfg.LocalEndpoint))
		publisher = newLocalPublisher(cfg.LocalEndpoint, logger)
	case constants.PubSubProviderGoogle:
		google, err := newGooglePublisher(params.Ctx, cfg, logger)
		if err != nil {
			return nil, err
		}
		publisher = google
	default:
		return nil, errors.Errorf("unknown pubsub provider %q", cfg.Provider)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return publisher.Close()
		},
	})

	return publisher, nil
}
