package pubsub

import (
	"context"
	"fmt"
	"log/slog"

	"marketplace/config"
	"marketplace/internal/domain/constants"
	"marketplace/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

// googlePublisher sends order events to a Cloud Pub/Sub topic with message
// ordering enabled per order.
type googlePublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	topic     string
	logger    *slog.Logger
}

func newGooglePublisher(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (*googlePublisher, error) {
	if cfg.ProjectID == "" || cfg.TopicID == "" {
		return nil, errors.New("google provider needs projectId and topicId")
	}

	client, err := pubsub.NewClient(ctx, cfg.ProjectID)
	if err != nil {
		return nil, errors.Wrap(err, "creating pubsub client")
	}

	topic := fmt.Sprintf("projects/%s/topics/%s", cfg.ProjectID, cfg.TopicID)
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topic}); err != nil {
		_ = client.Close()

		return nil, errors.Wrapf(err, "looking up topic %s", topic)
	}

	publisher := client.Publisher(cfg.TopicID)
	publisher.EnableMessageOrdering = true

	logger.Info("Order events go to Cloud Pub/Sub", slog.String("topic", topic))

	return &googlePublisher{
		client:    client,
		publisher: publisher,
		topic:     topic,
		logger:    logger,
	}, nil
}

// PublishOrderEvent blocks until the server acknowledges the event.
func (p *googlePublisher) PublishOrderEvent(ctx context.Context, event *service.OrderEvent) error {
	env, err := newEnvelope(event)
	if err != nil {
		return err
	}

	serverID, err := p.publisher.Publish(ctx, &pubsub.Message{
		Data:        env.data,
		Attributes:  env.attributes,
		OrderingKey: env.orderingKey,
	}).Get(ctx)
	if err != nil {
		// A failed publish pauses its ordering key until resumed.
		p.publisher.ResumePublish(env.orderingKey)

		return errors.Wrapf(err, "publishing %s for order %s", event.EventType, event.OrderID)
	}

	p.logger.Debug("Order event published",
		slog.String(constants.AttrOrderID, event.OrderID),
		slog.String(constants.AttrEventType, event.EventType),
		slog.String("server_id", serverID))

	return nil
}

func (p *googlePublisher) Close() error {
	p.publisher.Stop()

	return errors.WithStack(p.client.Close())
}
