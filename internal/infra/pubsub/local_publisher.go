package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"marketplace/internal/domain/constants"
	"marketplace/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	localSubscription = "projects/local/subscriptions/order-events-push"
	localMaxAttempts  = 3
)

// PushRequest is the body Pub/Sub posts to a push subscription endpoint.
type PushRequest struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		OrderingKey string            `json:"orderingKey,omitempty"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// localPublisher posts events straight to the worker's push endpoint. Like a
// push subscription it redelivers while the worker answers with a 5xx.
type localPublisher struct {
	endpoint string
	client   *http.Client
	backoff  time.Duration
	logger   *slog.Logger
}

func newLocalPublisher(endpoint string, logger *slog.Logger) *localPublisher {
	return &localPublisher{
		endpoint: endpoint,
		client:   &http.Client{Timeout: 10 * time.Second},
		backoff:  200 * time.Millisecond,
		logger:   logger,
	}
}

func (p *localPublisher) PublishOrderEvent(ctx context.Context, event *service.OrderEvent) error {
	env, err := newEnvelope(event)
	if err != nil {
		return err
	}

	var push PushRequest
	push.Subscription = localSubscription
	push.Message.Data = base64.StdEncoding.EncodeToString(env.data)
	push.Message.Attributes = env.attributes
	push.Message.MessageID = uuid.NewString()
	push.Message.OrderingKey = env.orderingKey
	push.Message.PublishTime = time.Now().UTC().Format(time.RFC3339Nano)

	body, err := json.Marshal(push)
	if err != nil {
		return errors.WithStack(err)
	}

	for attempt := 1; ; attempt++ {
		status, err := p.post(ctx, body, event.RequestID)
		switch {
		case err == nil && status < http.StatusMultipleChoices:
			p.logger.Debug("Order event pushed",
				slog.String(constants.AttrOrderID, event.OrderID),
				slog.String(constants.AttrEventType, event.EventType),
				slog.Int("attempt", attempt))

			return nil
		case err == nil && status < http.StatusInternalServerError:
			return errors.Errorf("worker rejected order event: status %d", status)
		case attempt == localMaxAttempts:
			if err != nil {
				return errors.Wrapf(err, "pushing order event after %d attempts", attempt)
			}

			return errors.Errorf("worker unavailable after %d attempts: status %d", attempt, status)
		}

		select {
		case <-ctx.Done():
			return errors.WithStack(ctx.Err())
		case <-time.After(p.backoff * time.Duration(attempt)):
		}
	}
}

func (p *localPublisher) post(ctx context.Context, body []byte, requestID string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return 0, errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if requestID != "" {
		req.Header.Set("X-Request-Id", requestID)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return 0, errors.WithStack(err)
	}
	defer resp.Body.Close()

	return resp.StatusCode, nil
}

func (p *localPublisher) Close() error {
	p.client.CloseIdleConnections()

	return nil
}
