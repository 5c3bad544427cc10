package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"marketplace/config"
	"marketplace/internal/domain/constants"
	"marketplace/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func readyEvent() *service.OrderEvent {
	return &service.OrderEvent{
		RequestID:  "req-1",
		EventType:  service.EventTypeOrderStatusChanged,
		OrderID:    "order-1",
		OrderCode:  "Ab12Cd",
		Status:     "READY",
		OccurredAt: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestLocalPublisher_PushFormat(t *testing.T) {
	var received PushRequest
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	event := readyEvent()
	require.NoError(t, newLocalPublisher(server.URL, discardLogger()).PublishOrderEvent(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, localSubscription, received.Subscription)
	assert.Equal(t, "order-1", received.Message.OrderingKey)
	assert.Equal(t, "order-1", received.Message.Attributes[constants.AttrOrderID])
	assert.Equal(t, service.EventTypeOrderStatusChanged, received.Message.Attributes[constants.AttrEventType])
	assert.NotEmpty(t, received.Message.MessageID)

	raw, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var decoded service.OrderEvent
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, *event, decoded)
}

func TestLocalPublisher_RedeliversOnServerError(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)

			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	p := newLocalPublisher(server.URL, discardLogger())
	p.backoff = time.Millisecond

	require.NoError(t, p.PublishOrderEvent(context.Background(), readyEvent()))
	assert.Equal(t, int32(3), calls.Load())
}

func TestLocalPublisher_GivesUp(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	p := newLocalPublisher(server.URL, discardLogger())
	p.backoff = time.Millisecond

	err := p.PublishOrderEvent(context.Background(), readyEvent())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "after 3 attempts")
	assert.Equal(t, int32(localMaxAttempts), calls.Load())
}

func TestLocalPublisher_ClientErrorIsNotRetried(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	err := newLocalPublisher(server.URL, discardLogger()).PublishOrderEvent(context.Background(), readyEvent())

	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestNewEnvelope(t *testing.T) {
	env, err := newEnvelope(&service.OrderEvent{OrderID: "o", EventType: "e"})
	require.NoError(t, err)

	assert.Equal(t, map[string]string{constants.AttrOrderID: "o", constants.AttrEventType: "e"}, env.attributes)
	assert.Equal(t, "o", env.orderingKey)

	_, err = newEnvelope(&service.OrderEvent{EventType: "e"})
	assert.Error(t, err)
}

func TestNewEventPublisher(t *testing.T) {
	newParams := func(cfg *config.PubSubConfig) PublisherParams {
		return PublisherParams{
			Lc:     fxtest.NewLifecycle(t),
			Ctx:    context.Background(),
			Config: &config.Config{PubSub: cfg},
			Logger: discardLogger(),
		}
	}

	p, err := NewEventPublisher(newParams(nil))
	require.NoError(t, err)
	assert.IsType(t, discardPublisher{}, p)
	assert.NoError(t, p.PublishOrderEvent(context.Background(), readyEvent()))

	p, err = NewEventPublisher(newParams(&config.PubSubConfig{Provider: constants.PubSubProviderLocal, LocalEndpoint: "http://localhost:8081/push"}))
	require.NoError(t, err)
	assert.IsType(t, &localPublisher{}, p)

	_, err = NewEventPublisher(newParams(&config.PubSubConfig{Provider: constants.PubSubProviderLocal}))
	assert.Error(t, err)

	_, err = NewEventPublisher(newParams(&config.PubSubConfig{Provider: constants.PubSubProviderGoogle}))
	assert.Error(t, err)

	_, err = NewEventPublisher(newParams(&config.PubSubConfig{Provider: "kafka"}))
	assert.Error(t, err)
}
