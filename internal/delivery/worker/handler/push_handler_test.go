package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"marketplace/config"
	"marketplace/internal/domain/constants"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/service"
	usecasemocks "marketplace/internal/mocks/usecase"
	"marketplace/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newTestPushHandler(t *testing.T, cfg *config.Config) (*PushHandler, *usecasemocks.MockNotificationUsecase) {
	t.Helper()

	uc := usecasemocks.NewMockNotificationUsecase(t)
	h := NewPushHandler(PushHandlerParams{
		Config:         cfg,
		Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		NotificationUC: uc,
	})

	return h, uc
}

func pushBody(t *testing.T, event *service.OrderEvent, attributes map[string]string) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.Attributes = attributes
	msg.Message.MessageID = "m-1"
	msg.Subscription = "projects/p/subscriptions/orders-push"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func servePush(h *PushHandler, body string, authHeader string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func statusEvent() *service.OrderEvent {
	return &service.OrderEvent{
		RequestID:  "req-1",
		EventType:  service.EventTypeOrderStatusChanged,
		OrderID:    "0b8a3c1e-8a59-4a53-bd29-2c8a0a0f4f0e",
		OrderCode:  "K7Q2ZP",
		CustomerID: "5f1b3f2e-2f7a-4a0b-9f63-3c1e9e0d8a11",
		Status:     "READY",
	}
}

func TestHandlePush_Delivered(t *testing.T) {
	h, uc := newTestPushHandler(t, &config.Config{})
	uc.EXPECT().DeliverOrderEvent(mock.Anything, mock.MatchedBy(func(e *service.OrderEvent) bool {
		return e.OrderCode == "K7Q2ZP" && e.Status == "READY"
	})).Return(&usecase.DeliveryReport{Devices: 2, Sent: 2}, nil)

	rec := servePush(h, pushBody(t, statusEvent(), nil), "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandlePush_MalformedMessages(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: "{"},
		{name: "bad base64", body: `{"message":{"data":"%%%"}}`},
		{name: "bad event json", body: `{"message":{"data":"` + base64.StdEncoding.EncodeToString([]byte("nope")) + `"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestPushHandler(t, &config.Config{})

			rec := servePush(h, tt.body, "")

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHandlePush_UnsupportedEventIsAcked(t *testing.T) {
	h, _ := newTestPushHandler(t, &config.Config{})
	event := statusEvent()
	event.EventType = "order.archived"

	rec := servePush(h, pushBody(t, event, nil), "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandlePush_AttributeOverridesEventType(t *testing.T) {
	h, _ := newTestPushHandler(t, &config.Config{})

	rec := servePush(h, pushBody(t, statusEvent(), map[string]string{constants.AttrEventType: "order.archived"}), "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandlePush_FailureClassification(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{name: "client error is acked", err: domainerrors.ErrValidationFailed.WithDetails("customer_id must be a UUID"), status: http.StatusOK},
		{name: "server error is retried", err: domainerrors.ErrInternalError, status: http.StatusServiceUnavailable},
		{name: "unknown error is retried", err: errors.New("fcm unavailable"), status: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, uc := newTestPushHandler(t, &config.Config{})
			uc.EXPECT().DeliverOrderEvent(mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := servePush(h, pushBody(t, statusEvent(), nil), "")

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestExtractRequestID(t *testing.T) {
	h, _ := newTestPushHandler(t, &config.Config{})
	event := statusEvent()

	var msg PubSubMessage
	msg.Message.Attributes = map[string]string{constants.AttrRequestID: "from-attr"}
	assert.Equal(t, "from-attr", h.extractRequestID(context.Background(), &msg, event))

	msg.Message.Attributes = nil
	assert.Equal(t, "req-1", h.extractRequestID(context.Background(), &msg, event))

	event.RequestID = ""
	assert.NotEmpty(t, h.extractRequestID(context.Background(), &msg, event))
}

func googlePushConfig() *config.Config {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}
	cfg.Env.Env = constants.EnvProduction

	return cfg
}

func TestNewPushHandler_VerificationFollowsProvider(t *testing.T) {
	h, _ := newTestPushHandler(t, googlePushConfig())
	assert.True(t, h.verifyPushAuth)

	develop := googlePushConfig()
	develop.Env.Env = constants.EnvDevelop
	h, _ = newTestPushHandler(t, develop)
	assert.False(t, h.verifyPushAuth)

	h, _ = newTestPushHandler(t, &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}})
	assert.False(t, h.verifyPushAuth)
}

func TestHandlePush_TokenVerification(t *testing.T) {
	t.Run("missing token", func(t *testing.T) {
		h, _ := newTestPushHandler(t, googlePushConfig())

		rec := servePush(h, pushBody(t, statusEvent(), nil), "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		h, _ := newTestPushHandler(t, googlePushConfig())
		h.validateToken = func(context.Context, string, string) (*idtoken.Payload, error) {
			return &idtoken.Payload{Issuer: "https://evil.example.com"}, nil
		}

		rec := servePush(h, pushBody(t, statusEvent(), nil), "Bearer signed")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("audience is the push url", func(t *testing.T) {
		h, uc := newTestPushHandler(t, googlePushConfig())
		var gotAudience string
		h.validateToken = func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
			gotAudience = audience
			assert.Equal(t, "signed", token)

			return &idtoken.Payload{
				Issuer: "https://accounts.google.com",
				Claims: map[string]any{"email_verified": true},
			}, nil
		}
		uc.EXPECT().DeliverOrderEvent(mock.Anything, mock.Anything).Return(&usecase.DeliveryReport{}, nil)

		rec := servePush(h, pushBody(t, statusEvent(), nil), "Bearer signed")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "http://example.com/push", gotAudience)
	})

	t.Run("unverified email", func(t *testing.T) {
		h, _ := newTestPushHandler(t, googlePushConfig())
		h.validateToken = func(context.Context, string, string) (*idtoken.Payload, error) {
			return &idtoken.Payload{
				Issuer: "accounts.google.com",
				Claims: map[string]any{"email_verified": false},
			}, nil
		}

		rec := servePush(h, pushBody(t, statusEvent(), nil), "Bearer signed")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
