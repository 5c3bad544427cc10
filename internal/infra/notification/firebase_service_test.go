package notification

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"marketplace/config"

	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMulticaster struct {
	got  *messaging.MulticastMessage
	resp *messaging.BatchResponse
	err  error
}

func (f *fakeMulticaster) SendEachForMulticast(_ context.Context, msg *messaging.MulticastMessage) (*messaging.BatchResponse, error) {
	f.got = msg

	return f.resp, f.err
}

func TestMulticast_CollapsesPerOrder(t *testing.T) {
	msg := multicast([]string{"a", "b"}, "Order update", "Your order K7Q2ZP is now READY",
		map[string]string{"order_id": "o-1", "status": "READY"})

	assert.Equal(t, []string{"a", "b"}, msg.Tokens)
	assert.Equal(t, "Order update", msg.Notification.Title)
	assert.Equal(t, "high", msg.Android.Priority)
	assert.Equal(t, messageTTL, *msg.Android.TTL)
	assert.Equal(t, "o-1", msg.Android.CollapseKey)
	assert.Equal(t, "o-1", msg.APNS.Headers["apns-collapse-id"])

	plain := multicast([]string{"a"}, "Hello", "", nil)
	assert.Empty(t, plain.Android.CollapseKey)
	assert.Nil(t, plain.APNS)
}

func TestSendBatchNotification(t *testing.T) {
	ctx := context.Background()

	t.Run("counts come from the batch response", func(t *testing.T) {
		client := &fakeMulticaster{resp: &messaging.BatchResponse{
			SuccessCount: 1,
			FailureCount: 1,
			Responses: []*messaging.SendResponse{
				{Success: true, MessageID: "m-1"},
				{Error: errors.New("quota exceeded")},
			},
		}}
		svc := &fcmService{client: client}

		sent, failed, rejected, err := svc.SendBatchNotification(ctx, []string{"a", "b"}, "t", "b", map[string]string{"order_id": "o-1"})

		require.NoError(t, err)
		assert.Equal(t, 1, sent)
		assert.Equal(t, 1, failed)
		assert.Empty(t, rejected, "transient failures keep their tokens")
		assert.Equal(t, "o-1", client.got.Android.CollapseKey)
	})

	t.Run("no tokens", func(t *testing.T) {
		svc := &fcmService{client: &fakeMulticaster{}}

		sent, failed, _, err := svc.SendBatchNotification(ctx, nil, "t", "b", nil)

		require.NoError(t, err)
		assert.Zero(t, sent+failed)
	})

	t.Run("over the multicast limit", func(t *testing.T) {
		svc := &fcmService{client: &fakeMulticaster{}}

		_, _, _, err := svc.SendBatchNotification(ctx, make([]string, multicastLimit+1), "t", "b", nil)

		assert.Error(t, err)
	})

	t.Run("transport failure", func(t *testing.T) {
		svc := &fcmService{client: &fakeMulticaster{err: errors.New("unavailable")}}

		_, _, _, err := svc.SendBatchNotification(ctx, []string{"a"}, "t", "b", nil)

		assert.ErrorContains(t, err, "unavailable")
	})
}

func TestNewNotificationService_FallsBackToLogging(t *testing.T) {
	svc, err := NewNotificationService(ServiceParams{
		Ctx:    context.Background(),
		Config: &config.Config{},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)
	require.IsType(t, &logOnlyService{}, svc)

	sent, failed, rejected, err := svc.SendBatchNotification(context.Background(), []string{"a", "b"}, "t", "b", nil)
	require.NoError(t, err)
	assert.Equal(t, 2, sent)
	assert.Zero(t, failed)
	assert.Empty(t, rejected)
}
