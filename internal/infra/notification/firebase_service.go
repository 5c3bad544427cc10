// Package notification delivers push messages through Firebase Cloud Messaging.
package notification

import (
	"context"
	"log/slog"
	"time"

	"marketplace/config"
	"marketplace/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// multicastLimit is the most tokens FCM accepts in one multicast.
const multicastLimit = 500

// messageTTL drops order updates a device could not receive within a day.
const messageTTL = 24 * time.Hour

// multicaster is the part of messaging.Client the service uses.
type multicaster interface {
	SendEachForMulticast(ctx context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error)
}

type fcmService struct {
	client multicaster
}

type ServiceParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewNotificationService uses FCM when Firebase is configured and only logs
// otherwise, so local setups run without credentials.
func NewNotificationService(params ServiceParams) (service.NotificationService, error) {
	cfg := params.Config.Firebase
	if cfg == nil || (cfg.ProjectID == "" && cfg.CredentialsPath == "") {
		params.Logger.Warn("Firebase not configured, push notifications are only logged")

		return &logOnlyService{logger: params.Logger}, nil
	}

	return NewFirebaseService(params.Ctx, cfg)
}

func NewFirebaseService(ctx context.Context, cfg *config.FirebaseConfig) (service.NotificationService, error) {
	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}
	var appConfig *firebase.Config
	if cfg.ProjectID != "" {
		appConfig = &firebase.Config{ProjectID: cfg.ProjectID}
	}

	app, err := firebase.NewApp(ctx, appConfig, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "initialize firebase app")
	}
	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "create fcm client")
	}

	return &fcmService{client: client}, nil
}

func (s *fcmService) SendBatchNotification(ctx context.Context, tokens []string, title, body string, data map[string]string) (int, int, []string, error) {
	if len(tokens) == 0 {
		return 0, 0, nil, nil
	}
	if len(tokens) > multicastLimit {
		return 0, 0, nil, errors.Errorf("%d tokens exceed the multicast limit of %d", len(tokens), multicastLimit)
	}

	resp, err := s.client.SendEachForMulticast(ctx, multicast(tokens, title, body, data))
	if err != nil {
		return 0, 0, nil, errors.Wrap(err, "fcm multicast")
	}

	return resp.SuccessCount, resp.FailureCount, rejectedTokens(tokens, resp), nil
}

// multicast builds the message. Updates for the same order share a collapse
// key, so a device that was offline only shows the latest status.
func multicast(tokens []string, title, body string, data map[string]string) *messaging.MulticastMessage {
	ttl := messageTTL
	msg := &messaging.MulticastMessage{
		Tokens:       tokens,
		Notification: &messaging.Notification{Title: title, Body: body},
		Data:         data,
		Android:      &messaging.AndroidConfig{Priority: "high", TTL: &ttl},
	}

	if orderID := data["order_id"]; orderID != "" {
		msg.Android.CollapseKey = orderID
		msg.APNS = &messaging.APNSConfig{Headers: map[string]string{"apns-collapse-id": orderID}}
	}

	return msg
}

// rejectedTokens lists the tokens FCM will never accept again.
func rejectedTokens(tokens []string, resp *messaging.BatchResponse) []string {
	var rejected []string
	for i, r := range resp.Responses {
		if r.Error == nil || i >= len(tokens) {
			continue
		}
		if messaging.IsUnregistered(r.Error) || messaging.IsInvalidArgument(r.Error) {
			rejected = append(rejected, tokens[i])
		}
	}

	return rejected
}

// logOnlyService stands in for FCM when Firebase is not configured.
type logOnlyService struct {
	logger *slog.Logger
}

func (s *logOnlyService) SendBatchNotification(_ context.Context, tokens []string, title, _ string, data map[string]string) (int, int, []string, error) {
	s.logger.Debug("Push skipped",
		slog.String("title", title),
		slog.String("order_id", data["order_id"]),
		slog.Int("tokens", len(tokens)))

	return len(tokens), 0, nil, nil
}
