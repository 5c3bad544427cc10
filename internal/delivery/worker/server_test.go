package worker

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"marketplace/config"
	"marketplace/internal/delivery/worker/handler"
	usecasemocks "marketplace/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEcho(t *testing.T) http.Handler {
	t.Helper()

	cfg := &config.Config{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	push := handler.NewPushHandler(handler.PushHandlerParams{
		Config:         cfg,
		Logger:         logger,
		NotificationUC: usecasemocks.NewMockNotificationUsecase(t),
	})

	return NewEcho(cfg, logger, push, []string{"promotion_expiry", "refresh_token_cleanup"})
}

func TestHealthListsJobs(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestEcho(t).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body healthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body.Status)
	assert.Equal(t, []string{"promotion_expiry", "refresh_token_cleanup"}, body.Jobs)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestPushRouteRejectsGarbage(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, PushPath, strings.NewReader("{"))
	req.Header.Set("Content-Type", "application/json")

	newTestEcho(t).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
