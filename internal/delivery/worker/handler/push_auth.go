package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"google.golang.org/api/idtoken"
)

// tokenValidator verifies Google-signed push tokens.
type tokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

var googleIssuers = map[string]bool{
	"accounts.google.com":         true,
	"https://accounts.google.com": true,
}

// pushAudience is the absolute URL of the request, which is what the push
// subscription is configured to put in the token's aud claim.
func pushAudience(req *http.Request) string {
	scheme := "http"
	if req.TLS != nil {
		scheme = "https"
	}

	return scheme + "://" + req.Host + req.URL.Path
}

// checkPushToken validates the OIDC bearer token on an authenticated push.
// See https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func checkPushToken(req *http.Request, validate tokenValidator) error {
	token, ok := strings.CutPrefix(req.Header.Get(echo.HeaderAuthorization), "Bearer ")
	if !ok || token == "" {
		return errors.New("bearer token required")
	}

	payload, err := validate(req.Context(), token, pushAudience(req))
	if err != nil {
		return errors.Wrap(err, "token rejected")
	}
	if !googleIssuers[payload.Issuer] {
		return errors.Errorf("unexpected issuer %q", payload.Issuer)
	}
	if verified, ok := payload.Claims["email_verified"].(bool); ok && !verified {
		return errors.New("service account email is not verified")
	}

	return nil
}
