package context

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// KeyPrincipal is the key for storing the authenticated caller.
const KeyPrincipal ContextKey = "principal"

// Principal is the authenticated caller of a request.
type Principal struct {
	UserID uuid.UUID
	Role   entity.Role
}

// SetPrincipal stores the principal in echo.Context and in the request context.
func SetPrincipal(c echo.Context, principal Principal) {
	c.Set(string(KeyPrincipal), principal)
	c.SetRequest(c.Request().WithContext(WithPrincipal(c.Request().Context(), principal)))
}

// GetPrincipal extracts the principal set by the auth middleware.
func GetPrincipal(c echo.Context) (Principal, bool) {
	principal, ok := c.Get(string(KeyPrincipal)).(Principal)

	return principal, ok
}

// WithPrincipal returns a new context carrying the principal.
func WithPrincipal(ctx context.Context, principal Principal) context.Context {
	return context.WithValue(ctx, KeyPrincipal, principal)
}

// GetPrincipalFromContext extracts the principal from standard context.Context.
func GetPrincipalFromContext(ctx context.Context) (Principal, bool) {
	principal, ok := ctx.Value(KeyPrincipal).(Principal)

	return principal, ok
}
