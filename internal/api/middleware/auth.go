package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/umd-esiea/umd-api/internal/api/metrics"
	"github.com/umd-esiea/umd-api/internal/core/domain"
	"github.com/umd-esiea/umd-api/internal/pkg/token"
)

// Context keys set by Auth.
const (
	ContextUserID = "user_id"
	ContextRole   = "role"
)

// TokenVerifier verifies a raw access token.
type TokenVerifier interface {
	Parse(raw string) (*token.Claims, error)
}

// Auth verifies the access token carried by the Authorization header, either
// raw or with a "Bearer " prefix, and stores the caller identity in the
// context. Requests whose path is in public pass through untouched.
func Auth(verifier TokenVerifier, public ...string) echo.MiddlewareFunc {
	skip := make(map[string]struct{}, len(public))
	for _, p := range public {
		skip[p] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, ok := skip[c.Request().URL.Path]; ok {
				return next(c)
			}

			raw := strings.TrimSpace(c.Request().Header.Get(echo.HeaderAuthorization))
			if len(raw) > 7 && strings.EqualFold(raw[:7], "bearer ") {
				raw = strings.TrimSpace(raw[7:])
			}
			if raw == "" {
				metrics.AuthRejectionsTotal.WithLabelValues("missing_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "missing token")
			}

			claims, err := verifier.Parse(raw)
			if err != nil {
				metrics.AuthRejectionsTotal.WithLabelValues("invalid_token").Inc()
				return echo.NewHTTPError(http.StatusForbidden, "invalid token")
			}

			c.Set(ContextUserID, claims.UserID)
			c.Set(ContextRole, claims.Role)

			return next(c)
		}
	}
}

// IdentityFrom returns the caller identity stored by Auth.
func IdentityFrom(c echo.Context) (domain.Identity, bool) {
	id, _ := c.Get(ContextUserID).(string)
	role, _ := c.Get(ContextRole).(string)
	if id == "" {
		return domain.Identity{}, false
	}
	return domain.Identity{ID: id, Role: role}, true
}
