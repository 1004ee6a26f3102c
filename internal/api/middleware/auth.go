package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/taskforge/task-tracker/internal/api/metrics"
	"github.com/taskforge/task-tracker/internal/core/ports"
)

// PrincipalKey is the echo context key under which Auth stores the resolved
// principal.
const PrincipalKey = "principal"

// Auth extracts the bearer token, resolves it to a principal through the auth
// service, and injects the principal into the request context. The middleware
// never inspects the token itself, so the uniform-invalid rule of token
// verification cannot be bypassed here.
func Auth(auth ports.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			principal, err := auth.ResolvePrincipal(parts[1])
			if err != nil {
				metrics.TokenVerificationsTotal.WithLabelValues("invalid").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}
			metrics.TokenVerificationsTotal.WithLabelValues("valid").Inc()

			c.Set(PrincipalKey, principal)
			return next(c)
		}
	}
}
