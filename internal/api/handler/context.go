package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskforge/task-tracker/internal/api/middleware"
	"github.com/taskforge/task-tracker/internal/core/domain"
)

// ctxPrincipal extracts the principal injected by the Auth middleware.
// Its presence proves the middleware ran; a handler reached without it is a
// wiring error and must fail with 401, not proceed unauthenticated.
func ctxPrincipal(c echo.Context) (domain.Principal, error) {
	principal, ok := c.Get(middleware.PrincipalKey).(domain.Principal)
	if !ok || principal.UserID == 0 {
		return domain.Principal{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}
	return principal, nil
}
