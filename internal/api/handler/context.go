package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/safenotes/notes-system/internal/core/domain"
	"github.com/safenotes/notes-system/internal/core/ports"
)

// ctxCaller extracts the identity injected by the Auth middleware and
// fast-fails before any service call: a non-empty username and a known role
// prove the middleware ran.
func ctxCaller(c echo.Context) (ports.Caller, error) {
	username, _ := c.Get("username").(string)
	role, _ := c.Get("role").(domain.Role)
	if username == "" || !role.Valid() {
		return ports.Caller{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return ports.Caller{Username: username, Role: role}, nil
}
