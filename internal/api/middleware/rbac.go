package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/safenotes/notes-system/internal/core/domain"
)

// RBAC enforces the coarse role gate per route. Ownership checks stay in
// the note service; this only filters out roles the route never admits.
func RBAC(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(domain.Role)
			if _, ok := allowed[role]; !ok {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
