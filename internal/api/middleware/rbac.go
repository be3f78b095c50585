package middleware

import (
	"net/http"
	"slices"

	"github.com/labstack/echo/v4"
)

// RBAC restricts a route to the given roles. It expects Auth to have run
// first; an absent role claim is treated as forbidden.
func RBAC(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if !slices.Contains(roles, role) {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
