package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/metaflowia/user-api/internal/core/ports"
)

// AdminOnly gates a route to administrators. It relies on Auth having run
// earlier in the chain; the role decision itself is delegated to the
// authentication service.
func AdminOnly(auth ports.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user := UserFromContext(c)
			if user == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
			}
			if _, err := auth.RequireAdmin(user); err != nil {
				return err
			}
			return next(c)
		}
	}
}
