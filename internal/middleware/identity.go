package middleware

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// IdentityHeader carries the caller identity resolved by the fronting
// gateway. Credential checks happen there, never here.
const IdentityHeader = "X-User-ID"

// ResolvedIdentity reads the resolved caller identity into the request
// context. Requests without the header pass through as anonymous; handlers
// that need an identity reject those themselves.
func ResolvedIdentity() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if raw := c.Request().Header.Get(IdentityHeader); raw != "" {
				if id, err := strconv.ParseUint(raw, 10, 32); err == nil && id > 0 {
					c.Set("userID", uint(id))
				}
			}
			return next(c)
		}
	}
}
