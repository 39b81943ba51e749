package middleware

// identity.go holds helpers shared by the middleware in this package
// for reading identity values that JWTAuth stored in the Echo context.

import (
    "strconv"

    "github.com/labstack/echo/v4"
)

// currentUserID returns the authenticated user's ID as a string for use
// in cache and rate-limit keys, or "anon" when unauthenticated.
func currentUserID(c echo.Context) string {
    if v, ok := c.Get("user_id").(uint64); ok && v != 0 {
        return strconv.FormatUint(v, 10)
    }
    return "anon"
}
