package middleware

import (
    "net/http"

    "github.com/labstack/echo/v4"

    "github.com/portconnect/portconnect-backend/internal/model"
)

// RequireRole aborts with 403 unless the authenticated user's role is
// one of the given roles.  It assumes JWTAuth has stored the role claim
// under "role".
func RequireRole(roles ...model.Role) echo.MiddlewareFunc {
    allowed := make(map[model.Role]bool, len(roles))
    for _, r := range roles {
        allowed[r] = true
    }
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            role, ok := c.Get("role").(string)
            if !ok || !allowed[model.Role(role)] {
                return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
            }
            return next(c)
        }
    }
}

// RequireCapability aborts with 403 unless the authenticated user's
// role grants the given action.  Route groups use this instead of
// repeating role lists at every mutation endpoint.
func RequireCapability(a model.Action) echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            role, ok := c.Get("role").(string)
            if !ok || !model.Role(role).Can(a) {
                return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
            }
            return next(c)
        }
    }
}
