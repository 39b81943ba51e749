package middleware // reusable HTTP middleware for protected routes

import (
    "net/http"
    "strings"

    "github.com/golang-jwt/jwt/v5"
    "github.com/labstack/echo/v4"
)

// JWTAuth validates a Bearer access token and stores the identity
// claims in the request context: user_id (uint64), role (string) and,
// for terminal operators, port_id (uint64).  The secret must match the
// one used when issuing tokens.
func JWTAuth(secret string) echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            auth := c.Request().Header.Get("Authorization")
            if !strings.HasPrefix(auth, "Bearer ") {
                return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing bearer token"})
            }
            raw := strings.TrimPrefix(auth, "Bearer ")

            tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
                if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
                    return nil, echo.ErrUnauthorized
                }
                return []byte(secret), nil
            })
            if err != nil || !tok.Valid {
                return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token"})
            }

            claims, ok := tok.Claims.(jwt.MapClaims)
            if !ok {
                return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid claims"})
            }

            // Numeric claims arrive as float64 after JSON decoding.
            if sub, ok := claims["sub"].(float64); ok {
                c.Set("user_id", uint64(sub))
            }
            if role, ok := claims["role"].(string); ok {
                c.Set("role", role)
            }
            if pid, ok := claims["port_id"].(float64); ok {
                c.Set("port_id", uint64(pid))
            }
            return next(c)
        }
    }
}
