package router // router defines how HTTP routes are registered for the API

import (
    "github.com/labstack/echo/v4"

    "github.com/portconnect/portconnect-backend/internal/handler"
    "github.com/portconnect/portconnect-backend/internal/middleware"
)

// RegisterRoutes registers routes that do not require authentication.
// Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
    e.GET("/healthz", handler.Health)
}

// RegisterAuth registers authentication routes.  Unauthenticated
// operations live under /v1/auth; /v1/me requires a token.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
    g := e.Group("/v1/auth")
    g.POST("/register", a.Register)
    g.POST("/login", a.Login)
    // Rotates the refresh token.
    g.POST("/refresh", a.Refresh)
    // Issues a new access token without rotating the refresh token.
    g.POST("/refresh-access", a.RefreshAccess)
    // Logout works with either a bearer token (all sessions) or a
    // refresh_token body (one session), so no middleware here.
    g.POST("/logout", a.Logout)

    auth := e.Group("/v1")
    auth.Use(middleware.JWTAuth(jwtSecret))
    auth.GET("/me", a.Me)
}

// RegisterPublic registers the unauthenticated catalog endpoints.  The
// cache middleware is passed in so the route set stays in one place.
func RegisterPublic(e *echo.Echo, p *handler.PublicHandler, cache echo.MiddlewareFunc) {
    g := e.Group("/v1", cache)
    g.GET("/ports", p.ListPorts)
    g.GET("/services", p.ListServices)
}
