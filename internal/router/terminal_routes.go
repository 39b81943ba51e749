package router

import (
    "github.com/labstack/echo/v4"

    "github.com/portconnect/portconnect-backend/internal/handler"
    "github.com/portconnect/portconnect-backend/internal/middleware"
    "github.com/portconnect/portconnect-backend/internal/model"
)

// RegisterTerminal registers terminal-operator endpoints under /v1.
// All routes require a valid JWT and the terminal role; row-level
// scoping to the operator's port happens in the repository queries.
func RegisterTerminal(e *echo.Echo, h *handler.TerminalHandler, jwtSecret string) {
    g := e.Group(
        "/v1/terminal",
        middleware.JWTAuth(jwtSecret),
        middleware.RequireRole(model.RoleTerminal),
    )
    g.GET("/reservations/pending", h.PendingQueue)
    g.GET("/reservations", h.List)
    g.GET("/reservations/:id", h.Get)
    g.POST("/reservations/:id/decision", h.Decide, middleware.RequireCapability(model.ActionDecideTerminal))
    g.GET("/services", h.ListServices)
    g.GET("/stats", h.Stats)
}
