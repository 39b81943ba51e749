package router

import (
    "github.com/labstack/echo/v4"

    "github.com/portconnect/portconnect-backend/internal/handler"
    "github.com/portconnect/portconnect-backend/internal/middleware"
    "github.com/portconnect/portconnect-backend/internal/model"
)

// RegisterCaptain registers captain-scoped endpoints under /v1.  All
// routes require a valid JWT and the captain role.  Captains create
// reservations, follow their own, and cancel them.
func RegisterCaptain(e *echo.Echo, h *handler.CaptainHandler, jwtSecret string) {
    g := e.Group(
        "/v1",
        middleware.JWTAuth(jwtSecret),
        middleware.RequireRole(model.RoleCaptain),
    )
    g.POST("/reservations", h.Create)
    g.GET("/my-reservations", h.List)
    g.GET("/reservations/:id", h.Get)
    // Cancellation is a state transition, not a row delete, so the
    // capability gate applies on top of the role group.
    g.POST("/reservations/:id/cancel", h.Cancel, middleware.RequireCapability(model.ActionCancel))
}
