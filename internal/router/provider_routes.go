package router

import (
    "github.com/labstack/echo/v4"

    "github.com/portconnect/portconnect-backend/internal/handler"
    "github.com/portconnect/portconnect-backend/internal/middleware"
    "github.com/portconnect/portconnect-backend/internal/model"
)

// RegisterProvider registers provider-scoped endpoints under /v1.  All
// routes require a valid JWT and the provider role.  Providers manage
// their service catalog, decide their approval track and mark work
// complete.
func RegisterProvider(e *echo.Echo, h *handler.ProviderHandler, s *handler.ProviderServiceHandler, jwtSecret string) {
    g := e.Group(
        "/v1/provider",
        middleware.JWTAuth(jwtSecret),
        middleware.RequireRole(model.RoleProvider),
    )

    // ---- Services ----
    g.POST("/services", s.Create)
    g.GET("/services", s.List)
    g.PUT("/services/:id", s.Update)
    g.PATCH("/services/:id/availability", s.SetAvailability)
    g.DELETE("/services/:id", s.Delete)

    // ---- Reservations ----
    g.GET("/reservations", h.List)
    g.GET("/reservations/:id", h.Get)
    g.POST("/reservations/:id/decision", h.Decide, middleware.RequireCapability(model.ActionDecideProvider))
    g.POST("/reservations/:id/complete", h.Complete, middleware.RequireCapability(model.ActionComplete))
}
