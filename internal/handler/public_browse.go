package handler

import (
    "context"
    "net/http"
    "strconv"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/portconnect/portconnect-backend/internal/model"
    "github.com/portconnect/portconnect-backend/internal/repository"
)

// PublicHandler serves the unauthenticated catalog: ports and the
// available services at them.  These endpoints sit behind the response
// cache.
type PublicHandler struct {
    Ports    *repository.PortRepo
    Services *repository.ServiceRepo
}

func NewPublicHandler(p *repository.PortRepo, s *repository.ServiceRepo) *PublicHandler {
    if p == nil || s == nil {
        panic("nil repository passed to NewPublicHandler")
    }
    return &PublicHandler{Ports: p, Services: s}
}

// ListPorts returns all registered ports.
func (h *PublicHandler) ListPorts(c echo.Context) error {
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    ports, err := h.Ports.List(ctx)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
    }
    return c.JSON(http.StatusOK, echo.Map{"ports": toPortViews(ports)})
}

// ListServices returns available services, optionally narrowed with
// ?port_id= and ?type=.
func (h *PublicHandler) ListServices(c echo.Context) error {
    var portID uint64
    if raw := c.QueryParam("port_id"); raw != "" {
        n, err := strconv.ParseUint(raw, 10, 64)
        if err != nil {
            return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid port_id"})
        }
        portID = n
    }
    var typ model.ServiceType
    if raw := c.QueryParam("type"); raw != "" {
        t, err := model.ParseServiceType(raw)
        if err != nil {
            return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown service type"})
        }
        typ = t
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    svcs, err := h.Services.ListAvailable(ctx, portID, typ)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
    }
    return c.JSON(http.StatusOK, echo.Map{"services": toServiceViews(svcs)})
}
