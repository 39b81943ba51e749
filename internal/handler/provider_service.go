package handler

import (
    "context"
    "database/sql"
    "net/http"
    "strings"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/portconnect/portconnect-backend/internal/model"
    "github.com/portconnect/portconnect-backend/internal/repository"
)

// ProviderServiceHandler manages a provider's service catalog.
type ProviderServiceHandler struct {
    Services *repository.ServiceRepo
    Ports    *repository.PortRepo
}

func NewProviderServiceHandler(svc *repository.ServiceRepo, p *repository.PortRepo) *ProviderServiceHandler {
    if svc == nil || p == nil {
        panic("nil repository passed to NewProviderServiceHandler")
    }
    return &ProviderServiceHandler{Services: svc, Ports: p}
}

type serviceReq struct {
    Name         string   `json:"name"`
    Type         string   `json:"type"`
    Description  *string  `json:"description,omitempty"`
    PortID       uint64   `json:"port_id"`
    PricePerHour *float64 `json:"price_per_hour,omitempty"`
    Availability *bool    `json:"availability,omitempty"`
}

type availabilityReq struct {
    Availability bool `json:"availability"`
}

// Create registers a new service offered by the provider at a port.
func (h *ProviderServiceHandler) Create(c echo.Context) error {
    providerID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    var req serviceReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    req.Name = strings.TrimSpace(req.Name)
    if req.Name == "" || req.PortID == 0 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "name and port_id required"})
    }
    typ, err := model.ParseServiceType(req.Type)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown service type"})
    }
    if req.PricePerHour != nil && *req.PricePerHour < 0 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "price_per_hour must not be negative"})
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    if _, err := h.Ports.GetByID(ctx, req.PortID); err != nil {
        if err == sql.ErrNoRows {
            return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown port"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
    }

    svc, err := h.Services.Create(ctx, providerID, req.Name, typ, req.Description, req.PortID, req.PricePerHour)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create service failed"})
    }
    return c.JSON(http.StatusCreated, toServiceView(svc))
}

// List returns the provider's own services.
func (h *ProviderServiceHandler) List(c echo.Context) error {
    providerID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    svcs, err := h.Services.ListByProvider(ctx, providerID)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
    }
    return c.JSON(http.StatusOK, echo.Map{"services": toServiceViews(svcs)})
}

// Update rewrites a service the provider owns.  The port assignment is
// fixed at creation.
func (h *ProviderServiceHandler) Update(c echo.Context) error {
    providerID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    id, err := pathID(c)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid service id"})
    }
    var req serviceReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    req.Name = strings.TrimSpace(req.Name)
    if req.Name == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "name required"})
    }
    typ, err := model.ParseServiceType(req.Type)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown service type"})
    }
    if req.PricePerHour != nil && *req.PricePerHour < 0 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "price_per_hour must not be negative"})
    }
    availability := true
    if req.Availability != nil {
        availability = *req.Availability
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    svc, err := h.Services.Update(ctx, id, providerID, req.Name, typ, req.Description, req.PricePerHour, availability)
    if err != nil {
        return writeRepoError(c, err, "service not found")
    }
    return c.JSON(http.StatusOK, toServiceView(svc))
}

// SetAvailability toggles whether the service accepts new reservations.
func (h *ProviderServiceHandler) SetAvailability(c echo.Context) error {
    providerID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    id, err := pathID(c)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid service id"})
    }
    var req availabilityReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    if err := h.Services.SetAvailability(ctx, id, providerID, req.Availability); err != nil {
        return writeRepoError(c, err, "service not found")
    }
    svc, err := h.Services.GetByID(ctx, id)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
    }
    return c.JSON(http.StatusOK, toServiceView(svc))
}

// Delete removes a service the provider owns.
func (h *ProviderServiceHandler) Delete(c echo.Context) error {
    providerID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    id, err := pathID(c)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid service id"})
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    if err := h.Services.Delete(ctx, id, providerID); err != nil {
        return writeRepoError(c, err, "service not found")
    }
    return c.NoContent(http.StatusNoContent)
}
