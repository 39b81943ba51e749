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

// CaptainHandler serves ship captains: requesting services, following
// their reservations and cancelling them.
type CaptainHandler struct {
    Reservations *repository.ReservationRepo
    Services     *repository.ServiceRepo
}

func NewCaptainHandler(res *repository.ReservationRepo, svc *repository.ServiceRepo) *CaptainHandler {
    if res == nil || svc == nil {
        panic("nil repository passed to NewCaptainHandler")
    }
    return &CaptainHandler{Reservations: res, Services: svc}
}

type createReservationReq struct {
    ServiceID     uint64  `json:"service_id"`
    ShipName      string  `json:"ship_name"`
    ShipIMO       *string `json:"ship_imo,omitempty"`
    RequestedDate string  `json:"requested_date"` // YYYY-MM-DD
    RequestedTime string  `json:"requested_time"` // HH:MM
    DurationHours uint32  `json:"duration_hours"`
    Notes         *string `json:"notes,omitempty"`
}

type cancelReservationReq struct {
    Reason *string `json:"reason,omitempty"`
}

// Create books a service for the captain's ship.  The reservation
// starts pending on both approval tracks; the total cost is fixed at
// booking time from the service's hourly rate.
func (h *CaptainHandler) Create(c echo.Context) error {
    captainID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    var req createReservationReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    req.ShipName = strings.TrimSpace(req.ShipName)
    if req.ServiceID == 0 || req.ShipName == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "service_id and ship_name required"})
    }
    if _, err := time.Parse("2006-01-02", req.RequestedDate); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "requested_date must be YYYY-MM-DD"})
    }
    if _, err := time.Parse("15:04", req.RequestedTime); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "requested_time must be HH:MM"})
    }
    if req.DurationHours == 0 || req.DurationHours > 168 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "duration_hours must be between 1 and 168"})
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    svc, err := h.Services.GetByID(ctx, req.ServiceID)
    if err != nil {
        if err == sql.ErrNoRows {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "service not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
    }
    if !svc.Availability {
        return c.JSON(http.StatusConflict, echo.Map{"error": "service is not accepting reservations"})
    }

    var totalCost *float64
    if svc.PricePerHour != nil {
        v := *svc.PricePerHour * float64(req.DurationHours)
        totalCost = &v
    }

    d, err := h.Reservations.Create(ctx, repository.CreateParams{
        ServiceID:     req.ServiceID,
        CaptainID:     captainID,
        ShipName:      req.ShipName,
        ShipIMO:       req.ShipIMO,
        RequestedDate: req.RequestedDate,
        RequestedTime: req.RequestedTime,
        DurationHours: req.DurationHours,
        Notes:         req.Notes,
        TotalCost:     totalCost,
    })
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create reservation failed"})
    }
    projectFor(&d, model.RoleCaptain)
    publishReservationEvent(d, "created")
    return c.JSON(http.StatusCreated, d)
}

// List returns the captain's own reservations, optionally filtered with
// ?status=.
func (h *CaptainHandler) List(c echo.Context) error {
    captainID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    status, err := statusFilter(c)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown status"})
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    ds, err := h.Reservations.ListForCaptain(ctx, captainID, status)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
    }
    projectAll(ds, model.RoleCaptain)
    return c.JSON(http.StatusOK, echo.Map{"reservations": ds})
}

// Get returns one of the captain's reservations.
func (h *CaptainHandler) Get(c echo.Context) error {
    captainID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    id, err := pathID(c)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid reservation id"})
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    d, err := h.Reservations.GetForCaptain(ctx, id, captainID)
    if err != nil {
        return writeRepoError(c, err, "reservation not found")
    }
    projectFor(&d, model.RoleCaptain)
    return c.JSON(http.StatusOK, d)
}

// Cancel withdraws a reservation.  Allowed from any state except
// completed and cancelled; prior approvals on either track do not block
// it.
func (h *CaptainHandler) Cancel(c echo.Context) error {
    captainID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    id, err := pathID(c)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid reservation id"})
    }
    var req cancelReservationReq
    _ = c.Bind(&req)

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    d, err := h.Reservations.Cancel(ctx, id, captainID, req.Reason)
    if err != nil {
        return writeRepoError(c, err, "reservation not found")
    }
    projectFor(&d, model.RoleCaptain)
    publishReservationEvent(d, "cancelled")
    return c.JSON(http.StatusOK, d)
}
