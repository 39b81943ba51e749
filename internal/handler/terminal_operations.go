package handler

import (
    "context"
    "net/http"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/portconnect/portconnect-backend/internal/model"
    "github.com/portconnect/portconnect-backend/internal/repository"
)

// TerminalHandler serves terminal operators: the approval queue for
// their assigned port, port-wide reservation views and dashboard stats.
type TerminalHandler struct {
    Reservations *repository.ReservationRepo
    Services     *repository.ServiceRepo
}

func NewTerminalHandler(res *repository.ReservationRepo, svc *repository.ServiceRepo) *TerminalHandler {
    if res == nil || svc == nil {
        panic("nil repository passed to NewTerminalHandler")
    }
    return &TerminalHandler{Reservations: res, Services: svc}
}

// PendingQueue lists reservations at the operator's port still awaiting
// the terminal decision.
func (h *TerminalHandler) PendingQueue(c echo.Context) error {
    portID, err := getPortID(c)
    if err != nil {
        return c.JSON(http.StatusForbidden, echo.Map{"error": "no port assignment"})
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    ds, err := h.Reservations.PendingTerminalQueue(ctx, portID)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
    }
    projectAll(ds, model.RoleTerminal)
    return c.JSON(http.StatusOK, echo.Map{"reservations": ds})
}

// List returns all reservations at the operator's port, optionally
// filtered with ?status=.
func (h *TerminalHandler) List(c echo.Context) error {
    portID, err := getPortID(c)
    if err != nil {
        return c.JSON(http.StatusForbidden, echo.Map{"error": "no port assignment"})
    }
    status, err := statusFilter(c)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown status"})
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    ds, err := h.Reservations.ListForTerminal(ctx, portID, status)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
    }
    projectAll(ds, model.RoleTerminal)
    return c.JSON(http.StatusOK, echo.Map{"reservations": ds})
}

// Get returns one reservation at the operator's port.
func (h *TerminalHandler) Get(c echo.Context) error {
    portID, err := getPortID(c)
    if err != nil {
        return c.JSON(http.StatusForbidden, echo.Map{"error": "no port assignment"})
    }
    id, err := pathID(c)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid reservation id"})
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    d, err := h.Reservations.GetForTerminal(ctx, id, portID)
    if err != nil {
        return writeRepoError(c, err, "reservation not found")
    }
    projectFor(&d, model.RoleTerminal)
    return c.JSON(http.StatusOK, d)
}

// Decide records the terminal operator's approval or rejection for a
// reservation at their port.
func (h *TerminalHandler) Decide(c echo.Context) error {
    portID, err := getPortID(c)
    if err != nil {
        return c.JSON(http.StatusForbidden, echo.Map{"error": "no port assignment"})
    }
    actorID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    id, err := pathID(c)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid reservation id"})
    }
    var req decisionReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    decision, ok := parseDecision(req.Decision)
    if !ok {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "decision must be approved or rejected"})
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    d, err := h.Reservations.SetTerminalDecision(ctx, id, portID, actorID, decision, req.Notes)
    if err != nil {
        return writeRepoError(c, err, "reservation not found")
    }
    projectFor(&d, model.RoleTerminal)
    publishReservationEvent(d, "terminal_decision")
    return c.JSON(http.StatusOK, d)
}

// ListServices lists every service registered at the operator's port,
// including unavailable ones.
func (h *TerminalHandler) ListServices(c echo.Context) error {
    portID, err := getPortID(c)
    if err != nil {
        return c.JSON(http.StatusForbidden, echo.Map{"error": "no port assignment"})
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    svcs, err := h.Services.ListByPort(ctx, portID)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
    }
    return c.JSON(http.StatusOK, echo.Map{"services": toServiceViews(svcs)})
}

// Stats returns the dashboard counters for the operator's port.
func (h *TerminalHandler) Stats(c echo.Context) error {
    portID, err := getPortID(c)
    if err != nil {
        return c.JSON(http.StatusForbidden, echo.Map{"error": "no port assignment"})
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    st, err := h.Reservations.StatsForPort(ctx, portID)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
    }
    return c.JSON(http.StatusOK, st)
}
