package handler // handler defines http handlers

import (
    "context"
    "database/sql"
    "errors"
    "net/http"
    "strconv"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/portconnect/portconnect-backend/internal/model"
    "github.com/portconnect/portconnect-backend/internal/queue"
    "github.com/portconnect/portconnect-backend/internal/repository"
    queue_publisher "github.com/portconnect/portconnect-backend/internal/service"
)

// getUserID extracts the authenticated user's ID from the context.
func getUserID(c echo.Context) (uint64, error) {
    switch t := c.Get("user_id").(type) {
    case uint64:
        return t, nil
    case int:
        return uint64(t), nil
    case int64:
        return uint64(t), nil
    case float64:
        return uint64(t), nil
    case string:
        if n, err := strconv.ParseUint(t, 10, 64); err == nil {
            return n, nil
        }
    }
    return 0, errors.New("invalid user_id in context")
}

// getPortID extracts the terminal operator's assigned port from the
// context.  Only tokens issued to terminal operators carry the claim.
func getPortID(c echo.Context) (uint64, error) {
    switch t := c.Get("port_id").(type) {
    case uint64:
        return t, nil
    case float64:
        return uint64(t), nil
    }
    return 0, errors.New("no port_id in context")
}

// pathID parses the :id route parameter.
func pathID(c echo.Context) (uint64, error) {
    return strconv.ParseUint(c.Param("id"), 10, 64)
}

// projectFor fills the detail's Projection for the viewing role.
func projectFor(d *repository.ReservationDetail, viewer model.Role) {
    d.Projection = model.Project(d.Status, d.TerminalApproval, d.ProviderApproval, viewer)
}

func projectAll(ds []repository.ReservationDetail, viewer model.Role) {
    for i := range ds {
        projectFor(&ds[i], viewer)
    }
}

// statusFilter parses an optional ?status= query parameter.  An empty
// value means no filter; an unknown value is reported to the caller.
func statusFilter(c echo.Context) (model.ReservationStatus, error) {
    raw := c.QueryParam("status")
    if raw == "" {
        return "", nil
    }
    return model.ParseReservationStatus(raw)
}

// writeRepoError maps repository sentinel errors onto HTTP responses.
func writeRepoError(c echo.Context, err error, notFound string) error {
    switch {
    case err == sql.ErrNoRows:
        return c.JSON(http.StatusNotFound, echo.Map{"error": notFound})
    case errors.Is(err, repository.ErrForbidden):
        return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
    case errors.Is(err, repository.ErrGuardViolation):
        return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
    default:
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "operation failed"})
    }
}

// publishReservationEvent emits a reservation.updated event in the
// background.  Broker failures are logged by the publisher and never
// affect the request.
func publishReservationEvent(d repository.ReservationDetail, action string) {
    ev := queue.ReservationUpdatedEvent{
        ReservationID:    d.ID,
        CaptainID:        d.CaptainID,
        ServiceID:        d.ServiceID,
        ServiceName:      d.ServiceName,
        PortCode:         d.PortCode,
        ShipName:         d.ShipName,
        Action:           action,
        Status:           string(d.Status),
        TerminalApproval: string(d.TerminalApproval),
        ProviderApproval: string(d.ProviderApproval),
        TotalCost:        d.TotalCost,
        OccurredAt:       time.Now().UTC().Format(time.RFC3339),
    }
    go func() {
        ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
        defer cancel()
        _ = queue_publisher.PublishReservationUpdated(ctx, ev)
    }()
}
