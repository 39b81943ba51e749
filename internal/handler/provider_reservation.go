package handler

import (
    "context"
    "net/http"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/portconnect/portconnect-backend/internal/model"
    "github.com/portconnect/portconnect-backend/internal/repository"
)

// ProviderHandler serves service providers: reviewing reservations made
// against their services, recording the provider-side decision and
// marking confirmed work complete.
type ProviderHandler struct {
    Reservations *repository.ReservationRepo
}

func NewProviderHandler(res *repository.ReservationRepo) *ProviderHandler {
    if res == nil {
        panic("nil repository passed to NewProviderHandler")
    }
    return &ProviderHandler{Reservations: res}
}

type decisionReq struct {
    Decision string  `json:"decision"` // approved | rejected
    Notes    *string `json:"notes,omitempty"`
}

type completeReq struct {
    Notes *string `json:"notes,omitempty"`
}

// parseDecision accepts only the two decided approval values.  A track
// cannot be reset to pending through the API.
func parseDecision(raw string) (model.ApprovalStatus, bool) {
    st, err := model.ParseApprovalStatus(raw)
    if err != nil || !st.Decided() {
        return "", false
    }
    return st, true
}

// List returns reservations made against the provider's services.
func (h *ProviderHandler) List(c echo.Context) error {
    providerID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    status, err := statusFilter(c)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown status"})
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    ds, err := h.Reservations.ListForProvider(ctx, providerID, status)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
    }
    projectAll(ds, model.RoleProvider)
    return c.JSON(http.StatusOK, echo.Map{"reservations": ds})
}

// Get returns one reservation against the provider's services.
func (h *ProviderHandler) Get(c echo.Context) error {
    providerID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    id, err := pathID(c)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid reservation id"})
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    d, err := h.Reservations.GetForProvider(ctx, id, providerID)
    if err != nil {
        return writeRepoError(c, err, "reservation not found")
    }
    projectFor(&d, model.RoleProvider)
    return c.JSON(http.StatusOK, d)
}

// Decide records the provider's approval or rejection.  Each track is
// decided at most once; a second decision gets 409.
func (h *ProviderHandler) Decide(c echo.Context) error {
    providerID, err := getUserID(c)
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

    d, err := h.Reservations.SetProviderDecision(ctx, id, providerID, decision, req.Notes)
    if err != nil {
        return writeRepoError(c, err, "reservation not found")
    }
    projectFor(&d, model.RoleProvider)
    publishReservationEvent(d, "provider_decision")
    return c.JSON(http.StatusOK, d)
}

// Complete marks a confirmed reservation as completed.
func (h *ProviderHandler) Complete(c echo.Context) error {
    providerID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    id, err := pathID(c)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid reservation id"})
    }
    var req completeReq
    _ = c.Bind(&req)

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    d, err := h.Reservations.Complete(ctx, id, providerID, req.Notes)
    if err != nil {
        return writeRepoError(c, err, "reservation not found")
    }
    projectFor(&d, model.RoleProvider)
    publishReservationEvent(d, "completed")
    return c.JSON(http.StatusOK, d)
}
