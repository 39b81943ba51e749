package repository

import (
    "context"
    "database/sql"
    "time"

    "github.com/portconnect/portconnect-backend/internal/model"
)

// ReservationRepo provides persistence for reservations and their two
// approval tracks.  All status writes happen inside a transaction that
// re-reads the row under lock, checks the guard for the attempted
// transition, updates the caller's own track, and recomputes the overall
// status with model.Reconcile.  The terminal operator and the provider
// write disjoint fields, so their decisions never conflict; the
// reconciliation is idempotent and may be recomputed redundantly.
type ReservationRepo struct{ db *sql.DB }

func NewReservationRepo(db *sql.DB) *ReservationRepo { return &ReservationRepo{db: db} }

// DB exposes the underlying handle for callers that need transactions.
func (r *ReservationRepo) DB() *sql.DB { return r.db }

// ReservationDetail is a reservation joined with its service, port,
// provider and captain for display.  Projection is filled in by the
// handler layer for the viewing role; everything else mirrors stored
// state.
type ReservationDetail struct {
    ID                 uint64                  `json:"id"`
    ServiceID          uint64                  `json:"service_id"`
    ServiceName        string                  `json:"service_name"`
    ServiceType        model.ServiceType       `json:"service_type"`
    PortID             uint64                  `json:"port_id"`
    PortName           string                  `json:"port_name"`
    PortCode           string                  `json:"port_code"`
    ProviderID         uint64                  `json:"provider_id"`
    ProviderName       string                  `json:"provider_name"`
    CaptainID          uint64                  `json:"captain_id"`
    CaptainName        string                  `json:"captain_name"`
    ShipName           string                  `json:"ship_name"`
    ShipIMO            *string                 `json:"ship_imo,omitempty"`
    RequestedDate      string                  `json:"requested_date"`
    RequestedTime      string                  `json:"requested_time"`
    DurationHours      uint32                  `json:"duration_hours"`
    Status             model.ReservationStatus `json:"status"`
    TerminalApproval   model.ApprovalStatus    `json:"terminal_approval"`
    ProviderApproval   model.ApprovalStatus    `json:"provider_approval"`
    TerminalApprovedAt *string                 `json:"terminal_approved_at,omitempty"`
    ProviderApprovedAt *string                 `json:"provider_approved_at,omitempty"`
    Notes              *string                 `json:"notes,omitempty"`
    ProviderNotes      *string                 `json:"provider_notes,omitempty"`
    TerminalNotes      *string                 `json:"terminal_notes,omitempty"`
    TotalCost          *float64                `json:"total_cost,omitempty"`
    CancelledAt        *string                 `json:"cancelled_at,omitempty"`
    CancellationReason *string                 `json:"cancellation_reason,omitempty"`
    CreatedAt          time.Time               `json:"created_at"`
    Projection         model.Projection        `json:"projection"`
}

const detailQuery = `SELECT r.id, r.service_id, r.captain_id, r.ship_name, r.ship_imo,
       r.requested_date, r.requested_time, r.duration_hours,
       r.status, r.terminal_approval, r.provider_approval,
       r.terminal_approved_at, r.provider_approved_at,
       r.notes, r.provider_notes, r.terminal_notes,
       r.total_cost, r.cancelled_at, r.cancellation_reason, r.created_at,
       s.name, s.type, s.port_id, s.provider_id,
       p.name, p.code, prov.name, cap.name
FROM reservations r
JOIN services s ON s.id = r.service_id
JOIN ports p ON p.id = s.port_id
JOIN users prov ON prov.id = s.provider_id
JOIN users cap ON cap.id = r.captain_id`

func scanDetail(row interface{ Scan(...interface{}) error }) (ReservationDetail, error) {
    var (
        d            ReservationDetail
        shipIMO      sql.NullString
        reqDate      time.Time
        status       string
        termAppr     string
        provAppr     string
        termAt       sql.NullTime
        provAt       sql.NullTime
        notes        sql.NullString
        provNotes    sql.NullString
        termNotes    sql.NullString
        totalCost    sql.NullFloat64
        cancelledAt  sql.NullTime
        cancelReason sql.NullString
        svcType      string
    )
    err := row.Scan(
        &d.ID, &d.ServiceID, &d.CaptainID, &d.ShipName, &shipIMO,
        &reqDate, &d.RequestedTime, &d.DurationHours,
        &status, &termAppr, &provAppr,
        &termAt, &provAt,
        &notes, &provNotes, &termNotes,
        &totalCost, &cancelledAt, &cancelReason, &d.CreatedAt,
        &d.ServiceName, &svcType, &d.PortID, &d.ProviderID,
        &d.PortName, &d.PortCode, &d.ProviderName, &d.CaptainName,
    )
    if err != nil {
        return d, err
    }
    d.RequestedDate = reqDate.UTC().Format("2006-01-02")
    d.ServiceType = model.ServiceType(svcType)
    d.Status = model.ReservationStatus(status)
    d.TerminalApproval = model.ApprovalStatus(termAppr)
    d.ProviderApproval = model.ApprovalStatus(provAppr)
    if shipIMO.Valid {
        v := shipIMO.String
        d.ShipIMO = &v
    }
    if termAt.Valid {
        iso := termAt.Time.UTC().Format(time.RFC3339)
        d.TerminalApprovedAt = &iso
    }
    if provAt.Valid {
        iso := provAt.Time.UTC().Format(time.RFC3339)
        d.ProviderApprovedAt = &iso
    }
    if notes.Valid {
        v := notes.String
        d.Notes = &v
    }
    if provNotes.Valid {
        v := provNotes.String
        d.ProviderNotes = &v
    }
    if termNotes.Valid {
        v := termNotes.String
        d.TerminalNotes = &v
    }
    if totalCost.Valid {
        v := totalCost.Float64
        d.TotalCost = &v
    }
    if cancelledAt.Valid {
        iso := cancelledAt.Time.UTC().Format(time.RFC3339)
        d.CancelledAt = &iso
    }
    if cancelReason.Valid {
        v := cancelReason.String
        d.CancellationReason = &v
    }
    return d, nil
}

// CreateParams carries the captain-supplied fields of a new reservation.
// Status and both approval tracks always start pending regardless of
// input.
type CreateParams struct {
    ServiceID     uint64
    CaptainID     uint64
    ShipName      string
    ShipIMO       *string
    RequestedDate string // YYYY-MM-DD
    RequestedTime string // HH:MM
    DurationHours uint32
    Notes         *string
    TotalCost     *float64
}

// Create inserts a reservation in its initial state and returns the
// stored row re-read from the database.
func (r *ReservationRepo) Create(ctx context.Context, p CreateParams) (ReservationDetail, error) {
    res, err := r.db.ExecContext(ctx,
        `INSERT INTO reservations
           (service_id, captain_id, ship_name, ship_imo, requested_date, requested_time,
            duration_hours, status, terminal_approval, provider_approval, notes, total_cost)
         VALUES (?,?,?,?,?,?,?,'pending','pending','pending',?,?)`,
        p.ServiceID, p.CaptainID, p.ShipName, p.ShipIMO, p.RequestedDate, p.RequestedTime,
        p.DurationHours, p.Notes, p.TotalCost)
    if err != nil {
        return ReservationDetail{}, err
    }
    id, err := res.LastInsertId()
    if err != nil {
        return ReservationDetail{}, err
    }
    return r.getByID(ctx, uint64(id))
}

func (r *ReservationRepo) getByID(ctx context.Context, id uint64) (ReservationDetail, error) {
    return scanDetail(r.db.QueryRowContext(ctx, detailQuery+` WHERE r.id = ?`, id))
}

// GetForCaptain returns one reservation scoped to its requesting
// captain.  Rows belonging to other captains are filtered in the query,
// so the caller cannot distinguish them from absent rows.
func (r *ReservationRepo) GetForCaptain(ctx context.Context, id, captainID uint64) (ReservationDetail, error) {
    return scanDetail(r.db.QueryRowContext(ctx,
        detailQuery+` WHERE r.id = ? AND r.captain_id = ?`, id, captainID))
}

// GetForProvider returns one reservation scoped to the provider owning
// its service.
func (r *ReservationRepo) GetForProvider(ctx context.Context, id, providerID uint64) (ReservationDetail, error) {
    return scanDetail(r.db.QueryRowContext(ctx,
        detailQuery+` WHERE r.id = ? AND s.provider_id = ?`, id, providerID))
}

// GetForTerminal returns one reservation scoped to the port assigned to
// the terminal operator.
func (r *ReservationRepo) GetForTerminal(ctx context.Context, id, portID uint64) (ReservationDetail, error) {
    return scanDetail(r.db.QueryRowContext(ctx,
        detailQuery+` WHERE r.id = ? AND s.port_id = ?`, id, portID))
}

// ListForCaptain returns the captain's own reservations, newest first,
// optionally filtered by overall status.
func (r *ReservationRepo) ListForCaptain(ctx context.Context, captainID uint64, status model.ReservationStatus) ([]ReservationDetail, error) {
    return r.list(ctx, `r.captain_id = ?`, captainID, status)
}

// ListForProvider returns reservations against the provider's services.
func (r *ReservationRepo) ListForProvider(ctx context.Context, providerID uint64, status model.ReservationStatus) ([]ReservationDetail, error) {
    return r.list(ctx, `s.provider_id = ?`, providerID, status)
}

// ListForTerminal returns reservations whose service operates at the
// operator's assigned port.
func (r *ReservationRepo) ListForTerminal(ctx context.Context, portID uint64, status model.ReservationStatus) ([]ReservationDetail, error) {
    return r.list(ctx, `s.port_id = ?`, portID, status)
}

// PendingTerminalQueue returns reservations at the port still awaiting
// the terminal operator's decision.
func (r *ReservationRepo) PendingTerminalQueue(ctx context.Context, portID uint64) ([]ReservationDetail, error) {
    rows, err := r.db.QueryContext(ctx,
        detailQuery+` WHERE s.port_id = ? AND r.terminal_approval = 'pending' AND r.status = 'pending'
                      ORDER BY r.created_at DESC`, portID)
    if err != nil {
        return nil, err
    }
    return collectDetails(rows)
}

func (r *ReservationRepo) list(ctx context.Context, scope string, scopeID uint64, status model.ReservationStatus) ([]ReservationDetail, error) {
    q := detailQuery + ` WHERE ` + scope
    args := []interface{}{scopeID}
    if status != "" {
        q += ` AND r.status = ?`
        args = append(args, string(status))
    }
    q += ` ORDER BY r.created_at DESC`
    rows, err := r.db.QueryContext(ctx, q, args...)
    if err != nil {
        return nil, err
    }
    return collectDetails(rows)
}

func collectDetails(rows *sql.Rows) ([]ReservationDetail, error) {
    defer rows.Close()
    out := make([]ReservationDetail, 0)
    for rows.Next() {
        d, err := scanDetail(rows)
        if err != nil {
            return nil, err
        }
        out = append(out, d)
    }
    return out, rows.Err()
}

// lockedRow is the reservation state needed to evaluate guards before a
// mutation, read under FOR UPDATE together with the owning service's
// scoping columns.
type lockedRow struct {
    res        model.Reservation
    portID     uint64
    providerID uint64
}

func lockReservation(ctx context.Context, tx *sql.Tx, id uint64) (lockedRow, error) {
    const q = `SELECT r.id, r.captain_id, r.status, r.terminal_approval, r.provider_approval,
                      s.port_id, s.provider_id
               FROM reservations r
               JOIN services s ON s.id = r.service_id
               WHERE r.id = ?
               FOR UPDATE`
    var (
        lr     lockedRow
        status string
        term   string
        prov   string
    )
    err := tx.QueryRowContext(ctx, q, id).Scan(
        &lr.res.ID, &lr.res.CaptainID, &status, &term, &prov, &lr.portID, &lr.providerID)
    if err != nil {
        return lr, err
    }
    lr.res.Status = model.ReservationStatus(status)
    lr.res.TerminalApproval = model.ApprovalStatus(term)
    lr.res.ProviderApproval = model.ApprovalStatus(prov)
    return lr, nil
}

// SetTerminalDecision records the terminal operator's approval or
// rejection and reconciles the overall status in the same transaction.
// It returns ErrForbidden when the reservation's service does not belong
// to the operator's port and ErrGuardViolation when the terminal track
// has already been decided or the reservation has left the pending
// state.  On success the re-read detail row is returned.
func (r *ReservationRepo) SetTerminalDecision(ctx context.Context, id, portID, actorID uint64, decision model.ApprovalStatus, note *string) (ReservationDetail, error) {
    err := r.inTx(ctx, func(tx *sql.Tx) error {
        lr, err := lockReservation(ctx, tx, id)
        if err != nil {
            return err
        }
        if lr.portID != portID {
            return ErrForbidden
        }
        if lr.res.TerminalApproval.Decided() || lr.res.Status != model.StatusPending {
            return ErrGuardViolation
        }
        next := model.Reconcile(decision, lr.res.ProviderApproval)
        if next != lr.res.Status && !model.CanTransition(lr.res.Status, next) {
            return ErrGuardViolation
        }
        _, err = tx.ExecContext(ctx,
            `UPDATE reservations
             SET terminal_approval=?, terminal_approved_by=?, terminal_approved_at=NOW(),
                 terminal_notes=COALESCE(?, terminal_notes), status=?, updated_at=NOW()
             WHERE id=?`,
            string(decision), actorID, note, string(next), id)
        return err
    })
    if err != nil {
        return ReservationDetail{}, err
    }
    return r.getByID(ctx, id)
}

// SetProviderDecision is the provider-side counterpart of
// SetTerminalDecision, writing only the provider track.
func (r *ReservationRepo) SetProviderDecision(ctx context.Context, id, providerID uint64, decision model.ApprovalStatus, note *string) (ReservationDetail, error) {
    err := r.inTx(ctx, func(tx *sql.Tx) error {
        lr, err := lockReservation(ctx, tx, id)
        if err != nil {
            return err
        }
        if lr.providerID != providerID {
            return ErrForbidden
        }
        if lr.res.ProviderApproval.Decided() || lr.res.Status != model.StatusPending {
            return ErrGuardViolation
        }
        next := model.Reconcile(lr.res.TerminalApproval, decision)
        if next != lr.res.Status && !model.CanTransition(lr.res.Status, next) {
            return ErrGuardViolation
        }
        _, err = tx.ExecContext(ctx,
            `UPDATE reservations
             SET provider_approval=?, provider_approved_by=?, provider_approved_at=NOW(),
                 provider_notes=COALESCE(?, provider_notes), status=?, updated_at=NOW()
             WHERE id=?`,
            string(decision), providerID, note, string(next), id)
        return err
    })
    if err != nil {
        return ReservationDetail{}, err
    }
    return r.getByID(ctx, id)
}

// Complete moves a confirmed reservation to completed on behalf of the
// provider of its service.  ErrGuardViolation is returned when the
// reservation is not currently confirmed.
func (r *ReservationRepo) Complete(ctx context.Context, id, providerID uint64, notes *string) (ReservationDetail, error) {
    err := r.inTx(ctx, func(tx *sql.Tx) error {
        lr, err := lockReservation(ctx, tx, id)
        if err != nil {
            return err
        }
        if lr.providerID != providerID {
            return ErrForbidden
        }
        if !model.CanTransition(lr.res.Status, model.StatusCompleted) {
            return ErrGuardViolation
        }
        _, err = tx.ExecContext(ctx,
            `UPDATE reservations
             SET status='completed', provider_notes=COALESCE(?, provider_notes), updated_at=NOW()
             WHERE id=?`,
            notes, id)
        return err
    })
    if err != nil {
        return ReservationDetail{}, err
    }
    return r.getByID(ctx, id)
}

// Cancel moves a reservation to cancelled on behalf of its original
// captain, recording the timestamp and an optional reason.  Approvals
// already recorded on either track do not block cancellation; only
// completed and cancelled states do.
func (r *ReservationRepo) Cancel(ctx context.Context, id, captainID uint64, reason *string) (ReservationDetail, error) {
    err := r.inTx(ctx, func(tx *sql.Tx) error {
        lr, err := lockReservation(ctx, tx, id)
        if err != nil {
            return err
        }
        if lr.res.CaptainID != captainID {
            return ErrForbidden
        }
        if lr.res.Status == model.StatusCompleted || lr.res.Status == model.StatusCancelled {
            return ErrGuardViolation
        }
        _, err = tx.ExecContext(ctx,
            `UPDATE reservations
             SET status='cancelled', cancelled_at=NOW(), cancellation_reason=?, updated_at=NOW()
             WHERE id=?`,
            reason, id)
        return err
    })
    if err != nil {
        return ReservationDetail{}, err
    }
    return r.getByID(ctx, id)
}

// inTx runs fn within a transaction, rolling back unless it succeeds.
func (r *ReservationRepo) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
    tx, err := r.db.BeginTx(ctx, nil)
    if err != nil {
        return err
    }
    committed := false
    defer func() {
        if !committed {
            _ = tx.Rollback()
        }
    }()
    if err := fn(tx); err != nil {
        return err
    }
    if err := tx.Commit(); err != nil {
        return err
    }
    committed = true
    return nil
}

// PortStats aggregates reservation counts for a terminal operator's
// dashboard.
type PortStats struct {
    Pending   int `json:"pending"`
    Confirmed int `json:"confirmed"`
    Completed int `json:"completed"`
    Today     int `json:"today"`
}

// StatsForPort counts reservations at the port by status plus the number
// requested for today's date.
func (r *ReservationRepo) StatsForPort(ctx context.Context, portID uint64) (PortStats, error) {
    const q = `SELECT
                 COALESCE(SUM(r.status = 'pending'), 0),
                 COALESCE(SUM(r.status = 'confirmed'), 0),
                 COALESCE(SUM(r.status = 'completed'), 0),
                 COALESCE(SUM(r.requested_date = CURDATE()), 0)
               FROM reservations r
               JOIN services s ON s.id = r.service_id
               WHERE s.port_id = ?`
    var st PortStats
    err := r.db.QueryRowContext(ctx, q, portID).Scan(&st.Pending, &st.Confirmed, &st.Completed, &st.Today)
    return st, err
}
