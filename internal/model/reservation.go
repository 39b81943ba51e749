package model

import "time"

// Reservation is a row in the `reservations` table: one captain's request
// for one service.  No single party owns the whole record: the captain
// owns the request itself, while the terminal operator and the provider
// each own one approval track.  Status is derived from the two tracks by
// Reconcile; only the explicit complete and cancel actions write it
// directly.
//
// Fields:
//  ID                 – primary key identifier.
//  ServiceID          – service being requested.
//  CaptainID          – user (role captain) who made the request.
//  ShipName           – vessel name.
//  ShipIMO            – optional IMO number.
//  RequestedDate      – service date (YYYY-MM-DD).
//  RequestedTime      – service start time (HH:MM).
//  DurationHours      – requested duration in hours.
//  Status             – derived overall status.
//  TerminalApproval   – terminal operator's track.
//  ProviderApproval   – provider's track.
//  TerminalApprovedBy – terminal operator who decided, if any.
//  ProviderApprovedBy – provider who decided, if any.
//  TerminalApprovedAt – when the terminal track was decided.
//  ProviderApprovedAt – when the provider track was decided.
//  Notes              – captain's free-text notes.
//  ProviderNotes      – provider's free-text notes.
//  TerminalNotes      – terminal operator's free-text notes.
//  TotalCost          – hourly price × duration when the service is priced.
//  CancelledAt        – when the captain cancelled, if ever.
//  CancellationReason – captain's stated reason, if any.
//  CreatedAt          – timestamp of creation.
//  UpdatedAt          – timestamp of last update.
type Reservation struct {
    ID                 uint64            // reservations.id
    ServiceID          uint64            // reservations.service_id
    CaptainID          uint64            // reservations.captain_id
    ShipName           string            // reservations.ship_name
    ShipIMO            *string           // reservations.ship_imo (nullable)
    RequestedDate      string            // reservations.requested_date
    RequestedTime      string            // reservations.requested_time
    DurationHours      uint32            // reservations.duration_hours
    Status             ReservationStatus // reservations.status
    TerminalApproval   ApprovalStatus    // reservations.terminal_approval
    ProviderApproval   ApprovalStatus    // reservations.provider_approval
    TerminalApprovedBy *uint64           // reservations.terminal_approved_by (nullable)
    ProviderApprovedBy *uint64           // reservations.provider_approved_by (nullable)
    TerminalApprovedAt *time.Time        // reservations.terminal_approved_at (nullable)
    ProviderApprovedAt *time.Time        // reservations.provider_approved_at (nullable)
    Notes              *string           // reservations.notes (nullable)
    ProviderNotes      *string           // reservations.provider_notes (nullable)
    TerminalNotes      *string           // reservations.terminal_notes (nullable)
    TotalCost          *float64          // reservations.total_cost (nullable)
    CancelledAt        *time.Time        // reservations.cancelled_at (nullable)
    CancellationReason *string           // reservations.cancellation_reason (nullable)
    CreatedAt          time.Time         // reservations.created_at
    UpdatedAt          time.Time         // reservations.updated_at
}
