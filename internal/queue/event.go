// Package queue defines message payloads exchanged over the message broker.
package queue

// ReservationUpdatedEvent is published whenever a reservation changes
// state: creation, an approval decision on either track, completion or
// cancellation.  It carries enough context for downstream consumers to
// log or notify without querying the primary database.
type ReservationUpdatedEvent struct {
    ReservationID    uint64   `json:"reservation_id"`
    CaptainID        uint64   `json:"captain_id"`
    ServiceID        uint64   `json:"service_id"`
    ServiceName      string   `json:"service_name"`
    PortCode         string   `json:"port_code"`
    ShipName         string   `json:"ship_name"`
    Action           string   `json:"action"` // created, terminal_decision, provider_decision, completed, cancelled
    Status           string   `json:"status"`
    TerminalApproval string   `json:"terminal_approval"`
    ProviderApproval string   `json:"provider_approval"`
    TotalCost        *float64 `json:"total_cost,omitempty"`
    OccurredAt       string   `json:"occurred_at"` // RFC 3339
}
