package model

import "fmt"

// ApprovalStatus is the state of a single approval track.  A reservation
// carries two independent tracks: one decided by the terminal operator of
// the port, one by the service provider.  A track starts as pending and
// moves exactly once to approved or rejected; a decided track is never
// reopened.
type ApprovalStatus string

const (
    ApprovalPending  ApprovalStatus = "pending"
    ApprovalApproved ApprovalStatus = "approved"
    ApprovalRejected ApprovalStatus = "rejected"
)

// ParseApprovalStatus validates a track value read from a request or row.
func ParseApprovalStatus(s string) (ApprovalStatus, error) {
    switch ApprovalStatus(s) {
    case ApprovalPending, ApprovalApproved, ApprovalRejected:
        return ApprovalStatus(s), nil
    default:
        return "", fmt.Errorf("unknown approval status: %q", s)
    }
}

// Decided reports whether the track has left its initial pending state.
func (a ApprovalStatus) Decided() bool { return a != ApprovalPending }

// ReservationStatus is the overall state of a reservation.  It is a
// derived field: outside of the two explicit actions (complete, cancel)
// it is only ever written by Reconcile, never set directly.
type ReservationStatus string

const (
    StatusPending   ReservationStatus = "pending"
    StatusConfirmed ReservationStatus = "confirmed"
    StatusRejected  ReservationStatus = "rejected"
    StatusCompleted ReservationStatus = "completed"
    StatusCancelled ReservationStatus = "cancelled"
)

// ParseReservationStatus validates a status value, e.g. a ?status= filter.
func ParseReservationStatus(s string) (ReservationStatus, error) {
    switch ReservationStatus(s) {
    case StatusPending, StatusConfirmed, StatusRejected, StatusCompleted, StatusCancelled:
        return ReservationStatus(s), nil
    default:
        return "", fmt.Errorf("unknown reservation status: %q", s)
    }
}

// Terminal reports whether the status has no outbound transitions.
func (s ReservationStatus) Terminal() bool {
    return s == StatusRejected || s == StatusCompleted || s == StatusCancelled
}

// Reconcile maps the two approval tracks to the overall status.  Rejection
// by either party is final and short-circuits the other track; both
// approvals confirm; anything else stays pending.  The function is pure
// and idempotent, so it can be re-run on unchanged inputs without drift;
// it is invoked inside the same transaction as every track write.
func Reconcile(terminal, provider ApprovalStatus) ReservationStatus {
    if terminal == ApprovalRejected || provider == ApprovalRejected {
        return StatusRejected
    }
    if terminal == ApprovalApproved && provider == ApprovalApproved {
        return StatusConfirmed
    }
    return StatusPending
}

// allowedTransitions is the lifecycle of a reservation.  pending reaches
// confirmed only through Reconcile; rejected is reachable from pending or
// confirmed when a late rejection lands.  The captain may cancel from any
// status except completed and cancelled; a rejected reservation can
// still be withdrawn.
var allowedTransitions = map[ReservationStatus]map[ReservationStatus]bool{
    StatusPending:   {StatusConfirmed: true, StatusRejected: true, StatusCancelled: true},
    StatusConfirmed: {StatusCompleted: true, StatusRejected: true, StatusCancelled: true},
    StatusRejected:  {StatusCancelled: true},
    StatusCompleted: {},
    StatusCancelled: {},
}

// CanTransition reports whether moving the overall status from one state
// to another is permitted by the lifecycle.
func CanTransition(from, to ReservationStatus) bool {
    m, ok := allowedTransitions[from]
    if !ok {
        return false
    }
    return m[to]
}
