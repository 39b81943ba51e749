package model

import "testing"

func TestReconcileAllCombinations(t *testing.T) {
    tracks := []ApprovalStatus{ApprovalPending, ApprovalApproved, ApprovalRejected}
    for _, term := range tracks {
        for _, prov := range tracks {
            got := Reconcile(term, prov)
            want := StatusPending
            switch {
            case term == ApprovalRejected || prov == ApprovalRejected:
                want = StatusRejected
            case term == ApprovalApproved && prov == ApprovalApproved:
                want = StatusConfirmed
            }
            if got != want {
                t.Fatalf("Reconcile(%s, %s) = %s, want %s", term, prov, got, want)
            }
        }
    }
}

func TestReconcileRejectionBeatsApproval(t *testing.T) {
    if got := Reconcile(ApprovalRejected, ApprovalApproved); got != StatusRejected {
        t.Fatalf("terminal rejection should short-circuit provider approval, got %s", got)
    }
    if got := Reconcile(ApprovalApproved, ApprovalRejected); got != StatusRejected {
        t.Fatalf("provider rejection should short-circuit terminal approval, got %s", got)
    }
}

func TestReconcileIdempotent(t *testing.T) {
    tracks := []ApprovalStatus{ApprovalPending, ApprovalApproved, ApprovalRejected}
    for _, term := range tracks {
        for _, prov := range tracks {
            first := Reconcile(term, prov)
            second := Reconcile(term, prov)
            if first != second {
                t.Fatalf("Reconcile(%s, %s) drifted: %s then %s", term, prov, first, second)
            }
        }
    }
}

func TestCanTransition(t *testing.T) {
    cases := []struct {
        from, to ReservationStatus
        want     bool
    }{
        {StatusPending, StatusConfirmed, true},
        {StatusPending, StatusRejected, true},
        {StatusPending, StatusCancelled, true},
        {StatusPending, StatusCompleted, false},
        {StatusConfirmed, StatusCompleted, true},
        {StatusConfirmed, StatusCancelled, true},
        {StatusConfirmed, StatusRejected, true},
        {StatusConfirmed, StatusPending, false},
        {StatusCompleted, StatusCancelled, false},
        {StatusCancelled, StatusCompleted, false},
        {StatusRejected, StatusConfirmed, false},
        {StatusRejected, StatusCancelled, true},
    }
    for _, c := range cases {
        if got := CanTransition(c.from, c.to); got != c.want {
            t.Fatalf("CanTransition(%s, %s) = %v, want %v", c.from, c.to, got, c.want)
        }
    }
}

func TestTerminalStates(t *testing.T) {
    for _, s := range []ReservationStatus{StatusRejected, StatusCompleted, StatusCancelled} {
        if !s.Terminal() {
            t.Fatalf("%s should be terminal", s)
        }
    }
    for _, s := range []ReservationStatus{StatusPending, StatusConfirmed} {
        if s.Terminal() {
            t.Fatalf("%s should not be terminal", s)
        }
    }
    // completed and cancelled are fully absorbing; rejected only admits a
    // captain withdrawal.
    for _, s := range []ReservationStatus{StatusCompleted, StatusCancelled} {
        for _, to := range []ReservationStatus{StatusPending, StatusConfirmed, StatusRejected, StatusCompleted, StatusCancelled} {
            if CanTransition(s, to) {
                t.Fatalf("absorbing state %s should have no outbound transition, allowed %s", s, to)
            }
        }
    }
}

func TestParseReservationStatus(t *testing.T) {
    if _, err := ParseReservationStatus("confirmed"); err != nil {
        t.Fatalf("unexpected error: %v", err)
    }
    if _, err := ParseReservationStatus("booked"); err == nil {
        t.Fatalf("expected error for unknown status")
    }
}

func TestParseApprovalStatus(t *testing.T) {
    if _, err := ParseApprovalStatus("approved"); err != nil {
        t.Fatalf("unexpected error: %v", err)
    }
    if _, err := ParseApprovalStatus("maybe"); err == nil {
        t.Fatalf("expected error for unknown approval status")
    }
}
