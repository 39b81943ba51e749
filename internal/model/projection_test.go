package model

import "testing"

func TestProjectTerminalStatesIgnoreViewer(t *testing.T) {
    roles := []Role{RoleCaptain, RoleProvider, RoleTerminal}
    cases := []struct {
        status ReservationStatus
        label  string
    }{
        {StatusCompleted, "Completed"},
        {StatusCancelled, "Cancelled"},
        {StatusRejected, "Rejected"},
        {StatusConfirmed, "Confirmed"},
    }
    for _, c := range cases {
        first := Project(c.status, ApprovalApproved, ApprovalApproved, roles[0])
        if first.Label != c.label {
            t.Fatalf("Project(%s) label = %q, want %q", c.status, first.Label, c.label)
        }
        for _, r := range roles[1:] {
            if got := Project(c.status, ApprovalApproved, ApprovalApproved, r); got != first {
                t.Fatalf("Project(%s) differs for viewer %s: %+v vs %+v", c.status, r, got, first)
            }
        }
    }
}

func TestProjectPendingBothTracksPending(t *testing.T) {
    if got := Project(StatusPending, ApprovalPending, ApprovalPending, RoleCaptain); got.Label != "Awaiting Approvals" {
        t.Fatalf("captain label = %q, want Awaiting Approvals", got.Label)
    }
    if got := Project(StatusPending, ApprovalPending, ApprovalPending, RoleTerminal); got.Label != "Awaiting Terminal" {
        t.Fatalf("terminal label = %q, want Awaiting Terminal", got.Label)
    }
    if got := Project(StatusPending, ApprovalPending, ApprovalPending, RoleProvider); got.Label != "Awaiting Provider" {
        t.Fatalf("provider label = %q, want Awaiting Provider", got.Label)
    }
}

func TestProjectPendingTerminalApprovedProviderPending(t *testing.T) {
    if got := Project(StatusPending, ApprovalApproved, ApprovalPending, RoleTerminal); got.Label != "Awaiting Provider" {
        t.Fatalf("terminal viewer label = %q, want Awaiting Provider", got.Label)
    }
    // The provider's own track is still pending, so the provider is the
    // party being waited on.
    if got := Project(StatusPending, ApprovalApproved, ApprovalPending, RoleProvider); got.Label != "Awaiting Provider" {
        t.Fatalf("provider viewer label = %q, want Awaiting Provider", got.Label)
    }
    if got := Project(StatusPending, ApprovalApproved, ApprovalPending, RoleCaptain); got.Label != "1/2 Approved" {
        t.Fatalf("captain viewer label = %q, want 1/2 Approved", got.Label)
    }
}

func TestProjectPendingProviderApprovedTerminalPending(t *testing.T) {
    if got := Project(StatusPending, ApprovalPending, ApprovalApproved, RoleProvider); got.Label != "Awaiting Terminal" {
        t.Fatalf("provider viewer label = %q, want Awaiting Terminal", got.Label)
    }
    if got := Project(StatusPending, ApprovalPending, ApprovalApproved, RoleTerminal); got.Label != "Awaiting Terminal" {
        t.Fatalf("terminal viewer label = %q, want Awaiting Terminal", got.Label)
    }
    if got := Project(StatusPending, ApprovalPending, ApprovalApproved, RoleCaptain); got.Label != "1/2 Approved" {
        t.Fatalf("captain viewer label = %q, want 1/2 Approved", got.Label)
    }
}

func TestProjectPure(t *testing.T) {
    // Same inputs must always yield the same projection.
    for i := 0; i < 3; i++ {
        a := Project(StatusPending, ApprovalApproved, ApprovalPending, RoleCaptain)
        b := Project(StatusPending, ApprovalApproved, ApprovalPending, RoleCaptain)
        if a != b {
            t.Fatalf("Project not referentially transparent: %+v vs %+v", a, b)
        }
    }
}
