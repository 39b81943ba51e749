package model

import "fmt"

// Severity buckets a projection for client-side styling.  It mirrors the
// badge colors of the web UI without prescribing any of them.
type Severity string

const (
    SeverityInfo    Severity = "info"    // neutral / waiting on someone else
    SeverityWarning Severity = "warning" // waiting on the viewer's side
    SeveritySuccess Severity = "success" // approved or confirmed
    SeverityDanger  Severity = "danger"  // rejected
    SeverityMuted   Severity = "muted"   // completed or cancelled
)

// Projection is the role-relative rendering of a reservation's approval
// state: a human-facing label, an icon category and a severity bucket.
type Projection struct {
    Label    string   `json:"label"`
    Icon     string   `json:"icon"`
    Severity Severity `json:"severity"`
}

// Project renders a reservation's raw state for one viewing role.  It is
// a pure function: identical inputs always produce the identical
// projection for all three roles, which keeps it trivially unit-testable
// and safe to memoize.  Terminal-state and confirmed reservations project
// the same for every viewer; only a pending reservation is role-relative.
func Project(status ReservationStatus, terminal, provider ApprovalStatus, viewer Role) Projection {
    switch status {
    case StatusCompleted:
        return Projection{Label: "Completed", Icon: "package", Severity: SeverityMuted}
    case StatusCancelled:
        return Projection{Label: "Cancelled", Icon: "x-circle", Severity: SeverityMuted}
    case StatusRejected:
        return Projection{Label: "Rejected", Icon: "x-circle", Severity: SeverityDanger}
    case StatusConfirmed:
        return Projection{Label: "Confirmed", Icon: "check-circle", Severity: SeveritySuccess}
    }

    // status is pending: show the viewer what they are waiting on.
    switch viewer {
    case RoleTerminal:
        return pendingSideProjection(terminal, provider, "Terminal", "Provider")
    case RoleProvider:
        return pendingSideProjection(provider, terminal, "Provider", "Terminal")
    case RoleCaptain:
        if terminal == ApprovalRejected || provider == ApprovalRejected {
            // Reconcile normally flips status before a captain sees this.
            return Projection{Label: "Rejected", Icon: "x-circle", Severity: SeverityDanger}
        }
        approved := 0
        for _, t := range []ApprovalStatus{terminal, provider} {
            if t == ApprovalApproved {
                approved++
            }
        }
        if approved == 0 {
            return Projection{Label: "Awaiting Approvals", Icon: "clock", Severity: SeverityWarning}
        }
        // approved == 2 is unreachable while pending: Reconcile would
        // already have confirmed the reservation.
        return Projection{Label: fmt.Sprintf("%d/2 Approved", approved), Icon: "clock", Severity: SeverityWarning}
    }
    return Projection{Label: "Unknown", Icon: "alert-circle", Severity: SeverityInfo}
}

// pendingSideProjection renders the pending view for one of the two
// approving parties.  self is the viewer's own track, other the opposite
// party's track; selfName and otherName are the display names for each.
func pendingSideProjection(self, other ApprovalStatus, selfName, otherName string) Projection {
    if self == ApprovalPending {
        return Projection{Label: "Awaiting " + selfName, Icon: "clock", Severity: SeverityWarning}
    }
    if other == ApprovalPending {
        return Projection{Label: "Awaiting " + otherName, Icon: "clock", Severity: SeverityInfo}
    }
    return Projection{Label: selfName + " Approved", Icon: "check", Severity: SeveritySuccess}
}
