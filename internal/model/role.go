package model

import (
    "fmt"
    "strings"
)

// Role identifies what kind of account a user holds.  The role is fixed
// at registration and drives both row-level query scoping and which
// actions a user may attempt on a reservation.  All authorization
// decisions go through the capability methods below rather than ad-hoc
// string comparisons scattered across handlers.
type Role string

const (
    RoleCaptain  Role = "captain"  // requests services for a ship
    RoleProvider Role = "provider" // offers services and owns the provider approval track
    RoleTerminal Role = "terminal" // operates one port and owns the terminal approval track
)

// ParseRole normalizes and validates a role string.  Unknown values are
// rejected so that a mistyped role can never slip into a JWT claim or a
// users row.
func ParseRole(s string) (Role, error) {
    switch Role(strings.ToLower(strings.TrimSpace(s))) {
    case RoleCaptain:
        return RoleCaptain, nil
    case RoleProvider:
        return RoleProvider, nil
    case RoleTerminal:
        return RoleTerminal, nil
    default:
        return "", fmt.Errorf("unknown role: %q", s)
    }
}

// Action is an operation a user can attempt against a reservation.
type Action string

const (
    ActionDecideTerminal Action = "decide_terminal" // set the terminal approval track
    ActionDecideProvider Action = "decide_provider" // set the provider approval track
    ActionComplete       Action = "complete"        // mark a confirmed reservation completed
    ActionCancel         Action = "cancel"          // cancel a non-terminal reservation
)

// Can reports whether the role is permitted to attempt the action at all.
// It answers the "who" question only; state guards (is the reservation in
// a state where the action is legal) live in CanTransition and in the
// repository layer.  Each approval track is writable by exactly one role,
// completion belongs to the provider and cancellation to the captain.
func (r Role) Can(a Action) bool {
    switch a {
    case ActionDecideTerminal:
        return r == RoleTerminal
    case ActionDecideProvider:
        return r == RoleProvider
    case ActionComplete:
        return r == RoleProvider
    case ActionCancel:
        return r == RoleCaptain
    default:
        return false
    }
}
