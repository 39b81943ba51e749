package model

import "testing"

func TestParseRole(t *testing.T) {
    for _, s := range []string{"captain", "Provider", " TERMINAL "} {
        if _, err := ParseRole(s); err != nil {
            t.Fatalf("ParseRole(%q) unexpected error: %v", s, err)
        }
    }
    if _, err := ParseRole("admin"); err == nil {
        t.Fatalf("expected error for unknown role")
    }
}

func TestRoleCapabilities(t *testing.T) {
    cases := []struct {
        role   Role
        action Action
        want   bool
    }{
        {RoleTerminal, ActionDecideTerminal, true},
        {RoleTerminal, ActionDecideProvider, false},
        {RoleTerminal, ActionComplete, false},
        {RoleTerminal, ActionCancel, false},
        {RoleProvider, ActionDecideProvider, true},
        {RoleProvider, ActionDecideTerminal, false},
        {RoleProvider, ActionComplete, true},
        {RoleProvider, ActionCancel, false},
        {RoleCaptain, ActionCancel, true},
        {RoleCaptain, ActionComplete, false},
        {RoleCaptain, ActionDecideTerminal, false},
        {RoleCaptain, ActionDecideProvider, false},
    }
    for _, c := range cases {
        if got := c.role.Can(c.action); got != c.want {
            t.Fatalf("%s.Can(%s) = %v, want %v", c.role, c.action, got, c.want)
        }
    }
}
