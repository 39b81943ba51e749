package middleware

import (
    "net/http"
    "net/http/httptest"
    "testing"

    "github.com/labstack/echo/v4"

    "github.com/portconnect/portconnect-backend/internal/model"
    "github.com/portconnect/portconnect-backend/internal/utils"
)

func runWithRole(t *testing.T, mw echo.MiddlewareFunc, role string) int {
    t.Helper()
    e := echo.New()
    req := httptest.NewRequest(http.MethodGet, "/", nil)
    rec := httptest.NewRecorder()
    c := e.NewContext(req, rec)
    if role != "" {
        c.Set("role", role)
    }
    h := mw(func(c echo.Context) error { return c.NoContent(http.StatusOK) })
    if err := h(c); err != nil {
        t.Fatalf("handler error: %v", err)
    }
    return rec.Code
}

func TestRequireRole(t *testing.T) {
    mw := RequireRole(model.RoleTerminal)
    if code := runWithRole(t, mw, "terminal"); code != http.StatusOK {
        t.Fatalf("terminal role: code = %d, want 200", code)
    }
    if code := runWithRole(t, mw, "captain"); code != http.StatusForbidden {
        t.Fatalf("captain role: code = %d, want 403", code)
    }
    if code := runWithRole(t, mw, ""); code != http.StatusForbidden {
        t.Fatalf("missing role: code = %d, want 403", code)
    }
}

func TestRequireCapability(t *testing.T) {
    cases := []struct {
        action model.Action
        role   string
        want   int
    }{
        {model.ActionDecideTerminal, "terminal", http.StatusOK},
        {model.ActionDecideTerminal, "provider", http.StatusForbidden},
        {model.ActionDecideProvider, "provider", http.StatusOK},
        {model.ActionDecideProvider, "terminal", http.StatusForbidden},
        {model.ActionComplete, "provider", http.StatusOK},
        {model.ActionComplete, "captain", http.StatusForbidden},
        {model.ActionCancel, "captain", http.StatusOK},
        {model.ActionCancel, "provider", http.StatusForbidden},
    }
    for _, tc := range cases {
        if code := runWithRole(t, RequireCapability(tc.action), tc.role); code != tc.want {
            t.Fatalf("action %s as %s: code = %d, want %d", tc.action, tc.role, code, tc.want)
        }
    }
}

func TestJWTAuthStoresClaims(t *testing.T) {
    const secret = "secret"
    at, err := utils.NewAccessToken(secret, 11, "terminal", 3, 5)
    if err != nil {
        t.Fatalf("NewAccessToken: %v", err)
    }

    e := echo.New()
    req := httptest.NewRequest(http.MethodGet, "/", nil)
    req.Header.Set("Authorization", "Bearer "+at.Token)
    rec := httptest.NewRecorder()
    c := e.NewContext(req, rec)

    h := JWTAuth(secret)(func(c echo.Context) error { return c.NoContent(http.StatusOK) })
    if err := h(c); err != nil {
        t.Fatalf("handler error: %v", err)
    }
    if rec.Code != http.StatusOK {
        t.Fatalf("code = %d, want 200", rec.Code)
    }
    if got, ok := c.Get("user_id").(uint64); !ok || got != 11 {
        t.Fatalf("user_id = %v, want 11", c.Get("user_id"))
    }
    if got, ok := c.Get("role").(string); !ok || got != "terminal" {
        t.Fatalf("role = %v, want terminal", c.Get("role"))
    }
    if got, ok := c.Get("port_id").(uint64); !ok || got != 3 {
        t.Fatalf("port_id = %v, want 3", c.Get("port_id"))
    }
}

func TestJWTAuthRejectsMissingToken(t *testing.T) {
    e := echo.New()
    req := httptest.NewRequest(http.MethodGet, "/", nil)
    rec := httptest.NewRecorder()
    c := e.NewContext(req, rec)
    h := JWTAuth("secret")(func(c echo.Context) error { return c.NoContent(http.StatusOK) })
    if err := h(c); err != nil {
        t.Fatalf("handler error: %v", err)
    }
    if rec.Code != http.StatusUnauthorized {
        t.Fatalf("code = %d, want 401", rec.Code)
    }
}
