package utils

import (
    "testing"

    "github.com/golang-jwt/jwt/v5"
)

func parseClaims(t *testing.T, secret, raw string) jwt.MapClaims {
    t.Helper()
    tok, err := jwt.Parse(raw, func(tk *jwt.Token) (interface{}, error) {
        return []byte(secret), nil
    })
    if err != nil || !tok.Valid {
        t.Fatalf("parse token: %v", err)
    }
    claims, ok := tok.Claims.(jwt.MapClaims)
    if !ok {
        t.Fatalf("claims are not MapClaims")
    }
    return claims
}

func TestNewAccessTokenClaims(t *testing.T) {
    const secret = "test-secret"
    at, err := NewAccessToken(secret, 42, "terminal", 7, 15)
    if err != nil {
        t.Fatalf("NewAccessToken: %v", err)
    }
    claims := parseClaims(t, secret, at.Token)
    if got := claims["sub"].(float64); uint64(got) != 42 {
        t.Fatalf("sub = %v, want 42", got)
    }
    if got := claims["role"].(string); got != "terminal" {
        t.Fatalf("role = %q, want terminal", got)
    }
    if got := claims["port_id"].(float64); uint64(got) != 7 {
        t.Fatalf("port_id = %v, want 7", got)
    }
}

func TestNewAccessTokenOmitsZeroPort(t *testing.T) {
    const secret = "test-secret"
    at, err := NewAccessToken(secret, 9, "captain", 0, 15)
    if err != nil {
        t.Fatalf("NewAccessToken: %v", err)
    }
    claims := parseClaims(t, secret, at.Token)
    if _, ok := claims["port_id"]; ok {
        t.Fatalf("port_id claim present for non-terminal user")
    }
}

func TestRefreshTokenHashing(t *testing.T) {
    rt, err := NewRefreshToken(14)
    if err != nil {
        t.Fatalf("NewRefreshToken: %v", err)
    }
    if len(rt.Raw) != 96 {
        t.Fatalf("raw length = %d, want 96", len(rt.Raw))
    }
    h1 := HashRefreshRaw(rt.Raw)
    h2 := HashRefreshRaw(rt.Raw)
    if h1 != h2 {
        t.Fatalf("hash is not deterministic")
    }
    if len(h1) != 64 {
        t.Fatalf("hash length = %d, want 64", len(h1))
    }
    other, err := NewRefreshToken(14)
    if err != nil {
        t.Fatalf("NewRefreshToken: %v", err)
    }
    if HashRefreshRaw(other.Raw) == h1 {
        t.Fatalf("distinct tokens produced the same hash")
    }
}
