package repository

import (
    "context"
    "database/sql"
    "strings"

    "github.com/portconnect/portconnect-backend/internal/model"
)

// PortRepo provides read and insert access to ports.  Ports are largely
// static reference data; the assignment of a terminal operator to a port
// lives on the users table.
type PortRepo struct{ DB *sql.DB }

func NewPortRepo(db *sql.DB) *PortRepo { return &PortRepo{DB: db} }

// Create inserts a port and returns its ID.  Codes are normalized to
// upper case before insertion.
func (r *PortRepo) Create(ctx context.Context, name, code, location, timezone string) (uint64, error) {
    code = strings.ToUpper(strings.TrimSpace(code))
    if timezone == "" {
        timezone = "UTC"
    }
    res, err := r.DB.ExecContext(ctx,
        "INSERT INTO ports (name, code, location, timezone) VALUES (?,?,?,?)",
        name, code, location, timezone)
    if err != nil {
        return 0, err
    }
    id, err := res.LastInsertId()
    if err != nil {
        return 0, err
    }
    return uint64(id), nil
}

// GetByID fetches a single port.  sql.ErrNoRows is returned when the
// port does not exist.
func (r *PortRepo) GetByID(ctx context.Context, id uint64) (model.Port, error) {
    var p model.Port
    err := r.DB.QueryRowContext(ctx,
        "SELECT id, name, code, location, timezone, created_at, updated_at FROM ports WHERE id=? LIMIT 1",
        id).Scan(&p.ID, &p.Name, &p.Code, &p.Location, &p.Timezone, &p.CreatedAt, &p.UpdatedAt)
    return p, err
}

// List returns all ports ordered by name.  An empty slice is returned
// when none exist.
func (r *PortRepo) List(ctx context.Context) ([]model.Port, error) {
    rows, err := r.DB.QueryContext(ctx,
        "SELECT id, name, code, location, timezone, created_at, updated_at FROM ports ORDER BY name")
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    out := make([]model.Port, 0)
    for rows.Next() {
        var p model.Port
        if err := rows.Scan(&p.ID, &p.Name, &p.Code, &p.Location, &p.Timezone, &p.CreatedAt, &p.UpdatedAt); err != nil {
            return nil, err
        }
        out = append(out, p)
    }
    return out, rows.Err()
}
