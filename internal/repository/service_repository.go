package repository

import (
    "context"
    "database/sql"

    "github.com/portconnect/portconnect-backend/internal/model"
)

// ServiceRepo provides CRUD access to the services offered at ports.
// Mutations are scoped to the owning provider: every UPDATE carries a
// provider_id predicate and an affected-rows check, so a provider can
// never modify another provider's offering.
type ServiceRepo struct{ db *sql.DB }

func NewServiceRepo(db *sql.DB) *ServiceRepo { return &ServiceRepo{db: db} }

// DB exposes the underlying handle for starting transactions.
func (r *ServiceRepo) DB() *sql.DB { return r.db }

const serviceColumns = `id, name, type, description, port_id, provider_id, price_per_hour, availability, created_at, updated_at`

func scanService(row interface{ Scan(...interface{}) error }) (model.Service, error) {
    var (
        s     model.Service
        typ   string
        desc  sql.NullString
        price sql.NullFloat64
    )
    err := row.Scan(&s.ID, &s.Name, &typ, &desc, &s.PortID, &s.ProviderID, &price, &s.Availability, &s.CreatedAt, &s.UpdatedAt)
    if err != nil {
        return s, err
    }
    s.Type = model.ServiceType(typ)
    if desc.Valid {
        d := desc.String
        s.Description = &d
    }
    if price.Valid {
        p := price.Float64
        s.PricePerHour = &p
    }
    return s, nil
}

// Create inserts a service owned by the given provider and returns the
// stored row.
func (r *ServiceRepo) Create(ctx context.Context, providerID uint64, name string, typ model.ServiceType, description *string, portID uint64, pricePerHour *float64) (model.Service, error) {
    res, err := r.db.ExecContext(ctx,
        `INSERT INTO services (name, type, description, port_id, provider_id, price_per_hour, availability)
         VALUES (?,?,?,?,?,?,TRUE)`,
        name, string(typ), description, portID, providerID, pricePerHour)
    if err != nil {
        return model.Service{}, err
    }
    id, err := res.LastInsertId()
    if err != nil {
        return model.Service{}, err
    }
    return r.GetByID(ctx, uint64(id))
}

// GetByID fetches one service regardless of owner.
func (r *ServiceRepo) GetByID(ctx context.Context, id uint64) (model.Service, error) {
    return scanService(r.db.QueryRowContext(ctx,
        `SELECT `+serviceColumns+` FROM services WHERE id=? LIMIT 1`, id))
}

// Update modifies a service's mutable fields on behalf of its provider.
// ErrForbidden is returned when the service exists but belongs to a
// different provider; sql.ErrNoRows when it does not exist.
func (r *ServiceRepo) Update(ctx context.Context, id, providerID uint64, name string, typ model.ServiceType, description *string, pricePerHour *float64, availability bool) (model.Service, error) {
    var ownerID uint64
    err := r.db.QueryRowContext(ctx, `SELECT provider_id FROM services WHERE id=?`, id).Scan(&ownerID)
    if err != nil {
        return model.Service{}, err
    }
    if ownerID != providerID {
        return model.Service{}, ErrForbidden
    }
    _, err = r.db.ExecContext(ctx,
        `UPDATE services SET name=?, type=?, description=?, price_per_hour=?, availability=?, updated_at=NOW()
         WHERE id=? AND provider_id=?`,
        name, string(typ), description, pricePerHour, availability, id, providerID)
    if err != nil {
        return model.Service{}, err
    }
    return r.GetByID(ctx, id)
}

// SetAvailability toggles whether the service accepts new reservations.
func (r *ServiceRepo) SetAvailability(ctx context.Context, id, providerID uint64, available bool) error {
    res, err := r.db.ExecContext(ctx,
        `UPDATE services SET availability=?, updated_at=NOW() WHERE id=? AND provider_id=?`,
        available, id, providerID)
    if err != nil {
        return err
    }
    n, err := res.RowsAffected()
    if err != nil {
        return err
    }
    if n == 0 {
        // Either absent or owned by someone else; resolve which.
        var ownerID uint64
        if err := r.db.QueryRowContext(ctx, `SELECT provider_id FROM services WHERE id=?`, id).Scan(&ownerID); err != nil {
            return err
        }
        if ownerID != providerID {
            return ErrForbidden
        }
    }
    return nil
}

// Delete removes a provider's own service.  Reservations referencing the
// service block deletion at the foreign key; surfacing that as an error
// is acceptable since providers are expected to disable availability
// instead of deleting a booked service.
func (r *ServiceRepo) Delete(ctx context.Context, id, providerID uint64) error {
    var ownerID uint64
    err := r.db.QueryRowContext(ctx, `SELECT provider_id FROM services WHERE id=?`, id).Scan(&ownerID)
    if err != nil {
        return err
    }
    if ownerID != providerID {
        return ErrForbidden
    }
    _, err = r.db.ExecContext(ctx, `DELETE FROM services WHERE id=? AND provider_id=?`, id, providerID)
    return err
}

// ListByProvider returns all services owned by one provider, newest
// first.
func (r *ServiceRepo) ListByProvider(ctx context.Context, providerID uint64) ([]model.Service, error) {
    return r.list(ctx,
        `SELECT `+serviceColumns+` FROM services WHERE provider_id=? ORDER BY created_at DESC`, providerID)
}

// ListByPort returns every service at a port, including currently
// unavailable ones.  Terminal operators see the full picture for their
// assigned port, not only their own creations.
func (r *ServiceRepo) ListByPort(ctx context.Context, portID uint64) ([]model.Service, error) {
    return r.list(ctx,
        `SELECT `+serviceColumns+` FROM services WHERE port_id=? ORDER BY created_at DESC`, portID)
}

// ListAvailable returns bookable services for captain browsing, filtered
// optionally by port and type.
func (r *ServiceRepo) ListAvailable(ctx context.Context, portID uint64, typ model.ServiceType) ([]model.Service, error) {
    q := `SELECT ` + serviceColumns + ` FROM services WHERE availability = TRUE`
    args := make([]interface{}, 0, 2)
    if portID != 0 {
        q += ` AND port_id=?`
        args = append(args, portID)
    }
    if typ != "" {
        q += ` AND type=?`
        args = append(args, string(typ))
    }
    q += ` ORDER BY port_id, name`
    return r.list(ctx, q, args...)
}

func (r *ServiceRepo) list(ctx context.Context, query string, args ...interface{}) ([]model.Service, error) {
    rows, err := r.db.QueryContext(ctx, query, args...)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    out := make([]model.Service, 0)
    for rows.Next() {
        s, err := scanService(rows)
        if err != nil {
            return nil, err
        }
        out = append(out, s)
    }
    return out, rows.Err()
}
