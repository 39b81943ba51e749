package repository

import (
    "context"
    "database/sql"
    "strings"

    "github.com/portconnect/portconnect-backend/internal/model"
    "github.com/portconnect/portconnect-backend/internal/utils"
)

// UserRepo provides persistence for accounts.  Roles are stored as enum
// strings and validated by the model before they reach this layer; the
// role column is never updated after insertion.
type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

// Create inserts a user and returns its ID.  PortID is persisted as NULL
// for non-terminal roles.
func (r *UserRepo) Create(ctx context.Context, email, name, password string, role model.Role, company *string, portID uint64, cost int) (uint64, error) {
    email = strings.ToLower(strings.TrimSpace(email))
    hash, err := utils.HashPassword(password, cost)
    if err != nil {
        return 0, err
    }
    var port interface{}
    if role == model.RoleTerminal && portID != 0 {
        port = portID
    }
    res, err := r.DB.ExecContext(ctx,
        "INSERT INTO users (email, name, password_hash, role, company, port_id) VALUES (?,?,?,?,?,?)",
        email, name, hash, string(role), company, port)
    if err != nil {
        if strings.Contains(strings.ToLower(err.Error()), "1062") {
            return 0, ErrEmailExists
        }
        return 0, err
    }
    id, err := res.LastInsertId()
    if err != nil {
        return 0, err
    }
    return uint64(id), nil
}

// GetByEmail fetches a user by normalized email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (model.User, error) {
    email = strings.ToLower(strings.TrimSpace(email))
    return r.scanOne(r.DB.QueryRowContext(ctx,
        "SELECT id,email,name,password_hash,role,company,port_id,created_at,updated_at FROM users WHERE email=? LIMIT 1",
        email))
}

// GetByID fetches a user by id.
func (r *UserRepo) GetByID(ctx context.Context, id uint64) (model.User, error) {
    return r.scanOne(r.DB.QueryRowContext(ctx,
        "SELECT id,email,name,password_hash,role,company,port_id,created_at,updated_at FROM users WHERE id=? LIMIT 1",
        id))
}

func (r *UserRepo) scanOne(row *sql.Row) (model.User, error) {
    var (
        u       model.User
        role    string
        company sql.NullString
        portID  sql.NullInt64
    )
    err := row.Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash, &role, &company, &portID, &u.CreatedAt, &u.UpdatedAt)
    if err != nil {
        return u, err
    }
    u.Role = model.Role(role)
    if company.Valid {
        c := company.String
        u.Company = &c
    }
    if portID.Valid {
        u.PortID = uint64(portID.Int64)
    }
    return u, nil
}
