package model

import "time"

// User represents an account row in the `users` table.  A user holds
// exactly one Role which never changes after registration.  Terminal
// operators additionally carry the port they are assigned to; PortID is
// zero for captains and providers.
//
// Fields:
//  ID           – primary key identifier.
//  Email        – unique email address.
//  Name         – display name.
//  PasswordHash – bcrypt hashed password.
//  Role         – captain, provider or terminal.
//  Company      – optional company or shipping line.
//  PortID       – assigned port for terminal operators (0 when unset).
//  CreatedAt    – timestamp of creation.
//  UpdatedAt    – timestamp of last update.
type User struct {
    ID           uint64    // users.id
    Email        string    // users.email
    Name         string    // users.name
    PasswordHash string    // users.password_hash
    Role         Role      // users.role
    Company      *string   // users.company (nullable)
    PortID       uint64    // users.port_id (0 unless role is terminal)
    CreatedAt    time.Time // users.created_at
    UpdatedAt    time.Time // users.updated_at
}
