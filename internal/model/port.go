package model

import "time"

// Port is a row in the `ports` table.  A port owns zero or more services
// and has exactly one assigned terminal operator; the assignment lives on
// the users table (users.port_id), not here.
//
// Fields:
//  ID        – primary key identifier.
//  Name      – human-readable port name.
//  Code      – short UN/LOCODE-style code, unique.
//  Location  – free-text location description.
//  Timezone  – IANA timezone name for local scheduling.
//  CreatedAt – timestamp of creation.
//  UpdatedAt – timestamp of last update.
type Port struct {
    ID        uint64    // ports.id
    Name      string    // ports.name
    Code      string    // ports.code
    Location  string    // ports.location
    Timezone  string    // ports.timezone
    CreatedAt time.Time // ports.created_at
    UpdatedAt time.Time // ports.updated_at
}
