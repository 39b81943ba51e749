// Package repository implements raw-SQL data access for the booking
// service.  This file defines sentinel errors shared by all repositories
// so that handlers can map failure kinds onto HTTP responses.  Not-found
// conditions are reported as sql.ErrNoRows, matching what QueryRow
// returns; visibility scoping happens inside the queries themselves so an
// unauthorized row is indistinguishable from an absent one wherever the
// caller could not already know the row exists.
package repository

import "errors"

// ErrForbidden is returned when the caller is not the party allowed to
// perform an operation on an existing record: a provider acting on
// another provider's reservation, a terminal operator acting outside
// their assigned port, a non-captain trying to cancel.  Handlers should
// translate this into an HTTP 403 response.
var ErrForbidden = errors.New("forbidden")

// ErrGuardViolation is returned when the caller is the right party but
// the reservation's current state does not permit the transition: a
// decided approval track being decided again, complete on a reservation
// that is not confirmed, cancel on a completed or cancelled reservation.
// The prior state is left untouched.  Handlers should translate this
// into an HTTP 409 response.
var ErrGuardViolation = errors.New("transition not permitted in current state")

// ErrEmailExists is returned by user creation when the email is taken.
var ErrEmailExists = errors.New("email already exists")
