// Package repository wraps the MongoDB collections behind small interfaces
// so controllers can be wired against a fake in tests. Sentinel errors let
// handlers distinguish failure scenarios: ErrNotFound maps to an HTTP 404,
// ErrAlreadyPaid to an HTTP 409.
package repository

import "errors"

// ErrNotFound is returned when a lookup matches no document.
var ErrNotFound = errors.New("not found")

// ErrAlreadyPaid is returned when a payment is attempted for a flight whose
// booking is already paid for.
var ErrAlreadyPaid = errors.New("already paid")
