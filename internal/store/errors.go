package store

import "errors"

// ErrNotFound is returned when no entity with the given ID is owned by the
// caller. It does not distinguish "missing" from "owned by someone else".
var ErrNotFound = errors.New("record not found")

// ErrEmailTaken is returned when registering with an email that already exists.
var ErrEmailTaken = errors.New("email already registered")

// ErrInsufficientStock is returned when a sale asks for more units than the
// product currently has.
var ErrInsufficientStock = errors.New("insufficient stock")
