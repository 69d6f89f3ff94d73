package repositories

import "errors"

// ErrNotFound is returned when a requested row does not exist. Services map
// it onto their own user-facing not-found errors.
var ErrNotFound = errors.New("record niet gevonden")
