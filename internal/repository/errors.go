package repository

import "errors"

// ErrListNotFound is returned when no list in the resolved site matches the
// configured display name. The wrapping error carries the name itself.
var ErrListNotFound = errors.New("list not found")
