package repository

import "errors"

// ErrDuplicate is returned when an insert violates a unique index, so callers
// can turn the race between check and write into a clean conflict.
var ErrDuplicate = errors.New("duplicate key")
