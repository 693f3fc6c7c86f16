package repository

import "errors"

// ErrNotFound is returned when a requested record does not exist in the database.
var ErrNotFound = errors.New("not found")

// ErrUnavailable is returned when the database is not configured or not
// reachable. It lets callers tell "no data" apart from "service down".
var ErrUnavailable = errors.New("store unavailable")
