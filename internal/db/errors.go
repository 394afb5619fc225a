package db

import "errors"

// Sentinel errors for store operations.
var (
	ErrIndexNotFound = errors.New("db: index not found")
	ErrIndexExists   = errors.New("db: index already exists")
)

// Op names identify the backend operation in Error.
const (
	OpPing        = "PING"
	OpCreateIndex = "CREATE_INDEX"
	OpIndexExists = "INDEX_EXISTS"
	OpIndex       = "INDEX"
	OpSearch      = "SEARCH"
)

// Error wraps an underlying error with the operation name for diagnostics.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string { return e.Op + ": " + e.Err.Error() }
func (e *Error) Unwrap() error { return e.Err }
