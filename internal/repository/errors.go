package repository

import "errors"

// ErrNotFound is a repository-specific sentinel error, returned when a query
// for a single entity (e.g., GetChat) finds nothing.
//
// The service layer checks for this error and translates it into a
// domain-level error, keeping the business logic decoupled from the data
// access implementation.
var ErrNotFound = errors.New("repository: not found")
