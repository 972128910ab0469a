package errors

import "errors"

// This package defines the centralized set of sentinel errors for the
// application. Services return these specific, recognizable errors without
// coupling themselves to HTTP status codes; the API layer checks them with
// `errors.Is()` and maps them to the right responses, and the conversation
// orchestrator uses them to tell the distinct failure categories of a turn
// apart.

var (
	// ErrNotFound signifies that a requested resource could not be located.
	// Typically mapped to a 404 Not Found HTTP status.
	ErrNotFound = errors.New("resource not found")

	// ErrValidation signifies that input data provided by a client failed
	// business rule validation.
	// Typically mapped to a 400 Bad Request HTTP status.
	ErrValidation = errors.New("validation failed")

	// ErrConflict signifies that an operation conflicts with the current
	// state of a resource (e.g., adding a credential profile under a name
	// that already exists).
	// Typically mapped to a 409 Conflict HTTP status.
	ErrConflict = errors.New("resource conflict")

	// ErrConfiguration signifies that no API credential could be resolved.
	// A turn failing with this error has had no side effects: no message is
	// appended and no network call is made.
	// Typically mapped to a 412 Precondition Failed HTTP status.
	ErrConfiguration = errors.New("no api credential configured")

	// ErrBackendDown signifies that the retrieval service reported, inside
	// an otherwise successful response stream, that its own database
	// backend is unreachable. It aborts the turn before the LLM is called
	// and is surfaced to the user distinctly from generic transport
	// failures.
	// Typically mapped to a 502 Bad Gateway HTTP status.
	ErrBackendDown = errors.New("retrieval backend unavailable")

	// ErrPersistence signifies that durable state could not be written.
	// Reads of malformed state are absorbed at the store boundary and never
	// produce this error; writes re-throw it so the caller can warn the
	// user that history may not be saved.
	ErrPersistence = errors.New("persistence failed")

	// ErrInternal signifies an unexpected error on the server, used to
	// avoid leaking implementation details to the client.
	// Typically mapped to a 500 Internal Server Error HTTP status.
	ErrInternal = errors.New("internal server error")
)
