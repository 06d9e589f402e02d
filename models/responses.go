package models

import "time"

// APIError is the structured error body returned for every non-2xx response
// that carries a payload (404 lookups, 400 validation failures, 500 store
// failures).
type APIError struct {
	// Timestamp is the moment the error response was produced,
	// serialized in ISO-8601 (RFC 3339) format.
	Timestamp time.Time `json:"timestamp"`

	// Status is the HTTP status code of the response, duplicated in the
	// body so clients can log the full error without keeping the
	// response object around.
	Status int `json:"status"`

	// Error is a short human-readable description of what went wrong.
	Error string `json:"error"`

	// Path is the request path that produced the error,
	// e.g. "/employees/999".
	Path string `json:"path"`
}
