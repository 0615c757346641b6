package service

import "errors"

var (
	// ErrDepartmentMismatch is returned when the authenticated user's stored
	// department does not match the room they are joining or sending to.
	ErrDepartmentMismatch = errors.New("department mismatch")

	// ErrMalformedRequest is returned for events missing required fields.
	ErrMalformedRequest = errors.New("malformed request")

	// ErrPersistence wraps storage failures. Messages that fail to persist
	// are never broadcast.
	ErrPersistence = errors.New("persistence failure")
)
