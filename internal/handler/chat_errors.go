package handler

import (
	"errors"

	"corp-portal-be/internal/identity"
	"corp-portal-be/internal/service"
)

// joinErrorMessage maps a join failure to the message sent to the client
// before the connection is closed.
func joinErrorMessage(err error) string {
	switch {
	case errors.Is(err, identity.ErrInvalidCredential):
		return "Authentication failed"
	case errors.Is(err, service.ErrDepartmentMismatch):
		return "You can only join your own department chat"
	case errors.Is(err, service.ErrMalformedRequest):
		return "Missing credential or department"
	default:
		return "Could not join chat"
	}
}

func sendErrorMessage(err error) string {
	switch {
	case errors.Is(err, identity.ErrInvalidCredential):
		return "Authentication failed"
	case errors.Is(err, service.ErrDepartmentMismatch):
		return "You can only send to your own department chat"
	case errors.Is(err, service.ErrMalformedRequest):
		return "Message text and department are required"
	default:
		return "Message could not be delivered"
	}
}
