package handler

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"corp-portal-be/internal/identity"
	"corp-portal-be/internal/service"
)

func TestJoinErrorMessage(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		want string
	}{
		{"invalid credential", identity.ErrInvalidCredential, "Authentication failed"},
		{"department mismatch", service.ErrDepartmentMismatch, "You can only join your own department chat"},
		{"malformed", service.ErrMalformedRequest, "Missing credential or department"},
		{"wrapped persistence", fmt.Errorf("%w: timeout", service.ErrPersistence), "Could not join chat"},
		{"unknown", errors.New("boom"), "Could not join chat"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, joinErrorMessage(tc.err))
		})
	}
}

func TestSendErrorMessage(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		want string
	}{
		{"invalid credential", identity.ErrInvalidCredential, "Authentication failed"},
		{"department mismatch", service.ErrDepartmentMismatch, "You can only send to your own department chat"},
		{"missing text", service.ErrMalformedRequest, "Message text and department are required"},
		{"missing department", fmt.Errorf("%w: department", service.ErrMalformedRequest), "Message text and department are required"},
		{"unknown", errors.New("boom"), "Message could not be delivered"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, sendErrorMessage(tc.err))
		})
	}
}
