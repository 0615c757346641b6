package identity

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestVerifyRoundTrip(t *testing.T) {
	v := NewVerifier("test-secret", time.Hour)
	userId := uuid.New()

	token, err := v.Issue(userId, "EMP-001", "Alice Ivanova", "manager")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	claims, err := v.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.UserId != userId {
		t.Errorf("UserId = %s, want %s", claims.UserId, userId)
	}
	if claims.EmployeeCode != "EMP-001" {
		t.Errorf("EmployeeCode = %q, want %q", claims.EmployeeCode, "EMP-001")
	}
	if claims.Name != "Alice Ivanova" {
		t.Errorf("Name = %q, want %q", claims.Name, "Alice Ivanova")
	}
	if claims.Role != "manager" {
		t.Errorf("Role = %q, want %q", claims.Role, "manager")
	}
}

func TestVerifyFailures(t *testing.T) {
	v := NewVerifier("test-secret", time.Hour)

	expired := NewVerifier("test-secret", -time.Minute)
	expiredToken, err := expired.Issue(uuid.New(), "EMP-002", "Bob", "employee")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	otherSecret := NewVerifier("other-secret", time.Hour)
	foreignToken, err := otherSecret.Issue(uuid.New(), "EMP-003", "Carol", "employee")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	tests := []struct {
		name  string
		token string
	}{
		{"empty token", ""},
		{"garbage token", "not.a.jwt"},
		{"expired token", expiredToken},
		{"wrong signature", foreignToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := v.Verify(tt.token)
			if !errors.Is(err, ErrInvalidCredential) {
				t.Errorf("Verify(%s) error = %v, want ErrInvalidCredential", tt.name, err)
			}
		})
	}
}
