package memory

import (
	"testing"
	"time"
)

func TestLoginThrottle(t *testing.T) {
	throttle := NewLoginThrottle(3, time.Minute)

	if throttle.Blocked("EMP-001") {
		t.Fatal("fresh code should not be blocked")
	}

	throttle.RecordFailure("EMP-001")
	throttle.RecordFailure("EMP-001")
	if throttle.Blocked("EMP-001") {
		t.Fatal("blocked before reaching max attempts")
	}

	throttle.RecordFailure("EMP-001")
	if !throttle.Blocked("EMP-001") {
		t.Fatal("not blocked after max attempts")
	}

	// Other codes are unaffected.
	if throttle.Blocked("EMP-002") {
		t.Fatal("unrelated code blocked")
	}

	throttle.Reset("EMP-001")
	if throttle.Blocked("EMP-001") {
		t.Fatal("still blocked after reset")
	}
}
