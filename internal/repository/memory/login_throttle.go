package memory

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// LoginThrottle counts failed login attempts per employee code with a TTL,
// locking out further attempts after maxAttempts failures inside the window.
type LoginThrottle struct {
	cache       *cache.Cache
	maxAttempts int
}

func NewLoginThrottle(maxAttempts int, window time.Duration) *LoginThrottle {
	c := cache.New(window, 10*time.Minute)
	return &LoginThrottle{
		cache:       c,
		maxAttempts: maxAttempts,
	}
}

func (t *LoginThrottle) Blocked(employeeCode string) bool {
	if x, found := t.cache.Get(employeeCode); found {
		return x.(int) >= t.maxAttempts
	}
	return false
}

func (t *LoginThrottle) RecordFailure(employeeCode string) {
	if x, found := t.cache.Get(employeeCode); found {
		t.cache.Set(employeeCode, x.(int)+1, cache.DefaultExpiration)
		return
	}
	t.cache.Set(employeeCode, 1, cache.DefaultExpiration)
}

func (t *LoginThrottle) Reset(employeeCode string) {
	t.cache.Delete(employeeCode)
}
