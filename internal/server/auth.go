package server

import (
	"errors"
	"net/http"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// ErrUnauthorized is returned when a preview request carries a missing or wrong token.
var ErrUnauthorized = errors.New("unauthorized")

// checkToken compares the request's token query parameter against a bcrypt hash.
// An empty hash disables authentication.
func checkToken(r *http.Request, tokenHash string) error {
	if tokenHash == "" {
		return nil
	}
	token := r.URL.Query().Get("token")
	if token == "" {
		return ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(tokenHash), []byte(token)); err != nil {
		return ErrUnauthorized
	}
	return nil
}

// AuthLimiter locks out addresses that keep presenting bad tokens.
// Each repeated lockout doubles the previous one, up to a maximum.
type AuthLimiter struct {
	mu          sync.Mutex
	failures    map[string]*failureInfo
	maxFailures int
	lockout     time.Duration
	maxLockout  time.Duration
	now         func() time.Time
}

type failureInfo struct {
	count       int
	lockouts    int
	lockedUntil time.Time
}

// NewAuthLimiter creates a limiter. Zero values fall back to 5 failures,
// a 30s lockout and a 5m ceiling.
func NewAuthLimiter(maxFailures int, lockout, maxLockout time.Duration) *AuthLimiter {
	if maxFailures <= 0 {
		maxFailures = 5
	}
	if lockout <= 0 {
		lockout = 30 * time.Second
	}
	if maxLockout < lockout {
		maxLockout = 5 * time.Minute
		if maxLockout < lockout {
			maxLockout = lockout
		}
	}
	return &AuthLimiter{
		failures:    make(map[string]*failureInfo),
		maxFailures: maxFailures,
		lockout:     lockout,
		maxLockout:  maxLockout,
		now:         time.Now,
	}
}

// IsLocked reports whether ip is locked out and for how much longer.
func (l *AuthLimiter) IsLocked(ip string) (bool, time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()

	info, ok := l.failures[ip]
	if !ok {
		return false, 0
	}
	if remaining := info.lockedUntil.Sub(l.now()); remaining > 0 {
		return true, remaining
	}
	return false, 0
}

// RecordFailure counts a bad token from ip and reports whether it is now locked out.
func (l *AuthLimiter) RecordFailure(ip string) (bool, time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.prune(now)

	info, ok := l.failures[ip]
	if !ok {
		info = &failureInfo{}
		l.failures[ip] = info
	}
	if remaining := info.lockedUntil.Sub(now); remaining > 0 {
		return true, remaining
	}

	info.count++
	if info.count < l.maxFailures {
		return false, 0
	}

	info.lockouts++
	d := l.lockout
	for i := 1; i < info.lockouts && d < l.maxLockout; i++ {
		d *= 2
	}
	if d > l.maxLockout {
		d = l.maxLockout
	}
	info.lockedUntil = now.Add(d)
	info.count = 0
	return true, d
}

// RecordSuccess forgets the failure history of ip.
func (l *AuthLimiter) RecordSuccess(ip string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.failures, ip)
}

// prune drops entries whose lockout ended long ago and that have no pending failures.
// Caller must hold l.mu.
func (l *AuthLimiter) prune(now time.Time) {
	cutoff := now.Add(-2 * l.maxLockout)
	for ip, info := range l.failures {
		if info.count == 0 && info.lockedUntil.Before(cutoff) {
			delete(l.failures, ip)
		}
	}
}
