package server

import (
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
)

func hashToken(t *testing.T, token string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(token), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hashing token: %v", err)
	}
	return string(hash)
}

func TestCheckToken(t *testing.T) {
	hash := hashToken(t, "open-sesame")

	tests := []struct {
		name    string
		hash    string
		url     string
		wantErr bool
	}{
		{"auth disabled", "", "/ws", false},
		{"correct token", hash, "/ws?token=open-sesame", false},
		{"wrong token", hash, "/ws?token=guess", true},
		{"missing token", hash, "/ws", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkToken(httptest.NewRequest("GET", tt.url, nil), tt.hash)
			if tt.wantErr && !errors.Is(err, ErrUnauthorized) {
				t.Errorf("checkToken() error = %v, want ErrUnauthorized", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("checkToken() unexpected error: %v", err)
			}
		})
	}
}

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestAuthLimiter(clock *fakeClock) *AuthLimiter {
	l := NewAuthLimiter(3, 10*time.Second, 30*time.Second)
	l.now = clock.now
	return l
}

func TestAuthLimiter_LocksAfterMaxFailures(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1_700_000_000, 0)}
	l := newTestAuthLimiter(clock)

	for i := 0; i < 2; i++ {
		if locked, _ := l.RecordFailure("1.2.3.4"); locked {
			t.Fatalf("failure %d should not lock", i+1)
		}
	}
	locked, d := l.RecordFailure("1.2.3.4")
	if !locked || d != 10*time.Second {
		t.Fatalf("third failure = (%v, %v), want (true, 10s)", locked, d)
	}

	if locked, _ := l.IsLocked("1.2.3.4"); !locked {
		t.Error("expected address to be locked")
	}
	if locked, _ := l.IsLocked("5.6.7.8"); locked {
		t.Error("other addresses must not be locked")
	}

	clock.advance(11 * time.Second)
	if locked, _ := l.IsLocked("1.2.3.4"); locked {
		t.Error("lockout should expire")
	}
}

func TestAuthLimiter_BackoffDoublesUpToMax(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1_700_000_000, 0)}
	l := newTestAuthLimiter(clock)

	want := []time.Duration{10 * time.Second, 20 * time.Second, 30 * time.Second, 30 * time.Second}
	for round, w := range want {
		var d time.Duration
		for i := 0; i < 3; i++ {
			_, d = l.RecordFailure("1.2.3.4")
		}
		if d != w {
			t.Errorf("lockout %d = %v, want %v", round+1, d, w)
		}
		clock.advance(d + time.Second)
	}
}

func TestAuthLimiter_SuccessClearsHistory(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1_700_000_000, 0)}
	l := newTestAuthLimiter(clock)

	l.RecordFailure("1.2.3.4")
	l.RecordFailure("1.2.3.4")
	l.RecordSuccess("1.2.3.4")

	if locked, _ := l.RecordFailure("1.2.3.4"); locked {
		t.Error("failure count should restart after success")
	}
}

func TestNewAuthLimiter_Defaults(t *testing.T) {
	l := NewAuthLimiter(0, 0, 0)
	if l.maxFailures != 5 || l.lockout != 30*time.Second || l.maxLockout != 5*time.Minute {
		t.Errorf("defaults = (%d, %v, %v), want (5, 30s, 5m)", l.maxFailures, l.lockout, l.maxLockout)
	}
}
