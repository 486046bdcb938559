// Package session tracks which refresh credentials are still honored by the
// server. The signed refresh token alone is not enough to mint new access
// tokens; its jti must also have a live entry here. Revoking the entry is what
// makes logout and server-side session kill possible with otherwise stateless
// tokens.
//
// The ledger is process-local and lost on restart: sessions issued before a
// restart can no longer refresh, though re-login always works. Deployments
// needing multi-process revocation should put an implementation of Ledger in
// front of an external store with native TTL support.
package session

import (
	"sync"
	"time"
)

// Ledger is the registry of currently-valid refresh credential identifiers.
type Ledger interface {
	// Register inserts or overwrites the entry for (userID, jti) with
	// expiry = now + ttl.
	Register(userID int64, jti string, ttl time.Duration)

	// IsLive reports whether a non-expired entry exists for (userID, jti).
	// An expired entry is removed as a side effect and reported absent.
	IsLive(userID int64, jti string) bool

	// Revoke removes the entry unconditionally. Revoking an absent entry
	// is not an error.
	Revoke(userID int64, jti string)
}

type ledgerKey struct {
	userID int64
	jti    string
}

// MemoryLedger is an in-process Ledger backed by a mutex-guarded map.
// Expired entries are evicted lazily on read; Sweep exists as an optimization
// so a long-idle process does not accumulate dead entries, but correctness
// never depends on it running.
type MemoryLedger struct {
	mu      sync.Mutex
	entries map[ledgerKey]time.Time

	// now is swappable for tests.
	now func() time.Time
}

// NewMemoryLedger creates an empty in-process ledger.
func NewMemoryLedger() *MemoryLedger {
	return &MemoryLedger{
		entries: make(map[ledgerKey]time.Time),
		now:     time.Now,
	}
}

// Register inserts or overwrites the entry for (userID, jti).
func (l *MemoryLedger) Register(userID int64, jti string, ttl time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries[ledgerKey{userID: userID, jti: jti}] = l.now().Add(ttl)
}

// IsLive reports whether a non-expired entry exists for (userID, jti),
// evicting the entry if it has expired.
func (l *MemoryLedger) IsLive(userID int64, jti string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	key := ledgerKey{userID: userID, jti: jti}
	expiry, ok := l.entries[key]
	if !ok {
		return false
	}
	if l.now().After(expiry) {
		delete(l.entries, key)
		return false
	}
	return true
}

// Revoke removes the entry for (userID, jti). Idempotent.
func (l *MemoryLedger) Revoke(userID int64, jti string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.entries, ledgerKey{userID: userID, jti: jti})
}

// Sweep removes all expired entries and returns how many were removed.
func (l *MemoryLedger) Sweep() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	removed := 0
	for key, expiry := range l.entries {
		if now.After(expiry) {
			delete(l.entries, key)
			removed++
		}
	}
	return removed
}

// LiveCount returns the number of non-expired entries for a user.
func (l *MemoryLedger) LiveCount(userID int64) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	count := 0
	for key, expiry := range l.entries {
		if key.userID == userID && !now.After(expiry) {
			count++
		}
	}
	return count
}
