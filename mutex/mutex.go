// Package mutex provides an explicit lock plus a scope-bound guard.
//
// The guard is the only mutual-exclusion discipline the rest of this module
// uses: acquire on construction, release with defer, so the lock is released
// on every exit path including panics.
package mutex

import "sync"

// Mutex is a mutual exclusion lock with explicit acquire and release. It is
// not reentrant: a goroutine holding the lock must not acquire it again.
//
// The zero value is an unlocked Mutex. A Mutex must not be copied after
// first use.
type Mutex struct {
	mu sync.Mutex
}

// Acquire blocks until the lock is held by the caller.
func (m *Mutex) Acquire() {
	m.mu.Lock()
}

// Release unlocks. Releasing a Mutex the caller does not hold is a fatal
// runtime error, same as with sync.Mutex.
func (m *Mutex) Release() {
	m.mu.Unlock()
}

// Held is an acquired lock, produced by Guard.
type Held struct {
	m *Mutex
}

// Guard acquires m and returns the held lock. Intended use:
//
//	defer mutex.Guard(&m).Release()
//
// That one line covers normal returns, early returns and panics alike.
func Guard(m *Mutex) Held {
	m.Acquire()
	return Held{m: m}
}

// Release gives the lock back.
func (h Held) Release() {
	h.m.Release()
}
