// Package locker serializes work on individual bank movements. A manual
// override blocks until it owns the movement; a reconciliation worker only
// tries, and skips the movement when an override holds it.
package locker

import (
	"sync"

	"github.com/google/uuid"
)

type entry struct {
	mu   sync.Mutex
	refs int
}

type Locker struct {
	mu      sync.Mutex
	entries map[uuid.UUID]*entry
}

func New() *Locker {
	return &Locker{
		entries: make(map[uuid.UUID]*entry),
	}
}

// Acquire blocks until the caller owns the movement.
func (l *Locker) Acquire(id uuid.UUID) {
	e := l.retain(id)
	e.mu.Lock()
}

// TryAcquire returns false without blocking when the movement is held.
func (l *Locker) TryAcquire(id uuid.UUID) bool {
	e := l.retain(id)
	if e.mu.TryLock() {
		return true
	}
	l.release(id)
	return false
}

// Release unlocks the movement and drops the entry once nobody waits on it.
func (l *Locker) Release(id uuid.UUID) {
	l.mu.Lock()
	e, ok := l.entries[id]
	l.mu.Unlock()
	if !ok {
		return
	}
	e.mu.Unlock()
	l.release(id)
}

func (l *Locker) retain(id uuid.UUID) *entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	e, ok := l.entries[id]
	if !ok {
		e = &entry{}
		l.entries[id] = e
	}
	e.refs++
	return e
}

func (l *Locker) release(id uuid.UUID) {
	l.mu.Lock()
	defer l.mu.Unlock()
	e, ok := l.entries[id]
	if !ok {
		return
	}
	e.refs--
	if e.refs <= 0 {
		delete(l.entries, id)
	}
}
