package services

import "sync"

// habitLocks serializes read-modify-write cycles per habit so that two
// concurrent mutations against the same habit observe each other's writes.
// Locks are retained for the process lifetime; the set is bounded by the
// number of distinct habits touched.
type habitLocks struct {
	mu    sync.Mutex
	locks map[uint]*sync.Mutex
}

func newHabitLocks() *habitLocks {
	return &habitLocks{locks: make(map[uint]*sync.Mutex)}
}

func (registry *habitLocks) acquire(habitID uint) func() {
	registry.mu.Lock()
	lock, exists := registry.locks[habitID]
	if !exists {
		lock = &sync.Mutex{}
		registry.locks[habitID] = lock
	}
	registry.mu.Unlock()

	lock.Lock()
	return lock.Unlock
}
