// Package joblock serializes mutations on a single job. The job store has no
// optimistic concurrency control, so two concurrent read-modify-write cycles
// on the same job id would race; every mutating handler takes the job's lock
// around its cycle instead.
package joblock

import "sync"

// KeyedMutex provides one mutex per key. The zero value is not usable;
// create instances via NewKeyedMutex.
type KeyedMutex struct {
	locks sync.Map // key -> *sync.Mutex
}

// NewKeyedMutex creates an empty keyed mutex.
func NewKeyedMutex() *KeyedMutex {
	return &KeyedMutex{}
}

// Lock acquires the mutex for the given key, creating it on first use.
// Mutexes are never evicted; the key space is bounded by the set of job ids
// a single process mutates, which is small relative to the store.
func (m *KeyedMutex) Lock(key string) {
	mu, _ := m.locks.LoadOrStore(key, &sync.Mutex{})
	mu.(*sync.Mutex).Lock()
}

// Unlock releases the mutex for the given key.
// Unlocking a key that was never locked panics, matching sync.Mutex.
func (m *KeyedMutex) Unlock(key string) {
	mu, ok := m.locks.Load(key)
	if !ok {
		panic("joblock: unlock of unknown key " + key)
	}
	mu.(*sync.Mutex).Unlock()
}
