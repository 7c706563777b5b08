// Package lock provides in-process serialization of operations keyed by an
// identifier. Splits and status mutations on the same order must not
// interleave within one process.
package lock

import "sync"

// Keyed hands out one mutex per key. Mutexes are kept for the lifetime of the
// process; the key space (order ids under active mutation) stays small.
type Keyed struct {
	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

// NewKeyed constructs an empty keyed lock set.
func NewKeyed() *Keyed {
	return &Keyed{locks: make(map[int64]*sync.Mutex)}
}

// Lock acquires the mutex for key and returns the matching unlock function.
func (k *Keyed) Lock(key int64) func() {
	k.mu.Lock()
	m, ok := k.locks[key]
	if !ok {
		m = &sync.Mutex{}
		k.locks[key] = m
	}
	k.mu.Unlock()

	m.Lock()
	return m.Unlock
}
