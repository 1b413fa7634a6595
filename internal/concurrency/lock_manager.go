package concurrency

import (
	"sync"
)

// LockManager hands out named locks. One lock guards one inventory, so no
// two mutating requests against the same inventory ever interleave.
type LockManager struct {
	locks sync.Map
}

// NewLockManager creates a new LockManager
func NewLockManager() *LockManager {
	return &LockManager{}
}

// GetLock returns the mutex for the given key, creating it on first use.
// Entries are never removed: a key maps to the same mutex for the life of
// the process, so a goroutine holding a reference can never race a fresh
// mutex minted for the same key.
func (lm *LockManager) GetLock(key string) *sync.Mutex {
	lock, _ := lm.locks.LoadOrStore(key, &sync.Mutex{})
	return lock.(*sync.Mutex)
}
