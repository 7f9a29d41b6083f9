package concurrency

import (
	"sync"
)

// LockManager hands out one mutex per key, e.g. per player id
type LockManager struct {
	locks sync.Map
}

// NewLockManager creates a new LockManager
func NewLockManager() *LockManager {
	return &LockManager{}
}

// GetLock returns the mutex for the given key
func (lm *LockManager) GetLock(key string) *sync.Mutex {
	lock, _ := lm.locks.LoadOrStore(key, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

// Lock acquires the mutex for key and returns its unlock function
func (lm *LockManager) Lock(key string) (unlock func()) {
	m := lm.GetLock(key)
	m.Lock()
	return m.Unlock
}

// PlayerKey is the lock key guarding a player's inventory, cauldrons and orders
func PlayerKey(playerID string) string {
	return "player:" + playerID
}
