package concurrency

import (
	"sync"
)

// LockManager handles named locks
type LockManager struct {
	locks sync.Map
}

// NewLockManager creates a new LockManager
func NewLockManager() *LockManager {
	return &LockManager{}
}

// GetLock returns a mutex for the given key
func (lm *LockManager) GetLock(key string) *sync.Mutex {
	lock, _ := lm.locks.LoadOrStore(key, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

// LockPair acquires the locks for both keys in deterministic (lexicographic)
// order and returns a function that releases them in reverse order. Two
// callers locking the same pair of keys can therefore never deadlock against
// each other. If both keys are equal, only one lock is taken.
func (lm *LockManager) LockPair(a, b string) (unlock func()) {
	if a == b {
		mu := lm.GetLock(a)
		mu.Lock()
		return mu.Unlock
	}
	first, second := a, b
	if second < first {
		first, second = second, first
	}
	muFirst := lm.GetLock(first)
	muSecond := lm.GetLock(second)
	muFirst.Lock()
	muSecond.Lock()
	return func() {
		muSecond.Unlock()
		muFirst.Unlock()
	}
}
