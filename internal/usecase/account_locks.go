package usecase

import "sync"

// accountLocks hands out one mutex per account ID. Entries are created lazily
// on first use and kept for the life of the process; the per-account footprint
// is a single mutex. Locks are held only for the duration of one accept
// operation, never across calls.
type accountLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newAccountLocks() *accountLocks {
	return &accountLocks{locks: make(map[string]*sync.Mutex)}
}

// get returns the mutex for accountID, creating it if needed.
func (l *accountLocks) get(accountID string) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()

	m, ok := l.locks[accountID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[accountID] = m
	}

	return m
}
