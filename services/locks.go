package services

import "sync"

// UserLocks hands out one mutex per user id. Task mutations and the rollover
// engine both lock it before touching a user's aggregate, which closes the
// window where two concurrent first-requests-of-the-day could each pass the
// last_rollover_date check and advance the streak twice.
type UserLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewUserLocks() *UserLocks {
	return &UserLocks{locks: make(map[string]*sync.Mutex)}
}

// ForUser returns the mutex for the given user, creating it on first use.
// Entries are never evicted.
func (l *UserLocks) ForUser(userID string) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()
	m, ok := l.locks[userID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[userID] = m
	}
	return m
}
