/**
 * @description
 * Per-account lock registry. Transfers acquire the sender account's lock so
 * the balance check and the event append execute as one critical section,
 * which closes the window where two concurrent transfers could both pass the
 * balance check and overdraw the account.
 */

package app

import "sync"

// accountLocks hands out one mutex per account id. Locks are never removed;
// the registry grows with the set of accounts that have sent a transfer.
type accountLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newAccountLocks() *accountLocks {
	return &accountLocks{locks: make(map[string]*sync.Mutex)}
}

// Lock acquires the lock for the given account and returns its release
// function.
func (l *accountLocks) Lock(accountID string) func() {
	l.mu.Lock()
	m, ok := l.locks[accountID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[accountID] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
