package service

import "sync"

// txLocks serializes all mutations to one transaction id. The poll loop and
// the webhook reconciler are concurrent producers of the same pending →
// completed transition and must be mutually exclusive at the state flip.
type txLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewTxLocks creates the shared per-transaction lock table. The engine and
// the reconciler must be given the same instance.
func NewTxLocks() *txLocks {
	return &txLocks{
		locks: make(map[string]*sync.Mutex),
	}
}

func (l *txLocks) get(transactionID string) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.locks[transactionID]; !ok {
		l.locks[transactionID] = &sync.Mutex{}
	}
	return l.locks[transactionID]
}
