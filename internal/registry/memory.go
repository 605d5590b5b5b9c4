package registry

import (
	"context"
	"sync"
)

// MemoryRegistry keeps sessions in an in-process map. Sessions are lost on
// restart; a multi-instance deployment must pin a transaction's tracking to
// one instance or use the Redis registry instead.
type MemoryRegistry struct {
	mu       sync.RWMutex
	sessions map[string]Session
}

func NewMemory() *MemoryRegistry {
	return &MemoryRegistry{
		sessions: make(map[string]Session),
	}
}

func (r *MemoryRegistry) Put(ctx context.Context, session *Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[session.TrackingID] = *session
	return nil
}

func (r *MemoryRegistry) Get(ctx context.Context, trackingID string) (*Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	session, ok := r.sessions[trackingID]
	if !ok {
		return nil, nil
	}
	copied := session
	return &copied, nil
}

func (r *MemoryRegistry) Delete(ctx context.Context, trackingID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, trackingID)
	return nil
}
