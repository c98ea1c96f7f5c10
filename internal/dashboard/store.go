package dashboard

import (
	"context"
	"errors"
	"sync"
	"time"
)

var ErrSessionNotFound = errors.New("dashboard session not found")

// Store persists dashboard state per session. Update is atomic per session:
// fn sees the latest state (a fresh NewState when the session is unknown)
// and its changes are kept only when it returns nil.
type Store interface {
	Get(ctx context.Context, sessionID string) (*State, error)
	Update(ctx context.Context, sessionID string, fn func(*State) error) (*State, error)
}

type memoryEntry struct {
	state   *State
	touched time.Time
}

// MemoryStore keeps sessions in process memory and forgets them after ttl
// of inactivity
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]*memoryEntry
	ttl      time.Duration
	now      func() time.Time
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]*memoryEntry),
		ttl:      ttl,
		now:      time.Now,
	}
}

func (m *MemoryStore) Get(ctx context.Context, sessionID string) (*State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.live(sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}
	return entry.state.clone(), nil
}

func (m *MemoryStore) Update(ctx context.Context, sessionID string, fn func(*State) error) (*State, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	var working *State
	if entry, ok := m.live(sessionID); ok {
		working = entry.state.clone()
	} else {
		working = NewState()
	}

	if err := fn(working); err != nil {
		return nil, err
	}

	now := m.now()
	working.UpdatedAt = now
	m.sessions[sessionID] = &memoryEntry{state: working, touched: now}
	return working.clone(), nil
}

// live returns the entry if present and not expired. Caller holds mu.
func (m *MemoryStore) live(sessionID string) (*memoryEntry, bool) {
	entry, ok := m.sessions[sessionID]
	if !ok {
		return nil, false
	}
	if m.ttl > 0 && m.now().Sub(entry.touched) > m.ttl {
		delete(m.sessions, sessionID)
		return nil, false
	}
	return entry, true
}

// Sweep drops expired sessions and reports how many were removed
func (m *MemoryStore) Sweep() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for id := range m.sessions {
		if _, ok := m.live(id); !ok {
			removed++
		}
	}
	return removed
}

// RunJanitor sweeps every interval until ctx is done
func (m *MemoryStore) RunJanitor(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.Sweep()
		}
	}
}

// Len reports the number of stored sessions, expired or not
func (m *MemoryStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}
