package allowance

import (
	"context"
	"fmt"
	"sync"

	apperrors "github.com/kolhesatish/content-app/internal/errors"
)

// Store persists allowance state per account. Implementations must run Apply's
// read-decide-write without interleaving for the same account, while leaving
// different accounts free to proceed in parallel.
type Store interface {
	Read(ctx context.Context, accountID string) (State, error)
	Commit(ctx context.Context, accountID string, s State) error
	Apply(ctx context.Context, accountID string, fn func(State) State) (State, error)
}

type memoryEntry struct {
	mu    sync.Mutex
	state State
}

// MemoryStore keeps allowances in process memory, one lock per account.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]*memoryEntry
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]*memoryEntry)}
}

// Put creates or replaces the allowance of accountID.
func (m *MemoryStore) Put(accountID string, s State) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if e, ok := m.entries[accountID]; ok {
		e.mu.Lock()
		e.state = s
		e.mu.Unlock()
		return
	}
	m.entries[accountID] = &memoryEntry{state: s}
}

func (m *MemoryStore) entry(accountID string) (*memoryEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	e, ok := m.entries[accountID]
	if !ok {
		return nil, fmt.Errorf("allowance %s: %w", accountID, apperrors.ErrNotFound)
	}
	return e, nil
}

func (m *MemoryStore) Read(ctx context.Context, accountID string) (State, error) {
	e, err := m.entry(accountID)
	if err != nil {
		return State{}, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state, nil
}

func (m *MemoryStore) Commit(ctx context.Context, accountID string, s State) error {
	e, err := m.entry(accountID)
	if err != nil {
		return err
	}

	e.mu.Lock()
	e.state = s
	e.mu.Unlock()
	return nil
}

func (m *MemoryStore) Apply(ctx context.Context, accountID string, fn func(State) State) (State, error) {
	e, err := m.entry(accountID)
	if err != nil {
		return State{}, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return State{}, err
	}
	e.state = fn(e.state)
	return e.state, nil
}
