package storage

import (
	"context"
	"sync"
)

// Memory is a mutex-guarded in-process KV. It backs tests and lets the
// service run without Redis, trading durability for availability.
type Memory struct {
	mu       sync.Mutex
	sessions map[string]map[string]string
}

// NewMemory returns an empty in-process store.
func NewMemory() *Memory {
	return &Memory{sessions: map[string]map[string]string{}}
}

func (m *Memory) Get(ctx context.Context, sessionID, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if values, ok := m.sessions[sessionID]; ok {
		if value, ok := values[key]; ok {
			return value, nil
		}
	}
	return "", ErrNotFound
}

func (m *Memory) Set(ctx context.Context, sessionID, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	values, ok := m.sessions[sessionID]
	if !ok {
		values = map[string]string{}
		m.sessions[sessionID] = values
	}
	values[key] = value
	return nil
}

func (m *Memory) Delete(ctx context.Context, sessionID, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if values, ok := m.sessions[sessionID]; ok {
		delete(values, key)
	}
	return nil
}
