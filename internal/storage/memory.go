package storage

import (
	"context"
	"encoding/json"
	"sync"
)

// MemoryStore is an in-process Store used in tests and as a fallback when no
// Redis is configured. Values are kept as marshalled JSON so load/save
// round-trips behave exactly like the Redis adapter.
type MemoryStore struct {
	mu     sync.Mutex
	values map[string][]byte

	// FailSaves makes every Save return an error. Tests use it to verify
	// that persistence failures never block store mutations.
	FailSaves error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: map[string][]byte{}}
}

func (m *MemoryStore) Load(_ context.Context, key string, out any) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	data, ok := m.values[key]
	if !ok {
		return ErrNotFound
	}
	return json.Unmarshal(data, out)
}

func (m *MemoryStore) Save(_ context.Context, key string, value any) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FailSaves != nil {
		return m.FailSaves
	}

	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.values[key] = data
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.values, key)
	return nil
}
