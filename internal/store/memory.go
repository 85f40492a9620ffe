package store

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// MemoryStore is an in-process Store used by tests and as the default backend
// when no database is configured. Documents are returned in insertion order.
type MemoryStore struct {
	mu    sync.RWMutex
	docs  map[string]map[string]Document
	order map[string][]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		docs:  make(map[string]map[string]Document),
		order: make(map[string][]string),
	}
}

func (m *MemoryStore) NewID(collection string) string {
	return uuid.NewString()
}

func (m *MemoryStore) Set(ctx context.Context, collection, id string, doc Document) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	col, ok := m.docs[collection]
	if !ok {
		col = make(map[string]Document)
		m.docs[collection] = col
	}
	if _, exists := col[id]; !exists {
		m.order[collection] = append(m.order[collection], id)
	}
	col[id] = doc.Clone()
	return nil
}

func (m *MemoryStore) Get(ctx context.Context, collection, id string) (Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if d, ok := m.docs[collection][id]; ok {
		return d.Clone(), nil
	}
	return nil, ErrNotFound
}

func (m *MemoryStore) All(ctx context.Context, collection string) ([]Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ids := m.order[collection]
	out := make([]Document, 0, len(ids))
	for _, id := range ids {
		out = append(out, m.docs[collection][id].Clone())
	}
	return out, nil
}

func (m *MemoryStore) Where(ctx context.Context, collection, field string, value interface{}) ([]Document, error) {
	all, err := m.All(ctx, collection)
	if err != nil {
		return nil, err
	}
	return filter(all, field, value), nil
}
