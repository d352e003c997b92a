package store

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// MemoryStore is a thread-safe in-process Store, used by tests and local
// runs without a Redis target.
type MemoryStore struct {
	mu sync.RWMutex
	// Structure: [collection][id]fields
	data map[string]map[string]map[string]any
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data: make(map[string]map[string]map[string]any),
	}
}

func (m *MemoryStore) Get(ctx context.Context, collection, id string) (Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	fields, ok := m.data[collection][id]
	if !ok {
		return Document{}, ErrNotFound
	}
	return Document{ID: id, Fields: copyFields(fields)}, nil
}

func (m *MemoryStore) Put(ctx context.Context, collection string, fields map[string]any) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := uuid.NewString()
	m.ensure(collection)[id] = copyFields(fields)
	return id, nil
}

func (m *MemoryStore) PutUnique(ctx context.Context, collection, uniqueField string, fields map[string]any) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	want := fmt.Sprint(fields[uniqueField])
	for _, existing := range m.data[collection] {
		if fmt.Sprint(existing[uniqueField]) == want {
			return "", ErrConflict
		}
	}

	id := uuid.NewString()
	m.ensure(collection)[id] = copyFields(fields)
	return id, nil
}

func (m *MemoryStore) Set(ctx context.Context, collection, id string, fields map[string]any, ifAbsent bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	coll := m.ensure(collection)
	if _, exists := coll[id]; exists && ifAbsent {
		return ErrConflict
	}
	coll[id] = copyFields(fields)
	return nil
}

func (m *MemoryStore) Update(ctx context.Context, collection, id string, fields map[string]any) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.data[collection][id]
	if !ok {
		return ErrNotFound
	}
	for k, v := range fields {
		existing[k] = v
	}
	return nil
}

func (m *MemoryStore) Delete(ctx context.Context, collection, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.data[collection][id]; !ok {
		return ErrNotFound
	}
	delete(m.data[collection], id)
	return nil
}

func (m *MemoryStore) Query(ctx context.Context, collection string, eq *Filter, orderDesc string) ([]Document, error) {
	m.mu.RLock()
	docs := make([]Document, 0, len(m.data[collection]))
	for id, fields := range m.data[collection] {
		if eq != nil && fmt.Sprint(fields[eq.Field]) != fmt.Sprint(eq.Value) {
			continue
		}
		docs = append(docs, Document{ID: id, Fields: copyFields(fields)})
	}
	m.mu.RUnlock()

	SortDocs(docs, orderDesc)
	return docs, nil
}

func (m *MemoryStore) StreamAll(ctx context.Context, collection string) ([]Document, error) {
	return m.Query(ctx, collection, nil, "")
}

func (m *MemoryStore) Ping(ctx context.Context) error {
	return nil
}

func (m *MemoryStore) ensure(collection string) map[string]map[string]any {
	if m.data[collection] == nil {
		m.data[collection] = make(map[string]map[string]any)
	}
	return m.data[collection]
}

func copyFields(fields map[string]any) map[string]any {
	out := make(map[string]any, len(fields))
	for k, v := range fields {
		out[k] = v
	}
	return out
}

// SortDocs orders documents descending by the string form of the given
// field. Timestamps are stored as RFC3339 strings, so lexicographic order is
// chronological.
func SortDocs(docs []Document, orderDesc string) {
	if orderDesc == "" {
		return
	}
	sort.SliceStable(docs, func(i, j int) bool {
		return fmt.Sprint(docs[i].Fields[orderDesc]) > fmt.Sprint(docs[j].Fields[orderDesc])
	})
}
