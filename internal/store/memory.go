package store

import (
	"context"
	"reflect"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryStore is an in-process Store used by tests and local demo runs.
// It assigns ObjectIDs like the real engine and keeps insertion order.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string][]bson.M
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{collections: make(map[string][]bson.M)}
}

func (m *MemoryStore) Create(ctx context.Context, collection string, record map[string]interface{}) (Document, error) {
	doc := stamp(record, now())
	id := primitive.NewObjectID()
	doc[EngineIDField] = id

	m.mu.Lock()
	m.collections[collection] = append(m.collections[collection], doc)
	m.mu.Unlock()

	stored, ok := m.get(collection, id)
	if !ok {
		return Document{}, nil
	}
	return Normalize(stored), nil
}

func (m *MemoryStore) get(collection string, id primitive.ObjectID) (bson.M, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, d := range m.collections[collection] {
		if d[EngineIDField] == id {
			return d, true
		}
	}
	return nil, false
}

func (m *MemoryStore) List(ctx context.Context, collection string, filter map[string]interface{}, limit int64) ([]Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []Document{}
	for _, d := range m.collections[collection] {
		if limit > 0 && int64(len(out)) >= limit {
			break
		}
		if matches(d, filter) {
			out = append(out, Normalize(d))
		}
	}
	return out, nil
}

func matches(doc bson.M, filter map[string]interface{}) bool {
	for k, want := range filter {
		got, ok := doc[k]
		if !ok || !reflect.DeepEqual(got, want) {
			return false
		}
	}
	return true
}

func (m *MemoryStore) CollectionNames(ctx context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	names := make([]string, 0, len(m.collections))
	for name := range m.collections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (m *MemoryStore) Ping(ctx context.Context) error { return nil }
