package session

import "sync"

// Scratch is the opaque key-value slot holding the serialized in-progress
// batch between screens.
type Scratch interface {
	Get(key string) ([]byte, bool)
	Put(key string, value []byte)
	Delete(key string)
}

// MemoryScratch keeps scratch contents in process memory.
type MemoryScratch struct {
	mu     sync.Mutex
	values map[string][]byte
}

// NewMemoryScratch constructs an empty scratch area.
func NewMemoryScratch() *MemoryScratch {
	return &MemoryScratch{values: make(map[string][]byte)}
}

func (m *MemoryScratch) Get(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok
}

func (m *MemoryScratch) Put(key string, value []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = append([]byte(nil), value...)
}

func (m *MemoryScratch) Delete(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
}
