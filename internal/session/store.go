package session

import (
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/talleres-esperanza/comedor/internal/domain/model"
)

// scratchKey is the single slot used for the current batch.
const scratchKey = "current_orders"

// Store holds the drafts of the batch being assembled. A person without an
// entry is pending; an entry with all menu fields nil is an explicit
// "no meal today". Insertion order is preserved for stable listings.
type Store struct {
	drafts map[string]model.OrderDraft
	order  []string
}

// NewStore creates an empty draft store.
func NewStore() *Store {
	return &Store{drafts: make(map[string]model.OrderDraft)}
}

// Get returns the draft for a person, if one exists.
func (s *Store) Get(personID string) (model.OrderDraft, bool) {
	d, ok := s.drafts[personID]
	return d, ok
}

// Put inserts or replaces a person's draft.
func (s *Store) Put(draft model.OrderDraft) {
	if _, exists := s.drafts[draft.PersonID]; !exists {
		s.order = append(s.order, draft.PersonID)
	}
	s.drafts[draft.PersonID] = draft
}

// Delete removes a person's draft, returning them to pending.
func (s *Store) Delete(personID string) {
	if _, exists := s.drafts[personID]; !exists {
		return
	}
	delete(s.drafts, personID)
	for i, id := range s.order {
		if id == personID {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// Len reports how many people already have a draft.
func (s *Store) Len() int {
	return len(s.drafts)
}

// Drafts returns all drafts in insertion order.
func (s *Store) Drafts() []model.OrderDraft {
	result := make([]model.OrderDraft, 0, len(s.order))
	for _, id := range s.order {
		result = append(result, s.drafts[id])
	}
	return result
}

// Manager loads and persists the draft store through the scratch boundary.
// It is the explicit session object threaded through the order-entry flow:
// created on batch start, saved after every edit, cleared on commit.
type Manager struct {
	scratch Scratch
	logger  *slog.Logger
	mu      sync.Mutex
}

// NewManager constructs the session manager.
func NewManager(scratch Scratch, logger *slog.Logger) *Manager {
	return &Manager{scratch: scratch, logger: logger}
}

// Load reads the current batch from scratch. Malformed contents fail closed:
// the operator gets an empty batch and a log line, never a parse error.
func (m *Manager) Load() *Store {
	m.mu.Lock()
	defer m.mu.Unlock()

	store := NewStore()
	raw, ok := m.scratch.Get(scratchKey)
	if !ok {
		return store
	}

	var drafts []model.OrderDraft
	if err := json.Unmarshal(raw, &drafts); err != nil {
		m.logger.Warn("discarding malformed draft scratch", slog.String("error", err.Error()))
		m.scratch.Delete(scratchKey)
		return store
	}
	for _, d := range drafts {
		store.Put(d)
	}
	return store
}

// Save serializes the batch back into scratch.
func (m *Manager) Save(store *Store) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	raw, err := json.Marshal(store.Drafts())
	if err != nil {
		return err
	}
	m.scratch.Put(scratchKey, raw)
	return nil
}

// Clear drops the batch after a successful commit.
func (m *Manager) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scratch.Delete(scratchKey)
}
