package storage

import (
	"sync"

	"realtyhub/models"
)

// MemorySessionStore keeps the slots in process memory. Nothing survives a
// restart; it serves throwaway runs and tests.
type MemorySessionStore struct {
	mu    sync.Mutex
	slots map[string]string
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{slots: map[string]string{}}
}

func (m *MemorySessionStore) Load() (models.Session, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := sessionFromSlots(m.slots)
	return s, ok, nil
}

func (m *MemorySessionStore) Save(s models.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slots = slotsFromSession(s)
	return nil
}

func (m *MemorySessionStore) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slots = map[string]string{}
	return nil
}

// Slots returns a copy of the stored slots.
func (m *MemorySessionStore) Slots() map[string]string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[string]string, len(m.slots))
	for k, v := range m.slots {
		out[k] = v
	}
	return out
}
