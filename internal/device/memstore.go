package device

import "sync"

// MemoryStore is a map-backed Store for runs without a database.
// Unwritten slots read as zero, like erased EEPROM cells.
type MemoryStore struct {
	mu     sync.Mutex
	slots  map[int]int
	rounds []int
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{slots: make(map[int]int)}
}

// ReadInt implements Store.
func (m *MemoryStore) ReadInt(slot int) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slots[slot], nil
}

// WriteInt implements Store.
func (m *MemoryStore) WriteInt(slot int, value int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slots[slot] = value
	return nil
}

// RecordRound implements Recorder.
func (m *MemoryStore) RecordRound(score, _ int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rounds = append(m.rounds, score)
	return nil
}

// Rounds returns the recorded scores in play order.
func (m *MemoryStore) Rounds() []int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]int(nil), m.rounds...)
}
