package store

import (
	"sync"

	"github.com/Vladisof/FootballSingularity/internal/game"
)

// MemoryStore keeps the save in memory. Used by tests and the console's
// ephemeral mode.
type MemoryStore struct {
	mu    sync.Mutex
	data  game.SaveData
	saved bool
}

func NewMemoryStore() *MemoryStore { return &MemoryStore{} }

func (m *MemoryStore) Save(data game.SaveData) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = data
	m.saved = true
	return nil
}

func (m *MemoryStore) Load() (game.SaveData, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.data, m.saved, nil
}

func (m *MemoryStore) Close() error { return nil }
