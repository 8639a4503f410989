// Package store persists lab progress through a small key/value table plus a
// JSON save blob, so individual values stay inspectable while the full state
// loads in one read.
package store

import "github.com/Vladisof/FootballSingularity/internal/game"

// Store is the save/load boundary. Save must be atomic: either every key of
// the save lands or none do.
type Store interface {
	Save(game.SaveData) error
	Load() (game.SaveData, bool, error)
	Close() error
}

// Key layout inside the kv table.
const (
	keySaveBlob = "save_data"
	keyHasSave  = "has_save"
	keySavedAt  = "saved_at"
	keyMoney    = "money"
	prefixRep   = "reputation_"
	prefixLevel = "upgrade_"
	keyUnlocked = "unlocked_dna"
)
