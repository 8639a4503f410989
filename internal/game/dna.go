package game

import (
	"math/rand/v2"
	"sort"
)

type DNACategory string

const (
	CategoryAnimal          DNACategory = "Animal"
	CategoryLegendaryPlayer DNACategory = "LegendaryPlayer"
	CategoryEnvironment     DNACategory = "Environment"
	CategoryMechanical      DNACategory = "Mechanical"
)

// AllCategories lists the closed set of DNA categories.
var AllCategories = []DNACategory{
	CategoryAnimal, CategoryLegendaryPlayer, CategoryEnvironment, CategoryMechanical,
}

func (c DNACategory) IsValid() bool {
	for _, known := range AllCategories {
		if c == known {
			return true
		}
	}
	return false
}

type DNARarity string

const (
	RarityCommon    DNARarity = "Common"
	RarityUncommon  DNARarity = "Uncommon"
	RarityRare      DNARarity = "Rare"
	RarityEpic      DNARarity = "Epic"
	RarityLegendary DNARarity = "Legendary"
)

// Weight returns the draw weight of a rarity tier. Higher weight means a
// higher chance of being researched.
func (r DNARarity) Weight() float64 {
	switch r {
	case RarityCommon:
		return 50
	case RarityUncommon:
		return 30
	case RarityRare:
		return 15
	case RarityEpic:
		return 4
	case RarityLegendary:
		return 1
	default:
		return 10
	}
}

// DNAItem is one entry of the fixed catalog. Immutable after initialization;
// only its unlocked status (owned by DNACatalog) changes during play.
type DNAItem struct {
	ID          string      `json:"id" yaml:"id"`
	Name        string      `json:"name" yaml:"name"`
	Category    DNACategory `json:"category" yaml:"category"`
	Rarity      DNARarity   `json:"rarity" yaml:"rarity"`
	Description string      `json:"description" yaml:"description"`
	Modifiers   StatVector  `json:"modifiers" yaml:"modifiers"`
}

// DNACatalog owns the fixed item table and the mutable unlocked set.
// Not safe for concurrent use; the Lab serializes access.
type DNACatalog struct {
	items    []DNAItem
	unlocked map[string]bool
}

func NewDNACatalog(items []DNAItem) *DNACatalog {
	return &DNACatalog{
		items:    append([]DNAItem(nil), items...),
		unlocked: make(map[string]bool),
	}
}

// Item looks up a catalog entry by id.
func (c *DNACatalog) Item(id string) (DNAItem, bool) {
	for _, item := range c.items {
		if item.ID == id {
			return item, true
		}
	}
	return DNAItem{}, false
}

// Unlock idempotently adds an item to the unlocked set. Returns false for an
// unknown id or an item that was already unlocked.
func (c *DNACatalog) Unlock(id string) bool {
	if _, ok := c.Item(id); !ok {
		return false
	}
	if c.unlocked[id] {
		return false
	}
	c.unlocked[id] = true
	return true
}

func (c *DNACatalog) IsUnlocked(id string) bool {
	return c.unlocked[id]
}

// Unlocked returns the unlocked items in catalog order.
func (c *DNACatalog) Unlocked() []DNAItem {
	out := make([]DNAItem, 0, len(c.unlocked))
	for _, item := range c.items {
		if c.unlocked[item.ID] {
			out = append(out, item)
		}
	}
	return out
}

// UnlockedIDs returns the unlocked ids, sorted for stable persistence.
func (c *DNACatalog) UnlockedIDs() []string {
	ids := make([]string, 0, len(c.unlocked))
	for id := range c.unlocked {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// SetUnlocked replaces the unlocked set, ignoring unknown ids. Used when
// hydrating from a save.
func (c *DNACatalog) SetUnlocked(ids []string) {
	c.unlocked = make(map[string]bool, len(ids))
	for _, id := range ids {
		if _, ok := c.Item(id); ok {
			c.unlocked[id] = true
		}
	}
}

// DrawRandomLocked samples a not-yet-unlocked item of the given category,
// weighted by rarity. Returns false when the category is exhausted.
func (c *DNACatalog) DrawRandomLocked(rng *rand.Rand, category DNACategory) (DNAItem, bool) {
	var locked []DNAItem
	for _, item := range c.items {
		if item.Category == category && !c.unlocked[item.ID] {
			locked = append(locked, item)
		}
	}
	if len(locked) == 0 {
		return DNAItem{}, false
	}

	total := 0.0
	for _, item := range locked {
		total += item.Rarity.Weight()
	}
	roll := rng.Float64() * total
	acc := 0.0
	for _, item := range locked {
		acc += item.Rarity.Weight()
		if roll <= acc {
			return item, true
		}
	}
	return locked[0], true
}
