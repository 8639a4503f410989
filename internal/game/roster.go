package game

import (
	"math/rand/v2"

	"github.com/google/uuid"
)

// CreatedPlayer is a successful mutation outcome. The assignment flag stops
// one player from backing two requirement slots.
type CreatedPlayer struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Stats           StatVector `json:"stats"`
	DNAUsed         []string   `json:"dna_used"`
	Assigned        bool       `json:"assigned"`
	AssignedOrderID string     `json:"assigned_order_id,omitempty"`
}

func newCreatedPlayer(rng *rand.Rand, subjectName string, stats StatVector, dnaUsed []string) CreatedPlayer {
	prefix := playerNamePrefixes[rng.IntN(len(playerNamePrefixes))]
	return CreatedPlayer{
		ID:      uuid.New().String(),
		Name:    prefix + "-" + subjectName,
		Stats:   stats,
		DNAUsed: append([]string(nil), dnaUsed...),
	}
}

// Roster holds every created player until explicit removal.
type Roster struct {
	players []*CreatedPlayer
}

func NewRoster() *Roster { return &Roster{} }

func (r *Roster) Add(p CreatedPlayer) {
	stored := p
	stored.DNAUsed = append([]string(nil), p.DNAUsed...)
	r.players = append(r.players, &stored)
}

func (r *Roster) Get(id string) (CreatedPlayer, bool) {
	for _, p := range r.players {
		if p.ID == id {
			return clonePlayer(p), true
		}
	}
	return CreatedPlayer{}, false
}

func (r *Roster) All() []CreatedPlayer {
	out := make([]CreatedPlayer, len(r.players))
	for i, p := range r.players {
		out[i] = clonePlayer(p)
	}
	return out
}

// Available returns players not yet assigned to an order.
func (r *Roster) Available() []CreatedPlayer {
	var out []CreatedPlayer
	for _, p := range r.players {
		if !p.Assigned {
			out = append(out, clonePlayer(p))
		}
	}
	return out
}

// Assign marks a player as backing an order slot. Fails for unknown or
// already assigned players.
func (r *Roster) Assign(playerID, orderID string) bool {
	for _, p := range r.players {
		if p.ID == playerID {
			if p.Assigned {
				return false
			}
			p.Assigned = true
			p.AssignedOrderID = orderID
			return true
		}
	}
	return false
}

func (r *Roster) Remove(id string) bool {
	for i, p := range r.players {
		if p.ID == id {
			r.players = append(r.players[:i], r.players[i+1:]...)
			return true
		}
	}
	return false
}

func (r *Roster) reset() { r.players = nil }

func clonePlayer(p *CreatedPlayer) CreatedPlayer {
	out := *p
	out.DNAUsed = append([]string(nil), p.DNAUsed...)
	return out
}
