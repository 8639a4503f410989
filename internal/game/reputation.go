package game

import "math/rand/v2"

// ReputationBook tracks one scalar in [0,100] per client team. New games seed
// every team low; teams unknown to the book read as neutral 50.
type ReputationBook struct {
	teams  []string
	scores map[string]float64
}

func NewReputationBook(rng *rand.Rand, teams []string) *ReputationBook {
	b := &ReputationBook{
		teams:  append([]string(nil), teams...),
		scores: make(map[string]float64, len(teams)),
	}
	for _, team := range b.teams {
		b.scores[team] = rangeFloat(rng, 0, 20)
	}
	return b
}

func (b *ReputationBook) Teams() []string {
	return append([]string(nil), b.teams...)
}

func (b *ReputationBook) RandomTeam(rng *rand.Rand) string {
	return b.teams[rng.IntN(len(b.teams))]
}

func (b *ReputationBook) Get(team string) float64 {
	score, ok := b.scores[team]
	if !ok {
		return 50
	}
	return score
}

// Change applies a delta and clamps to [0,100].
func (b *ReputationBook) Change(team string, delta float64) {
	b.scores[team] = clampFloat(b.Get(team)+delta, 0, 100)
}

// Decay pulls every reputation above 50 back down by the given step, never
// crossing 50 and never touching teams at or below it.
func (b *ReputationBook) Decay(step float64) {
	for team, score := range b.scores {
		if score > 50 {
			next := score - step
			if next < 50 {
				next = 50
			}
			b.scores[team] = next
		}
	}
}

func (b *ReputationBook) All() map[string]float64 {
	out := make(map[string]float64, len(b.scores))
	for team, score := range b.scores {
		out[team] = score
	}
	return out
}

func (b *ReputationBook) restore(scores map[string]float64) {
	for team, score := range scores {
		b.scores[team] = clampFloat(score, 0, 100)
	}
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
