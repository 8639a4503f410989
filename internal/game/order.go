package game

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
)

type Position string

const (
	PositionForward    Position = "Forward"
	PositionMidfielder Position = "Midfielder"
	PositionDefender   Position = "Defender"
	PositionGoalkeeper Position = "Goalkeeper"
)

var allPositions = []Position{
	PositionForward, PositionMidfielder, PositionDefender, PositionGoalkeeper,
}

// StatRequirement is one (min, optimal) threshold pair for a single stat
// dimension.
type StatRequirement struct {
	Min     int `json:"min"`
	Optimal int `json:"optimal"`
}

// Score rates an actual stat value against the pair:
// at or above optimal scores 1.0; between min and optimal scales linearly
// from 0.5; below min loses 1/40 per point of shortfall, floored at 0.
func (r StatRequirement) Score(actual int) float64 {
	if actual >= r.Optimal {
		return 1.0
	}
	if actual >= r.Min {
		progress := float64(actual-r.Min) / float64(r.Optimal-r.Min)
		return 0.5 + progress*0.5
	}
	shortfall := float64(r.Min - actual)
	return math.Max(0, 0.5-shortfall/40)
}

// Requirement is one player slot of an order: a position and the three stat
// dimensions it checks. Fulfilled and Submitted are set exactly once by a
// successful submission.
type Requirement struct {
	Position  Position                   `json:"position"`
	Stats     map[string]StatRequirement `json:"stats"`
	Fulfilled bool                       `json:"fulfilled"`
	Submitted *StatVector                `json:"submitted,omitempty"`
}

// MatchScore is the mean per-dimension score times 100. Zero until a player
// has been submitted.
func (r Requirement) MatchScore() float64 {
	if r.Submitted == nil || len(r.Stats) == 0 {
		return 0
	}
	total := 0.0
	for name, sr := range r.Stats {
		total += sr.Score(r.Submitted.Get(name))
	}
	return total / float64(len(r.Stats)) * 100
}

func (r Requirement) clone() Requirement {
	out := r
	out.Stats = make(map[string]StatRequirement, len(r.Stats))
	for k, v := range r.Stats {
		out.Stats[k] = v
	}
	if r.Submitted != nil {
		s := *r.Submitted
		out.Submitted = &s
	}
	return out
}

// Order is a time-boxed fulfillment request from a team. TimeRemaining only
// decays while the order is unaccepted; acceptance freezes it.
type Order struct {
	ID            string        `json:"id"`
	Team          string        `json:"team"`
	Reputation    float64       `json:"reputation"`
	Requirements  []Requirement `json:"requirements"`
	BonusTag      string        `json:"bonus_tag"`
	BasePayout    int           `json:"base_payout"`
	TimeRemaining time.Duration `json:"time_remaining"`
	AcceptWindow  time.Duration `json:"accept_window"`
	Completed     bool          `json:"completed"`
}

func (o *Order) expired() bool {
	return o.TimeRemaining <= 0 && !o.Completed
}

func (o *Order) allFulfilled() bool {
	for _, req := range o.Requirements {
		if !req.Fulfilled {
			return false
		}
	}
	return true
}

// averageScore is the mean of slot match scores over all slots.
func (o *Order) averageScore() float64 {
	if len(o.Requirements) == 0 {
		return 0
	}
	total := 0.0
	for _, req := range o.Requirements {
		total += req.MatchScore()
	}
	return total / float64(len(o.Requirements))
}

func (o *Order) clone() Order {
	out := *o
	out.Requirements = make([]Requirement, len(o.Requirements))
	for i, req := range o.Requirements {
		out.Requirements[i] = req.clone()
	}
	return out
}

// generateOrder builds a fresh order for the given team at the given frozen
// reputation sample.
func generateOrder(rng *rand.Rand, team string, reputation float64, acceptWindow time.Duration) *Order {
	count := slotCountForReputation(rng, reputation)
	reqs := make([]Requirement, 0, count)
	for i := 0; i < count; i++ {
		reqs = append(reqs, newRequirement(rng, reputation))
	}

	return &Order{
		ID:            uuid.New().String(),
		Team:          team,
		Reputation:    reputation,
		Requirements:  reqs,
		BonusTag:      bonusTags[rng.IntN(len(bonusTags))],
		BasePayout:    basePayout(rng, reqs),
		TimeRemaining: acceptWindow,
		AcceptWindow:  acceptWindow,
	}
}

// slotCountForReputation maps the reputation band to a requirement count:
// below 20 always one slot, 20-60 one or two, 60 and up two or three.
func slotCountForReputation(rng *rand.Rand, rep float64) int {
	switch {
	case rep < 20:
		return 1
	case rep < 60:
		return rangeInt(rng, 1, 2)
	default:
		return rangeInt(rng, 2, 3)
	}
}

// requirementBand returns the (min, optimal-addition) sampling ranges for a
// reputation value.
func requirementBand(rep float64) (minLo, minHi, optLo, optHi int) {
	switch {
	case rep < 20:
		return 30, 45, 10, 20
	case rep < 40:
		return 40, 55, 10, 25
	case rep < 60:
		return 50, 65, 15, 25
	case rep < 80:
		return 60, 75, 15, 25
	default:
		return 70, 85, 10, 20
	}
}

// positionProfile lists the three checked dimensions per position with their
// offsets from the sampled (min, optimal) pair.
var positionProfile = map[Position][]struct {
	Stat   string
	Offset int
}{
	PositionForward: {
		{StatSpeed, 0}, {StatAttack, 5}, {StatAccuracy, -5},
	},
	PositionMidfielder: {
		{StatStamina, 0}, {StatAgility, 0}, {StatSpeed, -10},
	},
	PositionDefender: {
		{StatDefense, 5}, {StatStrength, 0}, {StatJumping, -5},
	},
	PositionGoalkeeper: {
		{StatJumping, 5}, {StatAgility, 0}, {StatDefense, 0},
	},
}

func newRequirement(rng *rand.Rand, rep float64) Requirement {
	position := allPositions[rng.IntN(len(allPositions))]

	minLo, minHi, optLo, optHi := requirementBand(rep)
	minStat := rangeInt(rng, minLo, minHi)
	optimal := clampInt(minStat+rangeInt(rng, optLo, optHi), 0, 99)

	stats := make(map[string]StatRequirement, 3)
	for _, dim := range positionProfile[position] {
		stats[dim.Stat] = StatRequirement{
			Min:     offsetStat(minStat, dim.Offset),
			Optimal: offsetStat(optimal, dim.Offset),
		}
	}

	return Requirement{Position: position, Stats: stats}
}

// offsetStat shifts a threshold by a position offset; positive offsets are
// capped at 99, negative ones floored at 30.
func offsetStat(v, offset int) int {
	v += offset
	if offset > 0 && v > 99 {
		return 99
	}
	if offset < 0 && v < 30 {
		return 30
	}
	return v
}

// basePayout accumulates 100 plus (min*2 + (optimal-min)*3) over every
// dimension of every slot, then applies a uniform 0.8-1.2 multiplier.
func basePayout(rng *rand.Rand, reqs []Requirement) int {
	reward := 100.0
	for _, req := range reqs {
		for _, sr := range req.Stats {
			reward += float64(sr.Min)*2 + float64(sr.Optimal-sr.Min)*3
		}
	}
	reward *= rangeFloat(rng, 0.8, 1.2)
	return int(math.Round(reward))
}

// rewardForScore maps an order-level average score to the payout multiplier
// and reputation delta.
func rewardForScore(score float64) (multiplier float64, repDelta float64) {
	switch {
	case score >= 95:
		return 1.3, 8
	case score >= 85:
		return 1.1, 5
	case score >= 70:
		return 1.0, 3
	case score >= 50:
		return 0.7, 1
	default:
		return 0.4, -1
	}
}
