package game

import "math/rand/v2"

// Stat dimension names as used by order requirements and the API.
const (
	StatSpeed    = "speed"
	StatDefense  = "defense"
	StatAttack   = "attack"
	StatStamina  = "stamina"
	StatJumping  = "jumping"
	StatStrength = "strength"
	StatAgility  = "agility"
	StatAccuracy = "accuracy"
)

// StatNames lists every dimension in canonical order.
var StatNames = []string{
	StatSpeed, StatDefense, StatAttack, StatStamina,
	StatJumping, StatStrength, StatAgility, StatAccuracy,
}

// StatVector holds the eight football attributes of a subject, a created
// player, or a DNA modifier (where dimensions may be negative).
type StatVector struct {
	Speed    int `json:"speed" yaml:"speed"`
	Defense  int `json:"defense" yaml:"defense"`
	Attack   int `json:"attack" yaml:"attack"`
	Stamina  int `json:"stamina" yaml:"stamina"`
	Jumping  int `json:"jumping" yaml:"jumping"`
	Strength int `json:"strength" yaml:"strength"`
	Agility  int `json:"agility" yaml:"agility"`
	Accuracy int `json:"accuracy" yaml:"accuracy"`
}

// RandomStats draws every dimension uniformly from [lo, hi].
func RandomStats(rng *rand.Rand, lo, hi int) StatVector {
	return StatVector{
		Speed:    rangeInt(rng, lo, hi),
		Defense:  rangeInt(rng, lo, hi),
		Attack:   rangeInt(rng, lo, hi),
		Stamina:  rangeInt(rng, lo, hi),
		Jumping:  rangeInt(rng, lo, hi),
		Strength: rangeInt(rng, lo, hi),
		Agility:  rangeInt(rng, lo, hi),
		Accuracy: rangeInt(rng, lo, hi),
	}
}

// Add sums another vector into this one, dimension by dimension.
func (s *StatVector) Add(m StatVector) {
	s.Speed += m.Speed
	s.Defense += m.Defense
	s.Attack += m.Attack
	s.Stamina += m.Stamina
	s.Jumping += m.Jumping
	s.Strength += m.Strength
	s.Agility += m.Agility
	s.Accuracy += m.Accuracy
}

// Clamp bounds every dimension to [lo, hi].
func (s *StatVector) Clamp(lo, hi int) {
	s.Speed = clampInt(s.Speed, lo, hi)
	s.Defense = clampInt(s.Defense, lo, hi)
	s.Attack = clampInt(s.Attack, lo, hi)
	s.Stamina = clampInt(s.Stamina, lo, hi)
	s.Jumping = clampInt(s.Jumping, lo, hi)
	s.Strength = clampInt(s.Strength, lo, hi)
	s.Agility = clampInt(s.Agility, lo, hi)
	s.Accuracy = clampInt(s.Accuracy, lo, hi)
}

// Overall is the integer mean of all eight dimensions.
func (s StatVector) Overall() int {
	return (s.Speed + s.Defense + s.Attack + s.Stamina +
		s.Jumping + s.Strength + s.Agility + s.Accuracy) / 8
}

// Get returns the named dimension, or 0 for an unknown name.
func (s StatVector) Get(name string) int {
	switch name {
	case StatSpeed:
		return s.Speed
	case StatDefense:
		return s.Defense
	case StatAttack:
		return s.Attack
	case StatStamina:
		return s.Stamina
	case StatJumping:
		return s.Jumping
	case StatStrength:
		return s.Strength
	case StatAgility:
		return s.Agility
	case StatAccuracy:
		return s.Accuracy
	default:
		return 0
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
