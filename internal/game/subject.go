package game

import (
	"math/rand/v2"

	"github.com/google/uuid"
)

// Subject is a base specimen consumed by a mutation attempt. Natural traits
// are cosmetic and have no mechanical effect.
type Subject struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	BaseStats     StatVector `json:"base_stats"`
	NaturalTraits []string   `json:"natural_traits"`
}

func randomSubject(rng *rand.Rand, statLo, statHi int) Subject {
	traitCount := rangeInt(rng, 1, 2)
	traits := make([]string, 0, traitCount)
	for len(traits) < traitCount {
		trait := naturalTraits[rng.IntN(len(naturalTraits))]
		if !containsString(traits, trait) {
			traits = append(traits, trait)
		}
	}

	return Subject{
		ID:            uuid.New().String(),
		Name:          subjectFirstNames[rng.IntN(len(subjectFirstNames))] + " " + subjectLastNames[rng.IntN(len(subjectLastNames))],
		BaseStats:     RandomStats(rng, statLo, statHi),
		NaturalTraits: traits,
	}
}

func (s Subject) clone() Subject {
	out := s
	out.NaturalTraits = append([]string(nil), s.NaturalTraits...)
	return out
}

// SubjectPool keeps a fixed number of subjects available at all times.
// Consuming one immediately generates a replacement, so the pool never
// shrinks or blocks.
type SubjectPool struct {
	rng      *rand.Rand
	size     int
	statLo   int
	statHi   int
	subjects []Subject
}

func NewSubjectPool(rng *rand.Rand, size, statLo, statHi int) *SubjectPool {
	p := &SubjectPool{rng: rng, size: size, statLo: statLo, statHi: statHi}
	p.Regenerate()
	return p
}

// Available returns a defensive copy of the current pool.
func (p *SubjectPool) Available() []Subject {
	out := make([]Subject, len(p.subjects))
	for i, s := range p.subjects {
		out[i] = s.clone()
	}
	return out
}

func (p *SubjectPool) Get(id string) (Subject, bool) {
	for _, s := range p.subjects {
		if s.ID == id {
			return s.clone(), true
		}
	}
	return Subject{}, false
}

// Consume removes a subject and generates a fresh replacement, keeping the
// pool size invariant.
func (p *SubjectPool) Consume(id string) (Subject, bool) {
	for i, s := range p.subjects {
		if s.ID == id {
			p.subjects = append(p.subjects[:i], p.subjects[i+1:]...)
			p.subjects = append(p.subjects, randomSubject(p.rng, p.statLo, p.statHi))
			return s, true
		}
	}
	return Subject{}, false
}

// Regenerate replaces the entire pool. Payment is the caller's concern.
func (p *SubjectPool) Regenerate() {
	p.subjects = make([]Subject, 0, p.size)
	for i := 0; i < p.size; i++ {
		p.subjects = append(p.subjects, randomSubject(p.rng, p.statLo, p.statHi))
	}
}

func containsString(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
