package game

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
)

// MutationAttempt is one in-flight combination of a subject with 2-3 DNA
// items. Owned by the engine until it resolves; there is no cancel.
type MutationAttempt struct {
	ID      string        `json:"id"`
	Subject Subject       `json:"subject"`
	DNA     []DNAItem     `json:"dna"`
	Elapsed time.Duration `json:"elapsed"`
	Total   time.Duration `json:"total"`
}

func (a MutationAttempt) Progress() float64 {
	if a.Total <= 0 {
		return 1
	}
	return clampFloat(float64(a.Elapsed)/float64(a.Total), 0, 1)
}

func (a MutationAttempt) Remaining() time.Duration {
	if a.Elapsed >= a.Total {
		return 0
	}
	return a.Total - a.Elapsed
}

// MutationResult is the terminal outcome of an attempt. Failure is a
// first-class result, not an error: the subject is gone either way.
type MutationResult struct {
	AttemptID      string      `json:"attempt_id"`
	SubjectName    string      `json:"subject_name"`
	Success        bool        `json:"success"`
	Stats          *StatVector `json:"stats,omitempty"`
	DNAUsed        []string    `json:"dna_used,omitempty"`
	FailureMessage string      `json:"failure_message,omitempty"`
}

// MutationEngine runs up to MaxMutations timer-driven attempts. Admission
// beyond the cap is rejected synchronously, never queued.
type MutationEngine struct {
	rng      *rand.Rand
	cfg      Balance
	attempts []*MutationAttempt
}

func NewMutationEngine(rng *rand.Rand, cfg Balance) *MutationEngine {
	return &MutationEngine{rng: rng, cfg: cfg}
}

// Start admits a new attempt. The DNA count must be 2 or 3 and the
// concurrent cap must not be reached; the caller has already consumed the
// subject.
func (e *MutationEngine) Start(subject Subject, items []DNAItem, speedMultiplier float64) (*MutationAttempt, bool) {
	if len(e.attempts) >= e.cfg.MaxMutations {
		return nil, false
	}
	if len(items) < 2 || len(items) > 3 {
		return nil, false
	}
	if speedMultiplier <= 0 {
		speedMultiplier = 1
	}

	attempt := &MutationAttempt{
		ID:      uuid.New().String(),
		Subject: subject.clone(),
		DNA:     append([]DNAItem(nil), items...),
		Total:   time.Duration(float64(e.cfg.mutationTime()) / speedMultiplier),
	}
	e.attempts = append(e.attempts, attempt)
	return attempt, true
}

// Tick advances all attempts and resolves those that reach their total
// duration. Each attempt resolves exactly once.
func (e *MutationEngine) Tick(dt time.Duration, failureChance float64) []MutationResult {
	var results []MutationResult
	kept := e.attempts[:0]
	for _, attempt := range e.attempts {
		attempt.Elapsed += dt
		if attempt.Elapsed < attempt.Total {
			kept = append(kept, attempt)
			continue
		}
		results = append(results, resolveMutation(
			attempt,
			failureChance,
			e.rng.Float64(),
			func() int { return rangeInt(e.rng, -5, 5) },
			func() string { return failureMessages[e.rng.IntN(len(failureMessages))] },
		))
	}
	e.attempts = kept
	return results
}

// resolveMutation computes the terminal result from explicit roll and jitter
// inputs so the arithmetic is testable without randomness.
func resolveMutation(attempt *MutationAttempt, failureChance, roll float64, jitter func() int, pickMessage func() string) MutationResult {
	result := MutationResult{
		AttemptID:   attempt.ID,
		SubjectName: attempt.Subject.Name,
	}

	if roll < failureChance {
		result.FailureMessage = pickMessage()
		return result
	}

	stats := attempt.Subject.BaseStats
	for _, item := range attempt.DNA {
		stats.Add(item.Modifiers)
	}
	stats.Add(StatVector{
		Speed:    jitter(),
		Defense:  jitter(),
		Attack:   jitter(),
		Stamina:  jitter(),
		Jumping:  jitter(),
		Strength: jitter(),
		Agility:  jitter(),
		Accuracy: jitter(),
	})
	stats.Clamp(0, 99)

	names := make([]string, len(attempt.DNA))
	for i, item := range attempt.DNA {
		names[i] = item.Name
	}

	result.Success = true
	result.Stats = &stats
	result.DNAUsed = names
	return result
}

// failureChance applies the chamber upgrade to the base chance, floored at
// the configured minimum.
func failureChance(cfg Balance, upgrades *Upgrades) float64 {
	return math.Max(cfg.MinFailureChance, cfg.BaseFailureChance-upgrades.FailureReduction())
}

// Active returns defensive copies of the in-flight attempts.
func (e *MutationEngine) Active() []MutationAttempt {
	out := make([]MutationAttempt, len(e.attempts))
	for i, attempt := range e.attempts {
		a := *attempt
		a.Subject = attempt.Subject.clone()
		a.DNA = append([]DNAItem(nil), attempt.DNA...)
		out[i] = a
	}
	return out
}

func (e *MutationEngine) Count() int { return len(e.attempts) }

func (e *MutationEngine) reset() { e.attempts = nil }
