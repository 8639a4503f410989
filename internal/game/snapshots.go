package game

import "time"

// Snapshot is the aggregate read model served to presentation clients.
type Snapshot struct {
	Money           float64             `json:"money"`
	Reputations     map[string]float64  `json:"reputations"`
	UpgradeLevels   map[UpgradeType]int `json:"upgrade_levels"`
	UnlockedDNA     []DNAItem           `json:"unlocked_dna"`
	Subjects        []Subject           `json:"subjects"`
	ActiveMutations []MutationAttempt   `json:"active_mutations"`
	Research        []ResearchTask      `json:"research"`
	ActiveOrders    []Order             `json:"active_orders"`
	AcceptedOrders  []Order             `json:"accepted_orders"`
	CompletedOrders []Order             `json:"completed_orders"`
	Players         []CreatedPlayer     `json:"players"`
	NextOrderIn     float64             `json:"next_order_in_seconds"`
}

// All accessors below lock, copy, and release: callers never see live
// references into engine state.

func (l *Lab) Money() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.wallet.Balance()
}

func (l *Lab) Reputations() map[string]float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.reputation.All()
}

func (l *Lab) ReputationOf(team string) float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.reputation.Get(team)
}

func (l *Lab) UpgradeLevels() map[UpgradeType]int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.upgrades.Levels()
}

func (l *Lab) UpgradeCost(t UpgradeType) float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.upgrades.Cost(t)
}

func (l *Lab) UnlockedDNA() []DNAItem {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.catalog.Unlocked()
}

func (l *Lab) Subjects() []Subject {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.subjects.Available()
}

func (l *Lab) ActiveMutations() []MutationAttempt {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.mutations.Active()
}

func (l *Lab) ResearchTasks() []ResearchTask {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.research.Active()
}

func (l *Lab) ActiveOrders() []Order {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.orders.Active()
}

func (l *Lab) AcceptedOrders() []Order {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.orders.Accepted()
}

func (l *Lab) CompletedOrders() []Order {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.orders.Completed()
}

func (l *Lab) Players() []CreatedPlayer {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.roster.All()
}

func (l *Lab) AvailablePlayers() []CreatedPlayer {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.roster.Available()
}

func (l *Lab) TimeUntilNextOrder() time.Duration {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.orders.TimeUntilNextOrder()
}

func (l *Lab) Snapshot() Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()
	return Snapshot{
		Money:           l.wallet.Balance(),
		Reputations:     l.reputation.All(),
		UpgradeLevels:   l.upgrades.Levels(),
		UnlockedDNA:     l.catalog.Unlocked(),
		Subjects:        l.subjects.Available(),
		ActiveMutations: l.mutations.Active(),
		Research:        l.research.Active(),
		ActiveOrders:    l.orders.Active(),
		AcceptedOrders:  l.orders.Accepted(),
		CompletedOrders: l.orders.Completed(),
		Players:         l.roster.All(),
		NextOrderIn:     l.orders.TimeUntilNextOrder().Seconds(),
	}
}
