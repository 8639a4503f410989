package game

import (
	"log"
	"math/rand/v2"
	"sync"
	"time"
)

// SaveData is the persisted state shape. Everything else (orders, subjects,
// in-flight processes) is regenerated on start, matching the original save
// boundary.
type SaveData struct {
	Money         float64            `json:"money"`
	Reputations   map[string]float64 `json:"reputations"`
	UpgradeLevels map[string]int     `json:"upgrade_levels"`
	UnlockedDNA   []string           `json:"unlocked_dna"`
	SavedAt       string             `json:"saved_at"`
}

// Persister is the save boundary the Lab writes through. The store package
// provides SQLite and in-memory implementations.
type Persister interface {
	Save(SaveData) error
}

// Lab is the whole simulation behind a single mutex: one writer at a time,
// snapshot accessors return defensive copies only. Time advances exclusively
// through Tick.
type Lab struct {
	mu  sync.Mutex
	cfg Config
	rng *rand.Rand

	wallet     *Wallet
	upgrades   *Upgrades
	catalog    *DNACatalog
	subjects   *SubjectPool
	mutations  *MutationEngine
	research   *ResearchLab
	orders     *OrderEngine
	reputation *ReputationBook
	roster     *Roster

	persister Persister
	dirty     bool
	decay     time.Duration
	autosave  time.Duration

	pending []Event
}

// NewLab builds a fresh lab, optionally hydrated from a previous save.
func NewLab(cfg Config, persister Persister, saved *SaveData) *Lab {
	rng := seededRNG(effectiveSeed(cfg.Balance.Seed))

	l := &Lab{
		cfg:        cfg,
		rng:        rng,
		wallet:     NewWallet(cfg.Balance.StartingMoney),
		upgrades:   NewUpgrades(),
		catalog:    NewDNACatalog(cfg.DNA),
		subjects:   NewSubjectPool(rng, cfg.Balance.SubjectPoolSize, cfg.Balance.SubjectStatMin, cfg.Balance.SubjectStatMax),
		mutations:  NewMutationEngine(rng, cfg.Balance),
		research:   NewResearchLab(cfg.Balance),
		orders:     NewOrderEngine(rng, cfg.Balance),
		reputation: NewReputationBook(rng, cfg.Teams),
		roster:     NewRoster(),
		persister:  persister,
	}

	for _, id := range starterDNA {
		l.catalog.Unlock(id)
	}

	if saved != nil {
		l.restore(*saved)
	}
	return l
}

func effectiveSeed(seed int64) int64 {
	if seed == 0 {
		return time.Now().UnixNano()
	}
	return seed
}

func (l *Lab) restore(data SaveData) {
	l.wallet.setBalance(data.Money)
	l.reputation.restore(data.Reputations)
	for name, level := range data.UpgradeLevels {
		t := UpgradeType(name)
		if t.IsValid() {
			l.upgrades.setLevel(t, level)
		}
	}
	if len(data.UnlockedDNA) > 0 {
		l.catalog.SetUnlocked(data.UnlockedDNA)
	}
}

// Tick advances every engine by dt in a fixed order: order expiry and spawn,
// mutations, research, reputation decay, autosave. It returns the events
// produced since the previous tick, including those queued by direct calls.
func (l *Lab) Tick(dt time.Duration) []Event {
	l.mu.Lock()
	defer l.mu.Unlock()

	events := l.pending
	l.pending = nil

	spawned, expired := l.orders.Tick(dt, l.reputation)
	for _, order := range expired {
		log.Printf("order_expired team=%q id=%s", order.Team, order.ID)
		events = append(events, Event{Type: EventOrderExpired, Payload: order})
	}
	if spawned != nil {
		log.Printf("order_spawned team=%q id=%s slots=%d payout=%d", spawned.Team, spawned.ID, len(spawned.Requirements), spawned.BasePayout)
		events = append(events, Event{Type: EventOrderSpawned, Payload: *spawned})
	}

	for _, result := range l.mutations.Tick(dt, failureChance(l.cfg.Balance, l.upgrades)) {
		if result.Success {
			player := newCreatedPlayer(l.rng, result.SubjectName, *result.Stats, result.DNAUsed)
			l.roster.Add(player)
			l.dirty = true
			log.Printf("mutation_success subject=%q player=%q overall=%d", result.SubjectName, player.Name, player.Stats.Overall())
		} else {
			log.Printf("mutation_failed subject=%q reason=%q", result.SubjectName, result.FailureMessage)
		}
		events = append(events, Event{Type: EventMutationFinished, Payload: result})
	}

	for _, category := range l.research.Tick(dt) {
		item, ok := l.catalog.DrawRandomLocked(l.rng, category)
		if ok {
			l.catalog.Unlock(item.ID)
			l.dirty = true
			log.Printf("research_complete category=%s unlocked=%q", category, item.Name)
			events = append(events, Event{Type: EventResearchFinished, Payload: item})
		} else {
			log.Printf("research_complete category=%s exhausted", category)
			events = append(events, Event{Type: EventResearchFinished, Payload: map[string]any{"category": category, "exhausted": true}})
		}
	}

	l.decay += dt
	for l.decay >= l.cfg.Balance.decayInterval() {
		l.decay -= l.cfg.Balance.decayInterval()
		l.reputation.Decay(l.cfg.Balance.ReputationDecay)
	}

	if l.dirty {
		l.autosave += dt
		if l.autosave >= l.cfg.Balance.autosaveInterval() {
			if err := l.saveLocked(); err != nil {
				log.Printf("autosave_failed err=%v", err)
			} else {
				events = append(events, Event{Type: EventGameSaved})
			}
		}
	}

	return events
}

// AcceptOrder moves an active order into the accepted set.
func (l *Lab) AcceptOrder(orderID string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.orders.Accept(orderID) {
		return false
	}
	order, _ := l.orders.Get(orderID)
	log.Printf("order_accepted team=%q id=%s", order.Team, orderID)
	l.pending = append(l.pending, Event{Type: EventOrderAccepted, Payload: order})
	return true
}

// SubmitPlayer assigns a roster player to one slot of an accepted order. On
// the final slot the order is scored; payout and reputation delta apply
// immediately.
func (l *Lab) SubmitPlayer(orderID string, slot int, playerID string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	player, ok := l.roster.Get(playerID)
	if !ok || player.Assigned {
		return false
	}
	if _, ok := l.orders.Get(orderID); !ok {
		return false
	}

	completion, ok := l.orders.Submit(orderID, slot, player.Stats)
	if !ok {
		return false
	}
	l.roster.Assign(playerID, orderID)

	if completion != nil {
		l.wallet.Add(float64(completion.Payout))
		l.reputation.Change(completion.Order.Team, completion.ReputationDelta)
		l.dirty = true
		log.Printf("order_completed team=%q score=%.1f payout=%d rep_delta=%+.0f",
			completion.Order.Team, completion.Score, completion.Payout, completion.ReputationDelta)
		l.pending = append(l.pending, Event{Type: EventOrderCompleted, Payload: *completion})
	}
	return true
}

// StartMutation consumes a subject and admits an attempt against the
// concurrency cap. The subject and any cost are not refunded on failure.
func (l *Lab) StartMutation(subjectID string, dnaIDs []string) (string, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.mutations.Count() >= l.cfg.Balance.MaxMutations {
		return "", false
	}
	if len(dnaIDs) < 2 || len(dnaIDs) > 3 {
		return "", false
	}

	items := make([]DNAItem, 0, len(dnaIDs))
	for _, id := range dnaIDs {
		item, ok := l.catalog.Item(id)
		if !ok || !l.catalog.IsUnlocked(id) {
			return "", false
		}
		items = append(items, item)
	}

	subject, ok := l.subjects.Consume(subjectID)
	if !ok {
		return "", false
	}

	attempt, ok := l.mutations.Start(subject, items, l.upgrades.MutationSpeedMultiplier())
	if !ok {
		// Unreachable given the checks above, but the subject is gone
		// regardless: consumption is not refundable.
		return "", false
	}
	log.Printf("mutation_started subject=%q dna=%d duration=%s", subject.Name, len(items), attempt.Total)
	l.pending = append(l.pending, Event{Type: EventMutationStarted, Payload: *attempt})
	return attempt.ID, true
}

// StartResearch debits the research cost and begins unlocking a random DNA
// item of the category.
func (l *Lab) StartResearch(category DNACategory) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !category.IsValid() || l.research.IsResearching(category) {
		return false
	}
	if !l.wallet.Subtract(l.cfg.Balance.BaseResearchCost) {
		return false
	}
	l.research.Start(category, l.upgrades.ResearchSpeedMultiplier())
	l.dirty = true
	log.Printf("research_started category=%s cost=%.0f", category, l.cfg.Balance.BaseResearchCost)
	l.pending = append(l.pending, Event{Type: EventResearchStarted, Payload: category})
	return true
}

// RefreshSubjects replaces the whole pool for a fee.
func (l *Lab) RefreshSubjects() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.wallet.Subtract(l.cfg.Balance.SubjectRefreshCost) {
		return false
	}
	l.subjects.Regenerate()
	l.dirty = true
	return true
}

// PurchaseUpgrade buys the next level of an upgrade track.
func (l *Lab) PurchaseUpgrade(t UpgradeType) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !t.IsValid() || l.upgrades.Level(t) >= MaxUpgradeLevel {
		return false
	}
	cost := l.upgrades.Cost(t)
	if !l.wallet.Subtract(cost) {
		return false
	}
	l.upgrades.increment(t)
	l.dirty = true
	log.Printf("upgrade_purchased type=%s level=%d cost=%.0f", t, l.upgrades.Level(t), cost)
	return true
}

// RemovePlayer drops a created player from the roster.
func (l *Lab) RemovePlayer(playerID string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.roster.Remove(playerID)
}

// Save persists immediately, regardless of the autosave timer.
func (l *Lab) Save() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.saveLocked()
}

func (l *Lab) saveLocked() error {
	if l.persister == nil {
		return nil
	}
	err := l.persister.Save(SaveData{
		Money:         l.wallet.Balance(),
		Reputations:   l.reputation.All(),
		UpgradeLevels: upgradeLevelNames(l.upgrades),
		UnlockedDNA:   l.catalog.UnlockedIDs(),
		SavedAt:       time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return err
	}
	l.dirty = false
	l.autosave = 0
	return nil
}

func upgradeLevelNames(u *Upgrades) map[string]int {
	out := make(map[string]int, len(AllUpgrades))
	for t, level := range u.Levels() {
		out[string(t)] = level
	}
	return out
}

// Reset restores a fresh game: starting money, reseeded reputations, starter
// DNA only, empty roster, no orders or processes.
func (l *Lab) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.wallet.setBalance(l.cfg.Balance.StartingMoney)
	l.upgrades = NewUpgrades()
	l.catalog.SetUnlocked(nil)
	for _, id := range starterDNA {
		l.catalog.Unlock(id)
	}
	l.reputation = NewReputationBook(l.rng, l.cfg.Teams)
	l.subjects.Regenerate()
	l.mutations.reset()
	l.research.reset()
	l.orders.reset()
	l.roster.reset()
	l.pending = nil
	l.dirty = true
}
