package game

import (
	"math"
	"math/rand/v2"
	"time"
)

// OrderCompletion is the scored outcome of a fully fulfilled order.
type OrderCompletion struct {
	Order           Order   `json:"order"`
	Score           float64 `json:"score"`
	Payout          int     `json:"payout"`
	ReputationDelta float64 `json:"reputation_delta"`
}

// OrderEngine owns the three order lists and the spawn countdown. State
// machine per order: Active -> Accepted -> Completed, or Active -> Expired.
// Accepted orders never expire and never return to Active.
type OrderEngine struct {
	rng *rand.Rand
	cfg Balance

	active    []*Order
	accepted  []*Order
	completed []*Order

	spawnCountdown time.Duration
}

func NewOrderEngine(rng *rand.Rand, cfg Balance) *OrderEngine {
	e := &OrderEngine{rng: rng, cfg: cfg}
	e.rollSpawnCountdown()
	return e
}

func (e *OrderEngine) rollSpawnCountdown() {
	e.spawnCountdown = time.Duration(rangeFloat(e.rng, e.cfg.MinSpawnSeconds, e.cfg.MaxSpawnSeconds) * float64(time.Second))
}

// Tick advances acceptance countdowns and the spawn gate. Expired orders are
// dropped with no payout or reputation effect; at most one order spawns per
// tick.
func (e *OrderEngine) Tick(dt time.Duration, book *ReputationBook) (spawned *Order, expired []Order) {
	// Expiry first so a slot freed this tick can gate the spawn check.
	kept := e.active[:0]
	for _, order := range e.active {
		order.TimeRemaining -= dt
		if order.expired() {
			expired = append(expired, order.clone())
			continue
		}
		kept = append(kept, order)
	}
	e.active = kept

	if len(e.active) < e.cfg.MaxActiveOrders {
		e.spawnCountdown -= dt
		if e.spawnCountdown <= 0 {
			spawnedOrder := e.spawn(book)
			e.rollSpawnCountdown()
			s := spawnedOrder.clone()
			spawned = &s
		}
	}
	return spawned, expired
}

// spawn generates an order for a random team, freezing a varied sample of its
// current reputation.
func (e *OrderEngine) spawn(book *ReputationBook) *Order {
	team := book.RandomTeam(e.rng)
	reputation := clampFloat(book.Get(team)+rangeFloat(e.rng, -5, 5), 0, 100)

	order := generateOrder(e.rng, team, reputation, e.cfg.acceptWindow())
	e.active = append(e.active, order)
	return order
}

// Accept moves an active, unexpired order to the accepted list and freezes
// its countdown.
func (e *OrderEngine) Accept(orderID string) bool {
	for i, order := range e.active {
		if order.ID != orderID {
			continue
		}
		if order.expired() {
			return false
		}
		e.active = append(e.active[:i], e.active[i+1:]...)
		e.accepted = append(e.accepted, order)
		return true
	}
	return false
}

// Submit records a player's stats against one slot of an accepted order.
// Re-submitting a fulfilled slot is rejected. When the last slot fills, the
// order is scored and completed; the returned completion carries the payout
// and reputation delta for the Lab to apply.
func (e *OrderEngine) Submit(orderID string, slot int, stats StatVector) (*OrderCompletion, bool) {
	for i, order := range e.accepted {
		if order.ID != orderID {
			continue
		}
		if slot < 0 || slot >= len(order.Requirements) {
			return nil, false
		}
		req := &order.Requirements[slot]
		if req.Fulfilled {
			return nil, false
		}
		submitted := stats
		req.Submitted = &submitted
		req.Fulfilled = true

		if !order.allFulfilled() {
			return nil, true
		}

		order.Completed = true
		e.accepted = append(e.accepted[:i], e.accepted[i+1:]...)
		e.completed = append(e.completed, order)

		score := order.averageScore()
		multiplier, repDelta := rewardForScore(score)
		return &OrderCompletion{
			Order:           order.clone(),
			Score:           score,
			Payout:          int(math.Round(float64(order.BasePayout) * multiplier)),
			ReputationDelta: repDelta,
		}, true
	}
	return nil, false
}

// Get finds an order in the active or accepted lists.
func (e *OrderEngine) Get(orderID string) (Order, bool) {
	for _, order := range e.active {
		if order.ID == orderID {
			return order.clone(), true
		}
	}
	for _, order := range e.accepted {
		if order.ID == orderID {
			return order.clone(), true
		}
	}
	return Order{}, false
}

func cloneOrders(list []*Order) []Order {
	out := make([]Order, len(list))
	for i, order := range list {
		out[i] = order.clone()
	}
	return out
}

func (e *OrderEngine) Active() []Order    { return cloneOrders(e.active) }
func (e *OrderEngine) Accepted() []Order  { return cloneOrders(e.accepted) }
func (e *OrderEngine) Completed() []Order { return cloneOrders(e.completed) }

// TimeUntilNextOrder exposes the spawn countdown for status displays.
func (e *OrderEngine) TimeUntilNextOrder() time.Duration { return e.spawnCountdown }

func (e *OrderEngine) reset() {
	e.active = nil
	e.accepted = nil
	e.completed = nil
	e.rollSpawnCountdown()
}
