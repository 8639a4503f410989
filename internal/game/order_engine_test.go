package game

import (
	"math"
	"testing"
	"time"
)

func testBalance() Balance {
	b := DefaultBalance()
	b.Seed = 1
	return b
}

func testBook(seed int64) *ReputationBook {
	return NewReputationBook(seededRNG(seed), []string{"Thunder FC", "Iron City"})
}

func spawnOne(t *testing.T, e *OrderEngine, book *ReputationBook) Order {
	t.Helper()
	// Longest possible countdown is MaxSpawnSeconds.
	spawned, _ := e.Tick(time.Duration(e.cfg.MaxSpawnSeconds)*time.Second, book)
	if spawned == nil {
		t.Fatal("expected an order to spawn within the max interval")
	}
	return *spawned
}

func TestOrderEngineSpawnAndExpiry(t *testing.T) {
	e := NewOrderEngine(seededRNG(5), testBalance())
	book := testBook(5)

	order := spawnOne(t, e, book)
	if len(e.Active()) != 1 {
		t.Fatalf("active count = %d, want 1", len(e.Active()))
	}
	if order.TimeRemaining != e.cfg.acceptWindow() {
		t.Fatalf("fresh order window = %s, want %s", order.TimeRemaining, e.cfg.acceptWindow())
	}

	// Let the acceptance window lapse without a spawn racing in.
	_, expired := e.Tick(e.cfg.acceptWindow()+time.Millisecond, book)
	found := false
	for _, ex := range expired {
		if ex.ID == order.ID {
			found = true
		}
	}
	if !found {
		t.Fatal("order should have expired after its acceptance window")
	}
	for _, still := range e.Active() {
		if still.ID == order.ID {
			t.Fatal("expired order must leave the active list")
		}
	}
}

func TestOrderEngineAcceptFreezesCountdown(t *testing.T) {
	e := NewOrderEngine(seededRNG(9), testBalance())
	book := testBook(9)

	order := spawnOne(t, e, book)
	if !e.Accept(order.ID) {
		t.Fatal("accept of a fresh order failed")
	}
	if e.Accept(order.ID) {
		t.Fatal("second accept of the same order must fail")
	}

	// A long stretch of time must not expire an accepted order.
	_, expired := e.Tick(10*time.Minute, book)
	for _, ex := range expired {
		if ex.ID == order.ID {
			t.Fatal("accepted order expired")
		}
	}
	if got, ok := e.Get(order.ID); !ok || got.ID != order.ID {
		t.Fatal("accepted order should remain retrievable")
	}
}

func TestOrderEngineRespectsActiveCap(t *testing.T) {
	cfg := testBalance()
	cfg.MaxActiveOrders = 1
	e := NewOrderEngine(seededRNG(13), cfg)
	book := testBook(13)

	spawnOne(t, e, book)
	// With the cap reached the countdown must not even advance.
	before := e.TimeUntilNextOrder()
	spawned, _ := e.Tick(time.Second, book)
	if spawned != nil {
		t.Fatal("engine spawned past MaxActiveOrders")
	}
	if e.TimeUntilNextOrder() != before {
		t.Fatal("spawn countdown advanced while the active list was full")
	}
}

func TestOrderEngineSubmitRejectsFilledSlot(t *testing.T) {
	e := NewOrderEngine(seededRNG(21), testBalance())
	book := testBook(21)

	order := spawnOne(t, e, book)
	if !e.Accept(order.ID) {
		t.Fatal("accept failed")
	}

	stats := StatVector{Speed: 50, Defense: 50, Attack: 50, Stamina: 50, Jumping: 50, Strength: 50, Agility: 50, Accuracy: 50}
	if _, ok := e.Submit(order.ID, 0, stats); !ok {
		t.Fatal("first submission to slot 0 failed")
	}
	if len(order.Requirements) > 1 {
		if _, ok := e.Submit(order.ID, 0, stats); ok {
			t.Fatal("resubmission to a fulfilled slot must be rejected")
		}
	}
	if _, ok := e.Submit(order.ID, len(order.Requirements), stats); ok {
		t.Fatal("out of range slot must be rejected")
	}
	if _, ok := e.Submit("no-such-order", 0, stats); ok {
		t.Fatal("unknown order must be rejected")
	}
}

func TestOrderEnginePerfectCompletion(t *testing.T) {
	e := NewOrderEngine(seededRNG(33), testBalance())
	book := testBook(33)

	order := spawnOne(t, e, book)
	if !e.Accept(order.ID) {
		t.Fatal("accept failed")
	}

	perfect := StatVector{Speed: 99, Defense: 99, Attack: 99, Stamina: 99, Jumping: 99, Strength: 99, Agility: 99, Accuracy: 99}
	var completion *OrderCompletion
	for slot := range order.Requirements {
		got, ok := e.Submit(order.ID, slot, perfect)
		if !ok {
			t.Fatalf("submission to slot %d failed", slot)
		}
		completion = got
	}
	if completion == nil {
		t.Fatal("filling every slot must complete the order")
	}
	if math.Abs(completion.Score-100) > 1e-9 {
		t.Fatalf("perfect submission score = %f, want 100", completion.Score)
	}
	wantPayout := int(math.Round(float64(order.BasePayout) * 1.3))
	if completion.Payout != wantPayout {
		t.Fatalf("payout = %d, want %d", completion.Payout, wantPayout)
	}
	if completion.ReputationDelta != 8 {
		t.Fatalf("reputation delta = %v, want 8", completion.ReputationDelta)
	}
	if len(e.Completed()) != 1 || len(e.Accepted()) != 0 {
		t.Fatal("completed order must move from accepted to completed")
	}
}
