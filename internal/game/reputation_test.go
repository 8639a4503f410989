package game

import "testing"

func TestReputationSeedsLow(t *testing.T) {
	b := NewReputationBook(seededRNG(6), []string{"Thunder FC", "Iron City", "Vortex"})
	for team, score := range b.All() {
		if score < 0 || score >= 20 {
			t.Fatalf("team %q seeded at %v, want [0,20)", team, score)
		}
	}
}

func TestReputationUnknownTeamReadsNeutral(t *testing.T) {
	b := NewReputationBook(seededRNG(6), []string{"Thunder FC"})
	if got := b.Get("Nobody United"); got != 50 {
		t.Fatalf("unknown team = %v, want 50", got)
	}
}

func TestReputationChangeClamps(t *testing.T) {
	b := NewReputationBook(seededRNG(6), []string{"Thunder FC"})

	b.Change("Thunder FC", 500)
	if got := b.Get("Thunder FC"); got != 100 {
		t.Fatalf("over-credit = %v, want clamp at 100", got)
	}
	b.Change("Thunder FC", -500)
	if got := b.Get("Thunder FC"); got != 0 {
		t.Fatalf("over-debit = %v, want clamp at 0", got)
	}
}

func TestReputationDecayStopsAtFifty(t *testing.T) {
	b := NewReputationBook(seededRNG(6), []string{"High", "Mid", "Low"})
	b.Change("High", 100) // clamped to 100
	b.Change("Mid", 50.3-b.Get("Mid"))
	low := b.Get("Low")

	b.Decay(0.5)
	if got := b.Get("High"); got != 99.5 {
		t.Fatalf("high team after decay = %v, want 99.5", got)
	}
	if got := b.Get("Mid"); got != 50 {
		t.Fatalf("decay must not cross 50, got %v", got)
	}
	if got := b.Get("Low"); got != low {
		t.Fatalf("teams at or below 50 must not decay, got %v want %v", got, low)
	}
}

func TestReputationRestoreClamps(t *testing.T) {
	b := NewReputationBook(seededRNG(6), []string{"Thunder FC"})
	b.restore(map[string]float64{"Thunder FC": 140})
	if got := b.Get("Thunder FC"); got != 100 {
		t.Fatalf("restore must clamp, got %v", got)
	}
}
