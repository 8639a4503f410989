package game

import "testing"

func TestResearchOnePerCategory(t *testing.T) {
	l := NewResearchLab(testBalance())

	if !l.Start(CategoryAnimal, 1) {
		t.Fatal("first research rejected")
	}
	if l.Start(CategoryAnimal, 1) {
		t.Fatal("same category must not run twice")
	}
	if !l.Start(CategoryMechanical, 1) {
		t.Fatal("a different category must be allowed in parallel")
	}
	if !l.IsResearching(CategoryAnimal) || !l.IsResearching(CategoryMechanical) {
		t.Fatal("researching flags wrong")
	}
	if len(l.Active()) != 2 {
		t.Fatalf("active tasks = %d, want 2", len(l.Active()))
	}
}

func TestResearchTickCompletes(t *testing.T) {
	cfg := testBalance()
	l := NewResearchLab(cfg)
	l.Start(CategoryAnimal, 1)

	if done := l.Tick(cfg.researchTime() / 2); len(done) != 0 {
		t.Fatalf("research finished early: %v", done)
	}
	if got := l.Progress(CategoryAnimal); got != 0.5 {
		t.Fatalf("progress = %v, want 0.5", got)
	}

	done := l.Tick(cfg.researchTime() / 2)
	if len(done) != 1 || done[0] != CategoryAnimal {
		t.Fatalf("done = %v, want [Animal]", done)
	}
	if l.IsResearching(CategoryAnimal) {
		t.Fatal("finished category must be free again")
	}
	if got := l.Progress(CategoryAnimal); got != 0 {
		t.Fatalf("progress of idle category = %v, want 0", got)
	}
}

func TestResearchSpeedMultiplier(t *testing.T) {
	cfg := testBalance()
	l := NewResearchLab(cfg)
	l.Start(CategoryEnvironment, 2)

	done := l.Tick(cfg.researchTime() / 2)
	if len(done) != 1 {
		t.Fatal("doubled speed should finish in half the base time")
	}
}
