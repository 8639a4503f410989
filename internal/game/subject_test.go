package game

import "testing"

func TestSubjectPoolInvariantSize(t *testing.T) {
	p := NewSubjectPool(seededRNG(4), 3, 30, 60)

	subjects := p.Available()
	if len(subjects) != 3 {
		t.Fatalf("pool size = %d, want 3", len(subjects))
	}

	consumed, ok := p.Consume(subjects[0].ID)
	if !ok || consumed.ID != subjects[0].ID {
		t.Fatal("consume of a pooled subject failed")
	}
	if len(p.Available()) != 3 {
		t.Fatal("pool must refill immediately after a consume")
	}
	if _, ok := p.Get(consumed.ID); ok {
		t.Fatal("consumed subject must leave the pool")
	}
	if _, ok := p.Consume(consumed.ID); ok {
		t.Fatal("double consume must fail")
	}
}

func TestSubjectPoolRegenerateReplacesEveryone(t *testing.T) {
	p := NewSubjectPool(seededRNG(4), 3, 30, 60)
	before := p.Available()

	p.Regenerate()
	for _, old := range before {
		if _, ok := p.Get(old.ID); ok {
			t.Fatalf("subject %s survived a regenerate", old.ID)
		}
	}
	if len(p.Available()) != 3 {
		t.Fatal("regenerate must keep the pool size")
	}
}

func TestRandomSubjectShape(t *testing.T) {
	rng := seededRNG(8)
	for i := 0; i < 50; i++ {
		s := randomSubject(rng, 30, 60)
		if s.ID == "" || s.Name == "" {
			t.Fatalf("subject missing identity: %+v", s)
		}
		if len(s.NaturalTraits) < 1 || len(s.NaturalTraits) > 2 {
			t.Fatalf("trait count = %d, want 1-2", len(s.NaturalTraits))
		}
		if len(s.NaturalTraits) == 2 && s.NaturalTraits[0] == s.NaturalTraits[1] {
			t.Fatalf("duplicate trait %q", s.NaturalTraits[0])
		}
		for _, name := range StatNames {
			if v := s.BaseStats.Get(name); v < 30 || v > 60 {
				t.Fatalf("stat %s = %d outside [30,60]", name, v)
			}
		}
	}
}
