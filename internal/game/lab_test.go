package game

import (
	"testing"
	"time"
)

type recordingPersister struct {
	saves []SaveData
	err   error
}

func (r *recordingPersister) Save(data SaveData) error {
	if r.err != nil {
		return r.err
	}
	r.saves = append(r.saves, data)
	return nil
}

func testLabConfig() Config {
	cfg := DefaultConfig()
	cfg.Balance.Seed = 99
	return cfg
}

func richSave() *SaveData {
	return &SaveData{
		Money: 5000,
		UpgradeLevels: map[string]int{
			string(UpgradeMutationChamber): 2,
			"BogusUpgrade":                 7,
		},
	}
}

func TestNewLabStarterState(t *testing.T) {
	lab := NewLab(testLabConfig(), nil, nil)

	if got := lab.Money(); got != 50 {
		t.Fatalf("starting money = %v, want 50", got)
	}
	unlocked := lab.UnlockedDNA()
	if len(unlocked) != len(starterDNA) {
		t.Fatalf("starter unlocks = %d, want %d", len(unlocked), len(starterDNA))
	}
	if len(lab.Subjects()) != 3 {
		t.Fatalf("subject pool = %d, want 3", len(lab.Subjects()))
	}
	if len(lab.Players()) != 0 || len(lab.ActiveOrders()) != 0 {
		t.Fatal("fresh lab must have no players or orders")
	}
}

func TestNewLabRestore(t *testing.T) {
	lab := NewLab(testLabConfig(), nil, richSave())

	if got := lab.Money(); got != 5000 {
		t.Fatalf("restored money = %v, want 5000", got)
	}
	levels := lab.UpgradeLevels()
	if levels[UpgradeMutationChamber] != 2 {
		t.Fatalf("restored chamber level = %d, want 2", levels[UpgradeMutationChamber])
	}
	for name := range levels {
		if !name.IsValid() {
			t.Fatalf("invalid upgrade %q survived restore", name)
		}
	}
}

func TestLabStartMutationRules(t *testing.T) {
	lab := NewLab(testLabConfig(), nil, nil)
	subjects := lab.Subjects()
	unlocked := lab.UnlockedDNA()

	if _, ok := lab.StartMutation(subjects[0].ID, []string{unlocked[0].ID}); ok {
		t.Fatal("one DNA item must be rejected")
	}
	if _, ok := lab.StartMutation(subjects[0].ID, []string{unlocked[0].ID, "dna_phoenix"}); ok {
		t.Fatal("locked DNA must be rejected")
	}
	if _, ok := lab.StartMutation("ghost", []string{unlocked[0].ID, unlocked[1].ID}); ok {
		t.Fatal("unknown subject must be rejected")
	}

	id, ok := lab.StartMutation(subjects[0].ID, []string{unlocked[0].ID, unlocked[1].ID})
	if !ok || id == "" {
		t.Fatal("valid mutation rejected")
	}
	if len(lab.Subjects()) != 3 {
		t.Fatal("pool must refill after the consume")
	}
	for _, s := range lab.Subjects() {
		if s.ID == subjects[0].ID {
			t.Fatal("consumed subject still in the pool")
		}
	}
	if len(lab.ActiveMutations()) != 1 {
		t.Fatalf("active mutations = %d, want 1", len(lab.ActiveMutations()))
	}
}

func TestLabMutationCap(t *testing.T) {
	lab := NewLab(testLabConfig(), nil, nil)
	unlocked := lab.UnlockedDNA()
	pair := []string{unlocked[0].ID, unlocked[1].ID}

	for i := 0; i < 3; i++ {
		subjects := lab.Subjects()
		if _, ok := lab.StartMutation(subjects[0].ID, pair); !ok {
			t.Fatalf("mutation %d rejected below the cap", i)
		}
	}
	subjects := lab.Subjects()
	if _, ok := lab.StartMutation(subjects[0].ID, pair); ok {
		t.Fatal("fourth concurrent mutation must be rejected")
	}
}

func TestLabMutationResolvesThroughTick(t *testing.T) {
	cfg := testLabConfig()
	lab := NewLab(cfg, nil, nil)
	subjects := lab.Subjects()
	unlocked := lab.UnlockedDNA()

	if _, ok := lab.StartMutation(subjects[0].ID, []string{unlocked[0].ID, unlocked[1].ID}); !ok {
		t.Fatal("mutation rejected")
	}

	events := lab.Tick(cfg.Balance.mutationTime())
	var finished *MutationResult
	for _, ev := range events {
		if ev.Type == EventMutationFinished {
			result := ev.Payload.(MutationResult)
			finished = &result
		}
	}
	if finished == nil {
		t.Fatal("ticking past the mutation time must finish the attempt")
	}
	if finished.Success != (len(lab.Players()) == 1) {
		t.Fatal("a success must add exactly one roster player, a failure none")
	}
	if len(lab.ActiveMutations()) != 0 {
		t.Fatal("resolved attempt must leave the chamber")
	}
}

func TestLabResearchDebitsAndUnlocks(t *testing.T) {
	cfg := testLabConfig()
	lab := NewLab(cfg, nil, nil)

	// Starting money is below the research cost.
	if lab.StartResearch(CategoryAnimal) {
		t.Fatal("unaffordable research must be rejected")
	}

	lab = NewLab(cfg, nil, richSave())
	moneyBefore := lab.Money()
	if !lab.StartResearch(CategoryAnimal) {
		t.Fatal("affordable research rejected")
	}
	if lab.StartResearch(CategoryAnimal) {
		t.Fatal("category already researching must be rejected")
	}
	if got := lab.Money(); got != moneyBefore-cfg.Balance.BaseResearchCost {
		t.Fatalf("money = %v, want %v", got, moneyBefore-cfg.Balance.BaseResearchCost)
	}
	if lab.StartResearch(DNACategory("Alien")) {
		t.Fatal("unknown category must be rejected")
	}

	unlockedBefore := len(lab.UnlockedDNA())
	lab.Tick(cfg.Balance.researchTime())
	if got := len(lab.UnlockedDNA()); got != unlockedBefore+1 {
		t.Fatalf("unlocked count = %d, want %d", got, unlockedBefore+1)
	}
}

func TestLabPurchaseUpgrade(t *testing.T) {
	lab := NewLab(testLabConfig(), nil, nil)
	if lab.PurchaseUpgrade(UpgradeMutationChamber) {
		t.Fatal("unaffordable purchase must be rejected")
	}

	lab = NewLab(testLabConfig(), nil, richSave())
	moneyBefore := lab.Money()
	cost := lab.UpgradeCost(UpgradeDNACapacity)
	if !lab.PurchaseUpgrade(UpgradeDNACapacity) {
		t.Fatal("affordable purchase rejected")
	}
	if got := lab.UpgradeLevels()[UpgradeDNACapacity]; got != 1 {
		t.Fatalf("level = %d, want 1", got)
	}
	if got := lab.Money(); got != moneyBefore-cost {
		t.Fatalf("money = %v, want %v", got, moneyBefore-cost)
	}
	if lab.PurchaseUpgrade(UpgradeType("WarpDrive")) {
		t.Fatal("unknown upgrade must be rejected")
	}
}

func TestLabPurchaseUpgradeAtMaxLevel(t *testing.T) {
	lab := NewLab(testLabConfig(), nil, &SaveData{
		Money: 1000000,
		UpgradeLevels: map[string]int{
			string(UpgradeDNACapacity): MaxUpgradeLevel,
		},
	})

	moneyBefore := lab.Money()
	if lab.PurchaseUpgrade(UpgradeDNACapacity) {
		t.Fatal("purchase at max level must be rejected")
	}
	if got := lab.Money(); got != moneyBefore {
		t.Fatalf("money = %v, want %v unchanged", got, moneyBefore)
	}
	if got := lab.UpgradeLevels()[UpgradeDNACapacity]; got != MaxUpgradeLevel {
		t.Fatalf("level = %d, want %d", got, MaxUpgradeLevel)
	}
}

func TestLabRefreshSubjects(t *testing.T) {
	lab := NewLab(testLabConfig(), nil, nil)
	before := lab.Subjects()

	if !lab.RefreshSubjects() {
		t.Fatal("first refresh at starting money must succeed")
	}
	if lab.RefreshSubjects() {
		t.Fatal("second refresh with an empty wallet must fail")
	}
	for _, old := range before {
		for _, s := range lab.Subjects() {
			if s.ID == old.ID {
				t.Fatal("refresh must replace every subject")
			}
		}
	}
}

func TestLabOrderLifecycleThroughTick(t *testing.T) {
	cfg := testLabConfig()
	lab := NewLab(cfg, nil, nil)

	events := lab.Tick(time.Duration(cfg.Balance.MaxSpawnSeconds) * time.Second)
	var spawned *Order
	for _, ev := range events {
		if ev.Type == EventOrderSpawned {
			order := ev.Payload.(Order)
			spawned = &order
		}
	}
	if spawned == nil {
		t.Fatal("an order must spawn within the max interval")
	}
	if !lab.AcceptOrder(spawned.ID) {
		t.Fatal("accept of a fresh order failed")
	}
	if lab.AcceptOrder(spawned.ID) {
		t.Fatal("double accept must fail")
	}
	if len(lab.AcceptedOrders()) != 1 {
		t.Fatalf("accepted orders = %d, want 1", len(lab.AcceptedOrders()))
	}

	// Submitting an unknown player is rejected before touching the order.
	if lab.SubmitPlayer(spawned.ID, 0, "ghost") {
		t.Fatal("unknown player must be rejected")
	}
}

func TestLabSaveAndAutosave(t *testing.T) {
	cfg := testLabConfig()
	persister := &recordingPersister{}
	lab := NewLab(cfg, persister, nil)

	if err := lab.Save(); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if len(persister.saves) != 1 {
		t.Fatalf("saves = %d, want 1", len(persister.saves))
	}
	data := persister.saves[0]
	if data.Money != 50 || len(data.UnlockedDNA) != len(starterDNA) || data.SavedAt == "" {
		t.Fatalf("save payload wrong: %+v", data)
	}

	// A dirty lab autosaves once the interval elapses.
	if !lab.RefreshSubjects() {
		t.Fatal("refresh failed")
	}
	lab.Tick(cfg.Balance.autosaveInterval())
	if len(persister.saves) != 2 {
		t.Fatalf("saves after autosave window = %d, want 2", len(persister.saves))
	}
}

func TestLabReset(t *testing.T) {
	lab := NewLab(testLabConfig(), nil, richSave())
	lab.Reset()

	if got := lab.Money(); got != 50 {
		t.Fatalf("reset money = %v, want 50", got)
	}
	if got := lab.UpgradeLevels()[UpgradeMutationChamber]; got != 0 {
		t.Fatalf("reset chamber level = %d, want 0", got)
	}
	if got := len(lab.UnlockedDNA()); got != len(starterDNA) {
		t.Fatalf("reset unlocks = %d, want %d", got, len(starterDNA))
	}
}
