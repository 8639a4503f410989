package game

import "math"

type UpgradeType string

const (
	UpgradeMutationChamber UpgradeType = "MutationChamber"    // reduces failure chance
	UpgradeTraitStabilizer UpgradeType = "TraitStabilizer"    // improves trait retention
	UpgradeResearchSpeed   UpgradeType = "ResearchSpeed"      // shortens research times
	UpgradeDNACapacity     UpgradeType = "DNALibraryCapacity" // increases DNA storage
	UpgradeMutationSpeed   UpgradeType = "MutationSpeed"      // speeds up mutations
)

var AllUpgrades = []UpgradeType{
	UpgradeMutationChamber,
	UpgradeTraitStabilizer,
	UpgradeResearchSpeed,
	UpgradeDNACapacity,
	UpgradeMutationSpeed,
}

// MaxUpgradeLevel caps every upgrade track.
const MaxUpgradeLevel = 10

func (t UpgradeType) IsValid() bool {
	for _, known := range AllUpgrades {
		if t == known {
			return true
		}
	}
	return false
}

func (t UpgradeType) baseCost() float64 {
	switch t {
	case UpgradeMutationChamber:
		return 200
	case UpgradeTraitStabilizer:
		return 250
	case UpgradeResearchSpeed:
		return 300
	case UpgradeDNACapacity:
		return 150
	case UpgradeMutationSpeed:
		return 200
	default:
		return 100
	}
}

// Upgrades tracks the purchased level per upgrade type. Effects are pure
// functions of level; purchasing is coordinated by the Lab against the
// wallet.
type Upgrades struct {
	levels map[UpgradeType]int
}

func NewUpgrades() *Upgrades {
	return &Upgrades{levels: make(map[UpgradeType]int)}
}

func (u *Upgrades) Level(t UpgradeType) int { return u.levels[t] }

// Cost returns the price of the next level: base * 1.5^level, rounded.
func (u *Upgrades) Cost(t UpgradeType) float64 {
	return math.Round(t.baseCost() * math.Pow(1.5, float64(u.levels[t])))
}

func (u *Upgrades) Levels() map[UpgradeType]int {
	out := make(map[UpgradeType]int, len(AllUpgrades))
	for _, t := range AllUpgrades {
		out[t] = u.levels[t]
	}
	return out
}

func (u *Upgrades) setLevel(t UpgradeType, level int) {
	u.levels[t] = clampInt(level, 0, MaxUpgradeLevel)
}

func (u *Upgrades) increment(t UpgradeType) {
	u.setLevel(t, u.levels[t]+1)
}

// FailureReduction shaves 3% off the mutation failure chance per chamber
// level.
func (u *Upgrades) FailureReduction() float64 {
	return float64(u.Level(UpgradeMutationChamber)) * 0.03
}

// TraitRetention is 50% base plus 5% per stabilizer level. Defined by the
// balance sheet but not consumed by any scoring path.
func (u *Upgrades) TraitRetention() float64 {
	return 0.5 + float64(u.Level(UpgradeTraitStabilizer))*0.05
}

func (u *Upgrades) ResearchSpeedMultiplier() float64 {
	return 1.0 + float64(u.Level(UpgradeResearchSpeed))*0.15
}

func (u *Upgrades) DNACapacity() int {
	return 20 + u.Level(UpgradeDNACapacity)*5
}

func (u *Upgrades) MutationSpeedMultiplier() float64 {
	return 1.0 + float64(u.Level(UpgradeMutationSpeed))*0.2
}
