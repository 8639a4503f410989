package game

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Balance stores the global tuning variables. Every timer is expressed in
// seconds so the values read naturally in a YAML override file.
type Balance struct {
	Seed          int64   `yaml:"seed"`
	StartingMoney float64 `yaml:"starting_money"`

	SubjectStatMin     int     `yaml:"subject_stat_min"`
	SubjectStatMax     int     `yaml:"subject_stat_max"`
	SubjectPoolSize    int     `yaml:"subject_pool_size"`
	SubjectRefreshCost float64 `yaml:"subject_refresh_cost"`

	BaseMutationSeconds float64 `yaml:"base_mutation_seconds"`
	BaseFailureChance   float64 `yaml:"base_failure_chance"`
	MinFailureChance    float64 `yaml:"min_failure_chance"`
	MaxMutations        int     `yaml:"max_mutations"`

	MinSpawnSeconds    float64 `yaml:"min_spawn_seconds"`
	MaxSpawnSeconds    float64 `yaml:"max_spawn_seconds"`
	MaxActiveOrders    int     `yaml:"max_active_orders"`
	OrderAcceptSeconds float64 `yaml:"order_accept_seconds"`

	BaseResearchSeconds float64 `yaml:"base_research_seconds"`
	BaseResearchCost    float64 `yaml:"base_research_cost"`

	ReputationDecay      float64 `yaml:"reputation_decay"`
	DecayIntervalSeconds float64 `yaml:"decay_interval_seconds"`
	AutosaveSeconds      float64 `yaml:"autosave_seconds"`
}

func DefaultBalance() Balance {
	return Balance{
		StartingMoney:        50,
		SubjectStatMin:       30,
		SubjectStatMax:       60,
		SubjectPoolSize:      3,
		SubjectRefreshCost:   50,
		BaseMutationSeconds:  30,
		BaseFailureChance:    0.25,
		MinFailureChance:     0.05,
		MaxMutations:         3,
		MinSpawnSeconds:      10,
		MaxSpawnSeconds:      30,
		MaxActiveOrders:      5,
		OrderAcceptSeconds:   30,
		BaseResearchSeconds:  180,
		BaseResearchCost:     100,
		ReputationDecay:      0.5,
		DecayIntervalSeconds: 60,
		AutosaveSeconds:      180,
	}
}

func (b Balance) Validate() error {
	if b.SubjectStatMin < 0 || b.SubjectStatMax > 99 || b.SubjectStatMin > b.SubjectStatMax {
		return fmt.Errorf("subject stat range [%d,%d] must lie within [0,99]", b.SubjectStatMin, b.SubjectStatMax)
	}
	if b.SubjectPoolSize < 1 {
		return fmt.Errorf("subject pool size must be positive, got %d", b.SubjectPoolSize)
	}
	if b.BaseFailureChance < 0 || b.BaseFailureChance > 1 {
		return fmt.Errorf("base failure chance %f must lie within [0,1]", b.BaseFailureChance)
	}
	if b.MaxMutations < 1 {
		return fmt.Errorf("max mutations must be positive, got %d", b.MaxMutations)
	}
	if b.MinSpawnSeconds <= 0 || b.MaxSpawnSeconds < b.MinSpawnSeconds {
		return fmt.Errorf("spawn interval [%f,%f] is invalid", b.MinSpawnSeconds, b.MaxSpawnSeconds)
	}
	if b.MaxActiveOrders < 1 {
		return fmt.Errorf("max active orders must be positive, got %d", b.MaxActiveOrders)
	}
	if b.OrderAcceptSeconds <= 0 {
		return fmt.Errorf("order accept window must be positive, got %f", b.OrderAcceptSeconds)
	}
	if b.BaseMutationSeconds <= 0 || b.BaseResearchSeconds <= 0 {
		return fmt.Errorf("process durations must be positive")
	}
	return nil
}

func (b Balance) mutationTime() time.Duration { return seconds(b.BaseMutationSeconds) }
func (b Balance) researchTime() time.Duration { return seconds(b.BaseResearchSeconds) }
func (b Balance) acceptWindow() time.Duration { return seconds(b.OrderAcceptSeconds) }
func (b Balance) decayInterval() time.Duration {
	return seconds(b.DecayIntervalSeconds)
}
func (b Balance) autosaveInterval() time.Duration { return seconds(b.AutosaveSeconds) }

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

// Config bundles tuning with overridable content tables.
type Config struct {
	Balance Balance   `yaml:"balance"`
	Teams   []string  `yaml:"teams"`
	DNA     []DNAItem `yaml:"dna"`
}

func DefaultConfig() Config {
	return Config{
		Balance: DefaultBalance(),
		Teams:   BuiltinTeams(),
		DNA:     BuiltinDNA(),
	}
}

// LoadConfig reads a YAML override on top of the defaults. A missing teams or
// dna section keeps the built-in content.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read balance file: %w", err)
	}

	var override Config
	override.Balance = cfg.Balance
	if err := yaml.Unmarshal(raw, &override); err != nil {
		return cfg, fmt.Errorf("parse balance file: %w", err)
	}
	cfg.Balance = override.Balance
	if len(override.Teams) > 0 {
		cfg.Teams = override.Teams
	}
	if len(override.DNA) > 0 {
		cfg.DNA = override.DNA
	}

	if err := cfg.Balance.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
