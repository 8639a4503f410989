package game

// Built-in product content: the DNA catalog, the team roster, and the name
// and flavour-text tables. A balance file may override the catalog and the
// roster; everything here is data, not mechanics.

func dna(id, name string, cat DNACategory, rar DNARarity, desc string, mods StatVector) DNAItem {
	return DNAItem{ID: id, Name: name, Category: cat, Rarity: rar, Description: desc, Modifiers: mods}
}

// BuiltinDNA returns the default 16-item catalog.
func BuiltinDNA() []DNAItem {
	return []DNAItem{
		// Animal
		dna("dna_gazelle", "Gazelle DNA", CategoryAnimal, RarityCommon,
			"Speed boost from nature's fastest runners",
			StatVector{Speed: 15, Stamina: 5, Strength: -5, Agility: 10}),
		dna("dna_gorilla", "Gorilla DNA", CategoryAnimal, RarityCommon,
			"Massive strength and power",
			StatVector{Speed: -5, Defense: 10, Attack: 5, Jumping: 5, Strength: 20, Agility: -5}),
		dna("dna_owl", "Owl DNA", CategoryAnimal, RarityUncommon,
			"Enhanced perception and accuracy",
			StatVector{Defense: 5, Agility: 5, Accuracy: 15}),
		dna("dna_cheetah", "Cheetah DNA", CategoryAnimal, RarityRare,
			"Explosive speed and agility",
			StatVector{Speed: 20, Attack: 5, Stamina: -5, Agility: 15}),
		dna("dna_dolphin", "Dolphin DNA", CategoryAnimal, RarityUncommon,
			"Enhanced agility and stamina",
			StatVector{Speed: 5, Stamina: 10, Agility: 10}),

		// Legendary players
		dna("dna_10", "Number 10 DNA", CategoryLegendaryPlayer, RarityLegendary,
			"The magic of the greatest",
			StatVector{Speed: 10, Defense: 5, Attack: 15, Stamina: 10, Jumping: 5, Strength: 5, Agility: 15, Accuracy: 15}),
		dna("dna_7", "Number 7 DNA", CategoryLegendaryPlayer, RarityLegendary,
			"Speed and precision combined",
			StatVector{Speed: 15, Attack: 20, Stamina: 10, Jumping: 10, Strength: 10, Agility: 10, Accuracy: 15}),
		dna("dna_goalgod", "GoalGod DNA", CategoryLegendaryPlayer, RarityEpic,
			"Pure attacking instinct",
			StatVector{Speed: 10, Attack: 25, Stamina: 5, Jumping: 10, Strength: 5, Agility: 5, Accuracy: 20}),

		// Environment
		dna("dna_ice", "Ice DNA", CategoryEnvironment, RarityUncommon,
			"Cool under pressure, steady performance",
			StatVector{Defense: 10, Stamina: 15, Strength: 5, Agility: 5, Accuracy: 10}),
		dna("dna_lava", "Lava DNA", CategoryEnvironment, RarityRare,
			"Explosive power and intensity",
			StatVector{Speed: 10, Defense: -5, Attack: 15, Stamina: 10, Jumping: 5, Strength: 15, Accuracy: 5}),
		dna("dna_wind", "Wind DNA", CategoryEnvironment, RarityCommon,
			"Swift movement and agility",
			StatVector{Speed: 10, Stamina: 5, Agility: 15}),
		dna("dna_lightning", "Lightning DNA", CategoryEnvironment, RarityEpic,
			"Blinding speed and reflexes",
			StatVector{Speed: 20, Attack: 10, Stamina: 5, Jumping: 5, Agility: 20, Accuracy: 10}),

		// Mechanical
		dna("dna_drone", "Drone DNA", CategoryMechanical, RarityUncommon,
			"Enhanced aerial ability",
			StatVector{Speed: 5, Stamina: 10, Jumping: 20, Agility: 10, Accuracy: 5}),
		dna("dna_magnet", "Magnet DNA", CategoryMechanical, RarityRare,
			"Ball control and attraction",
			StatVector{Defense: 10, Attack: 10, Strength: 5, Agility: 5, Accuracy: 15}),
		dna("dna_jetpack", "Jetpack DNA", CategoryMechanical, RarityEpic,
			"Explosive jumping and speed",
			StatVector{Speed: 15, Attack: 5, Stamina: 5, Jumping: 25, Agility: 10}),
		dna("dna_titanium", "Titanium DNA", CategoryMechanical, RarityRare,
			"Unbreakable defense",
			StatVector{Defense: 20, Stamina: 15, Jumping: 5, Strength: 15}),
	}
}

// starterDNA is unlocked on a fresh game so the first mutation is possible.
var starterDNA = []string{"dna_gazelle", "dna_gorilla", "dna_wind", "dna_drone"}

// BuiltinTeams returns the default client roster.
func BuiltinTeams() []string {
	return []string{
		"Manchester United",
		"Barcelona",
		"Real Madrid",
		"Bayern Munich",
		"Liverpool",
		"Paris Saint-Germain",
		"Juventus",
		"AC Milan",
		"Chelsea",
		"Arsenal",
		"Brazil National Team",
		"Argentina National Team",
		"Germany National Team",
		"France National Team",
		"England National Team",
		"Spain National Team",
	}
}

var subjectFirstNames = []string{
	"Alex", "Jordan", "Taylor", "Morgan", "Casey",
	"Jamie", "Riley", "Avery", "Quinn", "Blake",
}

var subjectLastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones",
	"Garcia", "Miller", "Davis", "Martinez", "Lopez",
}

var naturalTraits = []string{
	"Athletic", "Resilient", "Quick Reflexes", "Natural Talent", "Hard Worker",
}

var playerNamePrefixes = []string{
	"Alpha", "Beta", "Gamma", "Delta", "Omega", "Sigma", "Prime",
}

var failureMessages = []string{
	"Mutation failed - DNA strands rejected the subject.",
	"Critical failure - Subject cannot sustain mutations.",
	"Mutation unstable - Process aborted.",
	"DNA incompatibility detected - Mutation failed.",
	"Subject's immune system rejected the mutation.",
}

var bonusTags = []string{
	"Prefers Animal DNA traits",
	"Prefers Mechanical DNA traits",
	"Bonus for high Speed",
	"Bonus for balanced stats",
	"Prefers Legendary Player DNA",
	"Bonus for high Jumping",
	"Prefers Environment DNA traits",
}
