package parser

type IntentKind int

const (
	Command IntentKind = iota
	Query
	Help
	Unknown
)

// Intent is the parsed form of one console line: a canonical verb plus
// its arguments, with a confidence score. When the parser cannot commit
// to a single reading it attaches a ClarifyQuestion instead.
type Intent struct {
	Raw        string
	Normalised string
	Kind       IntentKind
	Verb       string
	Args       []string
	Confidence float64
	Clarify    *ClarifyQuestion
}

type ClarifyQuestion struct {
	Prompt  string
	Options []Intent
}

// ParseContext carries the lab vocabulary the parser resolves fuzzy
// arguments against.
type ParseContext struct {
	Upgrades   []string
	Categories []string
	DNAIDs     []string
}

type CommandDef struct {
	Canonical string
	Aliases   []string
	MinArgs   int
	MaxArgs   int
	Kind      IntentKind
}
