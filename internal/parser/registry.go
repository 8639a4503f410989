package parser

import (
	"regexp"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

var multiSpaceRE = regexp.MustCompile(`\s+`)

func normaliseInput(raw string) string {
	raw = strings.TrimSpace(strings.ToLower(raw))
	if raw == "" {
		return ""
	}
	var b strings.Builder
	lastSpace := false
	for _, r := range raw {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' {
			b.WriteRune(r)
			lastSpace = false
			continue
		}
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '-' || r == '/' {
			if !lastSpace {
				b.WriteByte(' ')
			}
			lastSpace = true
		}
	}
	return strings.TrimSpace(multiSpaceRE.ReplaceAllString(b.String(), " "))
}

func tokenise(normalised string) []string {
	if strings.TrimSpace(normalised) == "" {
		return nil
	}
	return strings.Fields(normalised)
}

type commandPhrase struct {
	canonical string
	alias     string
	tokens    []string
}

type Registry struct {
	commands map[string]CommandDef
	phrases  []commandPhrase
}

func NewRegistry() *Registry {
	return &Registry{commands: make(map[string]CommandDef)}
}

func (r *Registry) RegisterCommand(c CommandDef) {
	c.Canonical = normaliseInput(c.Canonical)
	if c.Canonical == "" {
		return
	}
	r.commands[c.Canonical] = c

	r.phrases = append(r.phrases, commandPhrase{
		canonical: c.Canonical,
		alias:     c.Canonical,
		tokens:    tokenise(c.Canonical),
	})
	for _, a := range c.Aliases {
		n := normaliseInput(a)
		if n == "" {
			continue
		}
		r.phrases = append(r.phrases, commandPhrase{
			canonical: c.Canonical,
			alias:     n,
			tokens:    tokenise(n),
		})
	}
}

func (r *Registry) command(canonical string) (CommandDef, bool) {
	cmd, ok := r.commands[normaliseInput(canonical)]
	return cmd, ok
}

type commandCandidate struct {
	Canonical string
	Alias     string
	Consumed  int
	Score     float64
}

func (r *Registry) matchCommand(tokens []string) (commandCandidate, []commandCandidate) {
	if len(tokens) == 0 {
		return commandCandidate{}, nil
	}
	cands := make([]commandCandidate, 0, len(r.phrases))
	for _, phrase := range r.phrases {
		if len(phrase.tokens) == 0 {
			continue
		}
		consumed := min(len(tokens), len(phrase.tokens))
		prefix := strings.Join(tokens[:consumed], " ")

		if consumed == len(phrase.tokens) && prefix == phrase.alias {
			score := 1.0
			if phrase.alias != phrase.canonical {
				score = 0.97
			}
			cands = append(cands, commandCandidate{
				Canonical: phrase.canonical,
				Alias:     phrase.alias,
				Consumed:  consumed,
				Score:     score,
			})
			continue
		}

		if len(phrase.tokens) == 1 && strings.HasPrefix(phrase.alias, tokens[0]) && len(tokens[0]) >= 3 {
			cands = append(cands, commandCandidate{
				Canonical: phrase.canonical,
				Alias:     phrase.alias,
				Consumed:  1,
				Score:     0.9,
			})
			continue
		}

		if len(prefix) < 3 {
			continue
		}
		dist := levenshtein.ComputeDistance(prefix, phrase.alias)
		if dist > levenshteinLimit(len(phrase.alias)) {
			continue
		}
		cands = append(cands, commandCandidate{
			Canonical: phrase.canonical,
			Alias:     phrase.alias,
			Consumed:  consumed,
			Score:     0.72 - (0.08 * float64(dist)),
		})
	}

	sort.SliceStable(cands, func(i, j int) bool {
		if cands[i].Score == cands[j].Score {
			if cands[i].Consumed == cands[j].Consumed {
				return cands[i].Canonical < cands[j].Canonical
			}
			return cands[i].Consumed > cands[j].Consumed
		}
		return cands[i].Score > cands[j].Score
	})

	if len(cands) == 0 {
		return commandCandidate{}, nil
	}
	best := cands[0]
	alts := make([]commandCandidate, 0, 4)
	seen := map[string]bool{best.Canonical: true}
	for _, c := range cands[1:] {
		if seen[c.Canonical] {
			continue
		}
		seen[c.Canonical] = true
		alts = append(alts, c)
		if len(alts) >= 4 {
			break
		}
	}
	return best, alts
}

func levenshteinLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}

// DefaultRegistry covers every verb the lab console understands.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	commands := []CommandDef{
		{Canonical: "help", Aliases: []string{"h", "commands", "?"}, Kind: Help},
		{Canonical: "status", Aliases: []string{"stat", "overview", "lab status"}, Kind: Query},
		{Canonical: "orders", Aliases: []string{"order", "contracts", "show orders", "list orders"}, MaxArgs: 1, Kind: Query},
		{Canonical: "accept", Aliases: []string{"take order", "take"}, MinArgs: 1, MaxArgs: 1},
		{Canonical: "submit", Aliases: []string{"deliver", "send player"}, MinArgs: 3, MaxArgs: 3},
		{Canonical: "subjects", Aliases: []string{"subject", "pool", "candidates"}, Kind: Query},
		{Canonical: "refresh", Aliases: []string{"reroll", "new subjects"}},
		{Canonical: "dna", Aliases: []string{"library", "dna library", "items"}, Kind: Query},
		{Canonical: "research", Aliases: []string{"study", "unlock"}, MaxArgs: 1},
		{Canonical: "mutate", Aliases: []string{"mutation", "splice", "combine"}, MinArgs: 3, MaxArgs: 4},
		{Canonical: "mutations", Aliases: []string{"chamber", "in progress"}, Kind: Query},
		{Canonical: "players", Aliases: []string{"player", "roster", "squad"}, Kind: Query},
		{Canonical: "release", Aliases: []string{"dismiss", "fire player"}, MinArgs: 1, MaxArgs: 1},
		{Canonical: "upgrades", Aliases: []string{"upgrade", "shop"}, Kind: Query},
		{Canonical: "buy", Aliases: []string{"purchase"}, MinArgs: 1, MaxArgs: 1},
		{Canonical: "save", Aliases: []string{"save game"}},
		{Canonical: "tick", Aliases: []string{"advance", "wait"}, MaxArgs: 1},
	}
	for _, cmd := range commands {
		r.RegisterCommand(cmd)
	}
	return r
}
