package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Vladisof/FootballSingularity/internal/game"
)

type docFile struct {
	Name    string
	Title   string
	Content string
}

func main() {
	root := filepath.Join("docs", "reference", "catalogs")
	if err := os.MkdirAll(root, 0o755); err != nil {
		fatal(err)
	}

	files := []docFile{
		generateDNADoc(),
		generateTeamsDoc(),
		generateUpgradesDoc(),
	}
	for _, f := range files {
		path := filepath.Join(root, f.Name)
		if err := os.WriteFile(path, []byte(f.Content), 0o644); err != nil {
			fatal(err)
		}
		fmt.Printf("wrote %s\n", path)
	}

	index := generateCatalogIndex(files)
	indexPath := filepath.Join(root, "README.md")
	if err := os.WriteFile(indexPath, []byte(index), 0o644); err != nil {
		fatal(err)
	}
	fmt.Printf("wrote %s\n", indexPath)
}

func generateCatalogIndex(files []docFile) string {
	var b strings.Builder
	b.WriteString("# Data Catalogs\n\n")
	b.WriteString("Generated from the current Go source using `go run ./cmd/docsgen`.\n\n")
	for _, f := range files {
		b.WriteString(fmt.Sprintf("- [%s](./%s)\n", f.Title, f.Name))
	}
	return b.String()
}

func generateDNADoc() docFile {
	items := game.BuiltinDNA()
	categoryRank := map[game.DNACategory]int{}
	for i, c := range game.AllCategories {
		categoryRank[c] = i
	}
	sort.Slice(items, func(i, j int) bool {
		ri := categoryRank[items[i].Category]
		rj := categoryRank[items[j].Category]
		if ri != rj {
			return ri < rj
		}
		return items[i].ID < items[j].ID
	})

	var b strings.Builder
	b.WriteString("# DNA Items\n\n")
	b.WriteString("Source: `internal/game/content.go` (`BuiltinDNA`).\n\n")
	b.WriteString(fmt.Sprintf("Total items: **%d**.\n\n", len(items)))
	b.WriteString("| ID | Name | Category | Rarity | Modifiers | Description |\n")
	b.WriteString("| --- | --- | --- | --- | --- | --- |\n")
	for _, item := range items {
		b.WriteString("| ")
		b.WriteString(escape(item.ID))
		b.WriteString(" | ")
		b.WriteString(escape(item.Name))
		b.WriteString(" | ")
		b.WriteString(escape(string(item.Category)))
		b.WriteString(" | ")
		b.WriteString(escape(string(item.Rarity)))
		b.WriteString(" | ")
		b.WriteString(escape(formatModifiers(item.Modifiers)))
		b.WriteString(" | ")
		b.WriteString(escape(item.Description))
		b.WriteString(" |\n")
	}

	return docFile{Name: "dna.md", Title: "DNA Items", Content: b.String()}
}

func formatModifiers(m game.StatVector) string {
	parts := make([]string, 0, len(game.StatNames))
	for _, name := range game.StatNames {
		if v := m.Get(name); v != 0 {
			parts = append(parts, fmt.Sprintf("%s %+d", name, v))
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, ", ")
}

func generateTeamsDoc() docFile {
	teams := game.BuiltinTeams()

	var b strings.Builder
	b.WriteString("# Client Teams\n\n")
	b.WriteString("Source: `internal/game/content.go` (`BuiltinTeams`).\n\n")
	b.WriteString(fmt.Sprintf("Total teams: **%d**.\n\n", len(teams)))
	for _, team := range teams {
		b.WriteString("- ")
		b.WriteString(escape(team))
		b.WriteString("\n")
	}

	return docFile{Name: "teams.md", Title: "Client Teams", Content: b.String()}
}

func generateUpgradesDoc() docFile {
	var b strings.Builder
	b.WriteString("# Lab Upgrades\n\n")
	b.WriteString("Source: `internal/game/upgrades.go`. Each track runs from level 0 to ")
	b.WriteString(fmt.Sprintf("%d; the next level costs 1.5x the previous.\n\n", game.MaxUpgradeLevel))
	b.WriteString("| Type | Level 1 Cost |\n")
	b.WriteString("| --- | --- |\n")

	pricing := game.NewUpgrades()
	for _, t := range game.AllUpgrades {
		b.WriteString("| ")
		b.WriteString(escape(string(t)))
		b.WriteString(" | ")
		b.WriteString(fmt.Sprintf("$%.0f", pricing.Cost(t)))
		b.WriteString(" |\n")
	}

	return docFile{Name: "upgrades.md", Title: "Lab Upgrades", Content: b.String()}
}

func escape(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
