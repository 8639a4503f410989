package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/Vladisof/FootballSingularity/internal/game"
	"github.com/Vladisof/FootballSingularity/internal/parser"
	"github.com/Vladisof/FootballSingularity/internal/store"
)

func main() {
	var (
		dbPath      string
		balancePath string
		seed        int64
	)

	flag.StringVar(&dbPath, "db", "footballdna.db", "sqlite save file (empty for in-memory)")
	flag.StringVar(&balancePath, "balance", "", "optional balance config YAML")
	flag.Int64Var(&seed, "seed", 0, "rng seed (0 for time-based)")
	flag.Parse()

	cfg := game.DefaultConfig()
	if balancePath != "" {
		loaded, err := game.LoadConfig(balancePath)
		if err != nil {
			log.Fatalf("config load failed: %v", err)
		}
		cfg = loaded
	}
	if seed != 0 {
		cfg.Balance.Seed = seed
	}

	var st store.Store
	if dbPath == "" {
		st = store.NewMemoryStore()
	} else {
		sqliteStore, err := store.OpenSQLite(dbPath)
		if err != nil {
			log.Fatalf("store open failed: %v", err)
		}
		st = sqliteStore
	}
	defer st.Close()

	saved, hasSave, err := st.Load()
	if err != nil {
		log.Fatalf("save load failed: %v", err)
	}
	var savedPtr *game.SaveData
	if hasSave {
		savedPtr = &saved
	}

	lab := game.NewLab(cfg, st, savedPtr)
	p := parser.New()

	fmt.Println("Football DNA Lab console. Type help for commands, quit to exit.")

	scanner := bufio.NewScanner(os.Stdin)
	last := time.Now()
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()

		// Wall-clock time passes between commands.
		now := time.Now()
		for _, ev := range lab.Tick(now.Sub(last)) {
			fmt.Printf("* %s\n", ev.Type)
		}
		last = now

		if line == "quit" || line == "exit" {
			break
		}

		// Strict form first, fuzzy fallback second.
		result := lab.ExecuteCommand(line)
		if !result.Handled {
			intent := p.Parse(parseContext(lab), line)
			if intent.Clarify != nil {
				fmt.Println(intent.Clarify.Prompt)
				for i, opt := range intent.Clarify.Options {
					fmt.Printf("  %d. %s\n", i+1, parser.IntentToCommandString(opt))
				}
				continue
			}
			result = lab.ExecuteCommand(parser.IntentToCommandString(intent))
		}
		if result.Handled && result.Message != "" {
			fmt.Println(result.Message)
		} else if !result.Handled {
			fmt.Println("Unknown command. Type help.")
		}
	}

	if err := lab.Save(); err != nil {
		log.Printf("final save failed: %v", err)
	}
}

func parseContext(lab *game.Lab) parser.ParseContext {
	ctx := parser.ParseContext{}
	for _, t := range game.AllUpgrades {
		ctx.Upgrades = append(ctx.Upgrades, string(t))
	}
	for _, c := range game.AllCategories {
		ctx.Categories = append(ctx.Categories, string(c))
	}
	for _, item := range lab.UnlockedDNA() {
		ctx.DNAIDs = append(ctx.DNAIDs, item.ID)
	}
	return ctx
}
