package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Vladisof/FootballSingularity/internal/api"
	"github.com/Vladisof/FootballSingularity/internal/game"
	"github.com/Vladisof/FootballSingularity/internal/store"
)

func main() {
	var (
		addr        string
		dbPath      string
		balancePath string
		seed        int64
		tickEvery   time.Duration
	)

	flag.StringVar(&addr, "addr", ":8080", "listen address")
	flag.StringVar(&dbPath, "db", "footballdna.db", "sqlite save file (empty for in-memory)")
	flag.StringVar(&balancePath, "balance", "", "optional balance config YAML")
	flag.Int64Var(&seed, "seed", 0, "rng seed (0 for time-based)")
	flag.DurationVar(&tickEvery, "tick", 250*time.Millisecond, "simulation tick interval")
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
		log.Printf("loaded save saved_at=%s money=%.0f", saved.SavedAt, saved.Money)
	}

	lab := game.NewLab(cfg, st, savedPtr)

	hub := api.NewHub()
	go hub.Run()

	// Simulation heartbeat. The lab only moves when ticked, so this loop is
	// the single driver of game time.
	stopTicking := make(chan struct{})
	go func() {
		ticker := time.NewTicker(tickEvery)
		defer ticker.Stop()
		last := time.Now()
		for {
			select {
			case now := <-ticker.C:
				events := lab.Tick(now.Sub(last))
				last = now
				if len(events) > 0 {
					hub.BroadcastEvents(events)
				}
			case <-stopTicking:
				return
			}
		}
	}()

	server := &http.Server{
		Addr:    addr,
		Handler: api.NewServer(lab, hub).Routes(),
	}

	go func() {
		log.Printf("listening addr=%s db=%q", addr, dbPath)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server failed: %v", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Println("shutting down")
	close(stopTicking)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown error: %v", err)
	}
	hub.Stop()
	if err := lab.Save(); err != nil {
		log.Printf("final save failed: %v", err)
	}
}
