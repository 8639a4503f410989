package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/Vladisof/FootballSingularity/internal/game"
)

// Server exposes the lab to presentation clients over HTTP and WebSocket.
type Server struct {
	lab *game.Lab
	hub *Hub
}

func NewServer(lab *game.Lab, hub *Hub) *Server {
	return &Server{lab: lab, hub: hub}
}

// Routes sets up the HTTP routes.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(middleware.Heartbeat("/health"))

	// CORS for local development clients.
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
			if r.Method == "OPTIONS" {
				w.WriteHeader(http.StatusOK)
				return
			}
			next.ServeHTTP(w, r)
		})
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/state", s.handleState)
		r.Get("/orders", s.handleActiveOrders)
		r.Get("/orders/accepted", s.handleAcceptedOrders)
		r.Get("/orders/completed", s.handleCompletedOrders)
		r.Get("/subjects", s.handleSubjects)
		r.Get("/dna", s.handleDNA)
		r.Get("/players", s.handlePlayers)
		r.Get("/mutations", s.handleMutations)
		r.Get("/research", s.handleResearch)
		r.Get("/reputation", s.handleReputation)
		r.Get("/upgrades", s.handleUpgrades)
		r.Get("/wallet", s.handleWallet)

		r.Post("/orders/{orderID}/accept", s.handleAcceptOrder)
		r.Post("/orders/{orderID}/submit", s.handleSubmitPlayer)
		r.Post("/mutations", s.handleStartMutation)
		r.Post("/research", s.handleStartResearch)
		r.Post("/subjects/refresh", s.handleRefreshSubjects)
		r.Post("/upgrades/purchase", s.handlePurchaseUpgrade)
		r.Post("/save", s.handleSave)
	})

	r.Get("/ws", func(w http.ResponseWriter, r *http.Request) {
		serveWs(s.hub, w, r)
	})

	return r
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{"error": message})
}
