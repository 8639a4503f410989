package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Vladisof/FootballSingularity/internal/game"
)

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.lab.Snapshot())
}

func (s *Server) handleActiveOrders(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.lab.ActiveOrders())
}

func (s *Server) handleAcceptedOrders(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.lab.AcceptedOrders())
}

func (s *Server) handleCompletedOrders(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.lab.CompletedOrders())
}

func (s *Server) handleSubjects(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.lab.Subjects())
}

func (s *Server) handleDNA(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.lab.UnlockedDNA())
}

func (s *Server) handlePlayers(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.lab.Players())
}

func (s *Server) handleMutations(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.lab.ActiveMutations())
}

func (s *Server) handleResearch(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.lab.ResearchTasks())
}

func (s *Server) handleReputation(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.lab.Reputations())
}

func (s *Server) handleUpgrades(w http.ResponseWriter, r *http.Request) {
	levels := s.lab.UpgradeLevels()
	out := make([]map[string]any, 0, len(game.AllUpgrades))
	for _, t := range game.AllUpgrades {
		out = append(out, map[string]any{
			"type":      t,
			"level":     levels[t],
			"next_cost": s.lab.UpgradeCost(t),
		})
	}
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleWallet(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]float64{"money": s.lab.Money()})
}

func (s *Server) handleAcceptOrder(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderID")
	if !s.lab.AcceptOrder(orderID) {
		s.writeError(w, http.StatusConflict, "order cannot be accepted")
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "accepted"})
}

type submitRequest struct {
	Slot     int    `json:"slot"`
	PlayerID string `json:"player_id"`
}

func (s *Server) handleSubmitPlayer(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderID")

	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if !s.lab.SubmitPlayer(orderID, req.Slot, req.PlayerID) {
		s.writeError(w, http.StatusConflict, "submission rejected")
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "submitted"})
}

type mutationRequest struct {
	SubjectID string   `json:"subject_id"`
	DNAIDs    []string `json:"dna_ids"`
}

func (s *Server) handleStartMutation(w http.ResponseWriter, r *http.Request) {
	var req mutationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	attemptID, ok := s.lab.StartMutation(req.SubjectID, req.DNAIDs)
	if !ok {
		s.writeError(w, http.StatusConflict, "mutation rejected")
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"attempt_id": attemptID})
}

type researchRequest struct {
	Category game.DNACategory `json:"category"`
}

func (s *Server) handleStartResearch(w http.ResponseWriter, r *http.Request) {
	var req researchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if !s.lab.StartResearch(req.Category) {
		s.writeError(w, http.StatusConflict, "research rejected")
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "researching"})
}

func (s *Server) handleRefreshSubjects(w http.ResponseWriter, r *http.Request) {
	if !s.lab.RefreshSubjects() {
		s.writeError(w, http.StatusConflict, "not enough money")
		return
	}
	s.writeJSON(w, http.StatusOK, s.lab.Subjects())
}

type purchaseRequest struct {
	Type game.UpgradeType `json:"type"`
}

func (s *Server) handlePurchaseUpgrade(w http.ResponseWriter, r *http.Request) {
	var req purchaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if !s.lab.PurchaseUpgrade(req.Type) {
		s.writeError(w, http.StatusConflict, "purchase rejected")
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]int{"level": s.lab.UpgradeLevels()[req.Type]})
}

func (s *Server) handleSave(w http.ResponseWriter, r *http.Request) {
	if err := s.lab.Save(); err != nil {
		s.writeError(w, http.StatusInternalServerError, "save failed")
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "saved"})
}
