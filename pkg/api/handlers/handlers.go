package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/mflstudio/concours/pkg/config"
	"github.com/mflstudio/concours/pkg/log"
	"github.com/mflstudio/concours/pkg/messages"
	"github.com/mflstudio/concours/pkg/repositories"
	"github.com/mflstudio/concours/pkg/state"
	"github.com/mflstudio/concours/pkg/version"
)

const (
	DefaultRoundsLimit = 20
	MaxRoundsLimit     = 100
)

type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, HealthResponse{Status: "ok", Version: version.Get()})
	}
}

// HandleGetState returns the last snapshot published by the game loop.
func HandleGetState(stateManager state.StateManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		gameState, err := stateManager.Get(r.Context())
		if err != nil {
			log.Error("failed to get game state: %v", err)
			http.Error(w, "Failed to get game state", http.StatusInternalServerError)
			return
		}
		writeJSON(w, gameState)
	}
}

func HandleGetRoster(roster config.Roster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, roster)
	}
}

// HandleListRounds returns archived round results, newest first.
func HandleListRounds(repository repositories.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := DefaultRoundsLimit
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 1 || parsed > MaxRoundsLimit {
				http.Error(w, "limit must be between 1 and 100", http.StatusBadRequest)
				return
			}
			limit = parsed
		}

		rounds, err := repository.ListRoundResults(r.Context(), limit)
		if err != nil {
			log.Error("failed to list rounds: %v", err)
			http.Error(w, "Failed to list rounds", http.StatusInternalServerError)
			return
		}
		writeJSON(w, rounds)
	}
}

// HandleGetRoundSnapshot returns the last checkpoint saved for a round.
func HandleGetRoundSnapshot(repository repositories.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		epoch, err := strconv.ParseUint(mux.Vars(r)["epoch"], 10, 64)
		if err != nil {
			http.Error(w, "Failed to parse epoch", http.StatusBadRequest)
			return
		}

		snapshot, err := repository.LoadSnapshot(r.Context(), epoch)
		if err != nil {
			if repositories.IsNotFound(err) {
				http.Error(w, "Snapshot not found", http.StatusNotFound)
				return
			}
			log.Error("failed to load snapshot of round %d: %v", epoch, err)
			http.Error(w, "Failed to load snapshot", http.StatusInternalServerError)
			return
		}

		gameState, err := messages.DeserializeGameState(snapshot.Data)
		if err != nil {
			log.Error("failed to decode snapshot of round %d: %v", epoch, err)
			http.Error(w, "Failed to decode snapshot", http.StatusInternalServerError)
			return
		}
		writeJSON(w, gameState)
	}
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("failed to encode response: %v", err)
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}
