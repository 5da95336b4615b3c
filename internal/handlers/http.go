// internal/handlers/http.go
package handlers

import (
	"encoding/json"
	"net/http"
	"os"
	"time"

	"github.com/blanksgame/blanks/internal/session"
)

const apiVersion = "1.0.0"

func environment() string {
	if env := os.Getenv("APP_ENV"); env != "" {
		return env
	}
	return "development"
}

// HealthHandler reports process liveness plus active lobby and player
// counts, for deployment health checks.
func HealthHandler(dir *session.Directory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		players, lobbies := dir.Counts()
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"status":        "healthy",
			"timestamp":     time.Now().UTC().Format(time.RFC3339),
			"environment":   environment(),
			"activeLobbies": lobbies,
			"activePlayers": players,
		})
	}
}

// StatusHandler returns a static API status banner.
func StatusHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"message":     "Blanks API is running",
			"version":     apiVersion,
			"environment": environment(),
		})
	}
}
