// internal/models/summary.go
package models

import "github.com/google/uuid"

// SummaryPlayer is one member entry in a lobby summary.
type SummaryPlayer struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	IsHost bool      `json:"isHost"`
}

// LobbySummary is the projection of a lobby sent in lobby lists and
// lobby-joined/lobby-updated events. IsHost is set per recipient.
type LobbySummary struct {
	ID             uuid.UUID       `json:"id"`
	Name           string          `json:"name"`
	MaxPlayers     int             `json:"maxPlayers"`
	CurrentPlayers int             `json:"currentPlayers"`
	Status         string          `json:"status"`
	Players        []SummaryPlayer `json:"players"`
	IsHost         bool            `json:"isHost"`
}
