// internal/models/player.go
package models

import (
	"github.com/google/uuid"
)

// Player is one connected client with a registered display name.
// Players are owned by the session directory; a lobby holds non-owning
// references. LobbyID is uuid.Nil while the player is not in a lobby.
type Player struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Conn    *Conn     `json:"-"`
	LobbyID uuid.UUID `json:"-"`
	IsHost  bool      `json:"isHost"`
}

// NewPlayer registers a fresh player for a connection. Display names are
// not required to be unique.
func NewPlayer(name string, conn *Conn) *Player {
	return &Player{
		ID:   uuid.New(),
		Name: name,
		Conn: conn,
	}
}

// InLobby reports whether the player currently belongs to a lobby.
func (p *Player) InLobby() bool {
	return p.LobbyID != uuid.Nil
}
