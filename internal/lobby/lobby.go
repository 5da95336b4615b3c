// internal/lobby/lobby.go
package lobby

import (
	"errors"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/blanksgame/blanks/internal/game"
	"github.com/blanksgame/blanks/internal/models"
)

// Status is a lobby's lifecycle state.
type Status string

const (
	StatusWaiting  Status = "waiting"
	StatusInGame   Status = "in-game"
	StatusFinished Status = "finished"
)

var (
	ErrNotHost          = errors.New("only the host can start the game")
	ErrNotEnoughPlayers = errors.New("need at least 2 players to start")
)

// Lobby is a named, capacity-bounded group of players with a host. Once
// started it owns exactly one Game. Members are kept in join order; that
// order becomes the judge rotation at game start.
//
// Lobby methods assume the session directory's lock is held; the directory
// serializes every client action.
type Lobby struct {
	ID         uuid.UUID
	Name       string
	MaxPlayers int
	HostID     uuid.UUID
	Members    []*models.Player
	Status     Status
	Game       *game.Game
	CreatedAt  time.Time
}

// New creates a lobby with the given host auto-joined and marked as host.
// Capacity below two is raised to two.
func New(name string, maxPlayers int, host *models.Player) *Lobby {
	if maxPlayers < 2 {
		maxPlayers = 2
	}
	l := &Lobby{
		ID:         uuid.New(),
		Name:       name,
		MaxPlayers: maxPlayers,
		HostID:     host.ID,
		Status:     StatusWaiting,
		CreatedAt:  time.Now(),
	}
	host.LobbyID = l.ID
	host.IsHost = true
	l.Members = append(l.Members, host)
	return l
}

// AddPlayer appends a member if capacity allows. Returns false when full.
func (l *Lobby) AddPlayer(p *models.Player) bool {
	if len(l.Members) >= l.MaxPlayers {
		return false
	}
	p.LobbyID = l.ID
	l.Members = append(l.Members, p)
	return true
}

// RemovePlayer drops a member. If the host leaves and members remain, the
// next member in join order becomes host.
func (l *Lobby) RemovePlayer(playerID uuid.UUID) {
	for i, m := range l.Members {
		if m.ID == playerID {
			l.Members = append(l.Members[:i], l.Members[i+1:]...)
			break
		}
	}
	if l.HostID == playerID && len(l.Members) > 0 {
		l.HostID = l.Members[0].ID
		l.Members[0].IsHost = true
		log.WithFields(log.Fields{
			"lobby": l.ID,
			"host":  l.Members[0].Name,
		}).Info("host reassigned")
	}
}

// Empty reports whether the lobby has no members left.
func (l *Lobby) Empty() bool {
	return len(l.Members) == 0
}

// Summary projects the lobby for lists and lobby-joined/lobby-updated
// events. IsHost reflects the recipient.
func (l *Lobby) Summary(recipient uuid.UUID) models.LobbySummary {
	players := make([]models.SummaryPlayer, 0, len(l.Members))
	for _, m := range l.Members {
		players = append(players, models.SummaryPlayer{
			ID:     m.ID,
			Name:   m.Name,
			IsHost: m.ID == l.HostID,
		})
	}
	return models.LobbySummary{
		ID:             l.ID,
		Name:           l.Name,
		MaxPlayers:     l.MaxPlayers,
		CurrentPlayers: len(l.Members),
		Status:         string(l.Status),
		Players:        players,
		IsHost:         recipient == l.HostID,
	}
}

// Broadcast sends the same event to every current member.
func (l *Lobby) Broadcast(event string, data any) {
	for _, m := range l.Members {
		m.Conn.Write(event, data)
	}
}

// BroadcastSummaries sends each member a summary with their own host flag.
func (l *Lobby) BroadcastSummaries(event string) {
	for _, m := range l.Members {
		m.Conn.Write(event, l.Summary(m.ID))
	}
}

// BroadcastGameState sends each member their view of the game state.
// Hands are confidential, so the projection is rendered per recipient.
func (l *Lobby) BroadcastGameState(event string) {
	if l.Game == nil {
		return
	}
	for _, m := range l.Members {
		m.Conn.Write(event, l.Game.StateFor(m.ID))
	}
}

// StartGame snapshots the current members into a new game and transitions
// the lobby to in-game. Only the host may start, and at least two members
// must be present. The member order at this moment is permanent for the
// session.
func (l *Lobby) StartGame(requesterID uuid.UUID) (*game.Game, error) {
	if requesterID != l.HostID {
		return nil, ErrNotHost
	}
	if len(l.Members) < 2 {
		return nil, ErrNotEnoughPlayers
	}

	g, err := game.New(l.ID, l.Members)
	if err != nil {
		return nil, err
	}
	l.Game = g
	l.Status = StatusInGame

	log.WithFields(log.Fields{
		"lobby":   l.ID,
		"name":    l.Name,
		"players": len(l.Members),
	}).Info("game started in lobby")
	return g, nil
}

// FinishGame marks the lobby finished after its game reaches GameOver.
func (l *Lobby) FinishGame() {
	l.Status = StatusFinished
}
