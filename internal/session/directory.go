// internal/session/directory.go
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/blanksgame/blanks/internal/lobby"
	"github.com/blanksgame/blanks/internal/models"
)

// Error texts double as the protocol's error-event messages; clients
// display them verbatim.
var (
	ErrNoName          = errors.New("Please set your name first")
	ErrAlreadyInLobby  = errors.New("You are already in a lobby")
	ErrLobbyNotFound   = errors.New("Lobby not found")
	ErrLobbyNotWaiting = errors.New("Lobby is not accepting new players")
	ErrLobbyFull       = errors.New("Lobby is full")
	ErrNotInLobby      = errors.New("You are not in a lobby")
)

// Directory is the process-wide registry of players and lobbies. It is
// explicitly constructed and passed to the connection layer, never ambient,
// so tests can build isolated instances.
//
// A single mutex serializes every client action: each action runs to
// completion before the next is processed, which makes every state
// transition atomic with respect to other actions. Outbound writes are
// non-blocking channel sends, so broadcasting under the lock cannot stall.
type Directory struct {
	mu      sync.Mutex
	players map[uuid.UUID]*models.Player
	lobbies map[uuid.UUID]*lobby.Lobby
	log     *logrus.Logger
}

// NewDirectory returns an empty directory.
func NewDirectory(logger *logrus.Logger) *Directory {
	return &Directory{
		players: make(map[uuid.UUID]*models.Player),
		lobbies: make(map[uuid.UUID]*lobby.Lobby),
		log:     logger,
	}
}

// RegisterPlayer creates a Player for a connection's display name and
// replies with name-set. Names need not be unique.
func (d *Directory) RegisterPlayer(conn *models.Conn, name string) *models.Player {
	d.mu.Lock()
	defer d.mu.Unlock()

	p := models.NewPlayer(name, conn)
	d.players[p.ID] = p

	d.log.WithFields(logrus.Fields{
		"player": p.ID,
		"name":   name,
	}).Info("player registered")

	conn.Write("name-set", map[string]any{
		"playerId": p.ID,
		"name":     name,
	})
	return p
}

// RenamePlayer updates an existing registration's display name in place
// and re-acknowledges with name-set. A connection only ever owns one
// Player, so a repeat set-name must never create a second registry entry.
// Lobby members see the new name via lobby-updated.
func (d *Directory) RenamePlayer(p *models.Player, name string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.log.WithFields(logrus.Fields{
		"player": p.ID,
		"old":    p.Name,
		"name":   name,
	}).Info("player renamed")

	p.Name = name
	p.Conn.Write("name-set", map[string]any{
		"playerId": p.ID,
		"name":     name,
	})

	if !p.InLobby() {
		return
	}
	if l, ok := d.lobbies[p.LobbyID]; ok {
		l.BroadcastSummaries("lobby-updated")
	}
}

// ListLobbies replies with summaries of all waiting lobbies.
func (d *Directory) ListLobbies(conn *models.Conn, requester uuid.UUID) {
	d.mu.Lock()
	defer d.mu.Unlock()

	list := []models.LobbySummary{}
	for _, l := range d.lobbies {
		if l.Status == lobby.StatusWaiting {
			list = append(list, l.Summary(requester))
		}
	}
	conn.Write("lobby-list", list)
}

// CreateLobby builds a lobby with the player as auto-joined host and
// replies with lobby-created and lobby-joined.
func (d *Directory) CreateLobby(p *models.Player, name string, maxPlayers int) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if p.InLobby() {
		return ErrAlreadyInLobby
	}

	l := lobby.New(name, maxPlayers, p)
	d.lobbies[l.ID] = l

	d.log.WithFields(logrus.Fields{
		"lobby": l.ID,
		"name":  name,
		"host":  p.Name,
	}).Info("lobby created")

	summary := l.Summary(p.ID)
	p.Conn.Write("lobby-created", summary)
	p.Conn.Write("lobby-joined", summary)
	return nil
}

// JoinLobby adds the player to a waiting lobby. Exactly one error is
// returned when several apply, in the order: not found, not waiting,
// already in a lobby, full.
func (d *Directory) JoinLobby(p *models.Player, lobbyID uuid.UUID) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	l, ok := d.lobbies[lobbyID]
	if !ok {
		return ErrLobbyNotFound
	}
	if l.Status != lobby.StatusWaiting {
		return ErrLobbyNotWaiting
	}
	if p.InLobby() {
		return ErrAlreadyInLobby
	}
	if !l.AddPlayer(p) {
		return ErrLobbyFull
	}

	d.log.WithFields(logrus.Fields{
		"lobby":  l.ID,
		"player": p.Name,
	}).Info("player joined lobby")

	p.Conn.Write("lobby-joined", l.Summary(p.ID))
	l.BroadcastSummaries("lobby-updated")
	return nil
}

// LeaveLobby removes the player from their lobby, if any. Idempotent: the
// requester always receives lobby-left, even with no lobby to leave.
func (d *Directory) LeaveLobby(p *models.Player) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.removeFromLobby(p, false)
	p.Conn.Write("lobby-left", nil)
}

// DropConnection handles a disconnect: leaves the lobby (notifying the
// remaining members) and removes the player from the registry entirely.
// A dropped mid-game player stays in the game's participant snapshot; the
// round simply shows as waiting on them.
func (d *Directory) DropConnection(p *models.Player) {
	if p == nil {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()

	d.removeFromLobby(p, true)
	delete(d.players, p.ID)
	d.log.WithFields(logrus.Fields{
		"player": p.ID,
		"name":   p.Name,
	}).Info("player removed")
}

// removeFromLobby detaches the player from their lobby, deleting the lobby
// when it empties and otherwise notifying the remaining members. Assumes
// the lock is held.
func (d *Directory) removeFromLobby(p *models.Player, disconnected bool) {
	if !p.InLobby() {
		return
	}
	l, ok := d.lobbies[p.LobbyID]
	p.LobbyID = uuid.Nil
	p.IsHost = false
	if !ok {
		return
	}

	l.RemovePlayer(p.ID)
	d.log.WithFields(logrus.Fields{
		"lobby":  l.ID,
		"player": p.Name,
	}).Info("player left lobby")

	if l.Empty() {
		delete(d.lobbies, l.ID)
		d.log.WithField("lobby", l.ID).Info("lobby deleted (empty)")
		return
	}

	l.BroadcastSummaries("lobby-updated")
	if disconnected {
		l.Broadcast("player-disconnected", p.Name)
	}
}

// StartGame starts the game in the requester's lobby and broadcasts the
// initial state to every member.
func (d *Directory) StartGame(p *models.Player) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !p.InLobby() {
		return ErrNotInLobby
	}
	l, ok := d.lobbies[p.LobbyID]
	if !ok {
		return ErrLobbyNotFound
	}

	if _, err := l.StartGame(p.ID); err != nil {
		return err
	}
	l.BroadcastGameState("game-started")
	return nil
}

// inGameLobby resolves the player's lobby if a game is running there.
// Assumes the lock is held.
func (d *Directory) inGameLobby(p *models.Player) *lobby.Lobby {
	if !p.InLobby() {
		return nil
	}
	l, ok := d.lobbies[p.LobbyID]
	if !ok || l.Status != lobby.StatusInGame || l.Game == nil {
		return nil
	}
	return l
}

// SelectCard toggles a card in the player's pending selection and, on a
// state change, broadcasts the updated game state.
func (d *Directory) SelectCard(p *models.Player, handIndex int) {
	d.mu.Lock()
	defer d.mu.Unlock()

	l := d.inGameLobby(p)
	if l == nil {
		return
	}
	if l.Game.SelectCard(p.ID, handIndex) {
		l.BroadcastGameState("game-updated")
	}
}

// SubmitCards finalizes the player's selection for the round.
func (d *Directory) SubmitCards(p *models.Player) {
	d.mu.Lock()
	defer d.mu.Unlock()

	l := d.inGameLobby(p)
	if l == nil {
		return
	}
	if l.Game.SubmitCards(p.ID) {
		l.BroadcastGameState("game-updated")
	}
}

// SelectWinner records the judge's pick for the round.
func (d *Directory) SelectWinner(p *models.Player, submissionIndex int) {
	d.mu.Lock()
	defer d.mu.Unlock()

	l := d.inGameLobby(p)
	if l == nil {
		return
	}
	if l.Game.SelectWinner(p.ID, submissionIndex) {
		l.BroadcastGameState("game-updated")
	}
}

// NextRound advances the round, or ends the game when the round limit is
// reached. The terminal broadcast is game-ended; no actions are accepted
// afterwards.
func (d *Directory) NextRound(p *models.Player) {
	d.mu.Lock()
	defer d.mu.Unlock()

	l := d.inGameLobby(p)
	if l == nil {
		return
	}
	if !l.Game.NextRound(p.ID) {
		return
	}
	if l.Game.Over() {
		l.FinishGame()
		l.BroadcastGameState("game-ended")
		return
	}
	l.BroadcastGameState("game-updated")
}

// PlaySoundboard relays a cosmetic soundboard event to the player's lobby.
func (d *Directory) PlaySoundboard(p *models.Player, soundID string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !p.InLobby() {
		return
	}
	l, ok := d.lobbies[p.LobbyID]
	if !ok {
		return
	}
	l.Broadcast("soundboard-played", map[string]any{
		"playerId":   p.ID,
		"playerName": p.Name,
		"soundId":    soundID,
	})
}

// Counts reports the number of registered players and active lobbies, for
// the health endpoint.
func (d *Directory) Counts() (players, lobbies int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.players), len(d.lobbies)
}

// Reap deletes waiting lobbies that have had zero members for longer than
// maxAge. Returns the number of lobbies removed.
func (d *Directory) Reap(maxAge time.Duration) int {
	d.mu.Lock()
	defer d.mu.Unlock()

	cutoff := time.Now().Add(-maxAge)
	reaped := 0
	for id, l := range d.lobbies {
		if l.Status == lobby.StatusWaiting && l.Empty() && l.CreatedAt.Before(cutoff) {
			delete(d.lobbies, id)
			reaped++
			d.log.WithFields(logrus.Fields{
				"lobby": id,
				"name":  l.Name,
			}).Info("reaped inactive lobby")
		}
	}
	return reaped
}

// StartReaper runs Reap on a fixed interval until ctx is cancelled.
func (d *Directory) StartReaper(ctx context.Context, interval, maxAge time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				d.Reap(maxAge)
			}
		}
	}()
}
