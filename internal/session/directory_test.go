// internal/session/directory_test.go
package session

import (
	"io"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blanksgame/blanks/internal/deck"
	"github.com/blanksgame/blanks/internal/game"
	"github.com/blanksgame/blanks/internal/lobby"
	"github.com/blanksgame/blanks/internal/models"
)

func newTestDirectory() *Directory {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return NewDirectory(logger)
}

// register creates a connection and a named player on it.
func register(d *Directory, name string) *models.Player {
	conn := models.NewConn(nil)
	p := d.RegisterPlayer(conn, name)
	drain(p)
	return p
}

// drain empties a player's outbound queue and returns the events received.
func drain(p *models.Player) []models.ServerMessage {
	var out []models.ServerMessage
	for {
		select {
		case msg := <-p.Conn.Out:
			out = append(out, msg)
		default:
			return out
		}
	}
}

func events(msgs []models.ServerMessage) []string {
	names := make([]string, 0, len(msgs))
	for _, m := range msgs {
		names = append(names, m.Event)
	}
	return names
}

func TestRegisterPlayerEmitsNameSet(t *testing.T) {
	d := newTestDirectory()
	conn := models.NewConn(nil)

	p := d.RegisterPlayer(conn, "alice")

	require.NotNil(t, p)
	assert.Equal(t, "alice", p.Name)
	msgs := drain(p)
	require.Len(t, msgs, 1)
	assert.Equal(t, "name-set", msgs[0].Event)

	players, _ := d.Counts()
	assert.Equal(t, 1, players)
}

func TestRenamePlayerKeepsRegistration(t *testing.T) {
	d := newTestDirectory()
	alice := register(d, "alice")
	bob := register(d, "bob")
	require.NoError(t, d.CreateLobby(alice, "night", 4))
	require.NoError(t, d.JoinLobby(bob, alice.LobbyID))
	drain(alice)
	drain(bob)

	d.RenamePlayer(alice, "alicia")

	assert.Equal(t, "alicia", alice.Name)
	players, _ := d.Counts()
	assert.Equal(t, 2, players, "renaming never creates a second registration")

	assert.Equal(t, []string{"name-set", "lobby-updated"}, events(drain(alice)))

	msgs := drain(bob)
	require.Len(t, msgs, 1)
	require.Equal(t, "lobby-updated", msgs[0].Event)
	summary := msgs[0].Data.(models.LobbySummary)
	assert.Equal(t, "alicia", summary.Players[0].Name)
}

func TestCreateLobby(t *testing.T) {
	d := newTestDirectory()
	alice := register(d, "alice")

	require.NoError(t, d.CreateLobby(alice, "night", 4))
	assert.True(t, alice.InLobby())
	assert.True(t, alice.IsHost)
	assert.Equal(t, []string{"lobby-created", "lobby-joined"}, events(drain(alice)))

	assert.ErrorIs(t, d.CreateLobby(alice, "second", 4), ErrAlreadyInLobby)
	_, lobbies := d.Counts()
	assert.Equal(t, 1, lobbies)
}

func TestListLobbiesOnlyWaiting(t *testing.T) {
	d := newTestDirectory()
	alice := register(d, "alice")
	bob := register(d, "bob")
	require.NoError(t, d.CreateLobby(alice, "open", 4))
	require.NoError(t, d.JoinLobby(bob, alice.LobbyID))
	drain(alice)
	drain(bob)
	require.NoError(t, d.StartGame(alice))

	carol := register(d, "carol")
	require.NoError(t, d.CreateLobby(carol, "waiting", 4))
	drain(carol)

	d.ListLobbies(carol.Conn, carol.ID)
	msgs := drain(carol)
	require.Len(t, msgs, 1)
	assert.Equal(t, "lobby-list", msgs[0].Event)
	list := msgs[0].Data.([]models.LobbySummary)
	require.Len(t, list, 1, "in-game lobbies are not listed")
	assert.Equal(t, "waiting", list[0].Name)
}

func TestJoinLobbyBroadcastsUpdate(t *testing.T) {
	d := newTestDirectory()
	alice := register(d, "alice")
	require.NoError(t, d.CreateLobby(alice, "night", 4))
	drain(alice)

	bob := register(d, "bob")
	require.NoError(t, d.JoinLobby(bob, alice.LobbyID))

	assert.Equal(t, []string{"lobby-joined", "lobby-updated"}, events(drain(bob)))
	assert.Equal(t, []string{"lobby-updated"}, events(drain(alice)))
}

func TestJoinLobbyErrorPrecedence(t *testing.T) {
	d := newTestDirectory()

	// Not found beats everything.
	alice := register(d, "alice")
	assert.ErrorIs(t, d.JoinLobby(alice, uuid.New()), ErrLobbyNotFound)

	// Not waiting beats already-in-a-lobby: a member of a running game
	// asking to join it again is told the lobby is closed, not that they
	// are already in one.
	bob := register(d, "bob")
	require.NoError(t, d.CreateLobby(alice, "running", 4))
	require.NoError(t, d.JoinLobby(bob, alice.LobbyID))
	runningID := alice.LobbyID
	require.NoError(t, d.StartGame(alice))
	assert.ErrorIs(t, d.JoinLobby(bob, runningID), ErrLobbyNotWaiting)

	// Already-in-a-lobby beats full.
	carol := register(d, "carol")
	dave := register(d, "dave")
	eve := register(d, "eve")
	require.NoError(t, d.CreateLobby(carol, "small", 2))
	require.NoError(t, d.JoinLobby(dave, carol.LobbyID))
	require.NoError(t, d.CreateLobby(eve, "other", 4))
	assert.ErrorIs(t, d.JoinLobby(eve, carol.LobbyID), ErrAlreadyInLobby)
}

func TestJoinFullLobby(t *testing.T) {
	d := newTestDirectory()
	alice := register(d, "alice")
	bob := register(d, "bob")
	require.NoError(t, d.CreateLobby(alice, "small", 2))
	require.NoError(t, d.JoinLobby(bob, alice.LobbyID))
	drain(alice)
	drain(bob)

	carol := register(d, "carol")
	assert.ErrorIs(t, d.JoinLobby(carol, alice.LobbyID), ErrLobbyFull)
	assert.False(t, carol.InLobby())

	// Membership is unchanged and nobody was notified.
	l := d.lobbies[alice.LobbyID]
	assert.Len(t, l.Members, 2)
	assert.Empty(t, drain(alice))
	assert.Empty(t, drain(bob))
}

func TestLeaveLobbyIsIdempotent(t *testing.T) {
	d := newTestDirectory()
	alice := register(d, "alice")

	// Leaving with no lobby still acknowledges.
	d.LeaveLobby(alice)
	assert.Equal(t, []string{"lobby-left"}, events(drain(alice)))

	require.NoError(t, d.CreateLobby(alice, "night", 4))
	drain(alice)
	d.LeaveLobby(alice)
	assert.False(t, alice.InLobby())
	assert.Equal(t, []string{"lobby-left"}, events(drain(alice)))

	// The emptied lobby is gone.
	_, lobbies := d.Counts()
	assert.Equal(t, 0, lobbies)
}

func TestLeaveReassignsHostAndNotifies(t *testing.T) {
	d := newTestDirectory()
	alice := register(d, "alice")
	bob := register(d, "bob")
	require.NoError(t, d.CreateLobby(alice, "night", 4))
	require.NoError(t, d.JoinLobby(bob, alice.LobbyID))
	drain(alice)
	drain(bob)

	d.LeaveLobby(alice)

	msgs := drain(bob)
	require.Len(t, msgs, 1)
	assert.Equal(t, "lobby-updated", msgs[0].Event)
	summary := msgs[0].Data.(models.LobbySummary)
	assert.True(t, summary.IsHost, "bob inherits the host seat")
	assert.True(t, bob.IsHost)
}

func TestDropConnection(t *testing.T) {
	d := newTestDirectory()
	alice := register(d, "alice")
	bob := register(d, "bob")
	require.NoError(t, d.CreateLobby(alice, "night", 4))
	require.NoError(t, d.JoinLobby(bob, alice.LobbyID))
	drain(alice)
	drain(bob)

	d.DropConnection(bob)

	players, lobbies := d.Counts()
	assert.Equal(t, 1, players)
	assert.Equal(t, 1, lobbies)
	assert.Equal(t, []string{"lobby-updated", "player-disconnected"}, events(drain(alice)))

	// Dropping the last member deletes the lobby; nil is a no-op.
	d.DropConnection(alice)
	d.DropConnection(nil)
	players, lobbies = d.Counts()
	assert.Equal(t, 0, players)
	assert.Equal(t, 0, lobbies)
}

func TestStartGameErrors(t *testing.T) {
	d := newTestDirectory()
	alice := register(d, "alice")
	assert.ErrorIs(t, d.StartGame(alice), ErrNotInLobby)

	require.NoError(t, d.CreateLobby(alice, "solo", 4))
	assert.ErrorIs(t, d.StartGame(alice), lobby.ErrNotEnoughPlayers)

	bob := register(d, "bob")
	require.NoError(t, d.JoinLobby(bob, alice.LobbyID))
	assert.ErrorIs(t, d.StartGame(bob), lobby.ErrNotHost)
}

func TestStartGameBroadcastsInitialState(t *testing.T) {
	d := newTestDirectory()
	alice := register(d, "alice")
	bob := register(d, "bob")
	require.NoError(t, d.CreateLobby(alice, "night", 4))
	require.NoError(t, d.JoinLobby(bob, alice.LobbyID))
	drain(alice)
	drain(bob)

	require.NoError(t, d.StartGame(alice))

	for _, p := range []*models.Player{alice, bob} {
		msgs := drain(p)
		require.Len(t, msgs, 1)
		assert.Equal(t, "game-started", msgs[0].Event)
		st := msgs[0].Data.(*game.PublicState)
		assert.Equal(t, game.PhasePlaying, st.Phase)
		require.Len(t, st.Hands, 1)
		assert.Contains(t, st.Hands, p.ID.String())
	}
}

func TestGameActionsBroadcastOnlyOnChange(t *testing.T) {
	d := newTestDirectory()
	alice := register(d, "alice")
	bob := register(d, "bob")
	require.NoError(t, d.CreateLobby(alice, "night", 4))
	require.NoError(t, d.JoinLobby(bob, alice.LobbyID))
	require.NoError(t, d.StartGame(alice))
	drain(alice)
	drain(bob)

	// Alice hosts, so she judges round one; her select is a silent no-op.
	d.SelectCard(alice, 0)
	assert.Empty(t, drain(alice))
	assert.Empty(t, drain(bob))

	d.SelectCard(bob, 0)
	assert.Equal(t, []string{"game-updated"}, events(drain(alice)))
	assert.Equal(t, []string{"game-updated"}, events(drain(bob)))

	// Submitting without a pending selection is silent too.
	d.SubmitCards(alice)
	assert.Empty(t, drain(alice))
}

func TestFullGameOverSession(t *testing.T) {
	d := newTestDirectory()
	alice := register(d, "alice")
	bob := register(d, "bob")
	require.NoError(t, d.CreateLobby(alice, "night", 4))
	require.NoError(t, d.JoinLobby(bob, alice.LobbyID))
	require.NoError(t, d.StartGame(alice))

	l := d.lobbies[alice.LobbyID]
	l.Game.MaxRounds = 1
	l.Game.CurrentPrompt = deck.Prompt{Text: "one {0}", Blanks: 1}
	drain(alice)
	drain(bob)

	d.SelectCard(bob, 0)
	d.SubmitCards(bob)
	require.Equal(t, game.PhaseJudging, l.Game.Phase)

	d.SelectWinner(alice, 0)
	require.Equal(t, game.PhaseResults, l.Game.Phase)

	d.NextRound(alice)
	assert.Equal(t, game.PhaseGameOver, l.Game.Phase)
	assert.Equal(t, lobby.StatusFinished, l.Status)

	msgs := drain(bob)
	names := events(msgs)
	require.NotEmpty(t, names)
	assert.Equal(t, "game-ended", names[len(names)-1])

	// Terminal: further actions are silent.
	d.NextRound(alice)
	assert.Empty(t, drain(alice))
}

func TestPlaySoundboard(t *testing.T) {
	d := newTestDirectory()
	alice := register(d, "alice")
	bob := register(d, "bob")

	// Outside a lobby the relay is silent.
	d.PlaySoundboard(alice, "airhorn")
	assert.Empty(t, drain(alice))

	require.NoError(t, d.CreateLobby(alice, "night", 4))
	require.NoError(t, d.JoinLobby(bob, alice.LobbyID))
	drain(alice)
	drain(bob)

	d.PlaySoundboard(bob, "airhorn")
	for _, p := range []*models.Player{alice, bob} {
		msgs := drain(p)
		require.Len(t, msgs, 1)
		assert.Equal(t, "soundboard-played", msgs[0].Event)
		data := msgs[0].Data.(map[string]any)
		assert.Equal(t, "bob", data["playerName"])
		assert.Equal(t, "airhorn", data["soundId"])
	}
}

func TestReap(t *testing.T) {
	d := newTestDirectory()
	alice := register(d, "alice")
	require.NoError(t, d.CreateLobby(alice, "fresh", 4))

	// Hand-craft an abandoned lobby: waiting, empty, past the cutoff.
	stale := lobby.New("stale", 4, register(d, "ghost"))
	stale.Members = nil
	stale.CreatedAt = time.Now().Add(-10 * time.Minute)
	d.lobbies[stale.ID] = stale

	assert.Equal(t, 1, d.Reap(5*time.Minute))
	_, lobbies := d.Counts()
	assert.Equal(t, 1, lobbies, "occupied lobbies survive reaping")
	assert.Contains(t, d.lobbies, alice.LobbyID)
}
