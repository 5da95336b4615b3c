// internal/game/game.go
package game

import (
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/blanksgame/blanks/internal/deck"
	"github.com/blanksgame/blanks/internal/models"
)

// Phase is one state of the per-round state machine.
type Phase string

const (
	PhasePlaying  Phase = "playing"
	PhaseJudging  Phase = "judging"
	PhaseResults  Phase = "results"
	PhaseGameOver Phase = "gameover"
)

const (
	// HandSize is the number of cards dealt to each player at game start.
	// Hands deplete as cards are played and are never redrawn.
	HandSize = 8

	// DefaultMaxRounds bounds the game; NextRound on the final round
	// ends it.
	DefaultMaxRounds = 10
)

// Participant is one player's fixed seat in a game: identity and score.
// The slice order defines judge rotation and never changes, even if the
// player disconnects mid-game.
type Participant struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Score int       `json:"score"`
}

// Submission is one non-judge player's finalized cards for the current
// prompt.
type Submission struct {
	PlayerID uuid.UUID   `json:"playerId"`
	Cards    []deck.Card `json:"cards"`
}

// RoundWinner names the player whose submission the judge picked.
type RoundWinner struct {
	Player string `json:"player"`
}

// Combination is the winning set of cards for a round.
type Combination struct {
	Cards []deck.Card `json:"cards"`
}

// Game is the authoritative state machine for one session: hands, prompt,
// selections, submissions, judging, scoring and round rotation.
//
// Game carries no lock of its own. Every action funnels through the session
// directory, which serializes them, so each mutation here runs to
// completion before the next is observed.
type Game struct {
	LobbyID uuid.UUID

	// Players is the participant snapshot taken at game start, in join
	// order. CurrentJudgeIndex always indexes into it.
	Players []*Participant

	pile    []deck.Card
	prompts []deck.Prompt

	// Hands maps participant id to their remaining cards. Indices are
	// positional, not stable identities.
	Hands map[uuid.UUID][]deck.Card

	CurrentRound      int
	MaxRounds         int
	CurrentJudgeIndex int
	CurrentPrompt     deck.Prompt
	Phase             Phase

	// selections holds in-progress, pre-submission hand indices per
	// player. The judge never appears here with a non-empty value.
	selections map[uuid.UUID][]int

	Submissions []Submission

	RoundWinner        *RoundWinner
	WinningCombination *Combination
}

// New deals a fresh game for the given lobby members. The member order
// becomes the permanent judge rotation. Returns deck.ErrInsufficientCards
// if the catalog cannot cover players x HandSize.
func New(lobbyID uuid.UUID, members []*models.Player) (*Game, error) {
	g := &Game{
		LobbyID:      lobbyID,
		pile:         deck.ShuffledCards(),
		prompts:      deck.ShuffledPrompts(),
		Hands:        make(map[uuid.UUID][]deck.Card, len(members)),
		CurrentRound: 1,
		MaxRounds:    DefaultMaxRounds,
		Phase:        PhasePlaying,
		selections:   make(map[uuid.UUID][]int),
	}

	for _, m := range members {
		g.Players = append(g.Players, &Participant{ID: m.ID, Name: m.Name})
	}

	for _, p := range g.Players {
		hand, rest, err := deck.Draw(g.pile, HandSize)
		if err != nil {
			return nil, err
		}
		g.Hands[p.ID] = hand
		g.pile = rest
	}

	g.CurrentPrompt = g.prompts[0]

	log.WithFields(log.Fields{
		"lobby":   lobbyID,
		"players": len(g.Players),
		"deck":    len(g.pile),
	}).Info("game started")

	return g, nil
}

// Judge returns the participant judging the current round.
func (g *Game) Judge() *Participant {
	return g.Players[g.CurrentJudgeIndex]
}

func (g *Game) isJudge(playerID uuid.UUID) bool {
	return g.Judge().ID == playerID
}

func (g *Game) participant(playerID uuid.UUID) *Participant {
	for _, p := range g.Players {
		if p.ID == playerID {
			return p
		}
	}
	return nil
}

// SelectCard toggles a hand index in the player's pending selection.
// Selecting past the prompt's capacity evicts the oldest pick, so the
// selection always keeps the most recent blanks-many indices in pick
// order. Returns false (no state change) outside the Playing phase, for
// the judge, or for an out-of-range index.
func (g *Game) SelectCard(playerID uuid.UUID, handIndex int) bool {
	if g.Phase != PhasePlaying || g.isJudge(playerID) {
		return false
	}
	hand, ok := g.Hands[playerID]
	if !ok || handIndex < 0 || handIndex >= len(hand) {
		return false
	}

	sel := g.selections[playerID]
	for i, idx := range sel {
		if idx == handIndex {
			// Toggle off.
			g.selections[playerID] = append(sel[:i], sel[i+1:]...)
			return true
		}
	}

	if len(sel) < g.CurrentPrompt.Blanks {
		g.selections[playerID] = append(sel, handIndex)
	} else {
		// At capacity: evict the oldest pick, append the new one.
		g.selections[playerID] = append(sel[1:], handIndex)
	}
	return true
}

// SubmitCards finalizes the player's pending selection for the round.
// No-ops for the judge, an empty selection, or a repeat submission. Once
// every non-judge participant has submitted, the phase moves to Judging.
func (g *Game) SubmitCards(playerID uuid.UUID) bool {
	if g.Phase != PhasePlaying || g.isJudge(playerID) {
		return false
	}
	sel := g.selections[playerID]
	if len(sel) == 0 {
		return false
	}
	for _, sub := range g.Submissions {
		if sub.PlayerID == playerID {
			return false
		}
	}

	hand := g.Hands[playerID]

	// Resolve indices to card text at submission time.
	cards := make([]deck.Card, 0, len(sel))
	picked := make(map[int]bool, len(sel))
	for _, idx := range sel {
		cards = append(cards, hand[idx])
		picked[idx] = true
	}

	g.Submissions = append(g.Submissions, Submission{PlayerID: playerID, Cards: cards})
	delete(g.selections, playerID)

	// Played cards leave the hand for the rest of the game.
	remaining := make([]deck.Card, 0, len(hand)-len(cards))
	for i, c := range hand {
		if !picked[i] {
			remaining = append(remaining, c)
		}
	}
	g.Hands[playerID] = remaining

	if g.allSubmitted() {
		g.Phase = PhaseJudging
		log.WithField("lobby", g.LobbyID).Debug("all submissions in, judging begins")
	}
	return true
}

// allSubmitted checks set membership over every non-judge participant, so
// arrival order and duplicates cannot skew the transition.
func (g *Game) allSubmitted() bool {
	submitted := make(map[uuid.UUID]bool, len(g.Submissions))
	for _, sub := range g.Submissions {
		submitted[sub.PlayerID] = true
	}
	for _, p := range g.Players {
		if p.ID == g.Judge().ID {
			continue
		}
		if !submitted[p.ID] {
			return false
		}
	}
	return true
}

// SelectWinner records the judge's pick: the submitting player scores one
// point and the phase moves to Results. No-ops outside Judging, for
// non-judges, and for an out-of-range index.
func (g *Game) SelectWinner(playerID uuid.UUID, submissionIndex int) bool {
	if g.Phase != PhaseJudging || !g.isJudge(playerID) {
		return false
	}
	if submissionIndex < 0 || submissionIndex >= len(g.Submissions) {
		return false
	}

	winning := g.Submissions[submissionIndex]
	winner := g.participant(winning.PlayerID)
	winner.Score++

	g.RoundWinner = &RoundWinner{Player: winner.Name}
	g.WinningCombination = &Combination{Cards: winning.Cards}
	g.Phase = PhaseResults

	log.WithFields(log.Fields{
		"lobby":  g.LobbyID,
		"winner": winner.Name,
		"round":  g.CurrentRound,
	}).Info("round winner selected")
	return true
}

// NextRound advances to the next round, or to GameOver when the round
// limit is reached. Only the current judge may advance. Rotation is purely
// positional: the judge seat moves one place regardless of who won.
func (g *Game) NextRound(playerID uuid.UUID) bool {
	if g.Phase != PhaseResults || !g.isJudge(playerID) {
		return false
	}

	if g.CurrentRound >= g.MaxRounds {
		g.Phase = PhaseGameOver
		log.WithField("lobby", g.LobbyID).Info("game over")
		return true
	}

	g.CurrentRound++
	g.CurrentJudgeIndex = (g.CurrentJudgeIndex + 1) % len(g.Players)
	g.CurrentPrompt = g.prompts[(g.CurrentRound-1)%len(g.prompts)]
	g.Submissions = nil
	g.selections = make(map[uuid.UUID][]int)
	g.RoundWinner = nil
	g.WinningCombination = nil
	g.Phase = PhasePlaying
	return true
}

// Over reports whether the game has reached its terminal state.
func (g *Game) Over() bool {
	return g.Phase == PhaseGameOver
}
