// internal/game/state.go
package game

import (
	"github.com/google/uuid"

	"github.com/blanksgame/blanks/internal/deck"
)

// PublicState is the full game projection broadcast after every mutating
// action. Clients replace their entire local state with it; no deltas.
//
// Hands is projected per recipient and only ever contains the recipient's
// own hand. Everything else is identical for all recipients.
type PublicState struct {
	LobbyID               uuid.UUID              `json:"lobbyId"`
	Players               []*Participant         `json:"players"`
	CurrentRound          int                    `json:"currentRound"`
	MaxRounds             int                    `json:"maxRounds"`
	Phase                 Phase                  `json:"phase"`
	CurrentPrompt         deck.Prompt            `json:"currentPrompt"`
	CurrentJudge          string                 `json:"currentJudge"`
	CurrentJudgeIndex     int                    `json:"currentJudgeIndex"`
	Submissions           []Submission           `json:"submissions"`
	SubmittedCombinations []Submission           `json:"submittedCombinations"`
	PlayerSelections      map[string][]int       `json:"playerSelections"`
	RoundWinner           *RoundWinner           `json:"roundWinner"`
	WinningCombination    *Combination           `json:"winningCombination"`
	PlayerCount           int                    `json:"playerCount"`
	Hands                 map[string][]deck.Card `json:"hands"`
	WaitingOn             []string               `json:"waitingOn"`
}

// StateFor renders the authoritative state as seen by one recipient.
func (g *Game) StateFor(recipient uuid.UUID) *PublicState {
	st := &PublicState{
		LobbyID:            g.LobbyID,
		Players:            g.Players,
		CurrentRound:       g.CurrentRound,
		MaxRounds:          g.MaxRounds,
		Phase:              g.Phase,
		CurrentPrompt:      g.CurrentPrompt,
		CurrentJudge:       g.Judge().Name,
		CurrentJudgeIndex:  g.CurrentJudgeIndex,
		Submissions:        g.Submissions,
		PlayerSelections:   make(map[string][]int, len(g.selections)),
		RoundWinner:        g.RoundWinner,
		WinningCombination: g.WinningCombination,
		PlayerCount:        len(g.Players),
		Hands:              make(map[string][]deck.Card, 1),
		WaitingOn:          g.waitingOn(),
	}

	if st.Submissions == nil {
		st.Submissions = []Submission{}
	}
	if g.Phase == PhaseJudging {
		st.SubmittedCombinations = st.Submissions
	} else {
		st.SubmittedCombinations = []Submission{}
	}

	for id, sel := range g.selections {
		st.PlayerSelections[id.String()] = sel
	}

	if hand, ok := g.Hands[recipient]; ok {
		st.Hands[recipient.String()] = hand
	}

	return st
}

// waitingOn names the players the current phase is stalled on: non-judge
// players yet to submit while Playing, the judge otherwise. A disconnected
// player stays listed; the engine never fabricates an action on their
// behalf.
func (g *Game) waitingOn() []string {
	names := []string{}
	switch g.Phase {
	case PhasePlaying:
		submitted := make(map[uuid.UUID]bool, len(g.Submissions))
		for _, sub := range g.Submissions {
			submitted[sub.PlayerID] = true
		}
		for _, p := range g.Players {
			if p.ID == g.Judge().ID || submitted[p.ID] {
				continue
			}
			names = append(names, p.Name)
		}
	case PhaseJudging, PhaseResults:
		names = append(names, g.Judge().Name)
	}
	return names
}
