// internal/deck/deck.go
package deck

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// Card is a single phrase card. It has no identity beyond its text.
type Card string

// Prompt is a fill-in-the-blank template. Text contains {0}..{k-1}
// placeholders and Blanks states how many cards are needed to fill it.
type Prompt struct {
	Text   string `json:"text"`
	Blanks int    `json:"blanks"`
}

// ErrInsufficientCards is returned by Draw when the pile holds fewer cards
// than requested. Callers size the catalog so this cannot happen for a
// legal player count.
var ErrInsufficientCards = errors.New("not enough cards left in the deck")

// ShuffledCards returns the full card catalog in uniformly random order.
// Every card appears exactly once.
func ShuffledCards() []Card {
	shuffled := make([]Card, len(cards))
	copy(shuffled, cards)

	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	r.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled
}

// ShuffledPrompts returns the full prompt catalog in uniformly random order.
func ShuffledPrompts() []Prompt {
	shuffled := make([]Prompt, len(prompts))
	copy(shuffled, prompts)

	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	r.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled
}

// Draw removes and returns the first n cards of pile, along with the
// remaining pile. The input slice is not modified.
func Draw(pile []Card, n int) (drawn []Card, remaining []Card, err error) {
	if n > len(pile) {
		return nil, pile, fmt.Errorf("%w: want %d, have %d", ErrInsufficientCards, n, len(pile))
	}
	drawn = make([]Card, n)
	copy(drawn, pile[:n])
	return drawn, pile[n:], nil
}

// CatalogSize reports the number of cards in the catalog, so callers can
// validate a player count before starting a game.
func CatalogSize() int {
	return len(cards)
}

// Validate checks the static catalog invariants: every prompt's Blanks must
// match the number of distinct placeholder indices in its text, and Blanks
// must be between 1 and 3. Intended to be called once at process start.
func Validate() error {
	if len(cards) == 0 {
		return errors.New("deck: empty card catalog")
	}
	for i, p := range prompts {
		if p.Blanks < 1 || p.Blanks > 3 {
			return fmt.Errorf("deck: prompt %d has %d blanks, want 1..3", i, p.Blanks)
		}
		distinct := 0
		for k := 0; k < p.Blanks; k++ {
			if strings.Contains(p.Text, fmt.Sprintf("{%d}", k)) {
				distinct++
			}
		}
		if distinct != p.Blanks {
			return fmt.Errorf("deck: prompt %d (%q) declares %d blanks but has %d placeholders", i, p.Text, p.Blanks, distinct)
		}
		// No placeholder beyond the declared arity.
		if strings.Contains(p.Text, fmt.Sprintf("{%d}", p.Blanks)) {
			return fmt.Errorf("deck: prompt %d (%q) uses placeholder {%d} beyond its %d blanks", i, p.Text, p.Blanks, p.Blanks)
		}
	}
	return nil
}
