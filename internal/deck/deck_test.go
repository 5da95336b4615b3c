// internal/deck/deck_test.go
package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShuffledCardsIsPermutation(t *testing.T) {
	shuffled := ShuffledCards()
	require.Len(t, shuffled, CatalogSize())

	want := make(map[Card]int, len(cards))
	for _, c := range cards {
		want[c]++
	}
	got := make(map[Card]int, len(shuffled))
	for _, c := range shuffled {
		got[c]++
	}
	assert.Equal(t, want, got, "shuffle must contain every catalog card exactly once")
}

func TestShuffledPromptsIsPermutation(t *testing.T) {
	shuffled := ShuffledPrompts()
	require.Len(t, shuffled, len(prompts))

	want := make(map[Prompt]int, len(prompts))
	for _, p := range prompts {
		want[p]++
	}
	got := make(map[Prompt]int, len(shuffled))
	for _, p := range shuffled {
		got[p]++
	}
	assert.Equal(t, want, got)
}

func TestDraw(t *testing.T) {
	pile := []Card{"a", "b", "c", "d"}

	drawn, remaining, err := Draw(pile, 3)
	require.NoError(t, err)
	assert.Equal(t, []Card{"a", "b", "c"}, drawn)
	assert.Equal(t, []Card{"d"}, remaining)

	// The input pile is left untouched.
	assert.Equal(t, []Card{"a", "b", "c", "d"}, pile)
}

func TestDrawInsufficientCards(t *testing.T) {
	pile := []Card{"a", "b"}

	drawn, remaining, err := Draw(pile, 3)
	require.ErrorIs(t, err, ErrInsufficientCards)
	assert.Nil(t, drawn)
	assert.Equal(t, pile, remaining)
}

func TestDrawZero(t *testing.T) {
	drawn, remaining, err := Draw(nil, 0)
	require.NoError(t, err)
	assert.Empty(t, drawn)
	assert.Empty(t, remaining)
}

func TestValidateCatalog(t *testing.T) {
	assert.NoError(t, Validate())
}

func TestCatalogCoversFullLobby(t *testing.T) {
	// Eight players at eight cards each must always be dealable.
	assert.GreaterOrEqual(t, CatalogSize(), 8*8)
}
