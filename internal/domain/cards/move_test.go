package cards_test

import (
	"testing"

	"github.com/phrazzld/solitaire/internal/domain/cards"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		start    int
		delta    int
		mode     cards.WrapMode
		expected int
	}{
		{name: "ring forward inside", start: 5, delta: 3, mode: cards.WrapRing, expected: 8},
		{name: "ring forward past bottom", start: 51, delta: 1, mode: cards.WrapRing, expected: 0},
		{name: "ring backward inside", start: 5, delta: -5, mode: cards.WrapRing, expected: 0},
		{name: "ring backward past top", start: 5, delta: -6, mode: cards.WrapRing, expected: 51},
		{name: "circular forward inside", start: 5, delta: 3, mode: cards.WrapCircular, expected: 8},
		{name: "circular forward past bottom", start: 51, delta: 1, mode: cards.WrapCircular, expected: 1},
		{name: "circular backward inside", start: 5, delta: -5, mode: cards.WrapCircular, expected: 0},
		{name: "circular backward past top", start: 5, delta: -6, mode: cards.WrapCircular, expected: 50},
		{name: "zero delta", start: 7, delta: 0, mode: cards.WrapCircular, expected: 7},
		{name: "full loop", start: 7, delta: 52, mode: cards.WrapRing, expected: 7},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, cards.Wrap(52, tc.start, tc.delta, tc.mode))
		})
	}

	assert.Equal(t, 0, cards.Wrap(0, 0, 3, cards.WrapRing))
}

func TestMove(t *testing.T) {
	t.Parallel()

	sixHearts := cards.NewCard(cards.Six, cards.Hearts)

	testCases := []struct {
		name     string
		delta    int
		expected int
	}{
		{name: "to the top", delta: -5, expected: 0},
		{name: "past the top to the bottom", delta: -6, expected: 51},
		{name: "one down", delta: 1, expected: 6},
		{name: "round to the top", delta: 47, expected: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			deck := cards.New(1, 0)
			require.True(t, deck.Move(sixHearts, 0, tc.delta))
			pos, ok := deck.Find(sixHearts)
			require.True(t, ok)
			assert.Equal(t, tc.expected, pos)
			assert.Equal(t, 52, deck.Len())
		})
	}
}

func TestMoveCircular(t *testing.T) {
	t.Parallel()

	deck := cards.New(1, 0)
	sixHearts := cards.NewCard(cards.Six, cards.Hearts)
	require.True(t, deck.MoveCircular(sixHearts, 0, -6))
	pos, _ := deck.Find(sixHearts)
	assert.Equal(t, 50, pos)

	deck = cards.New(1, 2)
	require.True(t, deck.MoveCircular(cards.JokerA, 0, 1))
	pos, _ = deck.Find(cards.JokerA)
	assert.Equal(t, 53, pos)

	// Joker B is now at 52; two down wraps to just under the top card.
	require.True(t, deck.MoveCircular(cards.JokerB, 0, 2))
	pos, _ = deck.Find(cards.JokerB)
	assert.Equal(t, 1, pos)
	assert.Equal(t, "AH FB 2H", mustPrefix(t, deck, 3))

	// From the bottom, one down lands just under the top card.
	require.True(t, deck.MoveCircular(cards.JokerA, 0, 1))
	pos, _ = deck.Find(cards.JokerA)
	assert.Equal(t, 1, pos)
}

func TestMoveNotFound(t *testing.T) {
	t.Parallel()

	deck := cards.New(1, 0)
	assert.False(t, deck.Move(cards.JokerA, 0, 1))
	assert.False(t, deck.MoveCircular(cards.JokerB, 0, 1))
	assert.False(t, deck.Move(cards.NewCard(cards.Ace, cards.Hearts), 1, 1))
	assert.True(t, deck.Equal(cards.New(1, 0)))
}

func TestMoveSecondOccurrence(t *testing.T) {
	t.Parallel()

	deck := cards.New(2, 0)
	aceHearts := cards.NewCard(cards.Ace, cards.Hearts)
	require.True(t, deck.Move(aceHearts, 1, -1))

	top, err := deck.LookAt(0)
	require.NoError(t, err)
	assert.Equal(t, aceHearts, top, "first copy stays on top")

	moved, err := deck.LookAt(51)
	require.NoError(t, err)
	assert.Equal(t, aceHearts, moved)

	displaced, err := deck.LookAt(52)
	require.NoError(t, err)
	assert.Equal(t, "AS", displaced.String())
}

func mustPrefix(t *testing.T, s cards.Stack, n int) string {
	t.Helper()
	top, _ := s.Cut(n)
	return top.String()
}
