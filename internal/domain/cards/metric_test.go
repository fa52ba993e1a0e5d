package cards_test

import (
	"math/rand"
	"testing"

	"github.com/phrazzld/solitaire/internal/domain/cards"
	"github.com/stretchr/testify/assert"
)

func TestRisingSequences(t *testing.T) {
	t.Parallel()

	reversed := func(s cards.Stack) cards.Stack {
		s.Reverse()
		return s
	}
	riffled := func(s cards.Stack) cards.Stack {
		s.InShuffle(1)
		return s
	}

	testCases := []struct {
		name     string
		stack    cards.Stack
		expected int
	}{
		{name: "empty", stack: cards.Stack{}, expected: 0},
		{name: "fresh deck", stack: cards.New(1, 2), expected: 1},
		{name: "fresh deck without jokers", stack: cards.New(1, 0), expected: 1},
		{name: "two fresh decks", stack: cards.New(2, 2), expected: 1},
		{name: "reversed deck", stack: reversed(cards.New(1, 2)), expected: 53},
		{name: "one perfect riffle", stack: riffled(cards.New(1, 2)), expected: 2},
		{name: "one perfect riffle reversed", stack: reversed(riffled(cards.New(1, 2))), expected: 52},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, tc.stack.RisingSequences())
		})
	}
}

func TestRisingSequencesOfRandomDecks(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(1))
	const samples = 1000

	total := 0
	for i := 0; i < samples; i++ {
		deck := cards.New(1, 2)
		deck.FullyRandomize(rng)
		total += deck.RisingSequences()
	}
	mean := float64(total) / samples
	assert.InDelta(t, 27, mean, 0.5)
}
