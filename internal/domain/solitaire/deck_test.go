package solitaire_test

import (
	"testing"

	"github.com/phrazzld/solitaire/internal/domain/cards"
	"github.com/phrazzld/solitaire/internal/domain/solitaire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNullKeyKeyStream(t *testing.T) {
	t.Parallel()

	ks := solitaire.UnkeyedDeck().KeyStream(10)
	assert.Equal(t, "DWJXH YRFDG", ks.String())
}

func TestKeyStreamRoundsUpToBlocks(t *testing.T) {
	t.Parallel()

	assert.Len(t, solitaire.UnkeyedDeck().KeyStream(1), 5)
	assert.Len(t, solitaire.UnkeyedDeck().KeyStream(5), 5)
	assert.Len(t, solitaire.UnkeyedDeck().KeyStream(11), 15)
	assert.Empty(t, solitaire.UnkeyedDeck().KeyStream(0))
	assert.Empty(t, solitaire.UnkeyedDeck().KeyStream(-3))
}

func TestNextMatchesKeyStream(t *testing.T) {
	t.Parallel()

	pp, err := solitaire.ParsePassphrase("cryptonomicon")
	require.NoError(t, err)

	want := solitaire.KeyFromPassphrase(pp).KeyStream(25)

	deck := solitaire.KeyFromPassphrase(pp)
	got := make(solitaire.KeyStream, 0, len(want))
	for range want {
		got = append(got, deck.Next())
	}
	assert.Equal(t, want, got)
}

func TestFirstStepOfUnkeyedDeck(t *testing.T) {
	t.Parallel()

	// Joker A drops to the bottom, Joker B wraps to just under the ace, the
	// triple cut sends the ace to the bottom and the count cut of one moves
	// Joker B down above it. The 2 on top then points at the 4.
	deck := solitaire.UnkeyedDeck()
	assert.Equal(t, solitaire.Letter('D'), deck.Next())

	stack := deck.Stack()
	top, _ := stack.Cut(3)
	assert.Equal(t, "2H 3H 4H", top.String())

	_, tail := stack.Cut(solitaire.DeckSize - 3)
	assert.Equal(t, "FA FB AH", tail.String())
}

func TestKeyFromPassphraseEmptyIsUnkeyed(t *testing.T) {
	t.Parallel()

	deck := solitaire.KeyFromPassphrase(nil)
	assert.True(t, deck.Stack().Equal(cards.New(1, 2)))
	assert.Equal(t, cards.New(1, 2).String(), deck.String())
}

func TestKeyedDeckIsPermutation(t *testing.T) {
	t.Parallel()

	pp, err := solitaire.ParsePassphrase("cryptonomicon")
	require.NoError(t, err)

	stack := solitaire.KeyFromPassphrase(pp).Stack()
	_, err = solitaire.NewDeck(stack)
	assert.NoError(t, err)
	assert.False(t, stack.Equal(cards.New(1, 2)))
}

func TestNewDeckValidation(t *testing.T) {
	t.Parallel()

	_, err := solitaire.NewDeck(cards.New(1, 1))
	assert.ErrorIs(t, err, solitaire.ErrInvalidKeyDeck)

	_, err = solitaire.NewDeck(cards.New(2, 2))
	assert.ErrorIs(t, err, solitaire.ErrInvalidKeyDeck)

	// 54 cards, but Joker A twice and no Joker B
	withDuplicate := cards.New(1, 1)
	withDuplicate.Append(cards.FromCards([]cards.Card{cards.JokerA}))
	_, err = solitaire.NewDeck(withDuplicate)
	assert.ErrorIs(t, err, solitaire.ErrInvalidKeyDeck)

	deck, err := solitaire.NewDeck(cards.New(1, 2))
	require.NoError(t, err)
	assert.Equal(t, solitaire.DeckSize, deck.Stack().Len())
}

func TestGenerateKeyStream(t *testing.T) {
	t.Parallel()

	stack := cards.New(1, 2)
	ks, err := solitaire.GenerateKeyStream(stack, 10)
	require.NoError(t, err)
	assert.Equal(t, "DWJXH YRFDG", ks.String())
	assert.True(t, stack.Equal(cards.New(1, 2)), "input stack must be untouched")

	_, err = solitaire.GenerateKeyStream(cards.New(1, 0), 10)
	assert.ErrorIs(t, err, solitaire.ErrInvalidKeyDeck)
}

func TestCardValues(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		card   cards.Card
		value  solitaire.CardValue
		letter solitaire.Letter
	}{
		{card: cards.NewCard(cards.Ace, cards.Hearts), value: 1, letter: 'A'},
		{card: cards.NewCard(cards.King, cards.Hearts), value: 13, letter: 'M'},
		{card: cards.NewCard(cards.Ace, cards.Clubs), value: 14, letter: 'N'},
		{card: cards.NewCard(cards.King, cards.Clubs), value: 26, letter: 'Z'},
		{card: cards.NewCard(cards.King, cards.Diamonds), value: 27, letter: 'A'},
		{card: cards.NewCard(cards.Ace, cards.Spades), value: 52, letter: 'Z'},
		{card: cards.JokerA, value: 53, letter: 'A'},
		{card: cards.JokerB, value: 53, letter: 'A'},
	}

	for _, tc := range testCases {
		t.Run(tc.card.String(), func(t *testing.T) {
			t.Parallel()
			v := solitaire.ValueOf(tc.card)
			assert.Equal(t, tc.value, v)
			assert.Equal(t, tc.letter, v.LetterValue().Letter())
		})
	}
}
