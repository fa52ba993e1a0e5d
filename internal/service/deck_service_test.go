package service

import (
	"context"
	"errors"
	"testing"

	"github.com/phrazzld/solitaire/internal/config"
	"github.com/phrazzld/solitaire/internal/domain/cards"
	"github.com/phrazzld/solitaire/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDeckService(t *testing.T, seed int64, seedErr error) *deckServiceImpl {
	t.Helper()
	log, _ := logger.GetTestLogger(t)
	svc := NewDeckService(log).(*deckServiceImpl)
	svc.newSeed = func() (int64, error) { return seed, seedErr }
	return svc
}

func TestShuffleIsReproducible(t *testing.T) {
	t.Parallel()

	svc := newTestDeckService(t, 1, nil)
	req := ShuffleRequest{Decks: 1, Jokers: 2, Riffles: 7, Noise: 5, Seed: 1234, Method: MethodRiffle}

	first, err := svc.Shuffle(context.Background(), req)
	require.NoError(t, err)
	second, err := svc.Shuffle(context.Background(), req)
	require.NoError(t, err)

	assert.True(t, first.Deck.Equal(second.Deck))
	assert.Equal(t, int64(1234), first.Seed)
	assert.Equal(t, 54, first.Deck.Len())
	assert.Equal(t, first.Deck.RisingSequences(), first.RisingSequences)
	assert.False(t, first.Deck.Equal(cards.New(1, 2)))
}

func TestShuffleDrawsSeedWhenUnset(t *testing.T) {
	t.Parallel()

	svc := newTestDeckService(t, 99, nil)
	res, err := svc.Shuffle(context.Background(), ShuffleRequest{Decks: 1, Jokers: 0, Method: MethodFisherYates})
	require.NoError(t, err)
	assert.Equal(t, int64(99), res.Seed)

	failing := newTestDeckService(t, 0, errors.New("entropy exhausted"))
	_, err = failing.Shuffle(context.Background(), ShuffleRequest{Decks: 1, Method: MethodFisherYates})
	assert.ErrorContains(t, err, "entropy exhausted")
}

func TestShufflePerfectMethods(t *testing.T) {
	t.Parallel()

	svc := newTestDeckService(t, 1, nil)

	testCases := []struct {
		name    string
		method  ShuffleMethod
		riffles int
		fresh   bool
	}{
		{name: "52 in-shuffles restore", method: MethodIn, riffles: 52, fresh: true},
		{name: "8 in-shuffles do not", method: MethodIn, riffles: 8, fresh: false},
		{name: "8 out-shuffles restore", method: MethodOut, riffles: 8, fresh: true},
		{name: "noiseless riffle is an in-shuffle", method: MethodRiffle, riffles: 52, fresh: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			res, err := svc.Shuffle(context.Background(), ShuffleRequest{
				Decks: 1, Jokers: 0, Riffles: tc.riffles, Noise: 0, Seed: 7, Method: tc.method,
			})
			require.NoError(t, err)
			assert.Equal(t, tc.fresh, res.Deck.Equal(cards.New(1, 0)))
			if tc.fresh {
				assert.Equal(t, 1, res.RisingSequences)
			}
		})
	}
}

func TestShuffleValidation(t *testing.T) {
	t.Parallel()

	svc := newTestDeckService(t, 1, nil)
	valid := ShuffleRequest{Decks: 1, Jokers: 2, Riffles: 7, Noise: 5, Seed: 1, Method: MethodRiffle}

	testCases := []struct {
		name   string
		modify func(*ShuffleRequest)
		domain error
	}{
		{name: "no decks", modify: func(r *ShuffleRequest) { r.Decks = 0 }},
		{name: "too many decks", modify: func(r *ShuffleRequest) { r.Decks = MaxDecks + 1 }},
		{name: "negative riffles", modify: func(r *ShuffleRequest) { r.Riffles = -1 }},
		{name: "too many riffles", modify: func(r *ShuffleRequest) { r.Riffles = MaxRiffles + 1 }},
		{name: "three jokers", modify: func(r *ShuffleRequest) { r.Jokers = 3 }, domain: cards.ErrOutOfRange},
		{name: "noise eleven", modify: func(r *ShuffleRequest) { r.Noise = 11 }, domain: cards.ErrOutOfRange},
		{name: "unknown method", modify: func(r *ShuffleRequest) { r.Method = "overhand" }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			req := valid
			tc.modify(&req)
			_, err := svc.Shuffle(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidShuffle)
			if tc.domain != nil {
				assert.ErrorIs(t, err, tc.domain)
			}
		})
	}
}

func TestDefaultShuffleRequest(t *testing.T) {
	t.Parallel()

	req := DefaultShuffleRequest(config.DeckConfig{Decks: 2, Jokers: 1, Riffles: 7, Noise: 3})
	assert.Equal(t, ShuffleRequest{Decks: 2, Jokers: 1, Riffles: 7, Noise: 3, Method: MethodRiffle}, req)
}
