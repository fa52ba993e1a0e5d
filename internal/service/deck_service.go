package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/solitaire/internal/config"
	"github.com/phrazzld/solitaire/internal/domain/cards"
	"github.com/phrazzld/solitaire/internal/platform/logger"
	"github.com/phrazzld/solitaire/internal/platform/random"
)

// Limits on a single shuffle request.
const (
	MaxDecks   = 64
	MaxRiffles = 1000
)

// ShuffleMethod names a way of shuffling a stack.
type ShuffleMethod string

// Supported shuffle methods.
const (
	MethodRiffle      ShuffleMethod = "riffle"
	MethodFisherYates ShuffleMethod = "fisher-yates"
	MethodIn          ShuffleMethod = "in"
	MethodOut         ShuffleMethod = "out"
)

// ShuffleMethods lists the supported methods.
var ShuffleMethods = []ShuffleMethod{MethodRiffle, MethodFisherYates, MethodIn, MethodOut}

// ShuffleRequest describes a stack to build and how to shuffle it.
type ShuffleRequest struct {
	Decks   int
	Jokers  int
	Riffles int
	Noise   int
	// Seed makes the shuffle reproducible; 0 draws a fresh one.
	Seed   int64
	Method ShuffleMethod
}

// ShuffleResult is a shuffled stack and how well shuffled it is.
type ShuffleResult struct {
	Deck            cards.Stack
	RisingSequences int
	// Seed is the seed actually used, so a random shuffle can be replayed.
	Seed int64
}

// DefaultShuffleRequest builds a riffle shuffle request from the configured
// deck defaults.
func DefaultShuffleRequest(cfg config.DeckConfig) ShuffleRequest {
	return ShuffleRequest{
		Decks:   cfg.Decks,
		Jokers:  cfg.Jokers,
		Riffles: cfg.Riffles,
		Noise:   cfg.Noise,
		Method:  MethodRiffle,
	}
}

// DeckService builds and shuffles card stacks.
type DeckService interface {
	Shuffle(ctx context.Context, req ShuffleRequest) (*ShuffleResult, error)
}

// Verify interface compliance at compile time
var _ DeckService = (*deckServiceImpl)(nil)

type deckServiceImpl struct {
	logger  *slog.Logger
	newSeed func() (int64, error)
}

// NewDeckService creates a DeckService that seeds unseeded requests from
// crypto/rand. A nil logger falls back to slog.Default().
func NewDeckService(logger *slog.Logger) DeckService {
	if logger == nil {
		logger = slog.Default()
	}
	return &deckServiceImpl{
		logger:  logger.With(slog.String("component", "deck_service")),
		newSeed: random.NewSeed,
	}
}

// Shuffle implements DeckService.Shuffle.
func (s *deckServiceImpl) Shuffle(ctx context.Context, req ShuffleRequest) (*ShuffleResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	jokers, noise, err := validateShuffle(req)
	if err != nil {
		log.Warn("shuffle rejected", slog.String("error", err.Error()))
		return nil, err
	}

	seed := req.Seed
	if seed == 0 {
		if seed, err = s.newSeed(); err != nil {
			return nil, fmt.Errorf("failed to seed shuffle: %w", err)
		}
	}

	log.Debug("shuffling deck",
		slog.String("method", string(req.Method)),
		slog.Int("decks", req.Decks),
		slog.Int("jokers", req.Jokers),
		slog.Int("riffles", req.Riffles),
		slog.Int("noise", req.Noise),
		slog.Int64("seed", seed))

	deck := cards.New(req.Decks, jokers)
	rng := random.New(seed)
	switch req.Method {
	case MethodRiffle:
		deck.Shuffle(req.Riffles, noise, rng)
	case MethodFisherYates:
		deck.FullyRandomize(rng)
	case MethodIn:
		deck.InShuffle(req.Riffles)
	case MethodOut:
		deck.OutShuffle(req.Riffles)
	}

	result := &ShuffleResult{
		Deck:            deck,
		RisingSequences: deck.RisingSequences(),
		Seed:            seed,
	}
	log.Debug("deck shuffled", slog.Int("rising_sequences", result.RisingSequences))
	return result, nil
}

func validateShuffle(req ShuffleRequest) (cards.JokersPerDeck, cards.NoiseLevel, error) {
	if req.Decks < 1 || req.Decks > MaxDecks {
		return 0, 0, fmt.Errorf("%w: decks %d not in [1, %d]", ErrInvalidShuffle, req.Decks, MaxDecks)
	}
	if req.Riffles < 0 || req.Riffles > MaxRiffles {
		return 0, 0, fmt.Errorf("%w: riffles %d not in [0, %d]", ErrInvalidShuffle, req.Riffles, MaxRiffles)
	}

	jokers, err := cards.NewJokersPerDeck(req.Jokers)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %w", ErrInvalidShuffle, err)
	}
	noise, err := cards.NewNoiseLevel(req.Noise)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %w", ErrInvalidShuffle, err)
	}

	switch req.Method {
	case MethodRiffle, MethodFisherYates, MethodIn, MethodOut:
	default:
		return 0, 0, fmt.Errorf("%w: unknown method %q", ErrInvalidShuffle, req.Method)
	}
	return jokers, noise, nil
}
