package cards

import "fmt"

// Bounds of the ranged value types.
const (
	MinSequenceValue = 1
	MaxSequenceValue = 54

	MaxNoiseLevel    = 10
	MaxJokersPerDeck = 2
)

// SequenceValue is a card's 1..54 position in new-deck order.
type SequenceValue uint8

// NewSequenceValue returns v as a SequenceValue or ErrOutOfRange.
func NewSequenceValue(v int) (SequenceValue, error) {
	if v < MinSequenceValue || v > MaxSequenceValue {
		return 0, fmt.Errorf("%w: sequence value %d not in [%d, %d]",
			ErrOutOfRange, v, MinSequenceValue, MaxSequenceValue)
	}
	return SequenceValue(v), nil
}

// NoiseLevel controls the imprecision of a human style cut and merge,
// from 0 (perfect) to 10 (sloppy).
type NoiseLevel uint8

// NewNoiseLevel returns n as a NoiseLevel or ErrOutOfRange.
func NewNoiseLevel(n int) (NoiseLevel, error) {
	if n < 0 || n > MaxNoiseLevel {
		return 0, fmt.Errorf("%w: noise level %d not in [0, %d]", ErrOutOfRange, n, MaxNoiseLevel)
	}
	return NoiseLevel(n), nil
}

// JokersPerDeck is the number of jokers, 0 to 2, included with each deck.
type JokersPerDeck uint8

// NewJokersPerDeck returns n as a JokersPerDeck or ErrOutOfRange.
func NewJokersPerDeck(n int) (JokersPerDeck, error) {
	if n < 0 || n > MaxJokersPerDeck {
		return 0, fmt.Errorf("%w: jokers per deck %d not in [0, %d]", ErrOutOfRange, n, MaxJokersPerDeck)
	}
	return JokersPerDeck(n), nil
}

func mustJokersPerDeck(n int) JokersPerDeck {
	j, err := NewJokersPerDeck(n)
	if err != nil {
		panic(err)
	}
	return j
}
