package cards

import "errors"

// Validation errors returned by the cards package.
var (
	// ErrInvalidNotation is returned when a card or stack string cannot be parsed.
	ErrInvalidNotation = errors.New("invalid card notation")

	// ErrOutOfRange is returned when a bounded value is constructed outside its range.
	ErrOutOfRange = errors.New("value out of range")

	// ErrIndexOutOfRange is returned when a position lies beyond the end of a stack.
	ErrIndexOutOfRange = errors.New("index beyond end of stack")

	// ErrNotEnoughCards is returned when more cards are drawn than a stack holds.
	ErrNotEnoughCards = errors.New("cannot draw more cards than are available")
)
