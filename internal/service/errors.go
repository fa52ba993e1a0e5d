package service

import "errors"

// Common service errors - sentinel errors used across service implementations.
// Callers check them with errors.Is; the API layer maps them to HTTP 400.
// Domain validation errors (solitaire.ErrPassphraseNonLetter, cards.ErrOutOfRange)
// are wrapped, not replaced, so they remain visible to errors.Is as well.
var (
	// ErrInvalidLength indicates a keystream length outside 1..MaxKeyStreamLength.
	ErrInvalidLength = errors.New("invalid keystream length")

	// ErrInvalidShuffle indicates shuffle parameters outside their ranges or
	// an unknown shuffle method.
	ErrInvalidShuffle = errors.New("invalid shuffle request")
)
