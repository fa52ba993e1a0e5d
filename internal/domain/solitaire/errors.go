package solitaire

import "errors"

// Common errors
var (
	ErrPassphraseNonLetter = errors.New("string contains non-letter")
	ErrKeyStreamTooShort   = errors.New("keystream shorter than text")
	ErrInvalidKeyDeck      = errors.New("key deck must hold 52 suited cards and both jokers exactly once")
	ErrOutOfRange          = errors.New("value out of range")
)
