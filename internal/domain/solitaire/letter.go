package solitaire

import "fmt"

// Alphabet size and bounds of the letter types.
const (
	AlphabetSize   = 26
	MinLetterValue = 1
	MaxLetterValue = AlphabetSize
)

// Letter is an upper case ASCII letter, 'A' to 'Z'.
type Letter byte

// LetterValue is a letter's 1..26 position in the alphabet.
type LetterValue uint8

// NewLetter returns b as a Letter or ErrOutOfRange. Lower case letters are
// not accepted.
func NewLetter(b byte) (Letter, error) {
	if b < 'A' || b > 'Z' {
		return 0, fmt.Errorf("%w: %q is not an upper case letter", ErrOutOfRange, b)
	}
	return Letter(b), nil
}

// NewLetterValue returns v as a LetterValue or ErrOutOfRange.
func NewLetterValue(v int) (LetterValue, error) {
	if v < MinLetterValue || v > MaxLetterValue {
		return 0, fmt.Errorf("%w: letter value %d not in [%d, %d]",
			ErrOutOfRange, v, MinLetterValue, MaxLetterValue)
	}
	return LetterValue(v), nil
}

// Value returns the letter's position in the alphabet, A being 1.
func (l Letter) Value() LetterValue {
	return LetterValue(l-'A') + 1
}

// String returns the letter as a one character string.
func (l Letter) String() string {
	return string(rune(l))
}

// Letter returns the letter at this position in the alphabet.
func (v LetterValue) Letter() Letter {
	return Letter('A' + v - 1)
}

// letterFromOffset maps any integer onto the alphabet, 0 being 'A', wrapping
// in both directions.
func letterFromOffset(n int) Letter {
	n %= AlphabetSize
	if n < 0 {
		n += AlphabetSize
	}
	return Letter('A' + n)
}
