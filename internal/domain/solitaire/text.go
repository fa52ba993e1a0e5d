package solitaire

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// BlockSize is the length of the letter groups ciphertext is written in.
const BlockSize = 5

// PadLetter fills plaintext up to a whole number of blocks.
const PadLetter Letter = 'X'

// PlainText is a message to encrypt, or the result of a decryption.
type PlainText []Letter

// CypherText is an encrypted message.
type CypherText []Letter

// Passphrase is the secret used to key the deck.
type Passphrase []Letter

// KeyStream is the sequence of letters produced by a keyed deck.
type KeyStream []Letter

// upper maps s to upper case with Unicode rules, so that for instance "ß"
// becomes "SS". A Caser holds state and must not be shared between
// goroutines, hence one per call.
func upper(s string) string {
	return cases.Upper(language.Und).String(s)
}

// lettersOf returns the A-Z letters of s after upper casing, dropping
// everything else.
func lettersOf(s string) []Letter {
	s = upper(s)
	out := make([]Letter, 0, len(s))
	for i := 0; i < len(s); i++ {
		if l, err := NewLetter(s[i]); err == nil {
			out = append(out, l)
		}
	}
	return out
}

// ParsePlainText builds a PlainText from s. Letters are upper cased, anything
// that is not a letter is dropped and the result is padded with X to a
// multiple of five letters.
func ParsePlainText(s string) PlainText {
	pt := PlainText(lettersOf(s))
	for len(pt)%BlockSize != 0 {
		pt = append(pt, PadLetter)
	}
	return pt
}

// ParseCypherText builds a CypherText from s, upper casing letters and
// dropping everything else, including the spaces between blocks.
func ParseCypherText(s string) CypherText {
	return CypherText(lettersOf(s))
}

// ParseKeyStream builds a KeyStream from s, upper casing letters and dropping
// everything else.
func ParseKeyStream(s string) KeyStream {
	return KeyStream(lettersOf(s))
}

// ParsePassphrase builds a Passphrase from s. Apostrophes are removed and
// letters upper cased; any other character is rejected with
// ErrPassphraseNonLetter. An empty passphrase is valid and leaves the deck
// unkeyed.
func ParsePassphrase(s string) (Passphrase, error) {
	s = upper(strings.ReplaceAll(s, "'", ""))
	pp := make(Passphrase, 0, len(s))
	for i := 0; i < len(s); i++ {
		l, err := NewLetter(s[i])
		if err != nil {
			return nil, ErrPassphraseNonLetter
		}
		pp = append(pp, l)
	}
	return pp, nil
}

// String renders the plaintext as one unbroken run of letters.
func (pt PlainText) String() string { return joinLetters(pt, false) }

// String renders the ciphertext in space separated groups of five.
func (ct CypherText) String() string { return joinLetters(ct, true) }

// String renders the passphrase as one unbroken run of letters.
func (pp Passphrase) String() string { return joinLetters(pp, false) }

// String renders the keystream in space separated groups of five.
func (ks KeyStream) String() string { return joinLetters(ks, true) }

func joinLetters(letters []Letter, blocks bool) string {
	var b strings.Builder
	b.Grow(len(letters) + len(letters)/BlockSize)
	for i, l := range letters {
		if blocks && i != 0 && i%BlockSize == 0 {
			b.WriteByte(' ')
		}
		b.WriteByte(byte(l))
	}
	return b.String()
}
