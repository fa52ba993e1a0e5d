package solitaire

import (
	"fmt"

	"github.com/phrazzld/solitaire/internal/domain/cards"
)

// DeckSize is the number of cards in a Solitaire deck: 52 suited cards and
// two jokers.
const DeckSize = cards.CardsPerDeck + cards.MaxJokersPerDeck

// Deck is a Solitaire deck in some keyed state. Each call to Next steps the
// deck and so changes it.
type Deck struct {
	stack cards.Stack
}

// NewDeck wraps a copy of stack, which must hold each of the 54 cards of a
// deck with two jokers exactly once.
func NewDeck(stack cards.Stack) (*Deck, error) {
	if stack.Len() != DeckSize {
		return nil, fmt.Errorf("%w: got %d cards", ErrInvalidKeyDeck, stack.Len())
	}
	seen := make(map[cards.Card]bool, DeckSize)
	for _, c := range stack.Cards() {
		if seen[c] {
			return nil, fmt.Errorf("%w: %s appears twice", ErrInvalidKeyDeck, c)
		}
		seen[c] = true
	}
	return &Deck{stack: stack.Clone()}, nil
}

// UnkeyedDeck returns a deck in new-deck order, the starting point of key
// derivation. Used as is, it is the "null key" of the published vectors.
func UnkeyedDeck() *Deck {
	return &Deck{stack: cards.New(1, cards.MaxJokersPerDeck)}
}

// KeyFromPassphrase derives the key deck for a passphrase. Starting from an
// unkeyed deck, each letter steps the deck once and then count cuts it by the
// letter's value.
func KeyFromPassphrase(pp Passphrase) *Deck {
	d := UnkeyedDeck()
	for _, l := range pp {
		d.advance()
		d.countCut(int(l.Value()))
	}
	return d
}

// Stack returns a copy of the deck's current order.
func (d *Deck) Stack() cards.Stack {
	return d.stack.Clone()
}

// String renders the deck in card notation, top first.
func (d *Deck) String() string {
	return d.stack.String()
}

// Next steps the deck until it yields a keystream letter.
func (d *Deck) Next() Letter {
	for {
		d.advance()
		if l, ok := d.output(); ok {
			return l
		}
	}
}

// KeyStream draws letters from the deck, rounding length up to a whole
// number of five letter blocks.
func (d *Deck) KeyStream(length int) KeyStream {
	if length <= 0 {
		return KeyStream{}
	}
	if rem := length % BlockSize; rem != 0 {
		length += BlockSize - rem
	}
	ks := make(KeyStream, 0, length)
	for len(ks) < length {
		ks = append(ks, d.Next())
	}
	return ks
}

// GenerateKeyStream produces length letters (rounded up to a multiple of
// five) of keystream from a key deck given as a stack. The stack itself is
// not modified.
func GenerateKeyStream(stack cards.Stack, length int) (KeyStream, error) {
	d, err := NewDeck(stack)
	if err != nil {
		return nil, err
	}
	return d.KeyStream(length), nil
}

// advance performs one step of the cipher: Joker A down one, Joker B down
// two, a triple cut around the jokers and a count cut by the bottom card.
func (d *Deck) advance() {
	if !d.stack.MoveCircular(cards.JokerA, 0, 1) {
		panic("solitaire: joker A missing from deck")
	}
	if !d.stack.MoveCircular(cards.JokerB, 0, 2) {
		panic("solitaire: joker B missing from deck")
	}
	d.tripleCut()

	bottom, err := d.stack.LookAt(d.stack.Len() - 1)
	if err != nil {
		panic(err)
	}
	d.countCut(int(ValueOf(bottom)))
}

// tripleCut swaps the cards above the first joker with the cards below the
// second. The jokers and everything between them stay in the middle.
func (d *Deck) tripleCut() {
	first, okA := d.stack.Find(cards.JokerA)
	second, okB := d.stack.Find(cards.JokerB)
	if !okA || !okB {
		panic("solitaire: triple cut needs both jokers")
	}
	if first > second {
		first, second = second, first
	}

	top, rest := d.stack.Cut(first)
	middle, bottom := rest.Cut(second - first + 1)

	bottom.Append(middle)
	bottom.Append(top)
	d.stack = bottom
}

// countCut moves the top n cards to just above the bottom card, which stays
// where it is.
func (d *Deck) countCut(n int) {
	body, last := d.stack.Cut(d.stack.Len() - 1)
	top, rest := body.Cut(n)

	rest.Append(top)
	rest.Append(last)
	d.stack = rest
}

// output reads the keystream letter for the current state: the top card's
// value counts down to a card, and that card's value is the letter. Landing
// on a joker yields nothing.
func (d *Deck) output() (Letter, bool) {
	top, err := d.stack.LookAt(0)
	if err != nil {
		panic(err)
	}
	candidate, err := d.stack.LookAt(int(ValueOf(top)))
	if err != nil {
		panic(err)
	}
	if candidate.IsJoker() {
		return 0, false
	}
	return ValueOf(candidate).LetterValue().Letter(), true
}
