package cards

import (
	"fmt"
	"strings"
)

// Stack is an ordered pile of cards, index 0 being the top card. A stack may
// hold duplicates when it is built from several decks. The zero Stack is an
// empty stack ready to use.
type Stack struct {
	cards []Card
}

// New creates deckCount decks in new-deck order, each deck holding 52 suited
// cards followed by the requested number of jokers, stacked one after the
// other.
func New(deckCount int, jokers JokersPerDeck) Stack {
	if deckCount <= 0 {
		return Stack{}
	}

	perDeck := CardsPerDeck + int(jokers)
	cards := make([]Card, 0, deckCount*perDeck)
	for i := 0; i < deckCount; i++ {
		cards = append(cards, newDeckOrder[:perDeck]...)
	}
	return Stack{cards: cards}
}

// FromCards builds a stack holding a copy of the given cards, top first.
func FromCards(cards []Card) Stack {
	out := make([]Card, len(cards))
	copy(out, cards)
	return Stack{cards: out}
}

// ParseStack parses space separated card notation such as "AC QH FA FB".
func ParseStack(s string) (Stack, error) {
	fields := strings.Fields(s)
	cards := make([]Card, 0, len(fields))
	for _, f := range fields {
		c, err := ParseCard(f)
		if err != nil {
			return Stack{}, err
		}
		cards = append(cards, c)
	}
	return Stack{cards: cards}, nil
}

// String renders the stack as space separated card notation, top first.
func (s Stack) String() string {
	var b strings.Builder
	for i, c := range s.cards {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(c.String())
	}
	return b.String()
}

// Len returns the number of cards in the stack.
func (s Stack) Len() int { return len(s.cards) }

// IsEmpty reports whether the stack holds no cards.
func (s Stack) IsEmpty() bool { return len(s.cards) == 0 }

// Cards returns a copy of the cards, top first.
func (s Stack) Cards() []Card {
	return FromCards(s.cards).cards
}

// Clone returns an independent copy of the stack.
func (s Stack) Clone() Stack {
	return FromCards(s.cards)
}

// Equal reports whether both stacks hold the same cards in the same order.
func (s Stack) Equal(other Stack) bool {
	if len(s.cards) != len(other.cards) {
		return false
	}
	for i := range s.cards {
		if s.cards[i] != other.cards[i] {
			return false
		}
	}
	return true
}

// SequenceValues returns the new-deck order values of the cards, top first
// (Ace of Hearts is 1, Joker B is 54).
func (s Stack) SequenceValues() []int {
	values := make([]int, len(s.cards))
	for i, c := range s.cards {
		values[i] = int(c.SequenceValue())
	}
	return values
}

// LookAt returns the card at index without removing it.
func (s Stack) LookAt(index int) (Card, error) {
	if index < 0 || index >= len(s.cards) {
		return Card{}, fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, index, len(s.cards))
	}
	return s.cards[index], nil
}

// Find returns the position of the first occurrence of card.
func (s Stack) Find(card Card) (int, bool) {
	for i, c := range s.cards {
		if c == card {
			return i, true
		}
	}
	return 0, false
}

// findOccurrence returns the position of the occurrence-th (zero based)
// appearance of card.
func (s Stack) findOccurrence(card Card, occurrence int) (int, bool) {
	if occurrence < 0 {
		return 0, false
	}
	seen := 0
	for i, c := range s.cards {
		if c != card {
			continue
		}
		if seen == occurrence {
			return i, true
		}
		seen++
	}
	return 0, false
}

// Reverse reverses the order of the stack in place.
func (s *Stack) Reverse() {
	for i, j := 0, len(s.cards)-1; i < j; i, j = i+1, j-1 {
		s.cards[i], s.cards[j] = s.cards[j], s.cards[i]
	}
}

// Append puts the cards of other, in order, underneath this stack.
func (s *Stack) Append(other Stack) {
	s.cards = append(s.cards, other.cards...)
}

// DrawCount removes the top n cards and returns them as a new stack.
func (s *Stack) DrawCount(n int) (Stack, error) {
	if n < 0 || n > len(s.cards) {
		return Stack{}, fmt.Errorf("%w: requested %d, have %d", ErrNotEnoughCards, n, len(s.cards))
	}
	drawn := FromCards(s.cards[:n])
	s.cards = append(s.cards[:0:0], s.cards[n:]...)
	return drawn, nil
}

// DrawTill removes and returns every card above the first occurrence of
// card. The card itself stays on top of the stack. It reports false, leaving
// the stack untouched, when the card is absent.
func (s *Stack) DrawTill(card Card) (Stack, bool) {
	pos, ok := s.Find(card)
	if !ok {
		return Stack{}, false
	}
	drawn, err := s.DrawCount(pos)
	if err != nil {
		panic(err)
	}
	return drawn, true
}

// Cut divides the stack before index: the top part holds index cards and
// the card at index becomes the first card of the bottom part. An index at or
// past the end leaves everything in the top part. The receiver is unchanged.
func (s Stack) Cut(index int) (top, bottom Stack) {
	if index < 0 {
		index = 0
	}
	if index >= len(s.cards) {
		return s.Clone(), Stack{}
	}
	return FromCards(s.cards[:index]), FromCards(s.cards[index:])
}
