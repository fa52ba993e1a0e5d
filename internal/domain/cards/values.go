package cards

import "sync"

// CardsPerDeck is the number of suited cards in one deck.
const CardsPerDeck = 52

var newDeckOrder = buildNewDeckOrder()

// buildNewDeckOrder lays out a new deck as it comes out of the box, top down,
// faces down: Hearts A-K, Clubs A-K, Diamonds K-A, Spades K-A, Joker A, Joker B.
func buildNewDeckOrder() [CardsPerDeck + MaxJokersPerDeck]Card {
	var order [CardsPerDeck + MaxJokersPerDeck]Card
	i := 0
	for _, suit := range []Suit{Hearts, Clubs} {
		for r := Ace; r <= King; r++ {
			order[i] = NewCard(r, suit)
			i++
		}
	}
	for _, suit := range []Suit{Diamonds, Spades} {
		for r := King; r >= Ace; r-- {
			order[i] = NewCard(r, suit)
			i++
		}
	}
	order[i] = JokerA
	order[i+1] = JokerB
	return order
}

// NewDeckOrder returns the 54 card identities in new-deck order.
func NewDeckOrder() []Card {
	out := make([]Card, len(newDeckOrder))
	copy(out, newDeckOrder[:])
	return out
}

var (
	sequenceValuesOnce sync.Once
	sequenceValues     map[Card]SequenceValue
)

// sequenceTable returns the process wide card to sequence value table. It is
// built on first use and never modified afterwards.
func sequenceTable() map[Card]SequenceValue {
	sequenceValuesOnce.Do(func() {
		table := make(map[Card]SequenceValue, len(newDeckOrder))
		for i, c := range newDeckOrder {
			v, err := NewSequenceValue(i + 1)
			if err != nil {
				panic(err)
			}
			table[c] = v
		}
		sequenceValues = table
	})
	return sequenceValues
}

// SequenceValue returns the card's 1..54 position in new-deck order.
// It panics for a zero Card, which is not a card identity.
func (c Card) SequenceValue() SequenceValue {
	v, ok := sequenceTable()[c]
	if !ok {
		panic("cards: no sequence value for " + c.String())
	}
	return v
}

// NextSequenceValue returns the value that follows the card in new-deck
// order. The sequence wraps back to 1 after the last card of a deck holding
// the given number of jokers, so that in multi-deck stacks the last card of
// one deck is followed by the first card of the next.
func (c Card) NextSequenceValue(jokers JokersPerDeck) SequenceValue {
	last := JokerB.SequenceValue()
	switch jokers {
	case 0:
		last = NewCard(Ace, Spades).SequenceValue()
	case 1:
		last = JokerA.SequenceValue()
	}

	v := c.SequenceValue()
	if v < last {
		return v + 1
	}
	return MinSequenceValue
}
