package solitaire

import (
	"sync"

	"github.com/phrazzld/solitaire/internal/domain/cards"
)

// JokerValue is the cipher value shared by both jokers.
const JokerValue CardValue = 53

// CardValue is the value a card contributes to the cipher: its position in
// new-deck order, except that both jokers count 53.
type CardValue uint8

var (
	cardValuesOnce sync.Once
	cardValues     map[cards.Card]CardValue
)

func cardValueTable() map[cards.Card]CardValue {
	cardValuesOnce.Do(func() {
		order := cards.NewDeckOrder()
		table := make(map[cards.Card]CardValue, len(order))
		for _, c := range order {
			if c.IsJoker() {
				table[c] = JokerValue
				continue
			}
			table[c] = CardValue(c.SequenceValue())
		}
		cardValues = table
	})
	return cardValues
}

// ValueOf returns the cipher value of c. It panics on the zero Card.
func ValueOf(c cards.Card) CardValue {
	v, ok := cardValueTable()[c]
	if !ok {
		panic("solitaire: no cipher value for " + c.String())
	}
	return v
}

// LetterValue reduces the card value into the alphabet: 1..26 for the suited
// cards, wrapping once so that 27 maps back to 1.
func (v CardValue) LetterValue() LetterValue {
	return LetterValue((int(v)-1)%AlphabetSize + 1)
}
