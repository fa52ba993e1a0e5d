package cards

import "fmt"

// Suit is one of the four french suits.
type Suit uint8

// Suits.
const (
	Clubs Suit = iota + 1
	Diamonds
	Hearts
	Spades
)

var suitSymbols = map[Suit]byte{
	Clubs:    'C',
	Diamonds: 'D',
	Hearts:   'H',
	Spades:   'S',
}

// String returns the single letter notation of the suit.
func (s Suit) String() string {
	if b, ok := suitSymbols[s]; ok {
		return string(b)
	}
	return "?"
}

// Rank is the face value of a suited card, Ace (1) through King (13).
type Rank uint8

// Ranks.
const (
	Ace Rank = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

const rankSymbols = "A23456789TJQK"

// String returns the single character notation of the rank ("T" for ten).
func (r Rank) String() string {
	if r < Ace || r > King {
		return "?"
	}
	return string(rankSymbols[r-1])
}

// JokerID distinguishes the two jokers of a deck.
type JokerID uint8

// Joker identities.
const (
	JokerIDA JokerID = iota + 1
	JokerIDB
)

// String returns "A" or "B".
func (j JokerID) String() string {
	switch j {
	case JokerIDA:
		return "A"
	case JokerIDB:
		return "B"
	default:
		return "?"
	}
}

// Card is an immutable card identity. Cards are comparable and may be used
// as map keys; two cards are equal when they have the same identity.
type Card struct {
	rank  Rank
	suit  Suit
	joker JokerID
}

// The two jokers.
var (
	JokerA = Card{joker: JokerIDA}
	JokerB = Card{joker: JokerIDB}
)

// NewCard returns the suited card with the given rank and suit.
func NewCard(rank Rank, suit Suit) Card {
	return Card{rank: rank, suit: suit}
}

// Rank returns the card rank, zero for jokers.
func (c Card) Rank() Rank { return c.rank }

// Suit returns the card suit, zero for jokers.
func (c Card) Suit() Suit { return c.suit }

// JokerID returns which joker the card is, zero for suited cards.
func (c Card) JokerID() JokerID { return c.joker }

// IsJoker reports whether the card is one of the jokers.
func (c Card) IsJoker() bool { return c.joker != 0 }

// String renders the two character notation: rank then suit ("TD" is the
// ten of diamonds) or 'F' then the joker id ("FA" is joker A).
func (c Card) String() string {
	if c.IsJoker() {
		return "F" + c.joker.String()
	}
	return c.rank.String() + c.suit.String()
}

// ParseCard parses the two character card notation produced by String.
func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return Card{}, fmt.Errorf("%w: %q must be two characters", ErrInvalidNotation, s)
	}

	if s[0] == 'F' {
		switch s[1] {
		case 'A':
			return JokerA, nil
		case 'B':
			return JokerB, nil
		default:
			return Card{}, fmt.Errorf("%w: unknown joker %q", ErrInvalidNotation, s)
		}
	}

	var suit Suit
	for candidate, symbol := range suitSymbols {
		if symbol == s[1] {
			suit = candidate
			break
		}
	}
	if suit == 0 {
		return Card{}, fmt.Errorf("%w: unknown suit in %q", ErrInvalidNotation, s)
	}

	for i := 0; i < len(rankSymbols); i++ {
		if rankSymbols[i] == s[0] {
			return NewCard(Rank(i+1), suit), nil
		}
	}
	return Card{}, fmt.Errorf("%w: unknown rank in %q", ErrInvalidNotation, s)
}
