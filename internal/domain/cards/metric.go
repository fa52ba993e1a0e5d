package cards

// RisingSequences counts the maximal rising sequences in the stack, a
// standard measure of how shuffled a deck is. A rising sequence is a set of
// cards whose new-deck values increase by exactly one, read from top to
// bottom but not necessarily adjacent. Lone cards count as sequences of one.
//
// A fresh deck scores 1 and one perfect riffle scores 2. A well randomized
// stack scores close to Len()/2.
//
// The joker count used for the value wraparound is inferred from the stack
// size: (Len() mod 52) / (Len() / 52), treated as 0 when that is not a
// valid joker count (for instance when partial decks are in use).
func (s Stack) RisingSequences() int {
	n := len(s.cards)
	if n == 0 {
		return 0
	}

	jokers := JokersPerDeck(0)
	if decks := n / CardsPerDeck; decks > 0 {
		if j := (n % CardsPerDeck) / decks; j <= MaxJokersPerDeck {
			jokers = mustJokersPerDeck(j)
		}
	}

	values := s.SequenceValues()
	assigned := make([]bool, n)
	count := 0
	for i := range s.cards {
		if assigned[i] {
			continue
		}
		assigned[i] = true
		count++

		tail := s.cards[i]
		for j := i + 1; j < n; j++ {
			if assigned[j] || values[j] != int(tail.NextSequenceValue(jokers)) {
				continue
			}
			assigned[j] = true
			tail = s.cards[j]
		}
	}
	return count
}
