package cards

// WrapMode selects how a move that runs off one end of a stack re-enters at
// the other.
type WrapMode int

const (
	// WrapRing treats the gap between the bottom and the top card as one
	// position: moving the top card up by one puts it at the bottom.
	WrapRing WrapMode = iota
	// WrapCircular treats the cards as a closed circle with no extra
	// position between bottom and top: moving the bottom card down by one
	// puts it just under the top card.
	WrapCircular
)

// Wrap returns the index at which a card removed from start should be
// reinserted to move it delta positions in a stack of length cards. Positive
// deltas move towards the bottom. The result is an insertion index into the
// stack after the card has been removed, so it is always in [0, length-1].
func Wrap(length, start, delta int, mode WrapMode) int {
	if length <= 0 {
		return 0
	}

	end := (start + delta) % length
	if end < 0 {
		end += length
	}

	if mode == WrapCircular {
		switch {
		case delta > 0 && end < start:
			end++
		case delta < 0 && end > start:
			end--
		}
	}
	return end
}

// Move relocates the occurrence-th (zero based) copy of card by delta
// positions using ring semantics (see WrapRing). It reports whether the card
// was found.
func (s *Stack) Move(card Card, occurrence, delta int) bool {
	return s.move(card, occurrence, delta, WrapRing)
}

// MoveCircular relocates the occurrence-th (zero based) copy of card by delta
// positions as if the stack were a circle (see WrapCircular). It reports
// whether the card was found.
func (s *Stack) MoveCircular(card Card, occurrence, delta int) bool {
	return s.move(card, occurrence, delta, WrapCircular)
}

func (s *Stack) move(card Card, occurrence, delta int, mode WrapMode) bool {
	start, ok := s.findOccurrence(card, occurrence)
	if !ok {
		return false
	}
	end := Wrap(len(s.cards), start, delta, mode)

	moved := s.cards[start]
	s.cards = append(s.cards[:start], s.cards[start+1:]...)
	s.cards = append(s.cards, Card{})
	copy(s.cards[end+1:], s.cards[end:])
	s.cards[end] = moved
	return true
}
