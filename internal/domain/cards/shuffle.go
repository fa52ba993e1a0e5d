package cards

import (
	"fmt"
	"math"
)

// Rand is the source of randomness used by the shuffling operations.
// *math/rand.Rand satisfies it; seed one for reproducible results.
type Rand interface {
	Intn(n int) int
	NormFloat64() float64
}

// MergeStrategy selects how two halves are interleaved by Merge.
type MergeStrategy int

// Merge strategies.
const (
	// MergeIn starts with the bottom card of the top half, so the top half's
	// bottom card ends up at the bottom of the result.
	MergeIn MergeStrategy = iota
	// MergeOut starts with the bottom card of the bottom half.
	MergeOut
	// MergeRandom picks the half for every card with a coin flip.
	MergeRandom
)

// String returns the strategy name.
func (m MergeStrategy) String() string {
	switch m {
	case MergeIn:
		return "in"
	case MergeOut:
		return "out"
	case MergeRandom:
		return "random"
	default:
		return fmt.Sprintf("MergeStrategy(%d)", int(m))
	}
}

// CutWithNoise divides the stack near its middle the way a person would.
// At noise level 0 the cut is exactly at Len()/2, so an odd middle card
// lands in the bottom half. Above 0 the cut point is drawn from a normal
// distribution centred on the middle whose standard deviation grows from 1
// at level 1 to sqrt(Len()) at level 10, then clamped to the stack.
func (s Stack) CutWithNoise(noise NoiseLevel, rng Rand) (top, bottom Stack) {
	if noise == 0 {
		return s.Cut(len(s.cards) / 2)
	}

	count := float64(len(s.cards))
	sd := 1 + (float64(noise)-1)*(math.Sqrt(count)-1)/9
	point := int(count/2 + rng.NormFloat64()*sd)
	switch {
	case point < 0:
		point = 0
	case point > len(s.cards):
		point = len(s.cards)
	}
	return s.Cut(point)
}

// Merge riffles two stacks into one. Cards are taken from the bottoms of
// the two stacks, alternating according to strategy, and dropped onto the
// growing pile; when one side runs out the rest comes from the other. rng is
// only consulted by MergeRandom and may be nil otherwise.
func Merge(top, bottom Stack, strategy MergeStrategy, rng Rand) Stack {
	t := top.Clone().cards
	b := bottom.Clone().cards
	total := len(t) + len(b)
	merged := make([]Card, 0, total)

	for i := 0; i < total; i++ {
		fromTop := false
		switch strategy {
		case MergeIn:
			fromTop = i%2 == 0
		case MergeOut:
			fromTop = i%2 == 1
		case MergeRandom:
			fromTop = rng.Intn(2) == 0
		}

		first, then := &b, &t
		if fromTop {
			first, then = &t, &b
		}

		switch {
		case len(*first) > 0:
			merged = append(merged, pop(first))
		case len(*then) > 0:
			merged = append(merged, pop(then))
		default:
			panic("cards: merge ran out of cards before the expected count")
		}
	}

	// Cards were collected bottom first; flip the pile so the first card
	// dropped ends up at the bottom, as in a physical riffle.
	out := Stack{cards: merged}
	out.Reverse()
	return out
}

func pop(cards *[]Card) Card {
	last := len(*cards) - 1
	c := (*cards)[last]
	*cards = (*cards)[:last]
	return c
}

// Shuffle performs riffles human style riffle shuffles. Noise level 0 gives
// perfect in-shuffles; any other level cuts with noise and merges randomly.
func (s *Stack) Shuffle(riffles int, noise NoiseLevel, rng Rand) {
	strategy := MergeRandom
	if noise == 0 {
		strategy = MergeIn
	}
	for i := 0; i < riffles; i++ {
		top, bottom := s.CutWithNoise(noise, rng)
		*s = Merge(top, bottom, strategy, rng)
	}
}

// FullyRandomize reorders the stack with a Fisher-Yates shuffle.
func (s *Stack) FullyRandomize(rng Rand) {
	n := len(s.cards)
	for i := 0; i < n-2; i++ {
		j := i + rng.Intn(n-i)
		s.cards[i], s.cards[j] = s.cards[j], s.cards[i]
	}
}

// InShuffle performs riffles perfect in-shuffles. A 52 card stack returns to
// its starting order after 52 of them.
func (s *Stack) InShuffle(riffles int) {
	s.faro(riffles, MergeIn)
}

// OutShuffle performs riffles perfect out-shuffles. A 52 card stack returns
// to its starting order after 8 of them.
func (s *Stack) OutShuffle(riffles int) {
	s.faro(riffles, MergeOut)
}

func (s *Stack) faro(riffles int, strategy MergeStrategy) {
	for i := 0; i < riffles; i++ {
		top, bottom := s.Cut(len(s.cards) / 2)
		*s = Merge(top, bottom, strategy, nil)
	}
}
