// Package random provides seed generation for the pseudo-random sources used
// when shuffling decks.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
)

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// New returns a pseudo-random source for seed. Equal seeds give equal
// sequences, which is what makes a shuffle reproducible.
func New(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
