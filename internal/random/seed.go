// Package random provides seed generation and the seeded generator shared by
// every shuffle and die roll of a run.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
)

// streamSalt derives the second PCG word from the seed so a single uint64
// fully determines the stream.
const streamSalt = 0x9e3779b97f4a7c15

// NewSeed generates a non-zero random seed using crypto/rand.
func NewSeed() (uint64, error) {
	var b [8]byte
	for {
		if _, err := crand.Read(b[:]); err != nil {
			return 0, fmt.Errorf("read random seed: %w", err)
		}
		if seed := binary.LittleEndian.Uint64(b[:]); seed != 0 {
			return seed, nil
		}
	}
}

// New returns a PCG-backed generator for seed. Equal seeds yield equal
// streams.
func New(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^streamSalt))
}

// Resolve returns seed unchanged when it is non-zero and a fresh crypto seed
// otherwise.
func Resolve(seed uint64) (uint64, error) {
	if seed != 0 {
		return seed, nil
	}
	return NewSeed()
}
