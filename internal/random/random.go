// Package random picks the seeds that make a game reproducible.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
)

// Seed returns fixed when it is non-zero and a fresh random seed otherwise.
// Front ends log the result so a game can be replayed with BLOCKFALL_SEED.
func Seed(fixed uint64) uint64 {
	if fixed != 0 {
		return fixed
	}

	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return rand.Uint64() | 1
	}
	return binary.LittleEndian.Uint64(b[:]) | 1
}

// Derive returns the n-th seed of a sequence rooted at seed. The soak runner
// uses it to give every session its own reproducible seed.
func Derive(seed uint64, n int) uint64 {
	r := rand.New(rand.NewPCG(seed, uint64(n)))
	return r.Uint64() | 1
}
