/*
Package rand defines methods of obtaining random number generators requiring
or not requiring cryptographically secure sources.

Use NewGenerator() when a cryptographically secure source is required, and
NewSeededGenerator() when reproducibility matters more than entropy, such as
when a test needs to regenerate an identical workload.
*/
package rand

import (
	"crypto/rand"
	"encoding/binary"
	mrand "math/rand"
)

type source struct{}

var _ mrand.Source64 = (*source)(nil)

// Seed does nothing when crypto/rand is used as source.
func (_ *source) Seed(_ int64) {}

// Int63 returns uniformly-distributed random (as in CSPRNG) int64 value within [0, 1<<63) range.
func (s *source) Int63() int64 {
	return int64(s.Uint64() & ^uint64(1<<63))
}

// Uint64 returns uniformly-distributed random (as in CSPRNG) uint64 value within [0, 1<<64) range.
func (_ *source) Uint64() (val uint64) {
	if err := binary.Read(rand.Reader, binary.BigEndian, &val); err != nil {
		panic(err)
	}
	return
}

// NewGenerator returns a new generator that uses random values from crypto/rand as a source
// (cryptographically secure random number generator).
// Panics if crypto/rand input cannot be read.
func NewGenerator() *mrand.Rand {
	return mrand.New(&source{}) // #nosec G404 -- crypto/rand-backed source
}

// NewDeterministicGenerator returns a random generator which is only seeded with crypto/rand,
// but is deterministic otherwise (given seed, produces given results, deterministically).
// Panics if crypto/rand input cannot be read.
func NewDeterministicGenerator() *mrand.Rand {
	randGen := NewGenerator()
	return NewSeededGenerator(randGen.Int63())
}

// NewSeededGenerator returns a deterministic generator seeded with the given
// value. Two generators constructed from the same seed produce identical
// streams, which makes workloads reproducible.
func NewSeededGenerator(seed int64) *mrand.Rand {
	return mrand.New(mrand.NewSource(seed)) // #nosec G404 -- deliberately deterministic
}
