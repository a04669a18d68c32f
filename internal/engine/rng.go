package engine

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand"
)

// Source is the call-scoped random source for one search run.
//
// In deterministic mode every pick is a pure function of (seed, ordinal
// position of the call within the run): the same seed and the same call
// sequence reproduce the same choices. In random mode the source is seeded
// from crypto/rand, so runs are not reproducible.
//
// A Source must never be shared between concurrent runs.
type Source struct {
	rnd           *rand.Rand
	seed          int64
	deterministic bool
	calls         int64
}

// NewDeterministicSource returns a Source reproducible from seed.
func NewDeterministicSource(seed int64) *Source {
	return &Source{
		rnd:           rand.New(rand.NewSource(seed)),
		seed:          seed,
		deterministic: true,
	}
}

// NewRandomSource returns a non-reproducible Source seeded from the
// operating system's entropy pool.
func NewRandomSource() *Source {
	var buf [8]byte
	if _, err := crand.Read(buf[:]); err != nil {
		// crypto/rand failing means the platform is broken; there is no
		// reasonable recovery for a random-mode run.
		panic("engine: reading crypto/rand: " + err.Error())
	}
	seed := int64(binary.BigEndian.Uint64(buf[:]) & (1<<63 - 1))
	return &Source{
		rnd:  rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Choice picks one symbol uniformly from options. options must not be
// empty; the engine guarantees this at every call site.
func (s *Source) Choice(options []byte) byte {
	if len(options) == 0 {
		panic("engine: Choice on empty options")
	}
	s.calls++
	return options[s.rnd.Intn(len(options))]
}

// Deterministic reports whether the source replays from a seed.
func (s *Source) Deterministic() bool {
	return s.deterministic
}

// Seed returns the seed the source was created with. For random sources
// this is the entropy-derived seed, reported for diagnostics only.
func (s *Source) Seed() int64 {
	return s.seed
}

// Calls returns the number of picks made so far.
func (s *Source) Calls() int64 {
	return s.calls
}
