package entity

import (
	"hash/fnv"
	"math/rand/v2"
)

// pcgStream is the fixed second PCG seed word; runs differ by seed alone.
const pcgStream = 0x9e3779b97f4a7c15

// SimpleRNG is a deterministic pseudo-random number generator backed by a
// PCG source, so equal seeds replay equal runs.
type SimpleRNG struct {
	src *rand.PCG
	rnd *rand.Rand
}

// NewSimpleRNG creates a new RNG with the given seed.
func NewSimpleRNG(seed int64) *SimpleRNG {
	src := rand.NewPCG(uint64(seed), pcgStream) //#nosec G115 -- intentional conversion for RNG seeding
	return &SimpleRNG{src: src, rnd: rand.New(src)}
}

// Intn returns a uniform random int in [0, n).
func (r *SimpleRNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return r.rnd.IntN(n)
}

// Float64 returns a random float64 in [0, 1).
func (r *SimpleRNG) Float64() float64 {
	return r.rnd.Float64()
}

// Chance reports true with probability p.
func (r *SimpleRNG) Chance(p float64) bool {
	return r.Float64() < p
}

// State folds the generator state into one word for snapshots.
func (r *SimpleRNG) State() uint64 {
	b, err := r.src.MarshalBinary()
	if err != nil {
		return 0
	}
	h := fnv.New64a()
	_, _ = h.Write(b)
	return h.Sum64()
}

// Rand is the random source entities draw from.
type Rand interface {
	Intn(n int) int
	Float64() float64
}
