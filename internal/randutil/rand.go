package randutil

import (
	rand "math/rand/v2"
	"time"
)

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
)

// New returns a *rand.Rand seeded deterministically from the provided int64.
// The helper centralises how we derive the two 64-bit seeds required by rand/v2
// so that all call sites get reproducible sequences.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// NewFromTime returns a generator seeded from the wall clock together with
// the seed used, so that a run can be reproduced later.
func NewFromTime() (*rand.Rand, int64) {
	seed := time.Now().UnixNano()
	return New(seed), seed
}

// Split derives n independent generators from parent. Each child is seeded
// from two draws of the parent, so a seeded parent yields the same children
// every time. The parent must not be used concurrently while splitting.
func Split(parent *rand.Rand, n int) []*rand.Rand {
	children := make([]*rand.Rand, n)
	for i := range children {
		children[i] = rand.New(rand.NewPCG(mix(parent.Uint64()), mix(parent.Uint64())))
	}
	return children
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
