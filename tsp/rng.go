// Package tsp — deterministic RNG plumbing shared by every randomized solver.
//
// Every metaheuristic here (2-opt/3-opt shuffling, simulated annealing, ant
// colony, the genetic algorithm) draws randomness exclusively through this
// file, so a fixed Options.Seed always reproduces the same run regardless of
// platform. There is no time-based entropy source anywhere in the package.
//
// math/rand.Rand is not goroutine-safe — callers that need independent
// parallel streams (multi-start heuristics, worker pools) should mint one
// *rand.Rand per stream via deriveRNG rather than sharing one.
package tsp

import "math/rand"

// zeroSeedFallback is substituted whenever a caller passes seed==0, giving
// "default options" a concrete, reproducible stream instead of silently
// reusing Go's own default source.
const zeroSeedFallback int64 = 1

// rngFromSeed builds a deterministic *rand.Rand: seed==0 maps to
// zeroSeedFallback, any other value is used verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = zeroSeedFallback
	}

	return rand.New(rand.NewSource(seed))
}

// deriveSeed folds a parent seed and a stream identifier into a new 64-bit
// seed via a SplitMix64-style avalanche mix (Vigna 2014), so substreams
// derived from the same parent don't correlate with each other.
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// deriveRNG mints an independent deterministic RNG stream from a base RNG
// and a stream identifier, meant for setup-time use (not hot loops) when
// spinning up per-worker or per-restart generators. A nil base falls back
// to zeroSeedFallback as the parent; otherwise one Int63() draw from base
// decorrelates children that reuse the same stream id by mistake.
func deriveRNG(base *rand.Rand, stream uint64) *rand.Rand {
	parent := zeroSeedFallback
	if base != nil {
		parent = base.Int63()
	}

	return rand.New(rand.NewSource(deriveSeed(parent, stream)))
}

// shuffleIntsInPlace runs a Fisher–Yates shuffle of a using rng, or the
// default deterministic stream if rng is nil.
//
// Complexity: O(n) time, O(1) extra space.
func shuffleIntsInPlace(a []int, rng *rand.Rand) {
	if len(a) <= 1 {
		return
	}
	if rng == nil {
		rng = rngFromSeed(0)
	}

	for i := len(a) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}
