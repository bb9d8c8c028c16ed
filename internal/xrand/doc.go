// Package xrand provides the sampling primitives shared by every ABCD
// subsystem: deterministic RNG derivation for parallel workers, uniform
// and weighted sampling with replacement, randomized rounding, and
// Fisher–Yates shuffling.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Never share a *rand.Rand
//     across goroutines; call DeriveRNG once per worker/task instead.
package xrand
