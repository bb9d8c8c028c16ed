package xrand

import (
	"math/rand"
	"sort"
)

// WeightedSampler draws indices into a static weight vector with
// probability proportional to weight, with replacement. It precomputes a
// cumulative-sum table so each draw is O(log n).
//
// A WeightedSampler is immutable after construction and safe for
// concurrent reads from independent *rand.Rand streams (no internal
// mutable state is touched by Sample).
type WeightedSampler struct {
	cum   []float64 // cum[i] = sum(weights[0..i])
	total float64
}

// NewWeightedSampler builds a sampler over weights. Zero-weight entries
// are legal and simply never drawn. Returns ok=false if the weights sum
// to zero (no entry can ever be drawn), mirroring spec.md's "no empty
// slot" / "weight sum is zero" failure conditions in the callers that
// need to distinguish this case.
//
// Complexity: O(n).
func NewWeightedSampler(weights []float64) (*WeightedSampler, bool) {
	cum := make([]float64, len(weights))
	var running float64
	for i, w := range weights {
		running += w
		cum[i] = running
	}
	if running <= 0 {
		return &WeightedSampler{cum: cum, total: 0}, false
	}
	return &WeightedSampler{cum: cum, total: running}, true
}

// Total returns the sum of weights used to build the sampler.
func (s *WeightedSampler) Total() float64 { return s.total }

// Sample draws one index with probability proportional to its weight.
//
// Complexity: O(log n).
func (s *WeightedSampler) Sample(rng *rand.Rand) int {
	target := rng.Float64() * s.total
	i := sort.Search(len(s.cum), func(i int) bool { return s.cum[i] > target })
	if i >= len(s.cum) {
		i = len(s.cum) - 1
	}
	return i
}

// SampleBatch draws n indices independently, with replacement.
//
// Complexity: O(n log m) where m is the number of weighted entries.
func (s *WeightedSampler) SampleBatch(rng *rand.Rand, n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = s.Sample(rng)
	}
	return out
}
