package sampler

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
)

// PowerLawFn draws one integer in [min, max] from a truncated discrete
// power law each time it is called. Deterministic for a given rng seed.
type PowerLawFn func(rng *rand.Rand) int32

/*
PowerLaw constructs a PowerLawFn for density proportional to x^-t on
[min, max], via rejection sampling: propose x uniformly in [min, max],
accept with probability (x/min)^-t (the envelope is tight since density
is maximal at x=min for t>0). Gives up after maxIter attempts and
returns min, mirroring the bounded-retry posture of the core engines
rather than looping unboundedly on a degenerate exponent.
*/
func PowerLaw(t float64, min, max int32, maxIter int) (PowerLawFn, error) {
	if min <= 0 || max < min {
		return nil, fmt.Errorf("%w: require 0 < min <= max, got min=%d max=%d", ErrInvalidParams, min, max)
	}
	if t <= 0 {
		return nil, fmt.Errorf("%w: exponent t must be > 0, got %g", ErrInvalidParams, t)
	}
	if maxIter <= 0 {
		return nil, fmt.Errorf("%w: maxIter must be > 0, got %d", ErrInvalidParams, maxIter)
	}

	span := int64(max-min) + 1
	return func(rng *rand.Rand) int32 {
		for i := 0; i < maxIter; i++ {
			x := min + int32(rng.Int63n(span))
			accept := math.Pow(float64(x)/float64(min), -t)
			if rng.Float64() < accept {
				return x
			}
		}
		return min
	}, nil
}

// DegreeSequence draws n values from PowerLaw(t1, dMin, dMax, maxIter),
// sorted descending as params.New expects on intake.
func DegreeSequence(rng *rand.Rand, n int, t1 float64, dMin, dMax int32, maxIter int) ([]int32, error) {
	fn, err := PowerLaw(t1, dMin, dMax, maxIter)
	if err != nil {
		return nil, err
	}
	w := make([]int32, n)
	for i := range w {
		w[i] = fn(rng)
	}
	sortDescending(w)
	return w, nil
}

/*
CommunitySizes draws community sizes from PowerLaw(t2, cMin, cMax,
maxIter) until their sum reaches n exactly, clipping the final draw to
fit, so the last community may be smaller than cMin (cMin > n yields a
single community of size n). Returns ErrExhausted if the sum has not
reached n after 4n+16 draws.
*/
func CommunitySizes(rng *rand.Rand, n int, t2 float64, cMin, cMax int32, maxIter int) ([]int32, error) {
	fn, err := PowerLaw(t2, cMin, cMax, maxIter)
	if err != nil {
		return nil, err
	}

	var sizes []int32
	var sum int32
	budget := 4*n + 16
	for sum < int32(n) && budget > 0 {
		budget--
		v := fn(rng)
		if remaining := int32(n) - sum; v > remaining {
			v = remaining
		}
		if v <= 0 {
			continue
		}
		sizes = append(sizes, v)
		sum += v
	}
	if sum != int32(n) {
		return nil, fmt.Errorf("%w: reached sum=%d of n=%d", ErrExhausted, sum, n)
	}
	sortDescending(sizes)
	return sizes, nil
}

func sortDescending(a []int32) {
	sort.Slice(a, func(i, j int) bool { return a[i] > a[j] })
}
