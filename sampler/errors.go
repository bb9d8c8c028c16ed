// Package sampler provides the power-law degree and community-size
// samplers spec.md treats as external collaborators (§6): bounded
// rejection sampling of a truncated discrete power law, producing the
// vectors params.New consumes.
//
// Grounded on the teacher's builder.WeightFn family: a constructor that
// validates its parameters once (returning an error on misuse) and
// returns a small RNG-parameterized closure, here returning int32
// degree/size draws instead of edge weights.
package sampler

import "errors"

// ErrInvalidParams is returned when a sampler is constructed with
// parameters that can never produce a valid draw (non-positive bounds,
// max < min, non-positive exponent or iteration budget).
var ErrInvalidParams = errors.New("sampler: invalid parameters")

// ErrExhausted is returned by a sequence generator when it cannot reach
// its target sum within a reasonable number of draws.
var ErrExhausted = errors.New("sampler: exhausted draw budget")
