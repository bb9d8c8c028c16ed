// Package chunglu implements the Chung–Lu engine (spec.md §4.2): per-
// cluster and background weighted-pair sampling until each target edge
// count is met.
package chunglu

import "errors"

// ErrMuTooLarge is returned when the derived ξ (local max, or global)
// would be >= 1 for the given μ and cluster/degree split.
var ErrMuTooLarge = errors.New("chunglu: mu too large")

// maxFillAttempts bounds the per-cluster and background fill loops so a
// degenerate input (e.g. a single-vertex cluster, which can never yield
// a non-self-loop pair) cannot spin forever. Spec.md's CL engine assumes
// convergence; this is the same defensive posture as its CM counterpart,
// which explicitly tolerates a residue of unplaced edges.
const maxFillAttempts = 1 << 16
