// Package configmodel implements the configuration-model engine
// (spec.md §4.3): stub construction and pairing, then rewiring of
// self-loops and duplicates at three scopes — per-cluster, cluster vs.
// background, and a cross-cluster last resort.
package configmodel

import "errors"

// ErrMuTooLarge is returned when the derived ξ (local max, or global)
// would be >= 1 for the given μ and cluster/degree split.
var ErrMuTooLarge = errors.New("configmodel: mu too large")
