// Package mixing computes the per-cluster and global mixing fractions ξ
// shared by the Chung–Lu and configuration-model engines (spec.md §4.2,
// reused verbatim by §4.3.1): cluster membership grouping, per-cluster
// weight sums, and the ξ_local / ξ_global derivation from μ or ξ.
package mixing

import "errors"

// ErrMuTooLarge is returned when the derived ξ_local or ξ_global would
// be >= 1, meaning μ is infeasible for the given degree/cluster split.
var ErrMuTooLarge = errors.New("mixing: mu too large for cluster/degree split")
