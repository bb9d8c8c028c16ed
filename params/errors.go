// Package params defines the validated, immutable Params object that
// drives the ABCD generator, per spec.md §3 and §7.
package params

import "errors"

// Sentinel errors for Params construction. Callers MUST use errors.Is to
// branch on semantics; messages are not part of the contract.
var (
	// ErrConfigInconsistent covers every structural misconfiguration of
	// Params: Σs ≠ n; both or neither of μ, ξ supplied; ξ combined with
	// IsLocal; μ or ξ outside [0,1].
	ErrConfigInconsistent = errors.New("params: configuration inconsistent")

	// ErrEmptyDegrees indicates an empty degree sequence.
	ErrEmptyDegrees = errors.New("params: degree sequence is empty")

	// ErrEmptySizes indicates an empty community-size sequence.
	ErrEmptySizes = errors.New("params: community-size sequence is empty")
)
