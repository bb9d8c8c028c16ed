package params

import (
	"fmt"
	"sort"
)

// Params holds the validated, immutable input to the ABCD generator:
// a degree sequence w, a community-size sequence s, exactly one of a
// mixing parameter μ or a background fraction ξ, and the engine/locality
// switches is_cl / is_local. See spec.md §3.
//
// A Params value is safe to share across goroutines once constructed:
// nothing in it is ever mutated after New returns.
type Params struct {
	w []int32 // degree sequence, sorted descending, length n
	s []int32 // community-size sequence, sorted descending, length k

	muSet bool
	mu    float64
	xiSet bool
	xi    float64

	isCL    bool
	isLocal bool
}

// Option configures a Params value during construction. Options are
// applied in the order given; later options override earlier ones for
// the same field.
type Option func(*Params)

// WithMu sets the mixing parameter μ ∈ [0,1]. Mutually exclusive with
// WithXi; New returns ErrConfigInconsistent if both or neither are set.
func WithMu(mu float64) Option {
	return func(p *Params) {
		p.muSet = true
		p.mu = mu
	}
}

// WithXi sets the background-graph fraction ξ ∈ [0,1]. Mutually
// exclusive with WithMu. When ξ is supplied, IsLocal MUST be false (see
// WithLocal).
func WithXi(xi float64) Option {
	return func(p *Params) {
		p.xiSet = true
		p.xi = xi
	}
}

// WithCL selects the Chung–Lu engine (default: configuration-model
// engine).
func WithCL() Option {
	return func(p *Params) { p.isCL = true }
}

// WithLocal enforces the mixing constraint per cluster rather than
// globally. Invalid in combination with WithXi.
func WithLocal() Option {
	return func(p *Params) { p.isLocal = true }
}

// New validates and constructs a Params from a degree sequence w and a
// community-size sequence s, applying opts in order. It sorts w and s
// descending if they are not already so (spec.md §3: "The constructor
// sorts w and s descending if not already so").
//
// Validation order mirrors spec.md §7's fatal ConfigInconsistent class:
// non-empty sequences, Σs == n, exactly one of μ/ξ, μ/ξ ∈ [0,1], and
// ξ implies !IsLocal.
func New(w, s []int32, opts ...Option) (*Params, error) {
	if len(w) == 0 {
		return nil, ErrEmptyDegrees
	}
	if len(s) == 0 {
		return nil, ErrEmptySizes
	}

	p := &Params{
		w: append([]int32(nil), w...),
		s: append([]int32(nil), s...),
	}
	for _, opt := range opts {
		opt(p)
	}

	sort.Slice(p.w, func(i, j int) bool { return p.w[i] > p.w[j] })
	sort.Slice(p.s, func(i, j int) bool { return p.s[i] > p.s[j] })

	var sumS int64
	for _, v := range p.s {
		sumS += int64(v)
	}
	if sumS != int64(len(p.w)) {
		return nil, fmt.Errorf("params: sum(s)=%d != n=%d: %w", sumS, len(p.w), ErrConfigInconsistent)
	}

	if p.muSet == p.xiSet {
		return nil, fmt.Errorf("params: exactly one of mu, xi must be set: %w", ErrConfigInconsistent)
	}
	if p.muSet && (p.mu < 0 || p.mu > 1) {
		return nil, fmt.Errorf("params: mu=%g out of [0,1]: %w", p.mu, ErrConfigInconsistent)
	}
	if p.xiSet {
		if p.xi < 0 || p.xi > 1 {
			return nil, fmt.Errorf("params: xi=%g out of [0,1]: %w", p.xi, ErrConfigInconsistent)
		}
		if p.isLocal {
			return nil, fmt.Errorf("params: xi incompatible with IsLocal: %w", ErrConfigInconsistent)
		}
	}

	return p, nil
}

// N returns the number of vertices (len(W())).
func (p *Params) N() int { return len(p.w) }

// K returns the number of communities (len(S())).
func (p *Params) K() int { return len(p.s) }

// W returns the degree sequence, sorted descending. Callers must treat
// the returned slice as read-only.
func (p *Params) W() []int32 { return p.w }

// S returns the community-size sequence, sorted descending. Callers
// must treat the returned slice as read-only.
func (p *Params) S() []int32 { return p.s }

// Mu returns (μ, true) if a mixing parameter was supplied, else (0, false).
func (p *Params) Mu() (float64, bool) { return p.mu, p.muSet }

// Xi returns (ξ, true) if a background fraction was supplied, else (0, false).
func (p *Params) Xi() (float64, bool) { return p.xi, p.xiSet }

// IsCL reports whether the Chung–Lu engine should be used (false selects
// the configuration-model engine).
func (p *Params) IsCL() bool { return p.isCL }

// IsLocal reports whether the mixing constraint is enforced per cluster.
func (p *Params) IsLocal() bool { return p.isLocal }
