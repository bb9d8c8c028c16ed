// Package config reads and validates the TOML configuration file
// spec.md §6 describes: seed, vertex/community counts, the two
// power-law sampler parameter blocks, the mixing parameter, the engine
// switches, and the four output paths.
//
// Grounded on Siddhant-K-code-distill's pkg/config: a struct decoded
// from file, overlaid with environment overrides via viper, then
// checked by a Validate pass that collects every violation instead of
// failing on the first.
package config

import "errors"

// ErrInvalid wraps every Validate failure; callers branch on it with
// errors.Is, the same contract as package params.
var ErrInvalid = errors.New("config: invalid configuration")
