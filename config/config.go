package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

// Config is the validated, fully-resolved input to a generation run,
// covering spec.md §6's external-interface fields: vertex/community
// counts and their power-law sampler parameters, the mixing parameter
// (mu XOR xi), the engine switches, and the four output paths.
type Config struct {
	Seed int64 `toml:"seed"`
	N    int   `toml:"n"`

	T1       float64 `toml:"t1"`
	DMin     int32   `toml:"d_min"`
	DMax     int32   `toml:"d_max"`
	DMaxIter int     `toml:"d_max_iter"`

	T2       float64 `toml:"t2"`
	CMin     int32   `toml:"c_min"`
	CMax     int32   `toml:"c_max"`
	CMaxIter int     `toml:"c_max_iter"`

	Mu *float64 `toml:"mu"`
	Xi *float64 `toml:"xi"`

	IsCL    bool `toml:"isCL"`
	IsLocal bool `toml:"islocal"`

	NetworkFile   string `toml:"network_file"`
	CommunityFile string `toml:"community_file"`
	DegreeFile    string `toml:"degree_file"`
	SizesFile     string `toml:"sizes_file"`
}

// Default returns a Config with the conservative defaults spec.md §6
// implies for fields it calls optional (islocal defaults false; the
// iteration budgets default to a generous but bounded value).
func Default() *Config {
	return &Config{
		DMaxIter: 1000,
		CMaxIter: 1000,
	}
}

// Load reads and decodes the TOML file at path, applies ABCDGEN_-
// prefixed environment overrides for the fields most commonly tuned at
// the command line (seed, isCL, islocal), and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}

	applyEnvOverrides(cfg)

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvOverrides layers ABCDGEN_SEED / ABCDGEN_ISCL / ABCDGEN_ISLOCAL
// over the file-decoded values, matching the CLI-flags > env > file >
// defaults precedence the teacher pack's cobra+viper front ends use.
func applyEnvOverrides(cfg *Config) {
	v := viper.New()
	v.SetEnvPrefix("ABCDGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("seed")
	_ = v.BindEnv("iscl")
	_ = v.BindEnv("islocal")

	if v.IsSet("seed") {
		cfg.Seed = v.GetInt64("seed")
	}
	if v.IsSet("iscl") {
		cfg.IsCL = v.GetBool("iscl")
	}
	if v.IsSet("islocal") {
		cfg.IsLocal = v.GetBool("islocal")
	}
}

// Validate checks every structural precondition spec.md §3/§6 place on
// the configuration, collecting all violations rather than stopping at
// the first.
func Validate(cfg *Config) error {
	var errs []string

	if cfg.N <= 0 {
		errs = append(errs, fmt.Sprintf("n: must be positive, got %d", cfg.N))
	}
	if cfg.DMin <= 0 || cfg.DMax < cfg.DMin {
		errs = append(errs, fmt.Sprintf("d_min/d_max: require 0 < d_min <= d_max, got [%d,%d]", cfg.DMin, cfg.DMax))
	}
	if cfg.DMaxIter <= 0 {
		errs = append(errs, "d_max_iter: must be positive")
	}
	if cfg.CMin <= 0 || cfg.CMax < cfg.CMin {
		errs = append(errs, fmt.Sprintf("c_min/c_max: require 0 < c_min <= c_max, got [%d,%d]", cfg.CMin, cfg.CMax))
	}
	if cfg.CMaxIter <= 0 {
		errs = append(errs, "c_max_iter: must be positive")
	}

	if (cfg.Mu == nil) == (cfg.Xi == nil) {
		errs = append(errs, "exactly one of mu, xi must be set")
	}
	if cfg.Mu != nil && (*cfg.Mu < 0 || *cfg.Mu > 1) {
		errs = append(errs, fmt.Sprintf("mu: must be in [0,1], got %g", *cfg.Mu))
	}
	if cfg.Xi != nil {
		if *cfg.Xi < 0 || *cfg.Xi > 1 {
			errs = append(errs, fmt.Sprintf("xi: must be in [0,1], got %g", *cfg.Xi))
		}
		if cfg.IsLocal {
			errs = append(errs, "xi is incompatible with islocal")
		}
	}

	for name, path := range map[string]string{
		"network_file":   cfg.NetworkFile,
		"community_file": cfg.CommunityFile,
		"degree_file":    cfg.DegreeFile,
		"sizes_file":     cfg.SizesFile,
	} {
		if path == "" {
			errs = append(errs, fmt.Sprintf("%s: must not be empty", name))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w:\n  - %s", ErrInvalid, strings.Join(errs, "\n  - "))
	}
	return nil
}
