package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/abcdgraph/abcdgen"
	"github.com/abcdgraph/abcdgen/abcdlog"
	"github.com/abcdgraph/abcdgen/config"
	"github.com/abcdgraph/abcdgen/internal/xrand"
	"github.com/abcdgraph/abcdgen/iowriters"
	"github.com/abcdgraph/abcdgen/metrics"
	"github.com/abcdgraph/abcdgen/params"
	"github.com/abcdgraph/abcdgen/sampler"
)

func runGenerate(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	if seed, _ := cmd.Flags().GetInt64("seed"); seed != 0 {
		cfg.Seed = seed
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	level := abcdlog.LevelInfo
	if verbose {
		level = abcdlog.LevelDebug
	}
	logger := abcdlog.New(os.Stderr, level)

	rec := metrics.New()
	if addr, _ := cmd.Flags().GetString("metrics-addr"); addr != "" {
		logger.Info("serving metrics on %s", addr)
		go func() {
			if err := http.ListenAndServe(addr, rec.Handler()); err != nil {
				logger.Error("metrics server: %v", err)
			}
		}()
	}

	start := time.Now()
	p, err := buildParams(cfg)
	if err != nil {
		return err
	}

	result, err := abcdgen.Generate(cfg.Seed, p)
	if err != nil {
		return err
	}

	if result.Stats != nil {
		total := 0
		for _, d := range p.W() {
			total += int(d)
		}
		logger.CollisionReport("global collisions", result.Stats.GlobalCollisions, total)
		logger.CollisionReport("unresolved local collisions", result.Stats.LocalUnresolved, total)
		logger.CollisionReport("unresolved global collisions", result.Stats.GlobalUnresolved, total)
		logger.CollisionReport("unresolved final collisions", result.Stats.FinalUnresolved, total)
		rec.RecordGeneration(time.Since(start), result.Stats.GlobalCollisions, result.Stats.LocalUnresolved, result.Stats.GlobalUnresolved, result.Stats.FinalUnresolved)
	} else {
		rec.RecordGeneration(time.Since(start), 0, 0, 0, 0)
	}

	if err := iowriters.WriteNetwork(cfg.NetworkFile, result.Edges); err != nil {
		return err
	}
	if err := iowriters.WriteCommunities(cfg.CommunityFile, result.Clusters); err != nil {
		return err
	}
	if err := iowriters.WriteDegrees(cfg.DegreeFile, p.W()); err != nil {
		return err
	}
	if err := iowriters.WriteSizes(cfg.SizesFile, p.S()); err != nil {
		return err
	}

	logger.Info("wrote %d edges over %d vertices in %d communities", len(result.Edges), p.N(), p.K())
	return nil
}

// buildParams samples a degree sequence and a community-size sequence
// from cfg's power-law parameters and folds them into a params.Params,
// mirroring spec.md §6's "sampler front-ends feed params.New" pipeline.
func buildParams(cfg *config.Config) (*params.Params, error) {
	rng := xrand.New(cfg.Seed)

	w, err := sampler.DegreeSequence(rng, cfg.N, cfg.T1, cfg.DMin, cfg.DMax, cfg.DMaxIter)
	if err != nil {
		return nil, fmt.Errorf("sampling degree sequence: %w", err)
	}

	s, err := sampler.CommunitySizes(rng, cfg.N, cfg.T2, cfg.CMin, cfg.CMax, cfg.CMaxIter)
	if err != nil {
		return nil, fmt.Errorf("sampling community sizes: %w", err)
	}

	opts := []params.Option{}
	if cfg.Mu != nil {
		opts = append(opts, params.WithMu(*cfg.Mu))
	} else {
		opts = append(opts, params.WithXi(*cfg.Xi))
	}
	if cfg.IsCL {
		opts = append(opts, params.WithCL())
	}
	if cfg.IsLocal {
		opts = append(opts, params.WithLocal())
	}

	return params.New(w, s, opts...)
}
