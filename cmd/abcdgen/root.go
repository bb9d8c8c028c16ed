// Command abcdgen reads a TOML configuration file, samples a degree
// sequence and a community-size sequence, runs the Chung-Lu or
// configuration-model engine per spec.md, and writes the four output
// files the configuration names.
//
// Grounded on the teacher pack's cmd/root.go: a package-level rootCmd
// whose RunE loads the config, and an Execute entry point that converts
// a returned error into a non-zero exit code.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "abcdgen",
	Short: "Generate ABCD benchmark graphs for community-detection algorithms",
	Long: `abcdgen builds a random graph with planted ground-truth communities,
following the Artificial Benchmark for Community Detection model: a
power-law degree sequence, a power-law community-size sequence, and a
mixing parameter controlling what fraction of each vertex's edges cross
its own community.`,
	RunE: runGenerate,
}

func init() {
	rootCmd.Flags().StringVarP(&cfgFile, "config", "c", "", "path to the TOML configuration file (required)")
	rootCmd.Flags().Int64("seed", 0, "override the configuration's seed (0 keeps the file value)")
	rootCmd.Flags().Bool("verbose", false, "log debug-level progress to stderr")
	rootCmd.Flags().String("metrics-addr", "", "serve Prometheus metrics on this address while the run lasts (e.g. :9090)")
	_ = rootCmd.MarkFlagRequired("config")
}

// Execute runs the root command, exiting the process with a non-zero
// status on any error per spec.md's "non-zero on configuration error"
// exit-code rule.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func main() {
	Execute()
}
