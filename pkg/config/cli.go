// SPDX-License-Identifier: MIT
//
// File: cli.go
// Role: cobra.Command construction for both binaries, with pflag
// shorthand flags matching spec.md §6 exactly.

package config

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewTopologyCommand builds the `cmd/astopo` root command. run is
// invoked with the parsed Config once flags validate.
func NewTopologyCommand(run func(Config) error) *cobra.Command {
	cfg := Config{BinSize: DefaultBin, Out: DefaultOutfile}
	var begin, stop string

	cmd := &cobra.Command{
		Use:   "astopo",
		Short: "Build an AS-level topology graph from traceroute measurements",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := applyTimeWindow(&cfg, begin, stop); err != nil {
				return err
			}
			return run(cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&cfg.Dir, "dir", "d", "", "input directory (required)")
	flags.StringVarP(&cfg.Suffix, "suffix", "s", "", "input file suffix filter (required)")
	flags.StringVarP(&cfg.Dest, "dest", "e", "", "destination hop filter")
	flags.StringVarP(&begin, "begin", "b", "", "time window begin, YYYY-MM-DD HH:MM:SS ±ZZZZ")
	flags.StringVarP(&stop, "stop", "t", "", "time window stop, YYYY-MM-DD HH:MM:SS ±ZZZZ")
	flags.StringVarP(&cfg.Out, "out", "o", DefaultOutfile, "output path")
	flags.StringVarP(&cfg.LogLevel, "verbosity", "v", "info", "log level")

	mustMarkRequired(cmd, "dir", "suffix")
	return cmd
}

// NewCongestionCommand builds the `cmd/ascongest` root command: all
// six flags are required per spec.md §6.
func NewCongestionCommand(run func(Config) error) *cobra.Command {
	cfg := Config{
		BinSize:       DefaultBin,
		LinkThreshold: DefaultLinkThreshold,
		NodeThreshold: DefaultNodeThreshold,
		Method:        DefaultMethod,
	}
	var begin, stop string

	cmd := &cobra.Command{
		Use:   "ascongest",
		Short: "Score and localize RTT-change congestion on an existing topology graph",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := applyTimeWindow(&cfg, begin, stop); err != nil {
				return err
			}
			if !cfg.HasBegin || !cfg.HasStop {
				return fmt.Errorf("config: -b and -t are required for the congestion stage")
			}
			return run(cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&cfg.GraphPath, "graph", "g", "", "input topology file (required)")
	flags.StringVarP(&cfg.Dir, "dir", "d", "", "change-detection input directory (required)")
	flags.StringVarP(&cfg.Suffix, "suffix", "s", "", "input file suffix filter (required)")
	flags.StringVarP(&begin, "begin", "b", "", "time window begin, YYYY-MM-DD HH:MM:SS ±ZZZZ (required)")
	flags.StringVarP(&stop, "stop", "t", "", "time window stop, YYYY-MM-DD HH:MM:SS ±ZZZZ (required)")
	flags.StringVarP(&cfg.Out, "out", "o", DefaultOutfile, "output path (required)")
	flags.StringVarP(&cfg.LogLevel, "verbosity", "v", "info", "log level")

	mustMarkRequired(cmd, "graph", "dir", "suffix", "begin", "stop", "out")
	return cmd
}

func applyTimeWindow(cfg *Config, begin, stop string) error {
	if begin != "" {
		epoch, err := ParseTimeWindow(begin)
		if err != nil {
			return err
		}
		cfg.Begin, cfg.HasBegin = epoch, true
	}
	if stop != "" {
		epoch, err := ParseTimeWindow(stop)
		if err != nil {
			return err
		}
		cfg.Stop, cfg.HasStop = epoch, true
	}
	return nil
}

func mustMarkRequired(cmd *cobra.Command, names ...string) {
	for _, name := range names {
		if err := cmd.MarkFlagRequired(name); err != nil {
			panic(fmt.Sprintf("config: marking flag %q required: %v", name, err))
		}
	}
}
