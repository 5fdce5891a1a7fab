// SPDX-License-Identifier: MIT
//
// Command astopo runs the topology stage: PathGraphBuilder fans out
// over every matching input file, GraphMerger and ProbeIndex fold the
// partials into one probe-indexed graph, and Serializer writes
// it to -o (spec.md §4.1-§4.3, §4.7, §6).
package main

import (
	"context"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/aslocate/astopo/pkg/asgraph"
	"github.com/aslocate/astopo/pkg/config"
	"github.com/aslocate/astopo/pkg/merge"
	"github.com/aslocate/astopo/pkg/obslog"
	"github.com/aslocate/astopo/pkg/pathgraph"
	"github.com/aslocate/astopo/pkg/pipeline"
	"github.com/aslocate/astopo/pkg/probeindex"
	"github.com/aslocate/astopo/pkg/serialize"
)

func main() {
	cmd := config.NewTopologyCommand(run)
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	logger, err := obslog.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	paths, err := config.ListFiles(cfg.Dir, cfg.Suffix)
	if err != nil {
		logger.Fatalw("astopo: cannot list input directory", "dir", cfg.Dir, "error", err)
	}
	if len(paths) == 0 {
		logger.Fatalw("astopo: no input files matched", "dir", cfg.Dir, "suffix", cfg.Suffix)
	}

	opts := buildOptions(cfg)
	stats := &pathgraph.Stats{}

	worker := func(_ context.Context, path string) (*asgraph.Topology, error) {
		return pathgraph.Build(path, opts, logger, stats), nil
	}

	partials, err := pipeline.RunFiles(context.Background(), paths, worker, logger)
	if err != nil {
		logger.Errorw("astopo: batch failed", "error", err)
		return err
	}

	topo := merge.Merge(partials...)
	probeindex.Build(topo)

	filesSkipped, hopsBlocklisted := stats.Snapshot()
	meta := serialize.GraphMeta{
		GraphID:     uuid.NewString(),
		GeneratedAt: nowStamp(),
		Congestion:  false,
		Begin:       cfg.Begin,
		Stop:        cfg.Stop,
		BinSize:     cfg.BinSize,
		CLIArgs: map[string]string{
			"dir": cfg.Dir, "suffix": cfg.Suffix, "dest": cfg.Dest, "out": cfg.Out,
		},
		Stats: serialize.RunStats{
			FilesSkipped:    filesSkipped,
			HopsBlocklisted: hopsBlocklisted,
		},
	}
	doc := serialize.Build(topo, meta)
	if err := serialize.WriteAtomic(cfg.Out, doc); err != nil {
		logger.Errorw("astopo: writing output failed", "out", cfg.Out, "error", err)
		return err
	}

	logger.Infow("astopo: done", "nodes", topo.NodeCount(), "links", topo.LinkCount(), "out", cfg.Out)
	return nil
}

func buildOptions(cfg config.Config) pathgraph.Options {
	opts := pathgraph.Options{}
	if cfg.Dest != "" {
		h := destHop(cfg.Dest)
		opts.End = &h
	}
	if cfg.HasBegin && cfg.HasStop {
		opts.Begin = &cfg.Begin
		opts.Stop = &cfg.Stop
	}
	return opts
}

// nowStamp is called only here, at the process boundary: the library
// packages never touch wall-clock time so that a run is determined
// entirely by its inputs.
func nowStamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// destHop parses -e as a numeric AS hop when possible, otherwise as a
// marker/IXP string hop (spec.md §3: exactly one of the two forms).
func destHop(s string) asgraph.Hop {
	if asn, err := strconv.ParseInt(s, 10, 64); err == nil {
		return asgraph.NumericHop(asn)
	}
	return asgraph.StringHop(s)
}
