// SPDX-License-Identifier: MIT
//
// Command ascongest runs the congestion stage: it loads a topology
// file produced by astopo, accumulates change-detection scores over
// it, runs InferenceEngine, and writes the same document shape back
// out with congestion:true plus per-link/per-node score and inference
// series (spec.md §4.4, §4.6, §6).
package main

import (
	"os"
	"strconv"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/aslocate/astopo/pkg/asgraph"
	"github.com/aslocate/astopo/pkg/config"
	"github.com/aslocate/astopo/pkg/infer"
	"github.com/aslocate/astopo/pkg/obslog"
	"github.com/aslocate/astopo/pkg/probeindex"
	"github.com/aslocate/astopo/pkg/scoreagg"
	"github.com/aslocate/astopo/pkg/serialize"
)

func main() {
	cmd := config.NewCongestionCommand(run)
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

	topo, err := loadTopology(cfg.GraphPath)
	if err != nil {
		logger.Fatalw("ascongest: cannot load topology file", "file", cfg.GraphPath, "error", err)
	}

	paths, err := config.ListFiles(cfg.Dir, cfg.Suffix)
	if err != nil {
		logger.Fatalw("ascongest: cannot list input directory", "dir", cfg.Dir, "error", err)
	}
	if len(paths) == 0 {
		logger.Fatalw("ascongest: no input files matched", "dir", cfg.Dir, "suffix", cfg.Suffix)
	}

	idx := probeindex.Build(topo)

	agg := scoreagg.New(topo, idx, scoreagg.Options{
		BinSize: config.DefaultBin,
		Begin:   cfg.Begin,
		Stop:    cfg.Stop,
		Method:  config.DefaultMethod,
	}, logger)
	for _, p := range paths {
		agg.AccumulateFile(p)
	}
	agg.Normalize()

	infer.New(topo, infer.Options{
		BinSize:       config.DefaultBin,
		Begin:         cfg.Begin,
		Stop:          cfg.Stop,
		LinkThreshold: config.DefaultLinkThreshold,
		NodeThreshold: config.DefaultNodeThreshold,
	}, logger).Run()

	aggStats := agg.Stats()
	meta := serialize.GraphMeta{
		GraphID:       uuid.NewString(),
		GeneratedAt:   time.Now().UTC().Format(time.RFC3339),
		Congestion:    true,
		Begin:         cfg.Begin,
		Stop:          cfg.Stop,
		BinSize:       config.DefaultBin,
		Method:        config.DefaultMethod,
		LinkThreshold: config.DefaultLinkThreshold,
		NodeThreshold: config.DefaultNodeThreshold,
		CLIArgs: map[string]string{
			"graph": cfg.GraphPath, "dir": cfg.Dir, "suffix": cfg.Suffix, "out": cfg.Out,
		},
		Stats: serialize.RunStats{
			FilesSkipped:           aggStats.FilesSkipped,
			EmptyProbeEdgesDropped: aggStats.EmptyProbeEdgesDropped,
		},
	}
	doc := serialize.Build(topo, meta)
	if err := serialize.WriteAtomic(cfg.Out, doc); err != nil {
		logger.Errorw("ascongest: writing output failed", "out", cfg.Out, "error", err)
		return err
	}

	logger.Infow("ascongest: done", "nodes", topo.NodeCount(), "links", topo.LinkCount(), "out", cfg.Out)
	return nil
}

// loadTopology reconstructs a Topology from a previously serialized
// document: links are rebuilt from src_name/tgt_name with their probe
// sets, and node tags and hosting sets are restored from the document,
// so ProbeIndex and ScoreAggregator see the same graph astopo produced.
func loadTopology(path string) (*asgraph.Topology, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var doc serialize.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	topo := asgraph.NewTopology()
	for _, n := range doc.Nodes {
		node := topo.EnsureNode(hopFromName(n.Name))
		for _, tag := range n.Tag {
			node.Tags = node.Tags.Add(asgraph.Tag(tag))
		}
		for _, p := range n.Hosting {
			node.Hosting.Add(asgraph.Probe(p))
		}
	}
	for _, l := range doc.Links {
		link := topo.EnsureLink(hopFromName(l.SrcName), hopFromName(l.TgtName))
		for _, p := range l.Probe {
			link.Probe.Add(asgraph.Probe(p))
		}
	}
	return topo, nil
}

func hopFromName(name string) asgraph.Hop {
	if asn, err := strconv.ParseInt(name, 10, 64); err == nil {
		return asgraph.NumericHop(asn)
	}
	return asgraph.StringHop(name)
}
