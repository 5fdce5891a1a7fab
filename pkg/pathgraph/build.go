// SPDX-License-Identifier: MIT
//
// File: build.go
// Role: path selection + per-path graph construction (spec §4.1).
//
// Steps per retained path:
//  1. Strip every blocklisted hop (asgraph.FilterPath).
//  2. First remaining hop is a source; probe joins its Hosting set.
//  3. Last remaining hop is a destination.
//  4. Any intermediate non-numeric hop is an IXP.
//  5. Each consecutive pair becomes an undirected link, probe added to
//     its probe set.

package pathgraph

import (
	"go.uber.org/zap"

	"github.com/aslocate/astopo/pkg/asgraph"
)

// Build reads one traceroute file and returns a partial Topology. An
// unreadable file logs and returns an empty graph rather than an error,
// per spec §4.1/§7: a single bad file must never abort the batch. stats
// may be nil; when non-nil its counters are updated atomically so Build
// can run concurrently across a worker pool (pkg/pipeline).
func Build(path string, opts Options, logger *zap.SugaredLogger, stats *Stats) *asgraph.Topology {
	topo := asgraph.NewTopology()

	records, err := readFile(path)
	if err != nil {
		if logger != nil {
			logger.Warnw("pathgraph: skipping unreadable file", "file", path, "error", err)
		}
		if stats != nil {
			stats.FilesSkipped.Add(1)
		}
		return topo
	}

	for _, rec := range records {
		for _, p := range selectPaths(rec, opts) {
			applyPath(topo, rec.Probe, p.Hops, stats)
		}
	}
	return topo
}

// selectPaths applies the spec §4.1 selection rules for one probe's
// decoded paths.
func selectPaths(rec TraceRecord, opts Options) []TimedPath {
	paths := rec.Paths

	if opts.End != nil {
		paths = filterByEnd(paths, *opts.End)
	}
	if opts.hasWindow() {
		paths = filterByWindow(paths, *opts.Begin, *opts.Stop)
	}

	if !opts.hasAnyFilter() {
		if len(paths) > 1 {
			paths = paths[:1]
		}
		return paths
	}

	if cap := opts.maxPerProbe(); len(paths) > cap {
		paths = paths[:cap]
	}
	return paths
}

func filterByEnd(paths []TimedPath, end asgraph.Hop) []TimedPath {
	out := paths[:0:0]
	for _, p := range paths {
		for _, h := range p.Hops {
			if h == end {
				out = append(out, p)
				break
			}
		}
	}
	return out
}

func filterByWindow(paths []TimedPath, begin, stop int64) []TimedPath {
	out := paths[:0:0]
	for _, p := range paths {
		if p.Epoch >= begin && p.Epoch <= stop {
			out = append(out, p)
		}
	}
	return out
}

// applyPath folds one retained, unfiltered path into topo for probe.
func applyPath(topo *asgraph.Topology, probe asgraph.Probe, rawHops []asgraph.Hop, stats *Stats) {
	if stats != nil {
		if blocked := asgraph.CountBlocked(rawHops); blocked > 0 {
			stats.HopsBlocklisted.Add(int64(blocked))
		}
	}

	hops := asgraph.FilterPath(rawHops)
	if len(hops) == 0 {
		return
	}

	source := topo.EnsureNode(hops[0])
	source.Tags = source.Tags.Add(asgraph.TagSource)
	source.Hosting.Add(probe)

	dest := topo.EnsureNode(hops[len(hops)-1])
	dest.Tags = dest.Tags.Add(asgraph.TagDestination)

	for i := 1; i < len(hops)-1; i++ {
		if hops[i].IsIXP() {
			n := topo.EnsureNode(hops[i])
			n.Tags = n.Tags.Add(asgraph.TagIXP)
		}
	}

	for i := 0; i+1 < len(hops); i++ {
		link := topo.EnsureLink(hops[i], hops[i+1])
		link.Probe.Add(probe)
	}
}
