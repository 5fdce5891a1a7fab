// SPDX-License-Identifier: MIT
//
// File: aggregate.go
// Role: per-bin accumulation and post-hoc normalization (spec §4.4).
//
// Bin(t) = floor(t / B) * B, integer division. Accumulation is
// file-at-a-time and may run for many files before a single
// Normalize() pass divides every accumulated sum by incident-probe
// count.

package scoreagg

import (
	"go.uber.org/zap"

	"github.com/aslocate/astopo/pkg/asgraph"
	"github.com/aslocate/astopo/pkg/probeindex"
)

// Options configures one aggregation run.
type Options struct {
	BinSize     int64 // B, seconds
	Begin, Stop int64 // epoch seconds, inclusive window
	Method      string
}

// Stats accumulates operator-facing diagnostic counters across one
// Aggregator's lifetime (SPEC_FULL.md §4's RunStats).
type Stats struct {
	FilesSkipped           int
	EmptyProbeEdgesDropped int
}

// Aggregator accumulates change-score files into a Topology already
// indexed by probeindex.Build, then normalizes once.
type Aggregator struct {
	topo   *asgraph.Topology
	idx    *probeindex.Index
	opts   Options
	logger *zap.SugaredLogger
	stats  Stats
}

// New returns an Aggregator bound to topo/idx/opts.
func New(topo *asgraph.Topology, idx *probeindex.Index, opts Options, logger *zap.SugaredLogger) *Aggregator {
	return &Aggregator{topo: topo, idx: idx, opts: opts, logger: logger}
}

func (a *Aggregator) bin(t int64) int64 {
	return (t / a.opts.BinSize) * a.opts.BinSize
}

// Stats returns the counters accumulated so far.
func (a *Aggregator) Stats() Stats {
	return a.stats
}

// AccumulateFile folds one change-score file's values into the bound
// Topology's edge and node scores. An unreadable file logs and is
// skipped; it never aborts the run (spec §7).
func (a *Aggregator) AccumulateFile(path string) {
	series, err := readChangeFile(path, a.opts.Method)
	if err != nil {
		if a.logger != nil {
			a.logger.Warnw("scoreagg: skipping unreadable change-score file", "file", path, "error", err)
		}
		a.stats.FilesSkipped++
		return
	}

	for probe, values := range series {
		links := a.idx.ProbeToLinks[probe]
		nodes := a.idx.ProbeToNodes[probe]
		for _, tv := range values {
			if tv.Epoch < a.opts.Begin || tv.Epoch > a.opts.Stop {
				continue
			}
			tb := a.bin(tv.Epoch)
			for _, l := range links {
				l.Score[tb] += tv.Value
			}
			for _, n := range nodes {
				n.Score[tb] += tv.Value
			}
		}
	}
}

// Normalize divides every accumulated per-bin sum by the incident-probe
// count: |edge.probe| for links, |node.probe| for nodes with a
// divergent set. Links with an empty probe set violate the spec §3
// invariant ("every edge has |probe| >= 1"); Normalize logs that as an
// error and skips the division-by-zero rather than crashing (spec §7).
func (a *Aggregator) Normalize() {
	for _, l := range a.topo.Links() {
		n := len(l.Probe)
		if n == 0 {
			if a.logger != nil {
				a.logger.Errorw("scoreagg: link with empty probe set during normalization", "a", l.A.String(), "b", l.B.String())
			}
			a.stats.EmptyProbeEdgesDropped++
			continue
		}
		for tb, sum := range l.Score {
			l.Score[tb] = sum / float64(n)
		}
	}

	for _, node := range a.topo.Nodes() {
		if !node.HasDivergentSet() {
			continue
		}
		n := len(node.Probe)
		for tb, sum := range node.Score {
			node.Score[tb] = sum / float64(n)
		}
	}
}
