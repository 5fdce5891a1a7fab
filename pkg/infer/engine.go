// SPDX-License-Identifier: MIT
//
// File: engine.go
// Role: InferenceEngine entry point — the two sub-passes per bin and
// the memoized recursive link helper (spec §4.6).

package infer

import (
	"go.uber.org/zap"

	"github.com/aslocate/astopo/pkg/asgraph"
)

// Engine runs node and link inference over a scored Topology.
type Engine struct {
	topo   *asgraph.Topology
	opts   Options
	logger *zap.SugaredLogger
}

// New returns an Engine bound to topo/opts. logger may be nil.
func New(topo *asgraph.Topology, opts Options, logger *zap.SugaredLogger) *Engine {
	return &Engine{topo: topo, opts: opts, logger: logger}
}

// Run walks every bin in [begin, stop] (inclusive of one trailing bin,
// per spec §4.6) and labels nodes then links.
func (e *Engine) Run() {
	first := (e.opts.Begin / e.opts.BinSize) * e.opts.BinSize
	last := (e.opts.Stop/e.opts.BinSize + 1) * e.opts.BinSize

	for t := first; t <= last; t += e.opts.BinSize {
		e.inferNodes(t)
		e.inferLinks(t)
	}
}

// inferNodes is the first sub-pass: a node with a divergent probe set
// of size > 1 and an elevated score is SURE. Nodes that don't qualify
// are left unlabeled at t (spec §4.6, §4.7: NEG entries are omitted).
func (e *Engine) inferNodes(t int64) {
	for _, n := range e.topo.Nodes() {
		if len(n.Probe) > 1 && n.Score[t] > e.opts.NodeThreshold {
			n.Inference[t] = asgraph.SURE
		}
	}
}

// inferLinks is the second sub-pass: every link whose score exceeds
// the threshold and isn't already labeled at t runs through the
// recursive case analysis.
func (e *Engine) inferLinks(t int64) {
	for _, l := range e.topo.Links() {
		if l.Score[t] <= e.opts.LinkThreshold {
			continue
		}
		if _, done := l.Inference[t]; done {
			continue
		}
		e.inferLink(e.topo, l, t, nil, 0)
	}
}

// inferLink is the memoized recursive helper. caller is the link that
// recursed into this one (nil at the top-level call from inferLinks),
// used by cases.go to detect 2-cycles.
func (e *Engine) inferLink(topo *asgraph.Topology, link *asgraph.Link, t int64, caller *asgraph.Link, depth int) asgraph.Level {
	if lvl, ok := link.Inference[t]; ok {
		return lvl
	}

	if depth > 2 && e.logger != nil {
		// Not an error: only the immediate caller is checked for a loop,
		// so cycles longer than two links pass through here undetected.
		e.logger.Infow("infer: link inference recursion exceeds depth 2",
			"a", link.A.String(), "b", link.B.String(), "bin", t, "depth", depth)
	}

	if nodeIsSure(topo, link.A, t) || nodeIsSure(topo, link.B, t) {
		link.Inference[t] = asgraph.NEG
		return asgraph.NEG
	}

	lvl := e.decideLink(topo, link, t, caller, depth)
	link.Inference[t] = lvl
	return lvl
}

func nodeIsSure(topo *asgraph.Topology, h asgraph.Hop, t int64) bool {
	n, err := topo.Node(h)
	if err != nil {
		return false
	}
	lvl, ok := n.Inference[t]
	return ok && lvl == asgraph.SURE
}
