// SPDX-License-Identifier: MIT
//
// File: index.go
// Role: probe->links / probe->nodes indexes (spec §4.3, consumed by
// pkg/scoreagg for per-bin fold targets).

package probeindex

import "github.com/aslocate/astopo/pkg/asgraph"

// Index holds the per-probe lookup tables ScoreAggregator folds into.
type Index struct {
	ProbeToLinks map[asgraph.Probe][]*asgraph.Link
	ProbeToNodes map[asgraph.Probe][]*asgraph.Node
}

// Build indexes every link's probe set, assigns each node its divergent
// probe set (see divergent.go), and indexes the resulting node probe
// sets. Mutates topo's nodes in place (node.Probe, node.EffectiveNeighbour).
func Build(topo *asgraph.Topology) *Index {
	idx := &Index{
		ProbeToLinks: make(map[asgraph.Probe][]*asgraph.Link),
		ProbeToNodes: make(map[asgraph.Probe][]*asgraph.Node),
	}

	for _, l := range topo.Links() {
		for p := range l.Probe {
			idx.ProbeToLinks[p] = append(idx.ProbeToLinks[p], l)
		}
	}

	for _, n := range topo.Nodes() {
		assignDivergentSet(topo, n)
		for p := range n.Probe {
			idx.ProbeToNodes[p] = append(idx.ProbeToNodes[p], n)
		}
	}

	return idx
}
