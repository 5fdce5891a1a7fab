// SPDX-License-Identifier: MIT
//
// File: build.go
// Role: Topology -> Document conversion (spec §4.7).

package serialize

import (
	"sort"

	"github.com/aslocate/astopo/pkg/asgraph"
)

// Build converts topo into a Document, assigning contiguous node ids
// in the stable order topo.Nodes() already provides and embedding meta
// as the graph-wide attributes.
func Build(topo *asgraph.Topology, meta GraphMeta) *Document {
	nodes := topo.Nodes()
	ids := make(map[asgraph.Hop]int, len(nodes))
	for i, n := range nodes {
		ids[n.Hop] = i
	}

	doc := &Document{
		Directed:   false,
		Multigraph: false,
		Graph:      meta,
		Nodes:      make([]NodeDoc, 0, len(nodes)),
		Links:      make([]LinkDoc, 0, topo.LinkCount()),
	}

	for _, n := range nodes {
		doc.Nodes = append(doc.Nodes, nodeDoc(ids[n.Hop], n))
	}
	for _, l := range topo.Links() {
		doc.Links = append(doc.Links, linkDoc(ids[l.A], ids[l.B], l))
	}
	return doc
}

func nodeDoc(id int, n *asgraph.Node) NodeDoc {
	d := NodeDoc{
		ID:      id,
		Name:    n.Hop.String(),
		Tag:     tagInts(n.Tags),
		Hosting: n.Hosting.Sorted(),
		Score:   timedValues(n.Score),
		Inference: timedLevels(n.Inference),
	}
	if n.HasDivergentSet() {
		d.Probe = n.Probe.Sorted()
	}
	if len(n.EffectiveNeighbour) > 0 {
		d.EffectiveNeighbour = hopStrings(n.EffectiveNeighbour)
	}
	return d
}

func linkDoc(source, target int, l *asgraph.Link) LinkDoc {
	return LinkDoc{
		Source:    source,
		Target:    target,
		SrcName:   l.A.String(),
		TgtName:   l.B.String(),
		Probe:     l.Probe.Sorted(),
		Score:     timedValues(l.Score),
		Inference: timedLevels(l.Inference),
	}
}

func tagInts(s asgraph.TagSet) []int {
	tags := s.Slice()
	out := make([]int, len(tags))
	for i, t := range tags {
		out[i] = int(t)
	}
	return out
}

func hopStrings(hs asgraph.HopSet) []string {
	out := make([]string, 0, len(hs))
	for h := range hs {
		out = append(out, h.String())
	}
	sort.Strings(out)
	return out
}

func timedValues(series asgraph.BinSeries) []TimedValue {
	if len(series) == 0 {
		return nil
	}
	out := make([]TimedValue, 0, len(series))
	for epoch, v := range series {
		out = append(out, TimedValue{Epoch: epoch, Value: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Epoch < out[j].Epoch })
	return out
}

// timedLevels converts an inference series to the sorted, NEG-omitted
// form the Serializer emits (spec §4.7).
func timedLevels(series asgraph.LevelSeries) []TimedLevel {
	if len(series) == 0 {
		return nil
	}
	out := make([]TimedLevel, 0, len(series))
	for epoch, lvl := range series {
		if lvl == asgraph.NEG {
			continue
		}
		out = append(out, TimedLevel{Epoch: epoch, Level: int(lvl)})
	}
	if len(out) == 0 {
		return nil
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Epoch < out[j].Epoch })
	return out
}
