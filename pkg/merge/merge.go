// SPDX-License-Identifier: MIT
//
// File: merge.go
// Role: union partial Topologies into one, by set union only — never by
// overwrite, so the result is independent of call order.
//
// Concurrency: Merge runs in the single coordinating thread (spec §5);
// each partial is read-only once handed off by its worker, so no
// synchronization beyond what asgraph.Topology already provides is
// required here.

package merge

import "github.com/aslocate/astopo/pkg/asgraph"

// Merge folds every partial topology into a freshly created one and
// returns it. Merging zero graphs returns an empty Topology.
func Merge(partials ...*asgraph.Topology) *asgraph.Topology {
	out := asgraph.NewTopology()
	for _, p := range partials {
		mergeInto(out, p)
	}
	return out
}

// mergeInto unions one partial's nodes and links into out.
func mergeInto(out *asgraph.Topology, partial *asgraph.Topology) {
	for _, n := range partial.Nodes() {
		dst := out.EnsureNode(n.Hop)
		for _, t := range []asgraph.Tag{asgraph.TagSource, asgraph.TagIXP, asgraph.TagDestination} {
			if n.Tags.Has(t) {
				dst.Tags = dst.Tags.Add(t)
			}
		}
		dst.Hosting = dst.Hosting.Union(n.Hosting)
	}

	for _, l := range partial.Links() {
		dst := out.EnsureLink(l.A, l.B)
		dst.Probe = dst.Probe.Union(l.Probe)
	}
}
