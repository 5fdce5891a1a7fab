// SPDX-License-Identifier: MIT
package merge_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aslocate/astopo/pkg/asgraph"
	"github.com/aslocate/astopo/pkg/merge"
)

func partial(probe asgraph.Probe, hops ...int64) *asgraph.Topology {
	topo := asgraph.NewTopology()
	as := make([]asgraph.Hop, len(hops))
	for i, h := range hops {
		as[i] = asgraph.NumericHop(h)
	}
	if len(as) > 0 {
		src := topo.EnsureNode(as[0])
		src.Tags = src.Tags.Add(asgraph.TagSource)
		src.Hosting.Add(probe)
		dst := topo.EnsureNode(as[len(as)-1])
		dst.Tags = dst.Tags.Add(asgraph.TagDestination)
	}
	for i := 0; i+1 < len(as); i++ {
		topo.EnsureLink(as[i], as[i+1]).Probe.Add(probe)
	}
	return topo
}

func TestMerge_UnionsTagsAndProbes(t *testing.T) {
	a := partial("P", 10, 20, 30)
	b := partial("Q", 10, 20, 30)

	merged := merge.Merge(a, b)
	assert.Equal(t, 3, merged.NodeCount())
	assert.Equal(t, 2, merged.LinkCount())

	l, err := merged.Link(asgraph.NumericHop(10), asgraph.NumericHop(20))
	require.NoError(t, err)
	assert.True(t, l.Probe.Has("P"))
	assert.True(t, l.Probe.Has("Q"))
}

func TestMerge_OrderIndependent(t *testing.T) {
	parts := []*asgraph.Topology{
		partial("P", 10, 20),
		partial("Q", 20, 30),
		partial("R", 10, 30),
	}

	forward := snapshot(merge.Merge(parts[0], parts[1], parts[2]))
	reversed := snapshot(merge.Merge(parts[2], parts[1], parts[0]))
	assert.Equal(t, forward, reversed, "merge result must not depend on input order")
}

// snapshot reduces a Topology to a comparable value: node tag/hosting
// sets and link probe sets, keyed by deterministic identifiers.
func snapshot(topo *asgraph.Topology) map[string]any {
	out := map[string]any{}
	for _, n := range topo.Nodes() {
		out["node:"+n.Hop.String()] = struct {
			Tags    []asgraph.Tag
			Hosting []string
		}{n.Tags.Slice(), n.Hosting.Sorted()}
	}
	for _, l := range topo.Links() {
		out["link:"+l.A.String()+"-"+l.B.String()] = l.Probe.Sorted()
	}
	return out
}
