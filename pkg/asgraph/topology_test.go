// SPDX-License-Identifier: MIT
package asgraph_test

import (
	"testing"

	"github.com/aslocate/astopo/pkg/asgraph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopology_EnsureLinkCreatesBothEndpoints(t *testing.T) {
	topo := asgraph.NewTopology()
	a := asgraph.NumericHop(10)
	b := asgraph.NumericHop(20)

	l := topo.EnsureLink(a, b)
	require.NotNil(t, l)
	assert.Equal(t, 2, topo.NodeCount())
	assert.Equal(t, 1, topo.LinkCount())
	assert.True(t, topo.HasLink(a, b))
	assert.True(t, topo.HasLink(b, a), "link lookup must be order-independent")
}

func TestTopology_LinkCanonicalization(t *testing.T) {
	a := asgraph.NumericHop(30)
	b := asgraph.NumericHop(10)

	topo := asgraph.NewTopology()
	l1 := topo.EnsureLink(a, b)
	l2 := topo.EnsureLink(b, a)

	assert.Same(t, l1, l2, "endpoint order must not create a duplicate link")
	assert.Equal(t, asgraph.NumericHop(10), l1.A, "canonical A is the lesser hop")
	assert.Equal(t, asgraph.NumericHop(30), l1.B)
}

func TestTopology_NumericHopsSortBeforeStringHops(t *testing.T) {
	topo := asgraph.NewTopology()
	topo.EnsureNode(asgraph.StringHop("ix1"))
	topo.EnsureNode(asgraph.NumericHop(5))
	topo.EnsureNode(asgraph.NumericHop(1))

	nodes := topo.Nodes()
	require.Len(t, nodes, 3)
	assert.Equal(t, asgraph.NumericHop(1), nodes[0].Hop)
	assert.Equal(t, asgraph.NumericHop(5), nodes[1].Hop)
	assert.Equal(t, asgraph.StringHop("ix1"), nodes[2].Hop)
}

func TestTagSet_TransitIsFallbackOnly(t *testing.T) {
	var s asgraph.TagSet
	assert.Equal(t, []asgraph.Tag{asgraph.TagTransit}, s.Slice(), "no role observed => transit fallback")

	s = s.Add(asgraph.TagSource)
	assert.Equal(t, []asgraph.Tag{asgraph.TagSource}, s.Slice(), "source present => no transit fallback")

	s = s.Add(asgraph.TagIXP)
	assert.ElementsMatch(t, []asgraph.Tag{asgraph.TagSource, asgraph.TagIXP}, s.Slice())
}

func TestIsBlocked(t *testing.T) {
	assert.False(t, asgraph.IsBlocked(asgraph.NumericHop(0)), "AS0 is numeric, never blocked")
	assert.True(t, asgraph.IsBlocked(asgraph.StringHop("private")))
	assert.True(t, asgraph.IsBlocked(asgraph.StringHop("")))
	assert.False(t, asgraph.IsBlocked(asgraph.StringHop("ix1")))
}

func TestFilterPath(t *testing.T) {
	path := []asgraph.Hop{
		asgraph.NumericHop(10),
		asgraph.StringHop("private"),
		asgraph.NumericHop(20),
	}
	got := asgraph.FilterPath(path)
	assert.Equal(t, []asgraph.Hop{asgraph.NumericHop(10), asgraph.NumericHop(20)}, got)
}
