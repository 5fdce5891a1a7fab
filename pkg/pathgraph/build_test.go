// SPDX-License-Identifier: MIT
package pathgraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aslocate/astopo/pkg/asgraph"
)

func hop(asn int64) asgraph.Hop { return asgraph.NumericHop(asn) }

func applyRecords(topo *asgraph.Topology, records []TraceRecord, opts Options) {
	for _, rec := range records {
		for _, p := range selectPaths(rec, opts) {
			applyPath(topo, rec.Probe, p.Hops, nil)
		}
	}
}

func TestScenario_SinglePathSingleProbe(t *testing.T) {
	// probe P traces [10, 20, 30]
	rec := TraceRecord{
		Probe: "P",
		Paths: []TimedPath{{Epoch: 0, Hops: []asgraph.Hop{hop(10), hop(20), hop(30)}}},
	}

	topo := asgraph.NewTopology()
	applyRecords(topo, []TraceRecord{rec}, Options{})

	n10, err := topo.Node(hop(10))
	require.NoError(t, err)
	assert.True(t, n10.Tags.Has(asgraph.TagSource))
	assert.True(t, n10.Hosting.Has("P"))

	n20, err := topo.Node(hop(20))
	require.NoError(t, err)
	assert.Equal(t, []asgraph.Tag{asgraph.TagTransit}, n20.Tags.Slice())

	n30, err := topo.Node(hop(30))
	require.NoError(t, err)
	assert.True(t, n30.Tags.Has(asgraph.TagDestination))

	assert.Equal(t, 2, topo.LinkCount())
	l1, err := topo.Link(hop(10), hop(20))
	require.NoError(t, err)
	assert.True(t, l1.Probe.Has("P"))
}

func TestScenario_IXPDetection(t *testing.T) {
	rec := TraceRecord{
		Probe: "P",
		Paths: []TimedPath{{Epoch: 0, Hops: []asgraph.Hop{
			hop(10), asgraph.StringHop("ix1"), hop(20), hop(30),
		}}},
	}
	topo := asgraph.NewTopology()
	applyRecords(topo, []TraceRecord{rec}, Options{})

	ix, err := topo.Node(asgraph.StringHop("ix1"))
	require.NoError(t, err)
	assert.True(t, ix.Tags.Has(asgraph.TagIXP))
}

func TestScenario_BlocklistFiltering(t *testing.T) {
	rec := TraceRecord{
		Probe: "P",
		Paths: []TimedPath{{Epoch: 0, Hops: []asgraph.Hop{
			hop(10), asgraph.StringHop("private"), hop(20),
		}}},
	}
	topo := asgraph.NewTopology()
	applyRecords(topo, []TraceRecord{rec}, Options{})

	assert.Equal(t, 2, topo.NodeCount())
	assert.Equal(t, 1, topo.LinkCount())
	assert.True(t, topo.HasLink(hop(10), hop(20)))
}

func TestSelectPaths_NoFilterKeepsFirstOnly(t *testing.T) {
	rec := TraceRecord{
		Probe: "P",
		Paths: []TimedPath{
			{Epoch: 0, Hops: []asgraph.Hop{hop(1), hop(2)}},
			{Epoch: 100, Hops: []asgraph.Hop{hop(3), hop(4)}},
		},
	}
	topo := asgraph.NewTopology()
	applyRecords(topo, []TraceRecord{rec}, Options{})

	assert.True(t, topo.HasLink(hop(1), hop(2)))
	assert.False(t, topo.HasLink(hop(3), hop(4)), "only the first path is kept when no filter is set")
}

func TestSelectPaths_EndFilterKeepsMatchingOnly(t *testing.T) {
	rec := TraceRecord{
		Probe: "P",
		Paths: []TimedPath{
			{Epoch: 0, Hops: []asgraph.Hop{hop(1), hop(30)}},
			{Epoch: 100, Hops: []asgraph.Hop{hop(1), hop(99)}},
		},
	}
	end := hop(30)
	topo := asgraph.NewTopology()
	applyRecords(topo, []TraceRecord{rec}, Options{End: &end})

	assert.True(t, topo.HasLink(hop(1), hop(30)))
	assert.False(t, topo.HasLink(hop(1), hop(99)))
}

func TestSelectPaths_WindowFilter(t *testing.T) {
	rec := TraceRecord{
		Probe: "P",
		Paths: []TimedPath{
			{Epoch: 50, Hops: []asgraph.Hop{hop(1), hop(2)}},
			{Epoch: 500, Hops: []asgraph.Hop{hop(3), hop(4)}},
		},
	}
	begin, stop := int64(0), int64(100)
	topo := asgraph.NewTopology()
	applyRecords(topo, []TraceRecord{rec}, Options{Begin: &begin, Stop: &stop})

	assert.True(t, topo.HasLink(hop(1), hop(2)))
	assert.False(t, topo.HasLink(hop(3), hop(4)))
}

func TestBuild_UnreadableFileIncrementsFilesSkipped(t *testing.T) {
	stats := &Stats{}
	topo := Build("/nonexistent/trace.json", Options{}, nil, stats)

	assert.Equal(t, 0, topo.NodeCount())
	filesSkipped, _ := stats.Snapshot()
	assert.Equal(t, 1, filesSkipped)
}

func TestApplyPath_CountsBlocklistedHops(t *testing.T) {
	stats := &Stats{}
	topo := asgraph.NewTopology()
	applyPath(topo, "P", []asgraph.Hop{hop(10), asgraph.StringHop("private"), hop(20)}, stats)

	_, hopsBlocklisted := stats.Snapshot()
	assert.Equal(t, 1, hopsBlocklisted)
}

func TestSelectPaths_CapsAtMaxPerProbeWhenFilterSet(t *testing.T) {
	paths := make([]TimedPath, 5)
	for i := range paths {
		paths[i] = TimedPath{Epoch: int64(i), Hops: []asgraph.Hop{hop(1), hop(2)}}
	}
	rec := TraceRecord{Probe: "P", Paths: paths}
	begin, stop := int64(0), int64(100)

	got := selectPaths(rec, Options{Begin: &begin, Stop: &stop, MaxPathsPerProbe: 2})
	assert.Len(t, got, 2)
}
