// SPDX-License-Identifier: MIT
package infer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aslocate/astopo/pkg/asgraph"
	"github.com/aslocate/astopo/pkg/infer"
)

func defaultOpts() infer.Options {
	return infer.Options{BinSize: 600, Begin: 0, Stop: 0, LinkThreshold: 0.5, NodeThreshold: 0.5}
}

func TestStandaloneLinkAboveThresholdIsAlwaysSure(t *testing.T) {
	topo := asgraph.NewTopology()
	l := topo.EnsureLink(asgraph.NumericHop(1), asgraph.NumericHop(2))
	l.Probe.Add("P1")
	l.Score[0] = 0.9

	infer.New(topo, defaultOpts(), nil).Run()

	assert.Equal(t, asgraph.SURE, l.Inference[0])
}

func TestSureNodeForcesIncidentLinksNeg(t *testing.T) {
	// node 50 has a divergent set of size 2 and an elevated score, so
	// node inference runs first and labels it SURE; both its incident
	// links then fall out immediately as NEG (single-cause, spec §4.6).
	topo := asgraph.NewTopology()
	l1 := topo.EnsureLink(asgraph.NumericHop(40), asgraph.NumericHop(50))
	l1.Probe.Add("P1")
	l1.Score[0] = 0.9
	l2 := topo.EnsureLink(asgraph.NumericHop(50), asgraph.NumericHop(60))
	l2.Probe.Add("P2")
	l2.Score[0] = 0.9

	n, err := topo.Node(asgraph.NumericHop(50))
	assert.NoError(t, err)
	n.Probe = asgraph.NewProbeSet("P1", "P2")
	n.Score[0] = 0.9

	infer.New(topo, defaultOpts(), nil).Run()

	assert.Equal(t, asgraph.SURE, n.Inference[0])
	assert.Equal(t, asgraph.NEG, l1.Inference[0])
	assert.Equal(t, asgraph.NEG, l2.Inference[0])
}

func TestScenario_LoadBalancedNeighbourhoodIsSure(t *testing.T) {
	topo := asgraph.NewTopology()
	l := topo.EnsureLink(asgraph.NumericHop(100), asgraph.NumericHop(200))
	l.Probe = asgraph.NewProbeSet("P1", "P2", "P3", "P4")
	l.Score[0] = 0.9

	ax1 := topo.EnsureLink(asgraph.NumericHop(100), asgraph.NumericHop(101))
	ax1.Probe.Add("P1") // intersects l on {P1}
	ax1.Score[0] = 0.6
	ax2 := topo.EnsureLink(asgraph.NumericHop(100), asgraph.NumericHop(102))
	ax2.Probe.Add("P2") // intersects l on {P2} -- disjoint from ax1's signature
	ax2.Score[0] = 0.6

	by1 := topo.EnsureLink(asgraph.NumericHop(200), asgraph.NumericHop(201))
	by1.Probe.Add("P3")
	by1.Score[0] = 0.6
	by2 := topo.EnsureLink(asgraph.NumericHop(200), asgraph.NumericHop(202))
	by2.Probe.Add("P4")
	by2.Score[0] = 0.6

	infer.New(topo, defaultOpts(), nil).Run()

	assert.Equal(t, asgraph.SURE, l.Inference[0])
}

func TestScenario_DependencyLoopLabelsBothLikely(t *testing.T) {
	topo := asgraph.NewTopology()
	l1 := topo.EnsureLink(asgraph.NumericHop(1), asgraph.NumericHop(2))
	l1.Probe = asgraph.NewProbeSet("P1", "P2")
	l1.Score[0] = 0.9

	l2 := topo.EnsureLink(asgraph.NumericHop(2), asgraph.NumericHop(3))
	l2.Probe = asgraph.NewProbeSet("P1", "P3") // shares P1 with l1: extension branch
	l2.Score[0] = 0.9

	infer.New(topo, defaultOpts(), nil).Run()

	assert.Equal(t, asgraph.LIKELY, l1.Inference[0])
	assert.Equal(t, asgraph.LIKELY, l2.Inference[0])
}
