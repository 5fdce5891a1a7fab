// SPDX-License-Identifier: MIT
//
// File: divergent.go
// Role: the divergent-probe-set greedy approximation (spec §4.3).
//
// For node n, a probe p's attribute set is {n} ∪ {neighbours reached by
// p through an edge incident to n}. A probe subset S is divergent at n
// iff, for every p in S, att[p] ∩ union(att[q] : q in S, q != p) == {n}
// — the members of S share only n. That exact search is a
// maximum-clique-like problem (NP-complete); this file implements the
// prescribed single-pass greedy approximation instead: walk candidate
// probes once in a fixed order, grow every still-compatible running
// subset, and also seed a fresh subset per probe. The largest resulting
// subset is kept.

package probeindex

import (
	"sort"

	"github.com/aslocate/astopo/pkg/asgraph"
)

type candidateSet struct {
	probes []asgraph.Probe
	attr   asgraph.HopSet // union of att[p] for p in probes
}

// assignDivergentSet computes and stores node.Probe / node.EffectiveNeighbour
// for n, or leaves both empty when no divergent set of size >= 1 exists
// (spec §4.3: "otherwise the node receives no probe set").
func assignDivergentSet(topo *asgraph.Topology, n *asgraph.Node) {
	att := attributeSets(topo, n)
	if len(att) == 0 {
		return
	}

	probes := make([]asgraph.Probe, 0, len(att))
	for p := range att {
		probes = append(probes, p)
	}
	sort.Slice(probes, func(i, j int) bool { return probes[i] < probes[j] })

	var subsets []candidateSet
	for _, p := range probes {
		pAttr := att[p]
		for i := range subsets {
			if compatible(pAttr, subsets[i].attr, n.Hop) {
				subsets[i].probes = append(subsets[i].probes, p)
				subsets[i].attr = unionHops(subsets[i].attr, pAttr)
			}
		}
		subsets = append(subsets, candidateSet{
			probes: []asgraph.Probe{p},
			attr:   cloneHops(pAttr),
		})
	}

	best := largest(subsets)
	if best == nil || len(best.probes) == 0 {
		return
	}

	n.Probe = asgraph.NewProbeSet(best.probes...)
	n.EffectiveNeighbour = make(asgraph.HopSet, len(best.attr))
	for h := range best.attr {
		if h != n.Hop {
			n.EffectiveNeighbour.Add(h)
		}
	}
}

// attributeSets returns, for every probe crossing an edge incident to
// n, its attribute set {n} ∪ {x : edge(n,x).probe contains p}.
func attributeSets(topo *asgraph.Topology, n *asgraph.Node) map[asgraph.Probe]asgraph.HopSet {
	att := make(map[asgraph.Probe]asgraph.HopSet)
	for _, l := range topo.IncidentLinks(n.Hop) {
		other := l.Other(n.Hop)
		for p := range l.Probe {
			s, ok := att[p]
			if !ok {
				s = asgraph.HopSet{n.Hop: struct{}{}}
				att[p] = s
			}
			s.Add(other)
		}
	}
	return att
}

// compatible reports whether adding a probe with attribute set pAttr to
// a running subset whose union is groupAttr preserves the "share only
// n" property.
func compatible(pAttr, groupAttr asgraph.HopSet, n asgraph.Hop) bool {
	for h := range pAttr {
		if h == n {
			continue
		}
		if _, shared := groupAttr[h]; shared {
			return false
		}
	}
	return true
}

func unionHops(a, b asgraph.HopSet) asgraph.HopSet {
	out := make(asgraph.HopSet, len(a)+len(b))
	for h := range a {
		out[h] = struct{}{}
	}
	for h := range b {
		out[h] = struct{}{}
	}
	return out
}

func cloneHops(a asgraph.HopSet) asgraph.HopSet {
	out := make(asgraph.HopSet, len(a))
	for h := range a {
		out[h] = struct{}{}
	}
	return out
}

// largest returns the subset with the most probes; ties keep the
// earliest (deterministic, since subsets are built in sorted-probe
// order).
func largest(subsets []candidateSet) *candidateSet {
	var best *candidateSet
	for i := range subsets {
		if best == nil || len(subsets[i].probes) > len(best.probes) {
			best = &subsets[i]
		}
	}
	return best
}
