// SPDX-License-Identifier: MIT
//
// File: branch.go
// Role: find_branches(G, n1, n2) (spec §4.5).

package branch

import "github.com/aslocate/astopo/pkg/asgraph"

// Branch is one neighbour edge at an endpoint of the link under
// analysis: Neighbor is the far hop, Total is that edge's own probe
// count, Shared is how many of those probes also cross the analyzed
// link.
type Branch struct {
	Neighbor asgraph.Hop
	Total    int
	Shared   int
}

// IsExtension reports whether b shares at least one probe with the
// analyzed link (spec §4.5/GLOSSARY: "extension branch").
func (b Branch) IsExtension() bool { return b.Shared > 0 }

// IsSibling reports the complement of IsExtension.
func (b Branch) IsSibling() bool { return b.Shared == 0 }

// Find returns the branches surrounding the link (n1, n2): the
// neighbour edges at n1 (excluding the link itself) and at n2. If
// (n1, n2) is not a link in topo, both lists are empty (spec §4.5).
func Find(topo *asgraph.Topology, n1, n2 asgraph.Hop) (atN1, atN2 []Branch) {
	link, err := topo.Link(n1, n2)
	if err != nil {
		return nil, nil
	}
	return branchesAt(topo, n1, n2, link), branchesAt(topo, n2, n1, link)
}

// branchesAt collects the branches at endpoint n, excluding the edge
// back to other (the link itself).
func branchesAt(topo *asgraph.Topology, n, other asgraph.Hop, link *asgraph.Link) []Branch {
	incident := topo.IncidentLinks(n)
	out := make([]Branch, 0, len(incident))
	for _, inc := range incident {
		x := inc.Other(n)
		if x == other {
			continue
		}
		out = append(out, Branch{
			Neighbor: x,
			Total:    len(inc.Probe),
			Shared:   len(inc.Probe.Intersect(link.Probe)),
		})
	}
	return out
}
