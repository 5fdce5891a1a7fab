// SPDX-License-Identifier: MIT
//
// File: stats.go
// Role: per-endpoint branch statistics feeding the case analysis in
// cases.go — abs_count, prop_count and the load-balanced signature set
// (spec §4.6).

package infer

import (
	"strings"

	"github.com/aslocate/astopo/pkg/asgraph"
	"github.com/aslocate/astopo/pkg/branch"
)

// endpointStats summarizes the extension branches at one endpoint of
// the link under analysis, at a single bin.
type endpointStats struct {
	ext  []branch.Branch // extension branches only (Shared > 0)
	abs  int             // abs_count
	prop int             // prop_count
}

// endpointStatsAt computes endpointStats for endpoint n given its raw
// (extension + sibling) branch list from branch.Find.
func endpointStatsAt(topo *asgraph.Topology, n asgraph.Hop, raw []branch.Branch, t int64, linkThreshold float64) endpointStats {
	var s endpointStats
	for _, b := range raw {
		if !b.IsExtension() {
			continue
		}
		s.ext = append(s.ext, b)

		edge, err := topo.Link(n, b.Neighbor)
		if err != nil {
			continue
		}
		score := edge.Score[t]
		if score > linkThreshold {
			s.abs++
		}
		propThreshold := (float64(b.Shared) / float64(b.Total)) * linkThreshold
		if score > propThreshold {
			s.prop++
		}
	}
	return s
}

// hasMultipleSignatures reports whether the over-threshold (by the
// proportional test) extension branches at n, against the analyzed
// link, disagree on which probes they share with it: "multiple
// distinct signatures" (spec §4.6) is evidence of true load balancing
// rather than a single congested branch masquerading as several.
func hasMultipleSignatures(topo *asgraph.Topology, n asgraph.Hop, ext []branch.Branch, link *asgraph.Link, t int64, linkThreshold float64) bool {
	signatures := make(map[string]struct{}, len(ext))
	for _, b := range ext {
		edge, err := topo.Link(n, b.Neighbor)
		if err != nil {
			continue
		}
		propThreshold := (float64(b.Shared) / float64(b.Total)) * linkThreshold
		if edge.Score[t] <= propThreshold {
			continue
		}
		signatures[signatureKey(edge.Probe.Intersect(link.Probe))] = struct{}{}
	}
	return len(signatures) > 1
}

// signatureKey renders a probe set as a stable string, standing in for
// the hash spec.md describes: equal sets always render equal keys, and
// Go map/set semantics need nothing more than that.
func signatureKey(ps asgraph.ProbeSet) string {
	return strings.Join(ps.Sorted(), ",")
}
