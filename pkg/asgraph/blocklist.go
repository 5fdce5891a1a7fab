// SPDX-License-Identifier: MIT
//
// File: blocklist.go
// Role: the fixed marker-string blocklist (spec §3) and path filtering.

package asgraph

// blockedMarkers are non-AS string hops that MUST be filtered out of
// every path before graph construction. "TEST-NET-1/2/3" in the spec
// prose denotes three distinct RFC 5737 markers; all three are listed
// explicitly rather than pattern-matched.
var blockedMarkers = map[string]struct{}{
	"":                    {},
	"Invalid IP address":  {},
	"this":                {},
	"private":             {},
	"CGN":                 {},
	"host":                {},
	"linklocal":           {},
	"TEST-NET-1":          {},
	"TEST-NET-2":          {},
	"TEST-NET-3":          {},
	"benchmark":           {},
	"6to4":                {},
	"multicast":           {},
	"future":              {},
	"broadcast":           {},
}

// IsBlocked reports whether h must be filtered out of a path. Numeric
// hops (AS numbers) are never blocked; only the fixed marker strings are.
func IsBlocked(h Hop) bool {
	if h.Numeric {
		return false
	}
	_, blocked := blockedMarkers[h.Str]
	return blocked
}

// FilterPath removes every blocked hop from path, preserving order.
func FilterPath(path []Hop) []Hop {
	out := make([]Hop, 0, len(path))
	for _, h := range path {
		if !IsBlocked(h) {
			out = append(out, h)
		}
	}
	return out
}

// CountBlocked reports how many hops in path are blocked, for the
// operator-facing hops_blocklisted counter (SPEC_FULL.md §4).
func CountBlocked(path []Hop) int {
	n := 0
	for _, h := range path {
		if IsBlocked(h) {
			n++
		}
	}
	return n
}
