// SPDX-License-Identifier: MIT

// Package merge implements GraphMerger (spec §4.2): unions a sequence of
// partial Topologies into one, purely by set union over tags, hosting,
// and probe sets. Merge is additive and associative — the final graph
// never depends on input order (spec §3 Lifecycle, §9).
package merge
