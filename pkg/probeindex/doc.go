// SPDX-License-Identifier: MIT

// Package probeindex implements ProbeIndex (spec §4.3): builds the
// probe→links and probe→nodes indexes used by pkg/scoreagg, and assigns
// every node its divergent probe set — the largest set of probes that
// all traverse that node but otherwise diverge, sharing only it.
//
// The divergent-set search is NP-complete in its exact form (it is a
// maximum-clique-like problem over probe-compatibility); this package
// deliberately implements only the greedy single-pass approximation
// spec §4.3 prescribes. Do not substitute an exact solver — the
// approximation is the documented, intended behavior (spec §9).
package probeindex
