// SPDX-License-Identifier: MIT

// Package asgraph defines the AS-level topology graph: Hop-keyed nodes,
// unordered-pair-keyed links, and the thread-safe primitives used to build,
// merge, score, and query them.
//
// The graph is undirected and simple (no parallel links): each unordered
// pair of hops maps to exactly one Link, which accumulates the set of
// probes whose path crossed it. Nodes accumulate role tags, the probes
// that use them as a source, and — once ProbeIndex has run — a divergent
// probe set used for node-level scoring.
//
// Concurrency model mirrors lvlath/core: one RWMutex for the node table,
// one for the link table, so readers of one side never block writers of
// the other. All mutation happens during the build/merge/score/infer
// phases described in the package pipeline; once a Topology is frozen for
// serialization no further writes are expected.
package asgraph
