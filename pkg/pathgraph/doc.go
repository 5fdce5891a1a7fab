// SPDX-License-Identifier: MIT

// Package pathgraph implements PathGraphBuilder (spec §4.1): converts one
// traceroute file into a partial asgraph.Topology.
//
// Per-file construction has no side effects beyond the returned graph,
// its log entries and the optional Stats counters; pkg/pipeline runs one Build call per input file across a worker
// pool and hands the partials to pkg/merge.
package pathgraph
