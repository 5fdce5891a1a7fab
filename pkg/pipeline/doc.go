// SPDX-License-Identifier: MIT

// Package pipeline runs the PathGraphBuilder worker pool (spec.md §5):
// one task per input file, workers independent with no shared mutable
// state, bounded to the available cores. It adapts the jobs-channel /
// bounded-pool idiom from the retrieval pack's traceroute tracer to
// golang.org/x/sync/errgroup, which gives first-error propagation for
// the "worker exception re-raised to the coordinator" failure mode
// (spec.md §7) while still letting an individual file's own read
// failure just log and contribute an empty partial graph.
package pipeline
