// SPDX-License-Identifier: MIT
//
// File: stats.go
// Role: operator-facing diagnostic counters accumulated across a
// pipeline.RunFiles batch (SPEC_FULL.md §4's RunStats). Build runs
// concurrently across the worker pool, so the counters are atomic.

package pathgraph

import "sync/atomic"

// Stats accumulates counters across every Build call in a batch. The
// zero value is ready to use; a nil *Stats is also accepted by Build,
// which simply skips accounting.
type Stats struct {
	FilesSkipped    atomic.Int64
	HopsBlocklisted atomic.Int64
}

// Snapshot reads the accumulated counters. Safe to call concurrently
// with in-flight Build calls, though callers typically wait for the
// batch to finish first.
func (s *Stats) Snapshot() (filesSkipped, hopsBlocklisted int) {
	if s == nil {
		return 0, 0
	}
	return int(s.FilesSkipped.Load()), int(s.HopsBlocklisted.Load())
}
