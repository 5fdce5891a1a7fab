// SPDX-License-Identifier: MIT
package pathgraph

import "github.com/aslocate/astopo/pkg/asgraph"

// DefaultMaxPathsPerProbe is the historical cap on paths retained per
// probe when a destination filter or time window is set and more than
// one path matches; with neither set, only the first path is kept
// (spec §4.1: "the historical cap was 336").
const DefaultMaxPathsPerProbe = 336

// Options configures path selection for one file (spec §4.1).
type Options struct {
	// End, if non-nil, keeps only paths whose unfiltered hop sequence
	// contains this destination hop.
	End *asgraph.Hop

	// Begin and Stop, if both non-nil, keep only paths whose timestamp
	// falls in [Begin, Stop] (inclusive, epoch seconds).
	Begin *int64
	Stop  *int64

	// MaxPathsPerProbe caps retained paths per probe when End or the
	// time window is set and still yields more than one match. Zero
	// means DefaultMaxPathsPerProbe.
	MaxPathsPerProbe int
}

func (o Options) hasWindow() bool { return o.Begin != nil && o.Stop != nil }

func (o Options) hasAnyFilter() bool { return o.End != nil || o.hasWindow() }

func (o Options) maxPerProbe() int {
	if o.MaxPathsPerProbe > 0 {
		return o.MaxPathsPerProbe
	}
	return DefaultMaxPathsPerProbe
}
