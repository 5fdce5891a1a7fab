// SPDX-License-Identifier: MIT

package infer

// Options configures one inference run. BinSize, Begin and Stop mirror
// scoreagg.Options so scoring and inference cover the same bins; the
// binaries fill every field from the -b/-t flags and the pkg/config
// defaults (spec §6): BIN=600, LINK_THRESHOLD=NODE_THRESHOLD=0.5.
type Options struct {
	BinSize       int64
	Begin, Stop   int64
	LinkThreshold float64
	NodeThreshold float64
}
