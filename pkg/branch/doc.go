// SPDX-License-Identifier: MIT

// Package branch implements BranchAnalyzer (spec §4.5): a pure graph
// query returning the surrounding branches of a link, with shared-probe
// statistics against that link. It has no mutable state and no
// dependency on scores or bins — pkg/infer calls it fresh per link.
package branch
