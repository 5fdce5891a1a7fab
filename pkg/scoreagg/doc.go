// SPDX-License-Identifier: MIT

// Package scoreagg implements ScoreAggregator (spec §4.4): folds
// per-probe change-score files into per-bin sums on links and nodes via
// the probeindex.Index, then normalizes by incident-probe count.
package scoreagg
