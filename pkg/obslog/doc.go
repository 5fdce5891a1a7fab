// SPDX-License-Identifier: MIT

// Package obslog builds the structured logger every component in
// astopo logs through: a *zap.SugaredLogger with a production JSON
// encoder and a configurable level, matching spec.md §7's severity
// taxonomy (Fatalw for bad-config, Warnw/Errorw for recoverable
// per-file/per-edge failures, Infow for deep inference recursion).
package obslog
