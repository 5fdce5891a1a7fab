// SPDX-License-Identifier: MIT
//
// File: errors.go
// Role: sentinel errors for the asgraph package.
// Policy: only sentinel variables are exposed; callers branch with errors.Is.

package asgraph

import "errors"

// ErrNodeNotFound indicates an operation referenced a hop with no node.
var ErrNodeNotFound = errors.New("asgraph: node not found")

// ErrLinkNotFound indicates an operation referenced a pair with no link.
var ErrLinkNotFound = errors.New("asgraph: link not found")

// ErrEmptyProbeSet indicates a link or node was found with zero probes
// where the invariant (spec §3: "every edge has |probe| >= 1") was
// expected to hold. Normalization skips such entries rather than
// dividing by zero; see pkg/scoreagg.
var ErrEmptyProbeSet = errors.New("asgraph: empty probe set")
