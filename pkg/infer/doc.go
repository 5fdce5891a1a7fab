// SPDX-License-Identifier: MIT

// Package infer implements InferenceEngine (spec §4.6): the recursive
// change-location localization algorithm. For each time bin, node
// inference runs first (a node with a divergent probe set of size > 1
// and an elevated score is SURE); link inference then walks a branching
// case analysis — using pkg/branch's surrounding-branch statistics —
// that recurses into upstream "trunk" links to decide whether an
// elevated link score is the link's own fault, a load-balancing
// artifact, or should be absorbed by a neighbour.
//
// The recursion memoizes through Link.Inference[bin] (a comma-ok map
// lookup distinguishes "not yet computed" from "computed NEG"), and
// threads the calling link through every recursive call so 2-cycles
// between adjacent links can be detected. Deeper cycles are not
// detected; Run logs at info level once recursion depth exceeds two.
package infer
