// SPDX-License-Identifier: MIT
//
// File: cases.go
// Role: the six-case link inference branch (spec §4.6). decideLink
// applies the first matching case; trunk recursion goes through
// recurseTrunk below, which owns the caller-threaded loop check, into
// Engine.inferLink in engine.go, which owns memoization.

package infer

import (
	"github.com/aslocate/astopo/pkg/asgraph"
	"github.com/aslocate/astopo/pkg/branch"
)

// trunkRecursion describes a single-extension-branch side that the
// case analysis wants to recurse into: the trunk link (n, x) reached
// by following the lone extension branch at n.
type trunkRecursion struct {
	n, x asgraph.Hop
}

func (e *Engine) decideLink(topo *asgraph.Topology, link *asgraph.Link, t int64, caller *asgraph.Link, depth int) asgraph.Level {
	rawA, rawB := branch.Find(topo, link.A, link.B)
	a := endpointStatsAt(topo, link.A, rawA, t, e.opts.LinkThreshold)
	b := endpointStatsAt(topo, link.B, rawB, t, e.opts.LinkThreshold)

	switch {
	case a.prop > 1 && b.prop > 1:
		// Case 1.
		sigA := hasMultipleSignatures(topo, link.A, a.ext, link, t, e.opts.LinkThreshold)
		sigB := hasMultipleSignatures(topo, link.B, b.ext, link, t, e.opts.LinkThreshold)
		if sigA && sigB {
			return asgraph.SURE
		}
		return asgraph.LIKELY

	case len(a.ext) == 1 && b.prop > 1:
		// Case 2, a is the single-extension side.
		return e.decideSingleExtensionVsLoadBalanced(topo, link, link.A, a, link.B, b, t, caller, depth)

	case len(b.ext) == 1 && a.prop > 1:
		// Case 2, symmetric: b is the single-extension side.
		return e.decideSingleExtensionVsLoadBalanced(topo, link, link.B, b, link.A, a, t, caller, depth)

	case len(a.ext) == 1 && len(b.ext) == 1:
		return e.decideBothSingleExtension(topo, link, a, b, t, caller, depth)

	case len(a.ext) == 0 && len(b.ext) == 0:
		// Case 4: standalone link.
		return asgraph.SURE

	case len(a.ext) == 0:
		// Case 5, b is the non-empty side.
		return e.decideOneSideStandalone(topo, link, link.B, b, t, caller, depth)

	case len(b.ext) == 0:
		// Case 5, symmetric.
		return e.decideOneSideStandalone(topo, link, link.A, a, t, caller, depth)

	default:
		return asgraph.NEG
	}
}

// decideSingleExtensionVsLoadBalanced handles case 2: single is the
// endpoint with exactly one extension branch, other is the endpoint
// whose prop_count exceeds one.
func (e *Engine) decideSingleExtensionVsLoadBalanced(topo *asgraph.Topology, link *asgraph.Link, single asgraph.Hop, singleStats endpointStats, other asgraph.Hop, otherStats endpointStats, t int64, caller *asgraph.Link, depth int) asgraph.Level {
	if singleStats.abs == 0 {
		if hasMultipleSignatures(topo, other, otherStats.ext, link, t, e.opts.LinkThreshold) {
			return asgraph.SURE
		}
		return asgraph.LIKELY
	}
	result := e.recurseTrunk(topo, single, singleStats.ext[0].Neighbor, t, link, caller, depth)
	if result == asgraph.SURE {
		return asgraph.NEG
	}
	return asgraph.LIKELY
}

// decideBothSingleExtension handles case 3: both endpoints have
// exactly one extension branch.
func (e *Engine) decideBothSingleExtension(topo *asgraph.Topology, link *asgraph.Link, a, b endpointStats, t int64, caller *asgraph.Link, depth int) asgraph.Level {
	if a.abs == 0 && b.abs == 0 {
		return asgraph.SURE
	}

	trunkA, errA := topo.Link(link.A, a.ext[0].Neighbor)
	trunkB, errB := topo.Link(link.B, b.ext[0].Neighbor)

	if caller != nil && errA == nil && caller == trunkA {
		return e.absorbSingle(e.recurseTrunk(topo, link.B, b.ext[0].Neighbor, t, link, caller, depth))
	}
	if caller != nil && errB == nil && caller == trunkB {
		return e.absorbSingle(e.recurseTrunk(topo, link.A, a.ext[0].Neighbor, t, link, caller, depth))
	}

	resA := e.recurseTrunk(topo, link.A, a.ext[0].Neighbor, t, link, caller, depth)
	resB := e.recurseTrunk(topo, link.B, b.ext[0].Neighbor, t, link, caller, depth)
	if resA == asgraph.SURE || resB == asgraph.SURE {
		return asgraph.NEG
	}
	if resA == asgraph.LIKELY || resB == asgraph.LIKELY {
		return asgraph.LIKELY
	}
	return asgraph.SURE
}

func (e *Engine) absorbSingle(result asgraph.Level) asgraph.Level {
	if result == asgraph.SURE {
		return asgraph.NEG
	}
	return asgraph.LIKELY
}

// decideOneSideStandalone handles case 5: side has zero extension
// branches, so the whole decision rests on the other side.
func (e *Engine) decideOneSideStandalone(topo *asgraph.Topology, link *asgraph.Link, other asgraph.Hop, otherStats endpointStats, t int64, caller *asgraph.Link, depth int) asgraph.Level {
	switch {
	case otherStats.prop > 1:
		if hasMultipleSignatures(topo, other, otherStats.ext, link, t, e.opts.LinkThreshold) {
			return asgraph.SURE
		}
		return asgraph.LIKELY

	case len(otherStats.ext) == 1:
		if otherStats.abs == 0 {
			return asgraph.SURE
		}
		return e.absorbSingle(e.recurseTrunk(topo, other, otherStats.ext[0].Neighbor, t, link, caller, depth))

	default:
		return asgraph.NEG
	}
}

// recurseTrunk follows the single extension branch (n, x) into its
// trunk link and recurses, with currentLink (the link being decided)
// becoming the caller for that recursive call. If the trunk is itself
// the link that called currentLink, this is a 2-cycle and the result
// is LIKELY directly, per spec §4.6, without descending further.
func (e *Engine) recurseTrunk(topo *asgraph.Topology, n, x asgraph.Hop, t int64, currentLink, loopCheck *asgraph.Link, depth int) asgraph.Level {
	trunk, err := topo.Link(n, x)
	if err != nil {
		return asgraph.NEG
	}
	if trunk == loopCheck {
		return asgraph.LIKELY
	}
	return e.inferLink(topo, trunk, t, currentLink, depth+1)
}
