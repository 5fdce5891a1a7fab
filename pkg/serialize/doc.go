// SPDX-License-Identifier: MIT

// Package serialize implements Serializer (spec §4.7): it converts a
// scored, inferred Topology into the on-disk JSON document shared by
// both pipeline stages — contiguous integer node ids, set-typed
// attributes rendered as sorted arrays, and per-bin maps rendered as
// sorted [{epoch, value}] series, with NEG inference entries omitted.
// WriteAtomic writes the document to a temp file in the destination
// directory and renames it into place, so a cancelled or failed run
// never leaves a partial output file (spec §5).
package serialize
