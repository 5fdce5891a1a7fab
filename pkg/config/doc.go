// SPDX-License-Identifier: MIT

// Package config defines the two cobra commands (topology stage,
// congestion stage) and the typed Config each one parses its flags
// into, per spec.md §6's CLI surface. Required-flag validation is
// delegated to cobra's MarkFlagRequired: a missing flag makes Execute
// print usage and return an error, on which both binaries exit
// non-zero — matching spec.md §7's input-not-found / bad-config class.
package config
