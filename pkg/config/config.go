// SPDX-License-Identifier: MIT
//
// File: config.go
// Role: the parsed configuration shared by both binaries, and the
// time-window parsing helper (spec.md §6).

package config

import (
	"fmt"
	"time"
)

// timeLayout is the only ecosystem-free concern in this package: no
// time-parsing library appears anywhere in the retrieval pack, so
// YYYY-MM-DD HH:MM:SS ±ZZZZ is parsed with the standard library.
const timeLayout = "2006-01-02 15:04:05 -0700"

// Default constants, spec.md §6.
const (
	DefaultBin           = 600
	DefaultLinkThreshold = 0.5
	DefaultNodeThreshold = 0.5
	DefaultMethod        = "cpt_poisson&MBIC"
	DefaultOutfile       = "graph.json"
)

// ParseTimeWindow parses a CLI time string into epoch seconds.
func ParseTimeWindow(s string) (int64, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return 0, fmt.Errorf("config: invalid time window %q (want %q): %w", s, timeLayout, err)
	}
	return t.Unix(), nil
}

// Config is the fully parsed, validated configuration for either
// binary. Fields not applicable to a given stage are left zero.
type Config struct {
	// Topology stage.
	Dir  string // -d
	Dest string // -e, optional

	// Congestion stage.
	GraphPath string // -g

	// Shared.
	Suffix     string // -s
	HasBegin   bool
	Begin      int64 // -b
	HasStop    bool
	Stop       int64 // -t
	Out        string // -o
	LogLevel   string // -v

	BinSize       int64
	LinkThreshold float64
	NodeThreshold float64
	Method        string
}
