// SPDX-License-Identifier: MIT
//
// File: record.go
// Role: the traceroute file JSON schema (spec §6) and its decode into a
// per-probe slice of timestamped paths.

package pathgraph

import (
	"os"

	json "github.com/goccy/go-json"

	"github.com/aslocate/astopo/pkg/asgraph"
)

// rawProbeRecord is the on-disk shape of one probe's entry:
//
//	{ "asn_path": [[hop, ...], ...], "epoch": [ts, ...] }
type rawProbeRecord struct {
	ASNPath [][]asgraph.Hop `json:"asn_path"`
	Epoch   []int64         `json:"epoch"`
}

// TimedPath is one timestamped, unfiltered AS-path for a probe.
type TimedPath struct {
	Epoch int64
	Hops  []asgraph.Hop
}

// TraceRecord is the decoded per-probe sequence of timestamped paths,
// ordered as they appeared in the file.
type TraceRecord struct {
	Probe asgraph.Probe
	Paths []TimedPath
}

// readFile decodes a traceroute file into one TraceRecord per probe, in
// the file's original key order is not guaranteed by JSON objects, so
// callers must not depend on probe ordering across files.
func readFile(path string) ([]TraceRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw map[string]rawProbeRecord
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	out := make([]TraceRecord, 0, len(raw))
	for probeID, rec := range raw {
		n := len(rec.ASNPath)
		if len(rec.Epoch) < n {
			n = len(rec.Epoch)
		}
		paths := make([]TimedPath, n)
		for i := 0; i < n; i++ {
			paths[i] = TimedPath{Epoch: rec.Epoch[i], Hops: rec.ASNPath[i]}
		}
		out = append(out, TraceRecord{Probe: asgraph.Probe(probeID), Paths: paths})
	}
	return out, nil
}
