// SPDX-License-Identifier: MIT
//
// File: record.go
// Role: change-detection file JSON schema (spec §6):
//
//	{ "<probe_id>": { "epoch": [ts, ...], "<method_name>": [score, ...] } }
//
// The method field name is a runtime parameter (spec constant METHOD =
// "cpt_poisson&MBIC", overridable), so decoding goes through a
// map[string]json.RawMessage per probe rather than a fixed struct.

package scoreagg

import (
	"fmt"
	"os"

	json "github.com/goccy/go-json"

	"github.com/aslocate/astopo/pkg/asgraph"
)

// TimedValue is one (epoch, change-score) pair for a probe.
type TimedValue struct {
	Epoch int64
	Value float64
}

func readChangeFile(path, method string) (map[asgraph.Probe][]TimedValue, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadFile, path, err)
	}

	var raw map[string]map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadFile, path, err)
	}

	out := make(map[asgraph.Probe][]TimedValue, len(raw))
	for probeID, fields := range raw {
		epochField, ok := fields["epoch"]
		if !ok {
			continue
		}
		var epochs []int64
		if err := json.Unmarshal(epochField, &epochs); err != nil {
			continue
		}

		valueField, ok := fields[method]
		if !ok {
			continue
		}
		var values []float64
		if err := json.Unmarshal(valueField, &values); err != nil {
			continue
		}

		n := len(epochs)
		if len(values) < n {
			n = len(values)
		}
		series := make([]TimedValue, n)
		for i := 0; i < n; i++ {
			series[i] = TimedValue{Epoch: epochs[i], Value: values[i]}
		}
		out[asgraph.Probe(probeID)] = series
	}
	return out, nil
}
