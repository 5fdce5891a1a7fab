// SPDX-License-Identifier: MIT
//
// File: json.go
// Role: Hop <-> JSON conversion for the traceroute input schema, where a
// path element is either a JSON number (AS number) or a JSON string
// (IXP/marker). Uses goccy/go-json via the standard json.Marshaler /
// json.Unmarshaler interfaces, which goccy/go-json honors identically to
// encoding/json.

package asgraph

import (
	"fmt"

	json "github.com/goccy/go-json"
)

// MarshalJSON renders a numeric hop as a JSON number and a string hop as
// a JSON string, mirroring the input schema (spec §6).
func (h Hop) MarshalJSON() ([]byte, error) {
	if h.Numeric {
		return json.Marshal(h.ASN)
	}
	return json.Marshal(h.Str)
}

// UnmarshalJSON accepts either a JSON number or a JSON string per element
// of an "asn_path" entry.
func (h *Hop) UnmarshalJSON(data []byte) error {
	var asNumber int64
	if err := json.Unmarshal(data, &asNumber); err == nil {
		*h = NumericHop(asNumber)
		return nil
	}

	var asString string
	if err := json.Unmarshal(data, &asString); err == nil {
		*h = StringHop(asString)
		return nil
	}

	return fmt.Errorf("asgraph: hop is neither a number nor a string: %s", data)
}
