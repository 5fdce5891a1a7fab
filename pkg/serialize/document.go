// SPDX-License-Identifier: MIT
//
// File: document.go
// Role: the output document shape (spec §4.7, §6) plus the
// supplemented graph-wide diagnostics from SPEC_FULL.md §4
// (GraphMeta, RunStats).

package serialize

// TimedValue is one {epoch, value} sample of a score series.
type TimedValue struct {
	Epoch int64   `json:"epoch"`
	Value float64 `json:"value"`
}

// TimedLevel is one {epoch, value} sample of an inference series.
// Level, serialized as "value", is the numeric certainty (SURE=2,
// LIKELY=1); NEG entries are omitted by the caller before this type is
// ever populated.
type TimedLevel struct {
	Epoch int64 `json:"epoch"`
	Level int   `json:"value"`
}

// RunStats carries the per-run diagnostic counters the historical
// system surfaces to operators: files skipped, hops removed by the
// blocklist, and empty-probe edges dropped during normalization.
// SPEC_FULL.md §4 supplements this; spec.md's Serializer section only
// describes the time series.
type RunStats struct {
	FilesSkipped           int `json:"files_skipped"`
	HopsBlocklisted        int `json:"hops_blocklisted"`
	EmptyProbeEdgesDropped int `json:"empty_probe_edges_dropped"`
}

// GraphMeta is the graph-wide attribute block (spec §4.7: "time
// window, bin size, method, thresholds, CLI argument echo").
// GeneratedAt and GraphID are stamped by the caller (cmd/astopo,
// cmd/ascongest) at the process boundary, since the engine itself
// never calls time.Now or generates random ids — doing so here would
// make two runs over identical inputs diverge for no semantic reason.
type GraphMeta struct {
	GraphID       string            `json:"graph_id"`
	GeneratedAt   string            `json:"generated_at"`
	Congestion    bool              `json:"congestion"`
	Begin         int64             `json:"begin"`
	Stop          int64             `json:"stop"`
	BinSize       int64             `json:"bin_size"`
	Method        string            `json:"method,omitempty"`
	LinkThreshold float64           `json:"link_threshold,omitempty"`
	NodeThreshold float64           `json:"node_threshold,omitempty"`
	CLIArgs       map[string]string `json:"cli_args,omitempty"`
	Stats         RunStats          `json:"stats"`
}

// NodeDoc is one serialized node.
type NodeDoc struct {
	ID                 int          `json:"id"`
	Name               string       `json:"name"`
	Tag                []int        `json:"tag"`
	Hosting            []string     `json:"hosting,omitempty"`
	Probe              []string     `json:"probe,omitempty"`
	EffectiveNeighbour []string     `json:"effective_neighbour,omitempty"`
	Score              []TimedValue `json:"score,omitempty"`
	Inference          []TimedLevel `json:"inference,omitempty"`
}

// LinkDoc is one serialized link.
type LinkDoc struct {
	Source    int          `json:"source"`
	Target    int          `json:"target"`
	SrcName   string       `json:"src_name"`
	TgtName   string       `json:"tgt_name"`
	Probe     []string     `json:"probe,omitempty"`
	Score     []TimedValue `json:"score,omitempty"`
	Inference []TimedLevel `json:"inference,omitempty"`
}

// Document is the full output document (spec §4.7, §6).
type Document struct {
	Directed   bool      `json:"directed"`
	Multigraph bool      `json:"multigraph"`
	Graph      GraphMeta `json:"graph"`
	Nodes      []NodeDoc `json:"nodes"`
	Links      []LinkDoc `json:"links"`
}
