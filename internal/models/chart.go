package models

type TraceType string

const (
	TraceTypeBar     TraceType = "bar"
	TraceTypeScatter TraceType = "scatter"
)

type TraceMode string

const (
	TraceModeNone    TraceMode = ""
	TraceModeLines   TraceMode = "lines"
	TraceModeMarkers TraceMode = "markers"
)

// Chart is a declarative chart specification consumed by the presentation layer.
type Chart struct {
	Title       string  `json:"title"`
	XAxisTitle  string  `json:"xaxis_title,omitempty"`
	YAxisTitle  string  `json:"yaxis_title,omitempty"`
	LegendTitle string  `json:"legend_title,omitempty"`
	XRange      []any   `json:"xaxis_range,omitempty"`
	Traces      []Trace `json:"traces"`
}

type Trace struct {
	Name  string    `json:"name"`
	Type  TraceType `json:"type"`
	Mode  TraceMode `json:"mode,omitempty"`
	Color string    `json:"color"`
	X     []any     `json:"x"`
	Y     []any     `json:"y"`
}
