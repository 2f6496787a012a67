// Package wizard provides an interactive TUI for filling in a dental
// chart and generating its documents.
package wizard

import "github.com/mrsinham/dentalforge/internal/chart"

// ChartState holds the complete state for the wizard interface: the
// raw free-text fields for both arches plus output options. All
// parsing and validation happens in the core when the chart is
// generated, so the state stores exactly what the user typed.
type ChartState struct {
	Maxillary  chart.FieldValues
	Mandibular chart.FieldValues
	Output     OutputConfig
	Patient    PatientConfig
}

// OutputConfig holds where and how the chart documents are written.
type OutputConfig struct {
	Base    string // output path without extension
	Formats string // comma-separated format list, e.g. "pdf,jpg"
}

// PatientConfig holds the metadata stamped onto the DICOM export.
type PatientConfig struct {
	Name      string
	ID        string
	BirthDate string
	Sex       string
}

// DefaultState returns the state a fresh wizard starts from.
func DefaultState() *ChartState {
	return &ChartState{
		Output: OutputConfig{
			Base:    "dental_chart",
			Formats: "pdf,jpg",
		},
	}
}
