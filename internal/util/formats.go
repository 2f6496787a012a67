// Package util provides small helpers shared by the dentalforge
// front-ends.
package util

import (
	"fmt"
	"strings"
)

// Format is a chart output format.
type Format string

const (
	FormatPDF   Format = "pdf"
	FormatJPEG  Format = "jpg"
	FormatPNG   Format = "png"
	FormatDICOM Format = "dcm"
)

// AllFormats lists every supported output format.
func AllFormats() []Format {
	return []Format{FormatPDF, FormatJPEG, FormatPNG, FormatDICOM}
}

// Extension returns the file extension for the format, dot included.
func (f Format) Extension() string {
	return "." + string(f)
}

// ParseFormats parses a comma-separated format list such as "pdf,jpg".
// Entries are case-insensitive, deduplicated, and kept in input order.
// "jpeg" is accepted as an alias for "jpg".
func ParseFormats(s string) ([]Format, error) {
	var formats []Format
	seen := map[Format]bool{}

	for _, part := range strings.Split(s, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		if part == "" {
			continue
		}
		if part == "jpeg" {
			part = "jpg"
		}
		f := Format(part)
		switch f {
		case FormatPDF, FormatJPEG, FormatPNG, FormatDICOM:
		default:
			return nil, fmt.Errorf("invalid format: %s (valid: pdf, jpg, png, dcm)", part)
		}
		if seen[f] {
			continue
		}
		seen[f] = true
		formats = append(formats, f)
	}

	if len(formats) == 0 {
		return nil, fmt.Errorf("no output formats in %q", s)
	}
	return formats, nil
}
