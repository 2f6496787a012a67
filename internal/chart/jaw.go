// Package chart turns free-text dental form fields into a validated
// per-tooth annotation structure for rendering.
package chart

import (
	"fmt"
	"strings"
)

// Tooth number bounds, Universal Numbering System. Teeth 1-16 form the
// maxillary (upper) arch, 17-32 the mandibular (lower) arch.
const (
	MinTooth          = 1
	MaxTooth          = 32
	MaxMaxillaryTooth = 16
)

// Jaw constrains which arch parsed tooth numbers must belong to.
type Jaw int

const (
	JawUnconstrained Jaw = iota
	JawMaxillary
	JawMandibular
)

// String returns the lowercase arch name used in messages and config files.
func (j Jaw) String() string {
	switch j {
	case JawMaxillary:
		return "maxillary"
	case JawMandibular:
		return "mandibular"
	default:
		return "unconstrained"
	}
}

// ParseJaw parses an arch name into a Jaw.
func ParseJaw(s string) (Jaw, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "maxillary", "upper":
		return JawMaxillary, nil
	case "mandibular", "lower":
		return JawMandibular, nil
	case "", "unconstrained":
		return JawUnconstrained, nil
	default:
		return JawUnconstrained, fmt.Errorf("invalid jaw: %s (valid: maxillary, mandibular)", s)
	}
}

// ValidTooth reports whether n is a valid Universal Numbering System tooth.
func ValidTooth(n int) bool {
	return n >= MinTooth && n <= MaxTooth
}

// ToothJaw returns the arch a tooth number belongs to. The result is
// meaningless for numbers outside [MinTooth, MaxTooth].
func ToothJaw(n int) Jaw {
	if n <= MaxMaxillaryTooth {
		return JawMaxillary
	}
	return JawMandibular
}

// Contains reports whether tooth n lies in the arch. JawUnconstrained
// accepts any valid tooth.
func (j Jaw) Contains(n int) bool {
	if !ValidTooth(n) {
		return false
	}
	if j == JawUnconstrained {
		return true
	}
	return ToothJaw(n) == j
}

// rangeHint returns the human-readable tooth range for diagnostics.
func (j Jaw) rangeHint() string {
	switch j {
	case JawMaxillary:
		return "upper jaw tooth (must be 1-16)"
	case JawMandibular:
		return "lower jaw tooth (must be 17-32)"
	default:
		return "tooth (must be 1-32)"
	}
}
