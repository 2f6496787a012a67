package chart

import (
	"errors"
	"fmt"
	"sort"
)

// ErrMissingJaw reports an Assemble call without both arch inputs.
// This is a caller bug, not a user-input problem, so it surfaces as an
// error instead of a Diagnostic.
var ErrMissingJaw = errors.New("annotation input missing a jaw")

// Condition names the clinical markings a tooth (or span) can carry.
type Condition string

const (
	CondMissing   Condition = "missing"
	CondImplant   Condition = "implant"
	CondExtracted Condition = "extracted"
	CondCrown     Condition = "crown"
	CondRCT       Condition = "rct"
	CondFilling   Condition = "filling"
	CondBridge    Condition = "bridge"
)

// ToothConditions lists the per-tooth conditions in form order. The
// bridge field is separate because it holds spans, not teeth.
var ToothConditions = []Condition{
	CondMissing, CondImplant, CondExtracted, CondCrown, CondRCT, CondFilling,
}

// FieldValues holds the raw free-text form fields for one arch, as
// supplied by any front-end.
type FieldValues struct {
	Missing   string
	Implant   string
	Extracted string
	Crown     string
	RCT       string
	Filling   string
	Bridge    string
}

// JawInput is the parsed but not yet assembled content of one arch's
// fields: ordered tooth lists (duplicates preserved) plus bridge spans.
type JawInput struct {
	Teeth   map[Condition][]int
	Bridges []BridgeSpan
}

// FieldDiagnostics ties a parsed field's diagnostics to its condition
// so front-ends can label their output.
type FieldDiagnostics struct {
	Condition Condition
	Diags     []Diagnostic
}

// ParseJawInput parses all seven fields of one arch. Parsing never
// fails: hard-failed fields come back empty and everything wrong is in
// the returned diagnostics.
func ParseJawInput(fields FieldValues, jaw Jaw) (JawInput, []FieldDiagnostics) {
	in := JawInput{Teeth: make(map[Condition][]int, len(ToothConditions))}
	var report []FieldDiagnostics

	lists := []struct {
		cond Condition
		text string
	}{
		{CondMissing, fields.Missing},
		{CondImplant, fields.Implant},
		{CondExtracted, fields.Extracted},
		{CondCrown, fields.Crown},
		{CondRCT, fields.RCT},
		{CondFilling, fields.Filling},
	}
	for _, l := range lists {
		teeth, diags := ParseToothList(l.text, jaw)
		in.Teeth[l.cond] = teeth
		if len(diags) > 0 {
			report = append(report, FieldDiagnostics{Condition: l.cond, Diags: diags})
		}
	}

	bridges, diags := ParseBridges(fields.Bridge, jaw)
	in.Bridges = bridges
	if len(diags) > 0 {
		report = append(report, FieldDiagnostics{Condition: CondBridge, Diags: diags})
	}

	return in, report
}

// ToothSet is a deduplicated set of tooth numbers.
type ToothSet map[int]struct{}

// Has reports set membership.
func (s ToothSet) Has(n int) bool {
	_, ok := s[n]
	return ok
}

// Sorted returns the teeth in ascending order, for stable output.
func (s ToothSet) Sorted() []int {
	teeth := make([]int, 0, len(s))
	for n := range s {
		teeth = append(teeth, n)
	}
	sort.Ints(teeth)
	return teeth
}

func toSet(teeth []int) ToothSet {
	s := make(ToothSet, len(teeth))
	for _, n := range teeth {
		s[n] = struct{}{}
	}
	return s
}

// JawAnnotation is the assembled marking set for one arch. A tooth may
// appear in both Missing and Implant: an implant at an edentulous site
// is an intentional combination, not a conflict.
type JawAnnotation struct {
	Missing   ToothSet
	Implant   ToothSet
	Extracted ToothSet
	Crown     ToothSet
	RCT       ToothSet
	Filling   ToothSet
	Bridges   []BridgeSpan // input order, duplicates preserved
}

// Annotation is the complete chart model a render call consumes. It is
// built fresh per request and never shared between renders.
type Annotation struct {
	Maxillary  JawAnnotation
	Mandibular JawAnnotation
}

// Arch returns the annotation for one arch.
func (a *Annotation) Arch(jaw Jaw) *JawAnnotation {
	if jaw == JawMandibular {
		return &a.Mandibular
	}
	return &a.Maxillary
}

// Assemble combines both arches' parsed inputs into the canonical
// annotation. Tooth lists are deduplicated into sets here; bridge
// spans are carried through untouched. All input validation already
// happened in the parsers, so the only failure mode is a missing arch
// key, which aborts the request.
func Assemble(inputs map[Jaw]JawInput) (*Annotation, error) {
	var ann Annotation
	for _, jaw := range []Jaw{JawMaxillary, JawMandibular} {
		in, ok := inputs[jaw]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingJaw, jaw)
		}
		*ann.Arch(jaw) = JawAnnotation{
			Missing:   toSet(in.Teeth[CondMissing]),
			Implant:   toSet(in.Teeth[CondImplant]),
			Extracted: toSet(in.Teeth[CondExtracted]),
			Crown:     toSet(in.Teeth[CondCrown]),
			RCT:       toSet(in.Teeth[CondRCT]),
			Filling:   toSet(in.Teeth[CondFilling]),
			Bridges:   in.Bridges,
		}
	}
	return &ann, nil
}
