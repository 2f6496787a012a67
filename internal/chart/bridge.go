package chart

import (
	"fmt"
	"strconv"
	"strings"
)

// BridgeSpan is a prosthetic bridge between two tooth positions.
// Endpoint order is preserved as entered; the renderer looks both
// endpoints up in the geometry table, so no sorting is implied.
type BridgeSpan struct {
	Start int
	End   int
}

// String formats the span the way it appears in summaries, "10-12".
func (b BridgeSpan) String() string {
	return fmt.Sprintf("%d-%d", b.Start, b.End)
}

// ParseBridges parses a free-text bridge field into validated spans.
//
// Accepted segment formats, comma-separated:
//
//	"10-12"        hyphen pair
//	"10 12"        two whitespace-separated numbers
//	"10,12"        the whole field as one bare pair (exactly one comma,
//	               both sides plain digits, no hyphen anywhere)
//
// The bare-pair form is a field-level special case: it fires at most
// once and consumes the entire field. A consequence inherited from
// the reference behavior is that three or more bare comma-separated
// numbers with no hyphen produce no bridges at all. Segments that
// match none of the formats are skipped silently.
//
// Validation drops a candidate pair (with a warning) when an endpoint
// is outside 1-32, when the endpoints sit in different arches, or
// when either endpoint falls outside the asserted arch. Valid spans
// keep input order, duplicates included, and one closing info
// diagnostic lists everything accepted.
func ParseBridges(text string, jaw Jaw) ([]BridgeSpan, []Diagnostic) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, nil
	}

	var bridges []BridgeSpan
	var diags []Diagnostic

	for _, seg := range strings.Split(trimmed, ",") {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}

		var start, end int
		var found bool

		switch {
		case strings.Contains(seg, "-"):
			left, right, _ := strings.Cut(seg, "-")
			var err error
			start, err = strconv.Atoi(strings.TrimSpace(left))
			if err == nil {
				end, err = strconv.Atoi(strings.TrimSpace(right))
			}
			if err != nil {
				// Unparseable endpoint invalidates the whole field.
				return nil, append(diags, warnDiag(DiagFormat,
					fmt.Sprintf("invalid bridge input %q, use format like '10-12' or '10,12'", text), seg))
			}
			found = true

		case strings.ContainsAny(seg, " \t"):
			parts := strings.Fields(seg)
			if len(parts) == 2 {
				var err error
				start, err = strconv.Atoi(parts[0])
				if err == nil {
					end, err = strconv.Atoi(parts[1])
				}
				if err != nil {
					return nil, append(diags, warnDiag(DiagFormat,
						fmt.Sprintf("invalid bridge input %q, use format like '10-12' or '10,12'", text), seg))
				}
				found = true
			}

		default:
			// Whole-field bare pair: "10,12" with nothing else. Fires
			// at most once and consumes the remaining segments.
			if s, e, ok := barePair(trimmed); ok {
				span := BridgeSpan{Start: s, End: e}
				if d, vok := validateSpan(span, jaw); !vok {
					return bridges, append(diags, d)
				}
				bridges = append(bridges, span)
				diags = append(diags, summaryDiag(bridges))
				return bridges, diags
			}
		}

		if !found {
			continue
		}

		span := BridgeSpan{Start: start, End: end}
		if d, ok := validateSpan(span, jaw); !ok {
			diags = append(diags, d)
			continue
		}
		bridges = append(bridges, span)
	}

	if len(bridges) > 0 {
		diags = append(diags, summaryDiag(bridges))
	}
	return bridges, diags
}

// barePair recognizes the field-level "10,12" form: exactly two
// comma-separated plain digit strings.
func barePair(field string) (start, end int, ok bool) {
	parts := strings.Split(field, ",")
	if len(parts) != 2 {
		return 0, 0, false
	}
	for i, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			return 0, 0, false
		}
		for _, r := range p {
			if r < '0' || r > '9' {
				return 0, 0, false
			}
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return 0, 0, false
		}
		if i == 0 {
			start = n
		} else {
			end = n
		}
	}
	return start, end, true
}

func validateSpan(span BridgeSpan, jaw Jaw) (Diagnostic, bool) {
	if !ValidTooth(span.Start) || !ValidTooth(span.End) {
		return warnDiag(DiagRange,
			fmt.Sprintf("bridge teeth (%s) must be in range 1-32", span), span.String()), false
	}
	if ToothJaw(span.Start) != ToothJaw(span.End) {
		return warnDiag(DiagJawMismatch,
			fmt.Sprintf("bridge teeth (%s) must be in the same jaw", span), span.String()), false
	}
	if !jaw.Contains(span.Start) || !jaw.Contains(span.End) {
		return warnDiag(DiagJawMismatch,
			fmt.Sprintf("bridge teeth (%s) must be in the %s arch", span, jaw), span.String()), false
	}
	return Diagnostic{}, true
}

func summaryDiag(bridges []BridgeSpan) Diagnostic {
	parts := make([]string, len(bridges))
	for i, b := range bridges {
		parts[i] = b.String()
	}
	joined := strings.Join(parts, ", ")
	return infoDiag(DiagBridgeSummary, "bridges detected: "+joined, joined)
}
