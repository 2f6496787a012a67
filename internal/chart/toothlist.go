package chart

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseToothList parses a free-text comma-separated tooth list into
// tooth numbers, validated against the given arch.
//
// Results keep input order and are not deduplicated; converting to a
// set is Assemble's job. Out-of-range and wrong-arch entries are
// dropped individually with a warning each. A segment that is not an
// integer at all discards the whole field (one warning naming the
// text) because the caller cannot tell which teeth were meant.
//
// A digit run with no commas, such as "147", is first re-segmented by
// recoverDigits; on success an info diagnostic records the
// reinterpretation and parsing continues on the rebuilt list.
func ParseToothList(text string, jaw Jaw) ([]int, []Diagnostic) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, nil
	}

	var diags []Diagnostic

	if teeth, ok := recoverDigits(trimmed); ok {
		parts := make([]string, len(teeth))
		for i, t := range teeth {
			parts[i] = strconv.Itoa(t)
		}
		rebuilt := strings.Join(parts, ",")
		diags = append(diags, infoDiag(DiagRecovered,
			fmt.Sprintf("no commas found, interpreted %q as %s", trimmed, rebuilt), trimmed))
		trimmed = rebuilt
	}

	var result []int
	for _, seg := range strings.Split(trimmed, ",") {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}

		tooth, err := strconv.Atoi(seg)
		if err != nil {
			// Unparseable segment invalidates the whole field.
			return nil, append(diags, warnDiag(DiagFormat,
				fmt.Sprintf("invalid input %q, use comma-separated numbers", text), seg))
		}

		if !ValidTooth(tooth) {
			diags = append(diags, warnDiag(DiagRange,
				fmt.Sprintf("tooth %d is not valid (must be 1-32)", tooth), seg))
			continue
		}
		if !jaw.Contains(tooth) {
			diags = append(diags, warnDiag(DiagJawMismatch,
				fmt.Sprintf("tooth %d is not an %s", tooth, jaw.rangeHint()), seg))
			continue
		}

		result = append(result, tooth)
	}

	return result, diags
}

// recoverDigits attempts to re-segment a comma-less digit run into
// tooth numbers, consuming digits left to right and emitting a tooth
// as soon as the accumulator forms a number in 1-32. "147" therefore
// becomes [1 4 7], never [14 7]: the shortest valid prefix always
// wins. The attempt is abandoned when the accumulator grows past two
// digits (e.g. "100") or when digits are left over, and the caller
// proceeds with the original text.
func recoverDigits(trimmed string) ([]int, bool) {
	if len(trimmed) <= 2 || strings.Contains(trimmed, ",") {
		return nil, false
	}
	for _, r := range trimmed {
		if r < '0' || r > '9' {
			return nil, false
		}
	}

	var teeth []int
	acc := 0
	digits := 0
	for _, r := range trimmed {
		acc = acc*10 + int(r-'0')
		digits++
		if acc >= MinTooth && acc <= MaxTooth {
			teeth = append(teeth, acc)
			acc, digits = 0, 0
		} else if digits > 2 {
			return nil, false
		}
	}
	if digits != 0 || len(teeth) == 0 {
		return nil, false
	}
	return teeth, true
}
