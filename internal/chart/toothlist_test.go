package chart

import (
	"reflect"
	"testing"
)

func TestParseToothList_Valid(t *testing.T) {
	tests := []struct {
		input string
		jaw   Jaw
		want  []int
	}{
		{"1,4,7", JawMaxillary, []int{1, 4, 7}},
		{"17,20", JawMandibular, []int{17, 20}},
		{" 2 , 3 ", JawMaxillary, []int{2, 3}},
		{"5,,6,", JawMaxillary, []int{5, 6}}, // doubled and trailing commas tolerated
		{"8", JawUnconstrained, []int{8}},
		{"16,1", JawMaxillary, []int{16, 1}}, // input order, no sorting
		{"4,4,4", JawMaxillary, []int{4, 4, 4}}, // no dedup at parse time
	}

	for _, tc := range tests {
		got, diags := ParseToothList(tc.input, tc.jaw)
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("ParseToothList(%q, %v) = %v, want %v", tc.input, tc.jaw, got, tc.want)
		}
		if len(diags) != 0 {
			t.Errorf("ParseToothList(%q, %v) produced diagnostics %v, want none", tc.input, tc.jaw, diags)
		}
	}
}

func TestParseToothList_Empty(t *testing.T) {
	for _, input := range []string{"", "   ", "\t"} {
		got, diags := ParseToothList(input, JawMaxillary)
		if len(got) != 0 || len(diags) != 0 {
			t.Errorf("ParseToothList(%q) = %v, %v, want empty and silent", input, got, diags)
		}
	}
}

func TestParseToothList_OutOfRange(t *testing.T) {
	got, diags := ParseToothList("33", JawUnconstrained)
	if len(got) != 0 {
		t.Errorf("ParseToothList(33) = %v, want empty", got)
	}
	if len(diags) != 1 || diags[0].Kind != DiagRange || diags[0].Severity != SeverityWarning {
		t.Errorf("ParseToothList(33) diagnostics = %v, want one range warning", diags)
	}
}

func TestParseToothList_JawMismatch(t *testing.T) {
	got, diags := ParseToothList("17", JawMaxillary)
	if len(got) != 0 {
		t.Errorf("ParseToothList(17, maxillary) = %v, want empty", got)
	}
	if len(diags) != 1 || diags[0].Kind != DiagJawMismatch {
		t.Fatalf("ParseToothList(17, maxillary) diagnostics = %v, want one jaw mismatch", diags)
	}

	got, diags = ParseToothList("5", JawMandibular)
	if len(got) != 0 || len(diags) != 1 || diags[0].Kind != DiagJawMismatch {
		t.Errorf("ParseToothList(5, mandibular) = %v, %v, want empty plus jaw mismatch", got, diags)
	}
}

func TestParseToothList_DroppedItemDoesNotStopField(t *testing.T) {
	got, diags := ParseToothList("1,33,4,17,7", JawMaxillary)
	want := []int{1, 4, 7}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if len(diags) != 2 {
		t.Errorf("diagnostics = %v, want one range and one jaw warning", diags)
	}
}

func TestParseToothList_FormatFailureDiscardsField(t *testing.T) {
	got, diags := ParseToothList("1,two,3", JawMaxillary)
	if len(got) != 0 {
		t.Errorf("got %v, want empty result on format failure", got)
	}
	if len(diags) != 1 || diags[0].Kind != DiagFormat {
		t.Fatalf("diagnostics = %v, want a single format warning", diags)
	}
	if diags[0].Input != "two" {
		t.Errorf("diagnostic input = %q, want the offending segment", diags[0].Input)
	}
}

func TestParseToothList_DigitRecovery(t *testing.T) {
	tests := []struct {
		input string
		jaw   Jaw
		want  []int
	}{
		// Greedy shortest-valid-prefix: "147" is 1,4,7 and never 14,7.
		{"147", JawUnconstrained, []int{1, 4, 7}},
		{"1234", JawMaxillary, []int{1, 2, 3, 4}},
		{"321", JawUnconstrained, []int{3, 2, 1}},
	}

	for _, tc := range tests {
		got, diags := ParseToothList(tc.input, tc.jaw)
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("ParseToothList(%q) = %v, want %v", tc.input, got, tc.want)
		}
		if len(diags) != 1 || diags[0].Kind != DiagRecovered || diags[0].Severity != SeverityInfo {
			t.Errorf("ParseToothList(%q) diagnostics = %v, want one recovery info", tc.input, diags)
		}
	}
}

func TestParseToothList_RecoveryAbandoned(t *testing.T) {
	// "100" accumulates three digits without forming a valid tooth, so
	// the heuristic backs off and normal parsing rejects the range.
	got, diags := ParseToothList("100", JawUnconstrained)
	if len(got) != 0 {
		t.Errorf("ParseToothList(100) = %v, want empty", got)
	}
	if len(diags) != 1 || diags[0].Kind != DiagRange {
		t.Errorf("ParseToothList(100) diagnostics = %v, want one range warning", diags)
	}
}

func TestParseToothList_TwoCharInputNotRecovered(t *testing.T) {
	// "45" is two characters, below the recovery threshold: it parses
	// as tooth 45 and fails the range check rather than becoming 4,5.
	got, diags := ParseToothList("45", JawUnconstrained)
	if len(got) != 0 || len(diags) != 1 || diags[0].Kind != DiagRange {
		t.Errorf("ParseToothList(45) = %v, %v, want range warning only", got, diags)
	}
}

func TestParseToothList_RecoveryIsFixedPoint(t *testing.T) {
	first, diags := ParseToothList("1478", JawUnconstrained)
	if len(diags) != 1 || diags[0].Kind != DiagRecovered {
		t.Fatalf("expected recovery for 1478, diagnostics = %v", diags)
	}

	// Re-parsing the canonical comma-joined reconstruction yields the
	// same teeth, this time with no diagnostics.
	second, diags := ParseToothList("1,4,7,8", JawUnconstrained)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("recovery not a fixed point: %v vs %v", first, second)
	}
	if len(diags) != 0 {
		t.Errorf("re-parse produced diagnostics %v, want none", diags)
	}
}

func TestParseToothList_RecoveredTeethStillJawChecked(t *testing.T) {
	got, diags := ParseToothList("147", JawMandibular)
	if len(got) != 0 {
		t.Errorf("got %v, want all recovered teeth rejected by jaw check", got)
	}
	// One recovery info plus one mismatch per tooth.
	if len(diags) != 4 {
		t.Errorf("diagnostics = %v, want recovery info plus three jaw warnings", diags)
	}
}
