package render

import (
	"testing"

	"github.com/mrsinham/dentalforge/internal/chart"
)

func TestAnchors_CoverBothArches(t *testing.T) {
	maxAnchors := Anchors(chart.JawMaxillary)
	for n := 1; n <= 16; n++ {
		if _, ok := maxAnchors[n]; !ok {
			t.Errorf("maxillary anchors missing tooth %d", n)
		}
	}
	if len(maxAnchors) != 16 {
		t.Errorf("maxillary anchors has %d entries, want 16", len(maxAnchors))
	}

	mandAnchors := Anchors(chart.JawMandibular)
	for n := 17; n <= 32; n++ {
		if _, ok := mandAnchors[n]; !ok {
			t.Errorf("mandibular anchors missing tooth %d", n)
		}
	}
	if len(mandAnchors) != 16 {
		t.Errorf("mandibular anchors has %d entries, want 16", len(mandAnchors))
	}
}

func TestAnchors_MaxillaryLeftToRight(t *testing.T) {
	anchors := Anchors(chart.JawMaxillary)
	for n := 1; n < 16; n++ {
		if anchors[n].X >= anchors[n+1].X {
			t.Errorf("tooth %d at x=%v should be left of tooth %d at x=%v",
				n, anchors[n].X, n+1, anchors[n+1].X)
		}
	}
}

func TestAnchors_MandibularDescending(t *testing.T) {
	anchors := Anchors(chart.JawMandibular)
	// 32 leftmost, 17 rightmost.
	for n := 32; n > 17; n-- {
		if anchors[n].X >= anchors[n-1].X {
			t.Errorf("tooth %d at x=%v should be left of tooth %d at x=%v",
				n, anchors[n].X, n-1, anchors[n-1].X)
		}
	}
}

func TestAnchors_HalfUnitOffset(t *testing.T) {
	maxAnchors := Anchors(chart.JawMaxillary)
	mandAnchors := Anchors(chart.JawMandibular)
	if got := mandAnchors[32].X - maxAnchors[1].X; got != -0.5 {
		t.Errorf("mandibular row offset = %v, want -0.5", got)
	}
	// Uniform one-unit spacing within each row.
	if got := mandAnchors[17].X - mandAnchors[18].X; got != 1.0 {
		t.Errorf("mandibular spacing = %v, want 1.0", got)
	}
}
