package dicom

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/suyashkumar/dicom"
	"github.com/suyashkumar/dicom/pkg/tag"

	"github.com/mrsinham/dentalforge/internal/chart"
	"github.com/mrsinham/dentalforge/internal/render"
)

func exportTestChart(t *testing.T, path string, opts ExportOptions) {
	t.Helper()
	ann, err := chart.Assemble(map[chart.Jaw]chart.JawInput{
		chart.JawMaxillary:  {},
		chart.JawMandibular: {},
	})
	if err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}
	if err := ExportSecondaryCapture(path, render.Raster(ann), opts); err != nil {
		t.Fatalf("ExportSecondaryCapture failed: %v", err)
	}
}

func TestExportSecondaryCapture_Parseable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chart.dcm")
	exportTestChart(t, path, ExportOptions{
		PatientName: "DOE^JANE",
		PatientID:   "PID000042",
		Now:         time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
	})

	ds, err := dicom.ParseFile(path, nil)
	if err != nil {
		t.Fatalf("failed to parse exported DICOM file: %v", err)
	}

	wantStrings := []struct {
		tag  tag.Tag
		name string
		want string
	}{
		{tag.SOPClassUID, "SOPClassUID", secondaryCaptureSOPClass},
		{tag.Modality, "Modality", "OT"},
		{tag.ConversionType, "ConversionType", "WSD"},
		{tag.PatientName, "PatientName", "DOE^JANE"},
		{tag.PatientID, "PatientID", "PID000042"},
		{tag.StudyDate, "StudyDate", "20260314"},
		{tag.PhotometricInterpretation, "PhotometricInterpretation", "MONOCHROME2"},
	}
	for _, ts := range wantStrings {
		elem, err := ds.FindElementByTag(ts.tag)
		if err != nil {
			t.Errorf("tag %s should exist, got error: %v", ts.name, err)
			continue
		}
		got := strings.Trim(elem.Value.String(), "[] ")
		if got != ts.want {
			t.Errorf("tag %s = %q, want %q", ts.name, got, ts.want)
		}
	}

	if _, err := ds.FindElementByTag(tag.PixelData); err != nil {
		t.Errorf("PixelData should exist: %v", err)
	}
}

func TestExportSecondaryCapture_DeterministicUIDs(t *testing.T) {
	dir := t.TempDir()
	pathA := filepath.Join(dir, "chart.dcm")

	exportTestChart(t, pathA, ExportOptions{})
	first := readUID(t, pathA)

	// Re-exporting to the same path yields the same study.
	exportTestChart(t, pathA, ExportOptions{})
	if second := readUID(t, pathA); second != first {
		t.Errorf("StudyInstanceUID changed between exports: %q vs %q", first, second)
	}

	// A different path yields a different study.
	pathB := filepath.Join(dir, "other.dcm")
	exportTestChart(t, pathB, ExportOptions{})
	if other := readUID(t, pathB); other == first {
		t.Error("different output paths should produce different StudyInstanceUIDs")
	}
}

func readUID(t *testing.T, path string) string {
	t.Helper()
	ds, err := dicom.ParseFile(path, nil)
	if err != nil {
		t.Fatalf("parse %s: %v", path, err)
	}
	elem, err := ds.FindElementByTag(tag.StudyInstanceUID)
	if err != nil {
		t.Fatalf("StudyInstanceUID missing in %s: %v", path, err)
	}
	return elem.Value.String()
}

func TestDeterministicUID_Format(t *testing.T) {
	uid := deterministicUID("some_name")
	if !strings.HasPrefix(uid, uidRoot+".") {
		t.Errorf("uid %q should start with the module root", uid)
	}
	if len(uid) > 64 {
		t.Errorf("uid %q is %d chars, DICOM caps UIDs at 64", uid, len(uid))
	}
}
