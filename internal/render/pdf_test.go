package render

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mrsinham/dentalforge/internal/chart"
)

func TestWritePDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chart.pdf")
	if err := WritePDF(path, testAnnotation(t)); err != nil {
		t.Fatalf("WritePDF failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if len(data) < 4 || string(data[:4]) != "%PDF" {
		t.Error("output does not start with a PDF header")
	}
	if len(data) < 1024 {
		t.Errorf("pdf is only %d bytes, drawing likely missing", len(data))
	}
}

func TestWritePDF_EmptyAnnotation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.pdf")
	if err := WritePDF(path, &chart.Annotation{}); err != nil {
		t.Fatalf("WritePDF on empty annotation failed: %v", err)
	}
	if fi, err := os.Stat(path); err != nil || fi.Size() == 0 {
		t.Errorf("empty-annotation pdf not written: %v", err)
	}
}
