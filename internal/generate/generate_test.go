package generate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mrsinham/dentalforge/internal/chart"
	"github.com/mrsinham/dentalforge/internal/util"
)

func TestRun_WritesAllRequestedFormats(t *testing.T) {
	base := filepath.Join(t.TempDir(), "charts", "visit1")
	req := Request{
		Maxillary:  chart.FieldValues{Missing: "1,4,7", Bridge: "10-12"},
		Mandibular: chart.FieldValues{Crown: "30"},
		OutputBase: base,
		Formats:    []util.Format{util.FormatPDF, util.FormatJPEG, util.FormatPNG, util.FormatDICOM},
	}

	res, err := Run(req)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if len(res.Files) != 4 {
		t.Fatalf("Run produced %d files, want 4: %v", len(res.Files), res.Files)
	}
	for _, path := range res.Files {
		fi, err := os.Stat(path)
		if err != nil {
			t.Errorf("output %s missing: %v", path, err)
			continue
		}
		if fi.Size() == 0 {
			t.Errorf("output %s is empty", path)
		}
	}
}

func TestRun_ReportsDiagnosticsWithoutFailing(t *testing.T) {
	base := filepath.Join(t.TempDir(), "chart")
	req := Request{
		Maxillary:  chart.FieldValues{Missing: "33,4", Implant: "junk"},
		Mandibular: chart.FieldValues{},
		OutputBase: base,
		Formats:    []util.Format{util.FormatPNG},
	}

	res, err := Run(req)
	if err != nil {
		t.Fatalf("Run failed on recoverable input problems: %v", err)
	}

	if len(res.Reports) != 1 || res.Reports[0].Jaw != chart.JawMaxillary {
		t.Fatalf("reports = %+v, want maxillary diagnostics only", res.Reports)
	}
	if len(res.Reports[0].Fields) != 2 {
		t.Errorf("fields reported = %d, want missing and implant", len(res.Reports[0].Fields))
	}

	// The dropped tooth is gone; the valid one survived.
	if res.Annotation.Maxillary.Missing.Has(33) || !res.Annotation.Maxillary.Missing.Has(4) {
		t.Errorf("missing set = %v, want just tooth 4", res.Annotation.Maxillary.Missing.Sorted())
	}
	// The hard-failed field is empty.
	if len(res.Annotation.Maxillary.Implant) != 0 {
		t.Errorf("implant set = %v, want empty after hard failure", res.Annotation.Maxillary.Implant.Sorted())
	}
}

func TestRun_RequiresOutputAndFormats(t *testing.T) {
	if _, err := Run(Request{Formats: []util.Format{util.FormatPNG}}); err == nil {
		t.Error("Run without output base should fail")
	}
	if _, err := Run(Request{OutputBase: "x"}); err == nil {
		t.Error("Run without formats should fail")
	}
}
