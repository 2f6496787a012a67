// Package generate runs one chart-generation request end to end:
// parse every form field, assemble the annotation, and write the
// requested output documents.
package generate

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mrsinham/dentalforge/internal/chart"
	dcm "github.com/mrsinham/dentalforge/internal/dicom"
	"github.com/mrsinham/dentalforge/internal/render"
	"github.com/mrsinham/dentalforge/internal/util"
)

// Request describes one chart generation. Each request is independent:
// the annotation it builds is owned by this call alone.
type Request struct {
	Maxillary  chart.FieldValues
	Mandibular chart.FieldValues

	// OutputBase is the output path without extension; one file per
	// requested format is written next to it.
	OutputBase string
	Formats    []util.Format

	// Patient metadata, stamped onto the DICOM export only.
	PatientName      string
	PatientID        string
	PatientBirthDate string
	PatientSex       string
}

// JawReport carries one arch's field diagnostics back to the caller.
type JawReport struct {
	Jaw    chart.Jaw
	Fields []chart.FieldDiagnostics
}

// Result lists what a request produced.
type Result struct {
	Files      []string
	Reports    []JawReport
	Annotation *chart.Annotation
}

// Run executes the request. User-input problems never fail the run;
// they come back as diagnostics in the result and the affected fields
// render empty. Run fails only on contract violations and I/O errors.
func Run(req Request) (*Result, error) {
	if req.OutputBase == "" {
		return nil, fmt.Errorf("output base path is required")
	}
	if len(req.Formats) == 0 {
		return nil, fmt.Errorf("at least one output format is required")
	}

	res := &Result{}

	maxIn, maxReport := chart.ParseJawInput(req.Maxillary, chart.JawMaxillary)
	if len(maxReport) > 0 {
		res.Reports = append(res.Reports, JawReport{Jaw: chart.JawMaxillary, Fields: maxReport})
	}
	mandIn, mandReport := chart.ParseJawInput(req.Mandibular, chart.JawMandibular)
	if len(mandReport) > 0 {
		res.Reports = append(res.Reports, JawReport{Jaw: chart.JawMandibular, Fields: mandReport})
	}

	ann, err := chart.Assemble(map[chart.Jaw]chart.JawInput{
		chart.JawMaxillary:  maxIn,
		chart.JawMandibular: mandIn,
	})
	if err != nil {
		return nil, fmt.Errorf("assemble annotation: %w", err)
	}
	res.Annotation = ann

	if dir := filepath.Dir(req.OutputBase); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create output directory: %w", err)
		}
	}

	for _, f := range req.Formats {
		path := req.OutputBase + f.Extension()
		switch f {
		case util.FormatPDF:
			err = render.WritePDF(path, ann)
		case util.FormatJPEG:
			err = render.WriteJPEG(path, ann)
		case util.FormatPNG:
			err = render.WritePNG(path, ann)
		case util.FormatDICOM:
			err = dcm.ExportSecondaryCapture(path, render.Raster(ann), dcm.ExportOptions{
				PatientName:      req.PatientName,
				PatientID:        req.PatientID,
				PatientBirthDate: req.PatientBirthDate,
				PatientSex:       req.PatientSex,
			})
		default:
			err = fmt.Errorf("unsupported format: %s", f)
		}
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", f, err)
		}
		res.Files = append(res.Files, path)
	}

	return res, nil
}
