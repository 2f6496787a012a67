package render

import (
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/mrsinham/dentalforge/internal/chart"
)

// Page geometry in inches, mirroring the raster canvas: two arch rows
// and a signature row on an 8 x 8.5 in page.
const (
	pageWidthIn  = 8.0
	pageHeightIn = 8.5
	archRowIn    = 3.1
)

// WritePDF renders the annotation as vector primitives into a PDF.
func WritePDF(path string, ann *chart.Annotation) error {
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "in",
		Size:           fpdf.SizeType{Wd: pageWidthIn, Ht: pageHeightIn},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	pdfArch(pdf, &ann.Maxillary, chart.JawMaxillary, 0)
	pdfArch(pdf, &ann.Mandibular, chart.JawMandibular, archRowIn)
	pdfSignatureBlock(pdf)

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

// pdfBox maps chart units to page inches inside one arch row.
type pdfBox struct {
	top float64
}

func (b pdfBox) xy(p Point) (float64, float64) {
	x := (p.X - archXMin) / (archXMax - archXMin) * pageWidthIn
	y := b.top + (archYMax-p.Y)/(archYMax-archYMin)*archRowIn
	return x, y
}

func pdfArch(pdf *fpdf.Fpdf, jawAnn *chart.JawAnnotation, jaw chart.Jaw, top float64) {
	box := pdfBox{top: top}
	anchors := Anchors(jaw)
	isMaxillary := jaw == chart.JawMaxillary

	title := titleMaxillary
	if !isMaxillary {
		title = titleMandibular
	}
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetTextColor(0, 0, 0)
	tx, ty := box.xy(Point{0, 1.3})
	pdf.Text(tx-pdf.GetStringWidth(title)/2, ty, title)

	for num, at := range anchors {
		switch {
		case jawAnn.Extracted.Has(num):
			pdf.SetDrawColor(220, 20, 20)
			pdf.SetDashPattern([]float64{0.04, 0.03}, 0)
			pdfToothOutline(pdf, box, at)
			pdf.SetDashPattern([]float64{}, 0)
		case !jawAnn.Missing.Has(num):
			pdf.SetDrawColor(0, 0, 0)
			pdfToothOutline(pdf, box, at)
		}

		if jawAnn.Missing.Has(num) {
			pdf.SetFont("Helvetica", "B", 14)
			pdf.SetTextColor(220, 20, 20)
			cx, cy := box.xy(at)
			pdf.Text(cx-pdf.GetStringWidth("X")/2, cy+0.07, "X")
		}
		if jawAnn.Implant.Has(num) {
			pdf.SetDrawColor(0, 0, 230)
			pdf.SetLineWidth(0.03)
			pdfSegment(pdf, box, Point{at.X, at.Y - 0.2}, Point{at.X, at.Y + 0.7})
		}
		if jawAnn.RCT.Has(num) {
			pdf.SetDrawColor(139, 69, 19)
			pdf.SetLineWidth(0.022)
			pdfSegment(pdf, box, Point{at.X, at.Y - 0.15}, Point{at.X, at.Y + 0.6})
		}
		if jawAnn.Filling.Has(num) {
			pdf.SetDrawColor(255, 140, 0)
			pdf.SetLineWidth(0.015)
			cx, cy := box.xy(Point{at.X, at.Y + 0.9})
			ex, _ := box.xy(Point{at.X + 0.08, at.Y + 0.9})
			pdf.Circle(cx, cy, ex-cx, "D")
		}
		if jawAnn.Crown.Has(num) {
			barY := at.Y + 0.8
			if !isMaxillary {
				barY = at.Y - 0.3
			}
			pdf.SetDrawColor(128, 0, 128)
			pdf.SetLineWidth(0.022)
			pdfSegment(pdf, box, Point{at.X - 0.3, barY}, Point{at.X + 0.3, barY})
		}

		numY := at.Y - 1.0
		if !isMaxillary {
			numY = at.Y + 1.0
		}
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(0, 0, 0)
		label := fmt.Sprintf("%d", num)
		nx, ny := box.xy(Point{at.X, numY})
		pdf.Text(nx-pdf.GetStringWidth(label)/2, ny, label)
	}

	for _, b := range jawAnn.Bridges {
		start, oks := anchors[b.Start]
		end, oke := anchors[b.End]
		if !oks || !oke {
			continue
		}
		barY := 0.8
		if !isMaxillary {
			barY = -0.3
		}
		pdf.SetDrawColor(128, 0, 128)
		pdf.SetLineWidth(0.022)
		pdfSegment(pdf, box, Point{start.X, barY}, Point{end.X, barY})
	}

	pdf.SetLineWidth(0.2 / 72) // back to hairline default
}

func pdfToothOutline(pdf *fpdf.Fpdf, box pdfBox, at Point) {
	pdf.SetLineWidth(0.015)
	for i := 0; i < len(teethOutline)-1; i++ {
		a := Point{at.X + teethOutline[i].X, at.Y + teethOutline[i].Y}
		b := Point{at.X + teethOutline[i+1].X, at.Y + teethOutline[i+1].Y}
		pdfSegment(pdf, box, a, b)
	}
}

func pdfSegment(pdf *fpdf.Fpdf, box pdfBox, a, b Point) {
	x0, y0 := box.xy(a)
	x1, y1 := box.xy(b)
	pdf.Line(x0, y0, x1, y1)
}

func pdfSignatureBlock(pdf *fpdf.Fpdf) {
	top := 2 * archRowIn

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Text(0.05*pageWidthIn, top+0.4, consentHeading)
	pdf.SetFont("Helvetica", "", 9)
	pdf.Text(0.05*pageWidthIn, top+0.75, consentBody1)
	pdf.Text(0.05*pageWidthIn, top+1.0, consentBody2)

	lineY := top + 1.6
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.01)
	pdf.Line(0.05*pageWidthIn, lineY, 0.45*pageWidthIn, lineY)
	pdf.Line(0.55*pageWidthIn, lineY, 0.95*pageWidthIn, lineY)

	pdf.Text(0.25*pageWidthIn-pdf.GetStringWidth(captionSignature)/2, lineY+0.25, captionSignature)
	pdf.Text(0.75*pageWidthIn-pdf.GetStringWidth(captionDate)/2, lineY+0.25, captionDate)
}
