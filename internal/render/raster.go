package render

import (
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"math"
	"os"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/mrsinham/dentalforge/internal/chart"
)

// Canvas dimensions: 8 x 8.5 inches at 300 DPI, split into two arch
// rows and a shorter signature row (height ratio 1 : 1 : 0.7).
const (
	canvasWidth  = 2400
	canvasHeight = 2550
	archRowH     = 930
	signatureTop = 2 * archRowH
)

// Marking colors, matching the legend every front-end shows.
var (
	colBlack  = color.RGBA{0, 0, 0, 255}
	colWhite  = color.RGBA{255, 255, 255, 255}
	colRed    = color.RGBA{220, 20, 20, 255}
	colBlue   = color.RGBA{0, 0, 230, 255}
	colPurple = color.RGBA{128, 0, 128, 255}
	colBrown  = color.RGBA{139, 69, 19, 255} // saddle brown, RCT marker
	colOrange = color.RGBA{255, 140, 0, 255} // dark orange, filling marker
)

// Raster draws the annotation onto a fresh RGBA canvas.
func Raster(ann *chart.Annotation) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, canvasWidth, canvasHeight))
	draw.Draw(img, img.Bounds(), image.NewUniform(colWhite), image.Point{}, draw.Src)

	drawArch(img, &ann.Maxillary, chart.JawMaxillary, 0)
	drawArch(img, &ann.Mandibular, chart.JawMandibular, archRowH)
	drawSignatureBlock(img)

	return img
}

// WritePNG renders the annotation and writes it as PNG.
func WritePNG(path string, ann *chart.Annotation) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create png: %w", err)
	}
	defer func() { _ = f.Close() }()

	if err := png.Encode(f, Raster(ann)); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// WriteJPEG renders the annotation and writes it as JPEG.
func WriteJPEG(path string, ann *chart.Annotation) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create jpeg: %w", err)
	}
	defer func() { _ = f.Close() }()

	if err := jpeg.Encode(f, Raster(ann), &jpeg.Options{Quality: 92}); err != nil {
		return fmt.Errorf("encode jpeg: %w", err)
	}
	return nil
}

// archBox maps chart units to pixels inside one arch row.
type archBox struct {
	top float64
}

func (b archBox) px(p Point) (float64, float64) {
	x := (p.X - archXMin) / (archXMax - archXMin) * canvasWidth
	y := b.top + (archYMax-p.Y)/(archYMax-archYMin)*archRowH
	return x, y
}

func drawArch(img *image.RGBA, jawAnn *chart.JawAnnotation, jaw chart.Jaw, top int) {
	box := archBox{top: float64(top)}
	anchors := Anchors(jaw)
	isMaxillary := jaw == chart.JawMaxillary

	title := titleMaxillary
	if !isMaxillary {
		title = titleMandibular
	}
	tx, ty := box.px(Point{0, 1.3})
	drawText(img, title, tx, ty, 2.5, colBlack, true)

	for num, at := range anchors {
		switch {
		case jawAnn.Extracted.Has(num):
			drawToothOutline(img, box, at, colRed, true)
		case !jawAnn.Missing.Has(num):
			drawToothOutline(img, box, at, colBlack, false)
		}

		// Markings that coexist with a missing tooth.
		if jawAnn.Missing.Has(num) {
			cx, cy := box.px(at)
			drawText(img, "X", cx, cy, 3, colRed, true)
		}
		if jawAnn.Implant.Has(num) {
			drawSegment(img, box, Point{at.X, at.Y - 0.2}, Point{at.X, at.Y + 0.7}, colBlue, 8)
		}
		if jawAnn.RCT.Has(num) {
			drawSegment(img, box, Point{at.X, at.Y - 0.15}, Point{at.X, at.Y + 0.6}, colBrown, 6)
		}
		if jawAnn.Filling.Has(num) {
			drawCircleOutline(img, box, Point{at.X, at.Y + 0.9}, 0.08, colOrange, 4)
		}
		if jawAnn.Crown.Has(num) {
			barY := at.Y + 0.8
			if !isMaxillary {
				barY = at.Y - 0.3
			}
			drawSegment(img, box, Point{at.X - 0.3, barY}, Point{at.X + 0.3, barY}, colPurple, 6)
		}

		numY := at.Y - 1.0
		if !isMaxillary {
			numY = at.Y + 1.0
		}
		nx, ny := box.px(Point{at.X, numY})
		drawText(img, fmt.Sprintf("%d", num), nx, ny, 2, colBlack, true)
	}

	// Bridges connect the X coordinates of their endpoint anchors at a
	// fixed bar height per arch.
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
		drawSegment(img, box, Point{start.X, barY}, Point{end.X, barY}, colPurple, 6)
	}
}

func drawToothOutline(img *image.RGBA, box archBox, at Point, col color.RGBA, dashed bool) {
	for i := 0; i < len(teethOutline)-1; i++ {
		a := Point{at.X + teethOutline[i].X, at.Y + teethOutline[i].Y}
		b := Point{at.X + teethOutline[i+1].X, at.Y + teethOutline[i+1].Y}
		if dashed {
			drawDashedSegment(img, box, a, b, col, 4)
		} else {
			drawSegment(img, box, a, b, col, 4)
		}
	}
}

func drawSignatureBlock(img *image.RGBA) {
	left := 0.05 * canvasWidth
	drawText(img, consentHeading, left, float64(signatureTop)+90, 2.5, colBlack, false)
	drawText(img, consentBody1, left, float64(signatureTop)+210, 2, colBlack, false)
	drawText(img, consentBody2, left, float64(signatureTop)+300, 2, colBlack, false)

	lineY := float64(signatureTop) + 480.0
	// Patient signature line and caption.
	drawLinePx(img, 0.05*canvasWidth, lineY, 0.45*canvasWidth, lineY, colBlack, 3)
	drawText(img, captionSignature, 0.25*canvasWidth, lineY+70, 2, colBlack, true)
	// Date line and caption.
	drawLinePx(img, 0.55*canvasWidth, lineY, 0.95*canvasWidth, lineY, colBlack, 3)
	drawText(img, captionDate, 0.75*canvasWidth, lineY+70, 2, colBlack, true)
}

// drawSegment draws a line between two chart-unit points.
func drawSegment(img *image.RGBA, box archBox, a, b Point, col color.RGBA, width float64) {
	x0, y0 := box.px(a)
	x1, y1 := box.px(b)
	drawLinePx(img, x0, y0, x1, y1, col, width)
}

// drawDashedSegment draws a dashed line between two chart-unit points.
func drawDashedSegment(img *image.RGBA, box archBox, a, b Point, col color.RGBA, width float64) {
	x0, y0 := box.px(a)
	x1, y1 := box.px(b)

	const dashOn, dashOff = 14.0, 10.0
	total := math.Hypot(x1-x0, y1-y0)
	if total == 0 {
		return
	}
	ux, uy := (x1-x0)/total, (y1-y0)/total
	pos := 0.0
	for pos < total {
		segEnd := math.Min(pos+dashOn, total)
		drawLinePx(img, x0+ux*pos, y0+uy*pos, x0+ux*segEnd, y0+uy*segEnd, col, width)
		pos = segEnd + dashOff
	}
}

// drawLinePx stamps discs along the line at sub-pixel steps. Slow but
// simple, and the canvas is drawn once per request.
func drawLinePx(img *image.RGBA, x0, y0, x1, y1 float64, col color.RGBA, width float64) {
	length := math.Hypot(x1-x0, y1-y0)
	steps := int(length*2) + 1
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		stampDisc(img, x0+(x1-x0)*t, y0+(y1-y0)*t, width/2, col)
	}
}

func drawCircleOutline(img *image.RGBA, box archBox, center Point, radius float64, col color.RGBA, width float64) {
	// Chart units are anisotropic in pixels, so compute both radii.
	cx, cy := box.px(center)
	ex, _ := box.px(Point{center.X + radius, center.Y})
	_, ey := box.px(Point{center.X, center.Y + radius})
	rx, ry := ex-cx, cy-ey

	steps := 90
	for i := 0; i < steps; i++ {
		t := 2 * math.Pi * float64(i) / float64(steps)
		stampDisc(img, cx+rx*math.Cos(t), cy+ry*math.Sin(t), width/2, col)
	}
}

func stampDisc(img *image.RGBA, cx, cy, r float64, col color.RGBA) {
	if r < 1 {
		r = 1
	}
	for y := int(cy - r); y <= int(cy+r+1); y++ {
		for x := int(cx - r); x <= int(cx+r+1); x++ {
			dx, dy := float64(x)-cx, float64(y)-cy
			if dx*dx+dy*dy <= r*r {
				img.SetRGBA(x, y, col)
			}
		}
	}
}

// drawText renders the string with basicfont and scales it up with
// bilinear interpolation to get large labels out of a bitmap face.
// The point is the text center when centered, otherwise its left
// baseline-top corner.
func drawText(img *image.RGBA, text string, x, y, scale float64, col color.RGBA, centered bool) {
	if text == "" {
		return
	}
	face := basicfont.Face7x13
	baseW := font.MeasureString(face, text).Ceil()
	baseH := 13

	textImg := image.NewRGBA(image.Rect(0, 0, baseW, baseH))
	drawer := &font.Drawer{
		Dst:  textImg,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.Point26_6{Y: fixed.I(11)},
	}
	drawer.DrawString(text)

	scaledW := int(float64(baseW) * scale)
	scaledH := int(float64(baseH) * scale)
	if scaledW < 1 || scaledH < 1 {
		return
	}
	scaled := image.NewRGBA(image.Rect(0, 0, scaledW, scaledH))
	draw.BiLinear.Scale(scaled, scaled.Bounds(), textImg, textImg.Bounds(), draw.Over, nil)

	ox, oy := int(x), int(y)
	if centered {
		ox -= scaledW / 2
		oy -= scaledH / 2
	}
	draw.Draw(img, image.Rect(ox, oy, ox+scaledW, oy+scaledH), scaled, image.Point{}, draw.Over)
}
