// Package dicom exports a rendered dental chart as a DICOM Secondary
// Capture object, so the signed chart can live in a PACS next to the
// patient's imaging.
package dicom

import (
	"fmt"
	"hash/fnv"
	"image"
	"os"
	"time"

	"github.com/suyashkumar/dicom"
	"github.com/suyashkumar/dicom/pkg/frame"
	"github.com/suyashkumar/dicom/pkg/tag"
)

// Secondary Capture Image Storage SOP Class.
const secondaryCaptureSOPClass = "1.2.840.10008.5.1.4.1.1.7"

// uidRoot prefixes generated UIDs. Suffixes are FNV hashes of the
// output path, so the same path yields the same study on re-export.
const uidRoot = "1.2.826.0.1.3680043.10.1465"

// ExportOptions carries the patient and study metadata stamped onto
// the exported object. Zero values get reasonable defaults.
type ExportOptions struct {
	PatientName      string
	PatientID        string
	PatientBirthDate string // DICOM DA format, YYYYMMDD
	PatientSex       string // M, F or O

	StudyDescription string

	// Now overrides the study timestamp, for reproducible tests.
	Now time.Time
}

// ExportSecondaryCapture converts the rendered chart image to an 8-bit
// MONOCHROME2 frame and writes it as a single-instance DICOM file.
func ExportSecondaryCapture(path string, img image.Image, opts ExportOptions) error {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width <= 0 || height <= 0 {
		return fmt.Errorf("empty chart image %dx%d", width, height)
	}

	nativeFrame := frame.NewNativeFrame[uint8](8, height, width, width*height, 1)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			nativeFrame.RawData[y*width+x] = uint8((r + g + b) / 3 >> 8)
		}
	}

	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	if opts.StudyDescription == "" {
		opts.StudyDescription = "Dental Chart"
	}
	if opts.PatientSex == "" {
		opts.PatientSex = "O"
	}

	studyUID := deterministicUID(path + "_study")
	seriesUID := deterministicUID(path + "_series")
	sopInstanceUID := deterministicUID(path + "_instance")

	elements := []*dicom.Element{
		mustNewElement(tag.TransferSyntaxUID, []string{"1.2.840.10008.1.2.1"}),
		mustNewElement(tag.SOPClassUID, []string{secondaryCaptureSOPClass}),
		mustNewElement(tag.SOPInstanceUID, []string{sopInstanceUID}),
		mustNewElement(tag.Modality, []string{"OT"}),
		mustNewElement(tag.ConversionType, []string{"WSD"}),
		mustNewElement(tag.PatientName, []string{opts.PatientName}),
		mustNewElement(tag.PatientID, []string{opts.PatientID}),
		mustNewElement(tag.PatientBirthDate, []string{opts.PatientBirthDate}),
		mustNewElement(tag.PatientSex, []string{opts.PatientSex}),
		mustNewElement(tag.StudyInstanceUID, []string{studyUID}),
		mustNewElement(tag.StudyID, []string{"1"}),
		mustNewElement(tag.StudyDate, []string{now.Format("20060102")}),
		mustNewElement(tag.StudyTime, []string{now.Format("150405")}),
		mustNewElement(tag.StudyDescription, []string{opts.StudyDescription}),
		mustNewElement(tag.SeriesInstanceUID, []string{seriesUID}),
		mustNewElement(tag.SeriesNumber, []string{"1"}),
		mustNewElement(tag.SeriesDescription, []string{"Dental Chart Secondary Capture"}),
		mustNewElement(tag.InstanceNumber, []string{"1"}),
		mustNewElement(tag.Rows, []int{height}),
		mustNewElement(tag.Columns, []int{width}),
		mustNewElement(tag.BitsAllocated, []int{8}),
		mustNewElement(tag.BitsStored, []int{8}),
		mustNewElement(tag.HighBit, []int{7}),
		mustNewElement(tag.PixelRepresentation, []int{0}),
		mustNewElement(tag.SamplesPerPixel, []int{1}),
		mustNewElement(tag.PhotometricInterpretation, []string{"MONOCHROME2"}),
		mustNewElement(tag.PixelData, dicom.PixelDataInfo{
			Frames: []*frame.Frame{
				{
					Encapsulated: false,
					NativeData:   nativeFrame,
				},
			},
		}),
	}

	return writeDatasetToFile(path, dicom.Dataset{Elements: elements})
}

// writeDatasetToFile writes a DICOM dataset to a file.
func writeDatasetToFile(filename string, ds dicom.Dataset) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	return dicom.Write(f, ds)
}

// mustNewElement creates a new DICOM element, panicking on error.
// Element construction only fails on programming mistakes (wrong value
// type for a tag), never on user input.
func mustNewElement(t tag.Tag, value interface{}) *dicom.Element {
	elem, err := dicom.NewElement(t, value)
	if err != nil {
		panic(fmt.Sprintf("failed to create element %v: %v", t, err))
	}
	return elem
}

// deterministicUID derives a UID from a name under the module's UID
// root.
func deterministicUID(name string) string {
	h := fnv.New64a()
	_, _ = h.Write([]byte(name)) // hash.Write never returns an error
	return fmt.Sprintf("%s.%d", uidRoot, h.Sum64())
}
