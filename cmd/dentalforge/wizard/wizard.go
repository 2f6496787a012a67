package wizard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/mrsinham/dentalforge/internal/chart"
	"github.com/mrsinham/dentalforge/internal/generate"
	"github.com/mrsinham/dentalforge/internal/util"
)

// Run launches the interactive wizard, optionally preloading state
// from a YAML chart description.
func Run(fromConfig string) error {
	state := DefaultState()
	if fromConfig != "" {
		loaded, err := LoadFromYAML(fromConfig)
		if err != nil {
			return err
		}
		state = loaded
	}

	fmt.Println(titleStyle.Render("dentalforge"))
	fmt.Println(subtitleStyle.Render("Fill in tooth numbers per arch; leave fields blank to skip them."))
	fmt.Println(legendStyle.Render(legendText))

	form := buildForm(state)
	if err := form.Run(); err != nil {
		return err
	}

	req, err := ToRequest(state)
	if err != nil {
		return err
	}

	res, err := generate.Run(req)
	if err != nil {
		return err
	}
	printReports(res.Reports)

	fmt.Println("\n✓ Chart generated!")
	for _, f := range res.Files {
		fmt.Printf("  %s\n", f)
	}
	return nil
}

// legendText matches the marking vocabulary of the renderers.
const legendText = `Legend:
  X (red)          missing tooth
  dashed outline   extracted tooth
  blue line        implant
  purple bar       crown or bridge
  brown line       root canal treatment
  orange circle    filling`

func buildForm(state *ChartState) *huh.Form {
	return huh.NewForm(
		jawGroup("Maxillary (Upper Jaw) Modifications", &state.Maxillary, "1,4,7", "7-9,14-16"),
		jawGroup("Mandibular (Lower Jaw) Modifications", &state.Mandibular, "17,20", "29-31 or 29,31"),
		huh.NewGroup(
			huh.NewInput().
				Key("output_base").
				Title("Output Path").
				Description("Without extension; one file per format is written").
				Value(&state.Output.Base).
				Validate(validateNonEmpty),

			huh.NewInput().
				Key("formats").
				Title("Formats").
				Description("Comma-separated: pdf, jpg, png, dcm").
				Value(&state.Output.Formats).
				Validate(validateFormats),

			huh.NewInput().
				Key("patient_name").
				Title("Patient Name").
				Description("Stamped onto the DICOM export only").
				Value(&state.Patient.Name),

			huh.NewInput().
				Key("patient_id").
				Title("Patient ID").
				Value(&state.Patient.ID),
		).Title("Output"),
	)
}

// jawGroup builds one arch's form group. The two arches mirror each
// other, only titles and example placeholders differ.
func jawGroup(title string, fields *chart.FieldValues, exampleTeeth, exampleBridge string) *huh.Group {
	return huh.NewGroup(
		huh.NewInput().
			Title("Missing").
			Placeholder("e.g., "+exampleTeeth).
			Value(&fields.Missing),
		huh.NewInput().
			Title("Implant").
			Placeholder("e.g., "+exampleTeeth).
			Value(&fields.Implant),
		huh.NewInput().
			Title("Extracted").
			Value(&fields.Extracted),
		huh.NewInput().
			Title("Crown").
			Value(&fields.Crown),
		huh.NewInput().
			Title("RCT").
			Value(&fields.RCT),
		huh.NewInput().
			Title("Filling").
			Value(&fields.Filling),
		huh.NewInput().
			Title("Bridge").
			Placeholder("e.g., "+exampleBridge).
			Description("Use \"10-12\" (hyphen) or \"10,12\" (comma)").
			Value(&fields.Bridge),
	).Title(title)
}

func validateNonEmpty(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("required")
	}
	return nil
}

func validateFormats(s string) error {
	_, err := util.ParseFormats(s)
	return err
}

// printReports surfaces the core's diagnostics: warnings in red,
// informational notices dimmed.
func printReports(reports []generate.JawReport) {
	for _, r := range reports {
		for _, fd := range r.Fields {
			for _, d := range fd.Diags {
				line := fmt.Sprintf("%s %s: %s", r.Jaw, fd.Condition, d.Message)
				if d.Severity == chart.SeverityWarning {
					fmt.Println(warningStyle.Render("! " + line))
				} else {
					fmt.Println(infoStyle.Render("- " + line))
				}
			}
		}
	}
}
