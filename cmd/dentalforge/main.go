package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mrsinham/dentalforge/cmd/dentalforge/wizard"
	"github.com/mrsinham/dentalforge/internal/chart"
	"github.com/mrsinham/dentalforge/internal/generate"
	"github.com/mrsinham/dentalforge/internal/util"
)

// version is set at build time via -ldflags
var version = "dev"

func main() {
	// Check for wizard subcommand (before flag.Parse)
	if len(os.Args) > 1 && os.Args[1] == "wizard" {
		// Extract --from flag if present
		var fromConfig string
		for i, arg := range os.Args[2:] {
			if arg == "--from" && i+3 < len(os.Args) {
				fromConfig = os.Args[i+3]
			}
		}
		if err := wizard.Run(fromConfig); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	var maxillary, mandibular chart.FieldValues

	// Maxillary arch (teeth 1-16)
	flag.StringVar(&maxillary.Missing, "max-missing", "", "Maxillary missing teeth, comma-separated (e.g., '1,4,7')")
	flag.StringVar(&maxillary.Implant, "max-implant", "", "Maxillary implant teeth")
	flag.StringVar(&maxillary.Extracted, "max-extracted", "", "Maxillary teeth to be extracted")
	flag.StringVar(&maxillary.Crown, "max-crown", "", "Maxillary crown teeth")
	flag.StringVar(&maxillary.RCT, "max-rct", "", "Maxillary root canal treatment teeth")
	flag.StringVar(&maxillary.Filling, "max-filling", "", "Maxillary filling teeth")
	flag.StringVar(&maxillary.Bridge, "max-bridge", "", "Maxillary bridges (e.g., '7-9' or '7,9')")

	// Mandibular arch (teeth 17-32)
	flag.StringVar(&mandibular.Missing, "mand-missing", "", "Mandibular missing teeth, comma-separated (e.g., '17,20')")
	flag.StringVar(&mandibular.Implant, "mand-implant", "", "Mandibular implant teeth")
	flag.StringVar(&mandibular.Extracted, "mand-extracted", "", "Mandibular teeth to be extracted")
	flag.StringVar(&mandibular.Crown, "mand-crown", "", "Mandibular crown teeth")
	flag.StringVar(&mandibular.RCT, "mand-rct", "", "Mandibular root canal treatment teeth")
	flag.StringVar(&mandibular.Filling, "mand-filling", "", "Mandibular filling teeth")
	flag.StringVar(&mandibular.Bridge, "mand-bridge", "", "Mandibular bridges (e.g., '29-31' or '29,31')")

	output := flag.String("output", "dental_chart", "Output path without extension")
	formats := flag.String("formats", "pdf,jpg", "Comma-separated output formats: pdf, jpg, png, dcm")

	// Patient metadata (used by the DICOM export)
	patientName := flag.String("patient-name", "", "Patient name for DICOM metadata")
	patientID := flag.String("patient-id", "", "Patient ID for DICOM metadata")
	birthDate := flag.String("birth-date", "", "Patient birth date, YYYYMMDD (DICOM only)")
	sex := flag.String("sex", "", "Patient sex: M, F or O (DICOM only)")

	// Interactive wizard and config options
	interactive := flag.Bool("interactive", false, "Launch interactive wizard")
	flag.BoolVar(interactive, "i", false, "Launch interactive wizard (shortcut)")
	configFile := flag.String("config", "", "Load chart description from YAML file")
	saveConfig := flag.String("save-config", "", "Save chart description to YAML file (after generation)")

	help := flag.Bool("help", false, "Show help message")
	showVersion := flag.Bool("version", false, "Show version")

	flag.Parse()

	// Handle interactive mode
	if *interactive {
		if err := wizard.Run(""); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	// Show version
	if *showVersion {
		fmt.Printf("dentalforge %s\n", version)
		os.Exit(0)
	}

	// Show help
	if *help {
		printHelp()
		os.Exit(0)
	}

	var req generate.Request

	// Handle config file loading; flags still override the loaded values
	// when explicitly set.
	if *configFile != "" {
		state, err := wizard.LoadFromYAML(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		req, err = wizard.ToRequest(state)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error converting config: %v\n", err)
			os.Exit(1)
		}
		overlayFields(&req.Maxillary, maxillary)
		overlayFields(&req.Mandibular, mandibular)
		if isFlagSet("output") {
			req.OutputBase = *output
		}
		if isFlagSet("formats") {
			parsed, err := util.ParseFormats(*formats)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			req.Formats = parsed
		}
	} else {
		parsed, err := util.ParseFormats(*formats)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		req = generate.Request{
			Maxillary:  maxillary,
			Mandibular: mandibular,
			OutputBase: *output,
			Formats:    parsed,
		}
	}

	if *patientName != "" {
		req.PatientName = *patientName
	}
	if *patientID != "" {
		req.PatientID = *patientID
	}
	if *birthDate != "" {
		req.PatientBirthDate = *birthDate
	}
	if *sex != "" {
		req.PatientSex = *sex
	}

	fmt.Println("dentalforge")
	fmt.Println("===========")
	fmt.Println()

	res, err := generate.Run(req)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating chart: %v\n", err)
		os.Exit(1)
	}

	printReports(res.Reports)

	// Save config if requested
	if *saveConfig != "" {
		state := wizard.FromRequest(req)
		if err := wizard.SaveToYAML(state, *saveConfig); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not save config: %v\n", err)
		} else {
			fmt.Printf("Configuration saved to %s\n", *saveConfig)
		}
	}

	fmt.Println("\n✓ Generation complete!")
	for _, f := range res.Files {
		fmt.Printf("  %s\n", f)
	}
}

// printReports relays parser diagnostics: warnings go to stderr,
// informational notices to stdout.
func printReports(reports []generate.JawReport) {
	for _, r := range reports {
		for _, fd := range r.Fields {
			for _, d := range fd.Diags {
				if d.Severity == chart.SeverityWarning {
					fmt.Fprintf(os.Stderr, "Warning [%s %s]: %s\n", r.Jaw, fd.Condition, d.Message)
				} else {
					fmt.Printf("Note [%s %s]: %s\n", r.Jaw, fd.Condition, d.Message)
				}
			}
		}
	}
}

// overlayFields copies non-empty flag values over a config-loaded base.
func overlayFields(dst *chart.FieldValues, src chart.FieldValues) {
	if src.Missing != "" {
		dst.Missing = src.Missing
	}
	if src.Implant != "" {
		dst.Implant = src.Implant
	}
	if src.Extracted != "" {
		dst.Extracted = src.Extracted
	}
	if src.Crown != "" {
		dst.Crown = src.Crown
	}
	if src.RCT != "" {
		dst.RCT = src.RCT
	}
	if src.Filling != "" {
		dst.Filling = src.Filling
	}
	if src.Bridge != "" {
		dst.Bridge = src.Bridge
	}
}

func isFlagSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}

func printHelp() {
	fmt.Println("dentalforge")
	fmt.Println("===========")
	fmt.Println()
	fmt.Println("Generate dental charts (Universal Numbering System) from tooth lists.")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  dentalforge [options]")
	fmt.Println("  dentalforge wizard [--from config.yaml]")
	fmt.Println()
	fmt.Println("Maxillary arch options (teeth 1-16):")
	fmt.Println("  --max-missing <LIST>    Missing teeth, comma-separated (e.g., '1,4,7')")
	fmt.Println("  --max-implant <LIST>    Implant teeth")
	fmt.Println("  --max-extracted <LIST>  Teeth to be extracted (dashed outline)")
	fmt.Println("  --max-crown <LIST>      Crown teeth")
	fmt.Println("  --max-rct <LIST>        Root canal treatment teeth")
	fmt.Println("  --max-filling <LIST>    Filling teeth")
	fmt.Println("  --max-bridge <SPANS>    Bridges: '7-9' or '7,9' (repeat spans with commas)")
	fmt.Println()
	fmt.Println("Mandibular arch options (teeth 17-32):")
	fmt.Println("  --mand-missing, --mand-implant, --mand-extracted, --mand-crown,")
	fmt.Println("  --mand-rct, --mand-filling, --mand-bridge")
	fmt.Println()
	fmt.Println("Output options:")
	fmt.Println("  --output <PATH>       Output path without extension (default: 'dental_chart')")
	fmt.Println("  --formats <LIST>      Comma-separated: pdf, jpg, png, dcm (default: 'pdf,jpg')")
	fmt.Println()
	fmt.Println("Patient metadata (DICOM export only):")
	fmt.Println("  --patient-name <NAME> Patient name")
	fmt.Println("  --patient-id <ID>     Patient ID")
	fmt.Println("  --birth-date <DATE>   Birth date, YYYYMMDD")
	fmt.Println("  --sex <M|F|O>         Patient sex")
	fmt.Println()
	fmt.Println("Config options:")
	fmt.Println("  --config <FILE>       Load chart description from YAML (flags override)")
	fmt.Println("  --save-config <FILE>  Save chart description to YAML after generation")
	fmt.Println("  -i, --interactive     Launch interactive wizard")
	fmt.Println()
	fmt.Println("  --help                Show this help message")
	fmt.Println("  --version             Show version")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  # Missing teeth on both arches, PDF and JPEG")
	fmt.Println("  dentalforge --max-missing 1,4,7 --mand-missing 17,20")
	fmt.Println()
	fmt.Println("  # Bridge across 7-9 plus an implant, PNG only")
	fmt.Println("  dentalforge --max-bridge 7-9 --max-implant 8 --formats png")
	fmt.Println()
	fmt.Println("  # DICOM secondary capture with patient metadata")
	fmt.Println("  dentalforge --max-crown 8 --formats dcm --patient-name 'DOE^JANE' --patient-id PAT-42")
	fmt.Println()
	fmt.Println("  # Save the chart description for later reuse")
	fmt.Println("  dentalforge --max-missing 1,4 --save-config chart.yaml")
	fmt.Println("  dentalforge --config chart.yaml --formats pdf,png")
}
