package wizard

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mrsinham/dentalforge/internal/chart"
	"github.com/mrsinham/dentalforge/internal/generate"
	"github.com/mrsinham/dentalforge/internal/util"
)

// Config represents the complete chart description for YAML
// serialization.
type Config struct {
	Maxillary  JawConfigYAML     `yaml:"maxillary"`
	Mandibular JawConfigYAML     `yaml:"mandibular"`
	Output     OutputConfigYAML  `yaml:"output"`
	Patient    PatientConfigYAML `yaml:"patient,omitempty"`
}

// JawConfigYAML holds one arch's raw field strings with YAML tags.
type JawConfigYAML struct {
	Missing   string `yaml:"missing,omitempty"`
	Implant   string `yaml:"implant,omitempty"`
	Extracted string `yaml:"extracted,omitempty"`
	Crown     string `yaml:"crown,omitempty"`
	RCT       string `yaml:"rct,omitempty"`
	Filling   string `yaml:"filling,omitempty"`
	Bridge    string `yaml:"bridge,omitempty"`
}

// OutputConfigYAML holds output settings with YAML tags.
type OutputConfigYAML struct {
	Base    string `yaml:"base"`
	Formats string `yaml:"formats"`
}

// PatientConfigYAML holds patient metadata with YAML tags.
type PatientConfigYAML struct {
	Name      string `yaml:"name,omitempty"`
	ID        string `yaml:"id,omitempty"`
	BirthDate string `yaml:"birth_date,omitempty"`
	Sex       string `yaml:"sex,omitempty"`
}

func fieldsToYAML(f chart.FieldValues) JawConfigYAML {
	return JawConfigYAML{
		Missing:   f.Missing,
		Implant:   f.Implant,
		Extracted: f.Extracted,
		Crown:     f.Crown,
		RCT:       f.RCT,
		Filling:   f.Filling,
		Bridge:    f.Bridge,
	}
}

func fieldsFromYAML(c JawConfigYAML) chart.FieldValues {
	return chart.FieldValues{
		Missing:   c.Missing,
		Implant:   c.Implant,
		Extracted: c.Extracted,
		Crown:     c.Crown,
		RCT:       c.RCT,
		Filling:   c.Filling,
		Bridge:    c.Bridge,
	}
}

// LoadFromYAML reads a chart description file into a ChartState.
func LoadFromYAML(path string) (*ChartState, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	state := DefaultState()
	state.Maxillary = fieldsFromYAML(cfg.Maxillary)
	state.Mandibular = fieldsFromYAML(cfg.Mandibular)
	if cfg.Output.Base != "" {
		state.Output.Base = cfg.Output.Base
	}
	if cfg.Output.Formats != "" {
		state.Output.Formats = cfg.Output.Formats
	}
	state.Patient = PatientConfig(cfg.Patient)
	return state, nil
}

// SaveToYAML writes the state as a chart description file.
func SaveToYAML(state *ChartState, path string) error {
	cfg := Config{
		Maxillary:  fieldsToYAML(state.Maxillary),
		Mandibular: fieldsToYAML(state.Mandibular),
		Output:     OutputConfigYAML(state.Output),
		Patient:    PatientConfigYAML(state.Patient),
	}

	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// ToRequest converts wizard state into a generation request.
func ToRequest(state *ChartState) (generate.Request, error) {
	formats, err := util.ParseFormats(state.Output.Formats)
	if err != nil {
		return generate.Request{}, err
	}
	return generate.Request{
		Maxillary:        state.Maxillary,
		Mandibular:       state.Mandibular,
		OutputBase:       state.Output.Base,
		Formats:          formats,
		PatientName:      state.Patient.Name,
		PatientID:        state.Patient.ID,
		PatientBirthDate: state.Patient.BirthDate,
		PatientSex:       state.Patient.Sex,
	}, nil
}

// FromRequest creates a ChartState from a generation request, used by
// --save-config to export CLI flags as YAML.
func FromRequest(req generate.Request) *ChartState {
	parts := make([]string, len(req.Formats))
	for i, f := range req.Formats {
		parts[i] = string(f)
	}

	state := DefaultState()
	state.Maxillary = req.Maxillary
	state.Mandibular = req.Mandibular
	if req.OutputBase != "" {
		state.Output.Base = req.OutputBase
	}
	if len(parts) > 0 {
		state.Output.Formats = strings.Join(parts, ",")
	}
	state.Patient = PatientConfig{
		Name:      req.PatientName,
		ID:        req.PatientID,
		BirthDate: req.PatientBirthDate,
		Sex:       req.PatientSex,
	}
	return state
}
