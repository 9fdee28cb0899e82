package suite

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// KindEnum is the conversion a case exercises.
type KindEnum string

const (
	KindText      KindEnum = "text"      // number to plain text
	KindMoney     KindEnum = "money"     // number to money text
	KindNumber    KindEnum = "number"    // plain text to number
	KindRoundTrip KindEnum = "roundtrip" // number to text and back
)

// Case is a single fixture. Want is unused for round trips, and for invalid
// cases it may name the expected diagnostic code.
type Case struct {
	Name    string   `yaml:"name,omitempty"`
	Kind    KindEnum `yaml:"kind"`
	Input   string   `yaml:"input"`
	Want    string   `yaml:"want,omitempty"`
	Invalid bool     `yaml:"invalid,omitempty"`
}

// Label names the case in reports.
func (c Case) Label() string {
	if c.Name != "" {
		return c.Name
	}

	return fmt.Sprintf("%s/%s", c.Kind, c.Input)
}

// File is a fixture file.
type File struct {
	Version string `yaml:"version"`
	Cases   []Case `yaml:"cases"`
}

// LoadFile loads and parses a YAML fixture file from the given path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read suite file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a File.
func Parse(data []byte) (*File, error) {
	var f File

	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse suite YAML: %w", err)
	}

	applyDefaults(&f)

	for i, c := range f.Cases {
		switch c.Kind {
		case KindText, KindMoney, KindNumber, KindRoundTrip:
		default:
			return nil, fmt.Errorf("case %d (%s): unknown kind %q", i, c.Label(), c.Kind)
		}

		if c.Kind == KindRoundTrip && c.Invalid {
			return nil, fmt.Errorf("case %d (%s): round trips cannot be invalid", i, c.Label())
		}
	}

	return &f, nil
}

func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = "1"
	}

	for i := range f.Cases {
		if f.Cases[i].Kind == "" {
			f.Cases[i].Kind = KindText
		}
	}
}
