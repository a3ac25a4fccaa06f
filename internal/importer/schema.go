// Package importer loads case bundles: files describing one or more
// cases together with their questionnaire answers, for bulk intake or
// migration from another system.
package importer

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Bundle is the top-level structure of an import file. JSON files are
// accepted as well since JSON is valid YAML.
type Bundle struct {
	Cases []CaseImport `yaml:"cases"`
}

type CaseImport struct {
	FirstName    string `yaml:"first_name"`
	LastName     string `yaml:"last_name"`
	IDNumber     string `yaml:"id_number"`
	DateOfBirth  string `yaml:"date_of_birth"`
	Phone        string `yaml:"phone"`
	Email        string `yaml:"email"`
	Address      string `yaml:"address"`
	CaseSummary  string `yaml:"case_summary"`
	MainConcerns string `yaml:"main_concerns"`
	Goals        string `yaml:"goals"`
	// Status defaults to active.
	Status string `yaml:"status"`

	// Forms is keyed by questionnaire domain.
	Forms map[string]FormImport `yaml:"forms"`
}

type FormImport struct {
	Submitted bool           `yaml:"submitted"`
	Answers   map[string]any `yaml:"answers"`
}

// LoadBundle reads and parses an import file.
func LoadBundle(path string) (*Bundle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseBundle(data)
}

func ParseBundle(data []byte) (*Bundle, error) {
	var b Bundle
	if err := yaml.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	return &b, nil
}
