// Package config handles loading and validating paradigm configuration
// for the Atlas pipeline.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// Trigger declares how a paradigm is recognized from raw entry text:
// by an exact inflection-template name, by a word-final suffix, or both.
type Trigger struct {
	Template string `yaml:"template,omitempty"`
	Suffix   string `yaml:"suffix,omitempty"`
	Gender   string `yaml:"gender,omitempty"`
}

// Ending is one configured inflectional ending.
type Ending struct {
	Flags  int    `yaml:"flags"`
	Suffix string `yaml:"suffix"`
}

// ParadigmDef is a single paradigm definition as authored in YAML.
type ParadigmDef struct {
	ID       int       `yaml:"id"`
	Name     string    `yaml:"name"`
	POS      string    `yaml:"pos,omitempty"`
	Example  string    `yaml:"example,omitempty"`
	Triggers []Trigger `yaml:"triggers,omitempty"`
	Endings  []Ending  `yaml:"endings"`
}

// LoadFile loads paradigm definitions from a single YAML file.
// Each file holds a top-level list of definitions.
func LoadFile(path string) ([]ParadigmDef, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading paradigm file: %w", err)
	}

	var defs []ParadigmDef
	if err := yaml.Unmarshal(data, &defs); err != nil {
		return nil, fmt.Errorf("parsing paradigm file %s: %w", path, err)
	}

	for i := range defs {
		if err := validate(&defs[i]); err != nil {
			return nil, fmt.Errorf("%s: paradigm %d: %w", path, i, err)
		}
	}

	return defs, nil
}

// LoadDir loads every *.yaml file in dir, in lexical path order so that
// repeated runs see configuration sources in the same sequence. Any
// schema violation fails the whole load; there is no partial result.
func LoadDir(dir string) ([]ParadigmDef, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("listing paradigm files: %w", err)
	}
	sort.Strings(paths)

	var defs []ParadigmDef
	for _, path := range paths {
		fileDefs, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		defs = append(defs, fileDefs...)
	}

	return defs, nil
}

// validate checks one definition against the expected schema.
func validate(def *ParadigmDef) error {
	if def.ID <= 0 {
		return fmt.Errorf("missing or non-positive id")
	}
	if def.Name == "" {
		return fmt.Errorf("missing name")
	}
	if len(def.Endings) == 0 {
		return fmt.Errorf("no endings")
	}
	for _, t := range def.Triggers {
		if t.Template == "" && t.Suffix == "" {
			return fmt.Errorf("trigger with neither template nor suffix")
		}
		if err := validGender(t.Gender); err != nil {
			return err
		}
	}
	return nil
}

func validGender(g string) error {
	switch g {
	case "", "Masculine", "Feminine", "Neuter":
		return nil
	}
	return fmt.Errorf("unknown gender %q", g)
}
