package lexicon

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/logos-lang/atlas/internal/morph"
)

// WriteFile serializes the dictionary to path as indented JSON, the
// exchange form the downstream compiler reads.
func WriteFile(path string, dict morph.Dictionary) error {
	data, err := json.MarshalIndent(dict, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling dictionary: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing dictionary: %w", err)
	}
	return nil
}

// ReadFile loads a previously written dictionary artifact.
func ReadFile(path string) (morph.Dictionary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return morph.Dictionary{}, fmt.Errorf("reading dictionary: %w", err)
	}
	var dict morph.Dictionary
	if err := json.Unmarshal(data, &dict); err != nil {
		return morph.Dictionary{}, fmt.Errorf("parsing dictionary %s: %w", path, err)
	}
	return dict, nil
}
