// Package morph provides the core types and resolution logic for the
// Atlas morphological lexicon: paradigms, triggers, classification and
// stem extraction.
package morph

import (
	"encoding/json"
	"fmt"
)

// Gender is a grammatical gender value.
type Gender string

const (
	Masculine Gender = "Masculine"
	Feminine  Gender = "Feminine"
	Neuter    Gender = "Neuter"
)

// PartOfSpeech identifies the lexical category of a lemma.
type PartOfSpeech string

const (
	Noun        PartOfSpeech = "Noun"
	Adjective   PartOfSpeech = "Adjective"
	Verb        PartOfSpeech = "Verb"
	Adverb      PartOfSpeech = "Adverb"
	Article     PartOfSpeech = "Article"
	Preposition PartOfSpeech = "Preposition"
	Conjunction PartOfSpeech = "Conjunction"
	Pronoun     PartOfSpeech = "Pronoun"
	Particle    PartOfSpeech = "Particle"
	Numeral     PartOfSpeech = "Numeral"
)

// MorphFlags encodes a grammatical feature combination (gender, case,
// number) as an opaque integer. Atlas only stores and compares flags;
// interpretation belongs to the downstream compiler.
type MorphFlags int

// Ending is one inflectional ending of a paradigm: the feature flags of
// the form and the suffix appended to the stem to produce it.
//
// On the wire an ending is the two-element array [flags, suffix], which
// the downstream compiler expects. The struct form exists so Go code
// doesn't juggle raw interface slices.
type Ending struct {
	Flags  MorphFlags
	Suffix string
}

// MarshalJSON encodes the ending as [flags, suffix].
func (e Ending) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]any{int(e.Flags), e.Suffix})
}

// UnmarshalJSON decodes the [flags, suffix] pair form.
func (e *Ending) UnmarshalJSON(data []byte) error {
	var pair [2]json.RawMessage
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("parsing ending pair: %w", err)
	}
	var flags int
	if err := json.Unmarshal(pair[0], &flags); err != nil {
		return fmt.Errorf("parsing ending flags: %w", err)
	}
	var suffix string
	if err := json.Unmarshal(pair[1], &suffix); err != nil {
		return fmt.Errorf("parsing ending suffix: %w", err)
	}
	e.Flags = MorphFlags(flags)
	e.Suffix = suffix
	return nil
}

// Paradigm is one inflection pattern: an id plus the ordered endings that
// extend a stem into each grammatical form. Paradigms are immutable once
// loaded; ending order is preserved from configuration because the
// downstream compiler relies on it.
type Paradigm struct {
	ID      int      `json:"id"`
	Endings []Ending `json:"endings"`
}

// Lemma is a single dictionary entry: the extracted stem plus its gender
// and part of speech.
//
// Verbs carry Neuter as a placeholder because the exchange schema has a
// mandatory gender field; it makes no linguistic claim.
type Lemma struct {
	ID     int          `json:"id"`
	Text   string       `json:"text"`
	Gender Gender       `json:"gender"`
	POS    PartOfSpeech `json:"pos"`
}

// Dictionary is the persisted output artifact: all resolved lemmas plus
// the distinct paradigms they reference. Field names and nesting are part
// of the exchange format and must not change.
type Dictionary struct {
	Version   int        `json:"version"`
	Lemmas    []Lemma    `json:"lemmas"`
	Paradigms []Paradigm `json:"paradigms"`
}

// DictionaryVersion is the fixed version stamped on every built artifact.
const DictionaryVersion = 1
