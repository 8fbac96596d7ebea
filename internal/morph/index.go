package morph

import (
	"sort"
	"unicode/utf8"

	"github.com/logos-lang/atlas/internal/config"
)

// SuffixTrigger is one suffix-based recognition rule in the index:
// words ending in Suffix belong to paradigm ParadigmID. Gender is
// carried through from configuration when the rule is gender-specific.
type SuffixTrigger struct {
	Suffix     string
	Gender     Gender
	ParadigmID int
}

// Index is the read-only paradigm index built once per pipeline run.
// It holds the paradigm table plus the two derived lookup structures:
// an exact template-name map and a suffix list ordered by descending
// suffix length so the most specific suffix always matches first.
type Index struct {
	paradigms map[int]Paradigm
	templates map[string]int
	suffixes  []SuffixTrigger
}

// NewIndex builds an Index from validated paradigm definitions.
//
// Definitions are applied in slice order: a repeated paradigm id or
// template name overwrites the earlier one (last writer wins), which is
// why callers must enumerate configuration sources deterministically.
func NewIndex(defs []config.ParadigmDef) *Index {
	idx := &Index{
		paradigms: make(map[int]Paradigm),
		templates: make(map[string]int),
	}

	for _, def := range defs {
		endings := make([]Ending, len(def.Endings))
		for i, e := range def.Endings {
			endings[i] = Ending{Flags: MorphFlags(e.Flags), Suffix: e.Suffix}
		}
		idx.paradigms[def.ID] = Paradigm{ID: def.ID, Endings: endings}

		for _, t := range def.Triggers {
			if t.Template != "" {
				idx.templates[t.Template] = def.ID
			}
			if t.Suffix != "" {
				idx.suffixes = append(idx.suffixes, SuffixTrigger{
					Suffix:     t.Suffix,
					Gender:     Gender(t.Gender),
					ParadigmID: def.ID,
				})
			}
		}
	}

	// Longest suffix first, measured in codepoints; stable so ties keep
	// configuration order.
	sort.SliceStable(idx.suffixes, func(i, j int) bool {
		return utf8.RuneCountInString(idx.suffixes[i].Suffix) > utf8.RuneCountInString(idx.suffixes[j].Suffix)
	})

	return idx
}

// Paradigm returns the paradigm with the given id.
func (idx *Index) Paradigm(id int) (Paradigm, bool) {
	p, ok := idx.paradigms[id]
	return p, ok
}

// MatchTemplate maps an inflection-template name to its paradigm by
// exact lookup. There is no fuzzy or prefix matching here; selecting
// which template names to try is the caller's job.
func (idx *Index) MatchTemplate(name string) (Paradigm, bool) {
	id, ok := idx.templates[name]
	if !ok {
		return Paradigm{}, false
	}
	p, ok := idx.paradigms[id]
	return p, ok
}

// SuffixTriggers exposes the suffix index in its resolution order.
func (idx *Index) SuffixTriggers() []SuffixTrigger {
	return idx.suffixes
}

// Size returns the number of loaded paradigms.
func (idx *Index) Size() int {
	return len(idx.paradigms)
}
