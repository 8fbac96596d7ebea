// Package lexicon builds the output dictionary from a corpus page
// stream: classify each entry, match its inflection template to a
// paradigm, resolve the stem, and accumulate lemmas plus the distinct
// paradigms they reference.
package lexicon

import (
	"fmt"
	"io"
	"strings"

	"github.com/logos-lang/atlas/internal/morph"
	"github.com/logos-lang/atlas/internal/wiki"
)

// PageSource yields corpus pages one at a time and returns io.EOF when
// exhausted. *wiki.Reader satisfies it; tests use slice-backed sources.
type PageSource interface {
	Next() (wiki.Page, error)
}

// Greek Wiktionary inflection-template name prefixes. Only templates in
// this family are tried against the paradigm index.
var inflectionPrefixes = []string{"el-κλίση", "el-κλίσ-"}

func isInflectionTemplate(name string) bool {
	for _, p := range inflectionPrefixes {
		if strings.HasPrefix(name, p) {
			return true
		}
	}
	return false
}

// Builder runs the extraction pass over a page stream.
type Builder struct {
	index *morph.Index

	// Limit caps the number of extracted lemmas; 0 means no cap.
	Limit int
	// Progress, when non-nil, receives periodic scan progress lines.
	Progress io.Writer
}

// NewBuilder creates a Builder over the given paradigm index.
func NewBuilder(idx *morph.Index) *Builder {
	return &Builder{index: idx}
}

// Build consumes src sequentially and assembles the output dictionary.
// Entries with no part-of-speech marker or no matching inflection
// template are skipped silently; that is data loss the pipeline accepts,
// not an error. Each page is dropped after processing so the pass runs
// in a bounded working set regardless of corpus size.
func (b *Builder) Build(src PageSource) (morph.Dictionary, error) {
	lemmas := make([]morph.Lemma, 0)
	paradigms := make([]morph.Paradigm, 0)
	seen := make(map[int]bool)

	nextID := 1
	scanned := 0

	for {
		if b.Limit > 0 && len(lemmas) >= b.Limit {
			break
		}

		page, err := src.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return morph.Dictionary{}, fmt.Errorf("reading corpus: %w", err)
		}

		scanned++
		if b.Progress != nil && scanned%10000 == 0 {
			fmt.Fprintf(b.Progress, "scanned %d pages, %d lemmas\n", scanned, len(lemmas))
		}

		class, ok := morph.Classify(page.Text)
		if !ok {
			continue
		}

		paradigm, ok := b.matchParadigm(page.Text)
		if !ok {
			continue
		}

		stem := b.index.Stem(page.Title, paradigm.ID)

		lemmas = append(lemmas, morph.Lemma{
			ID:     nextID,
			Text:   stem.Stem,
			Gender: class.Gender,
			POS:    class.POS,
		})
		nextID++

		if !seen[paradigm.ID] {
			seen[paradigm.ID] = true
			paradigms = append(paradigms, paradigm)
		}
	}

	return morph.Dictionary{
		Version:   morph.DictionaryVersion,
		Lemmas:    lemmas,
		Paradigms: paradigms,
	}, nil
}

// matchParadigm tries the entry's inflection-template candidates against
// the index in encounter order and stops at the first hit.
func (b *Builder) matchParadigm(text string) (morph.Paradigm, bool) {
	for _, name := range wiki.Templates(text) {
		if !isInflectionTemplate(name) {
			continue
		}
		if p, ok := b.index.MatchTemplate(name); ok {
			return p, true
		}
	}
	return morph.Paradigm{}, false
}
