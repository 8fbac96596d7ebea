package lexicon

import (
	"fmt"
	"io"
	"sort"

	"github.com/logos-lang/atlas/internal/morph"
	"github.com/logos-lang/atlas/internal/wiki"
)

// TemplateCount is one row of the discovery report.
type TemplateCount struct {
	Name  string
	Count int
}

// Discover scans the corpus and counts occurrences of inflection-template
// names on classifiable entries. It exists for configuration authoring:
// the report shows which templates are worth mapping to paradigms. limit
// caps the number of classifiable pages scanned; 0 means scan everything.
//
// Rows come back sorted by descending count, then name, so the report is
// stable across runs.
func Discover(src PageSource, limit int) ([]TemplateCount, error) {
	counts := make(map[string]int)
	scanned := 0

	for {
		if limit > 0 && scanned >= limit {
			break
		}

		page, err := src.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading corpus: %w", err)
		}

		if _, ok := morph.Classify(page.Text); !ok {
			continue
		}
		scanned++

		for _, name := range wiki.Templates(page.Text) {
			if isInflectionTemplate(name) {
				counts[name]++
			}
		}
	}

	rows := make([]TemplateCount, 0, len(counts))
	for name, count := range counts {
		rows = append(rows, TemplateCount{Name: name, Count: count})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Count != rows[j].Count {
			return rows[i].Count > rows[j].Count
		}
		return rows[i].Name < rows[j].Name
	})

	return rows, nil
}
