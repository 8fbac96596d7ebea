package lexicon

import (
	"testing"

	"github.com/logos-lang/atlas/internal/wiki"
	"github.com/stretchr/testify/require"
)

func TestDiscoverCounts(t *testing.T) {
	src := &sliceSource{pages: []wiki.Page{
		{Title: "άνθρωπος", Text: "{{ουσιαστικό|el}}\n{{el-κλίση-ος}}"},
		{Title: "δρόμος", Text: "{{ουσιαστικό|el}}\n{{el-κλίση-ος}}"},
		{Title: "νίκη", Text: "{{ουσιαστικό|el|θηλ}}\n{{el-κλίση-η}}"},
		// Not classifiable: its templates must not be counted.
		{Title: "word", Text: "{{en-noun}}\n{{el-κλίση-ος}}"},
		// Classifiable but no inflection templates.
		{Title: "και", Text: "{{σύνδεσμος|el}}\n{{ουσιαστικό|el}}"},
	}}

	rows, err := Discover(src, 0)
	require.NoError(t, err)

	require.Equal(t, []TemplateCount{
		{Name: "el-κλίση-ος", Count: 2},
		{Name: "el-κλίση-η", Count: 1},
	}, rows)
}

func TestDiscoverOrderIsDeterministic(t *testing.T) {
	src := &sliceSource{pages: []wiki.Page{
		{Title: "α", Text: "{{ουσιαστικό|el}}\n{{el-κλίση-β}}\n{{el-κλίση-α}}"},
	}}

	rows, err := Discover(src, 0)
	require.NoError(t, err)

	// Equal counts fall back to name order.
	require.Equal(t, []TemplateCount{
		{Name: "el-κλίση-α", Count: 1},
		{Name: "el-κλίση-β", Count: 1},
	}, rows)
}

func TestDiscoverLimit(t *testing.T) {
	src := &sliceSource{pages: []wiki.Page{
		{Title: "άνθρωπος", Text: "{{ουσιαστικό|el}}\n{{el-κλίση-ος}}"},
		{Title: "δρόμος", Text: "{{ουσιαστικό|el}}\n{{el-κλίση-ος}}"},
	}}

	rows, err := Discover(src, 1)
	require.NoError(t, err)
	require.Equal(t, []TemplateCount{{Name: "el-κλίση-ος", Count: 1}}, rows)
}

func TestDiscoverEmpty(t *testing.T) {
	rows, err := Discover(&sliceSource{}, 0)
	require.NoError(t, err)
	require.Empty(t, rows)
}
