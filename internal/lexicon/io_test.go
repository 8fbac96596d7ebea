package lexicon

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/logos-lang/atlas/internal/morph"
	"github.com/stretchr/testify/require"
)

func TestWriteReadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dictionary_intermediate.json")

	dict := Synthetic()
	require.NoError(t, WriteFile(path, dict))

	back, err := ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, dict, back)
}

func TestWriteFileShape(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	require.NoError(t, WriteFile(path, Synthetic()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	text := string(data)
	require.Contains(t, text, `"version": 1`)
	require.Contains(t, text, `"άνθρωπ"`)
	// Endings travel as [flags, suffix] pairs.
	require.Contains(t, text, `145`)
	require.Contains(t, text, `"ος"`)
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
}

func TestSynthetic(t *testing.T) {
	dict := Synthetic()

	require.Equal(t, morph.DictionaryVersion, dict.Version)
	require.Len(t, dict.Lemmas, 3)
	require.Len(t, dict.Paradigms, 3)

	require.Equal(t, "άνθρωπ", dict.Lemmas[0].Text)
	require.Equal(t, morph.Masculine, dict.Lemmas[0].Gender)

	// The article paradigms carry the endings the compiler expands
	// against the "ο" and "τ" stems.
	require.Equal(t, 2, dict.Paradigms[1].ID)
	require.Equal(t, morph.Ending{Flags: 145, Suffix: ""}, dict.Paradigms[1].Endings[0])
}
