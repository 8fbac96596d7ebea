package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeYAML(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

const validParadigm = `
- id: 1
  name: noun-os-masculine
  pos: Noun
  example: άνθρωπος
  triggers:
    - template: el-κλίση-ος
    - suffix: ος
      gender: Masculine
  endings:
    - flags: 145
      suffix: ος
    - flags: 146
      suffix: ου
`

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	writeYAML(t, dir, "nouns.yaml", validParadigm)

	defs, err := LoadFile(filepath.Join(dir, "nouns.yaml"))
	require.NoError(t, err)
	require.Len(t, defs, 1)

	def := defs[0]
	require.Equal(t, 1, def.ID)
	require.Equal(t, "noun-os-masculine", def.Name)
	require.Len(t, def.Triggers, 2)
	require.Equal(t, "el-κλίση-ος", def.Triggers[0].Template)
	require.Equal(t, "ος", def.Triggers[1].Suffix)
	require.Equal(t, "Masculine", def.Triggers[1].Gender)
	require.Equal(t, []Ending{{Flags: 145, Suffix: "ος"}, {Flags: 146, Suffix: "ου"}}, def.Endings)
}

func TestLoadDirLexicalOrder(t *testing.T) {
	dir := t.TempDir()
	writeYAML(t, dir, "b.yaml", `
- id: 2
  name: second
  endings:
    - flags: 1
      suffix: η
`)
	writeYAML(t, dir, "a.yaml", `
- id: 1
  name: first
  endings:
    - flags: 1
      suffix: ος
`)

	defs, err := LoadDir(dir)
	require.NoError(t, err)
	require.Len(t, defs, 2)
	// a.yaml sorts before b.yaml regardless of creation order.
	require.Equal(t, "first", defs[0].Name)
	require.Equal(t, "second", defs[1].Name)
}

func TestLoadDirIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	writeYAML(t, dir, "nouns.yaml", validParadigm)
	writeYAML(t, dir, "README.txt", "not yaml")

	defs, err := LoadDir(dir)
	require.NoError(t, err)
	require.Len(t, defs, 1)
}

func TestLoadDirEmpty(t *testing.T) {
	defs, err := LoadDir(t.TempDir())
	require.NoError(t, err)
	require.Empty(t, defs)
}

func TestValidationFailures(t *testing.T) {
	cases := []struct {
		name string
		yaml string
	}{
		{"missing id", `
- name: broken
  endings:
    - flags: 1
      suffix: ος
`},
		{"missing name", `
- id: 7
  endings:
    - flags: 1
      suffix: ος
`},
		{"no endings", `
- id: 7
  name: broken
`},
		{"empty trigger", `
- id: 7
  name: broken
  triggers:
    - gender: Masculine
  endings:
    - flags: 1
      suffix: ος
`},
		{"bad gender", `
- id: 7
  name: broken
  triggers:
    - suffix: ος
      gender: Common
  endings:
    - flags: 1
      suffix: ος
`},
		{"not yaml", `{{{`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			writeYAML(t, dir, "broken.yaml", tc.yaml)

			_, err := LoadDir(dir)
			require.Error(t, err)
		})
	}
}

// A single bad file fails the whole load; no partial result survives.
func TestLoadDirNoPartialLoad(t *testing.T) {
	dir := t.TempDir()
	writeYAML(t, dir, "a.yaml", validParadigm)
	writeYAML(t, dir, "b.yaml", `
- id: 9
  name: broken
`)

	defs, err := LoadDir(dir)
	require.Error(t, err)
	require.Nil(t, defs)
}
