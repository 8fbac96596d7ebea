package morph

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEndingJSONPairForm(t *testing.T) {
	p := Paradigm{
		ID: 1,
		Endings: []Ending{
			{Flags: 145, Suffix: "ος"},
			{Flags: 146, Suffix: "ου"},
		},
	}

	data, err := json.Marshal(p)
	require.NoError(t, err)
	require.JSONEq(t, `{"id":1,"endings":[[145,"ος"],[146,"ου"]]}`, string(data))

	var back Paradigm
	require.NoError(t, json.Unmarshal(data, &back))
	require.Equal(t, p, back)
}

func TestEndingUnmarshalRejectsMalformed(t *testing.T) {
	var e Ending
	require.Error(t, json.Unmarshal([]byte(`{"flags":1}`), &e))
	require.Error(t, json.Unmarshal([]byte(`["ος",145]`), &e))
}

func TestDictionaryJSONShape(t *testing.T) {
	dict := Dictionary{
		Version: DictionaryVersion,
		Lemmas: []Lemma{
			{ID: 101, Text: "άνθρωπ", Gender: Masculine, POS: Noun},
		},
		Paradigms: []Paradigm{
			{ID: 1, Endings: []Ending{{Flags: 145, Suffix: "ος"}}},
		},
	}

	data, err := json.Marshal(dict)
	require.NoError(t, err)

	// Field names and nesting are the exchange contract with the
	// downstream compiler.
	require.JSONEq(t, `{
		"version": 1,
		"lemmas": [{"id":101,"text":"άνθρωπ","gender":"Masculine","pos":"Noun"}],
		"paradigms": [{"id":1,"endings":[[145,"ος"]]}]
	}`, string(data))
}
