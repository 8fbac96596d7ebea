package lexicon

import "github.com/logos-lang/atlas/internal/morph"

// Synthetic returns the small hand-authored dictionary emitted when no
// corpus is available, so downstream tooling always has a valid artifact
// to consume. It covers one -ος masculine noun plus the two stems of the
// definite article.
func Synthetic() morph.Dictionary {
	nounOS := morph.Paradigm{
		ID: 1,
		Endings: []morph.Ending{
			{Flags: 145, Suffix: "ος"}, // masc nom sg
			{Flags: 146, Suffix: "ου"}, // masc gen sg
			{Flags: 148, Suffix: "ο"},  // masc acc sg
			{Flags: 273, Suffix: "οι"}, // masc nom pl
		},
	}

	articleO := morph.Paradigm{
		ID: 2,
		Endings: []morph.Ending{
			{Flags: 145, Suffix: ""},  // ο
			{Flags: 273, Suffix: "ι"}, // οι
		},
	}

	articleT := morph.Paradigm{
		ID: 3,
		Endings: []morph.Ending{
			{Flags: 146, Suffix: "ου"},  // του
			{Flags: 274, Suffix: "ων"},  // των
			{Flags: 148, Suffix: "ον"},  // τον
			{Flags: 276, Suffix: "ους"}, // τους
		},
	}

	return morph.Dictionary{
		Version: morph.DictionaryVersion,
		Lemmas: []morph.Lemma{
			{ID: 101, Text: "άνθρωπ", Gender: morph.Masculine, POS: morph.Noun},
			{ID: 999, Text: "ο", Gender: morph.Masculine, POS: morph.Noun},
			{ID: 1000, Text: "τ", Gender: morph.Masculine, POS: morph.Noun},
		},
		Paradigms: []morph.Paradigm{nounOS, articleO, articleT},
	}
}
