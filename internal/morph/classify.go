package morph

import "strings"

// Wiktionary part-of-speech section markers for Greek entries. The
// gender sub-markers only appear on noun entries.
const (
	markerNoun      = "{{ουσιαστικό|el"
	markerAdjective = "{{επίθετο|el"
	markerVerb      = "{{ρήμα|el"

	markerNounFeminine = "{{ουσιαστικό|el|θηλ}}"
	markerFeminine     = "{{θηλυκό}}"
	markerNounNeuter   = "{{ουσιαστικό|el|ουδ}}"
	markerNeuter       = "{{ουδέτερο}}"
)

// Classification is the part of speech and gender assigned to an entry.
type Classification struct {
	POS    PartOfSpeech
	Gender Gender
}

// Classify inspects raw entry text for the fixed part-of-speech markers
// and, for nouns, the gender sub-markers. It reports ok=false when no
// marker is present, which is the entry-qualification gate: such entries
// never reach template matching.
//
// Nouns without a gender marker default to Masculine. Verbs get Neuter
// because the exchange schema demands a gender for every lemma; the
// value is a placeholder, not an analysis.
func Classify(text string) (Classification, bool) {
	isNoun := strings.Contains(text, markerNoun)
	isAdjective := strings.Contains(text, markerAdjective)
	isVerb := strings.Contains(text, markerVerb)

	if !isNoun && !isAdjective && !isVerb {
		return Classification{}, false
	}

	c := Classification{POS: Noun, Gender: Masculine}
	switch {
	case isVerb:
		c.POS = Verb
		c.Gender = Neuter
	case isAdjective:
		c.POS = Adjective
	case isNoun:
		if strings.Contains(text, markerNounFeminine) || strings.Contains(text, markerFeminine) {
			c.Gender = Feminine
		} else if strings.Contains(text, markerNounNeuter) || strings.Contains(text, markerNeuter) {
			c.Gender = Neuter
		}
	}

	return c, true
}
