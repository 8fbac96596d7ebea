package morph

import "strings"

// StemMethod records how a stem was obtained, so callers can tell a
// confident extraction from a degraded one.
type StemMethod int

const (
	// StemTrigger: a configured suffix trigger of the paradigm matched.
	StemTrigger StemMethod = iota
	// StemHeuristic: one of the fixed fallback suffixes was stripped.
	StemHeuristic
	// StemIdentity: nothing applied; the stem is the unmodified word.
	StemIdentity
)

func (m StemMethod) String() string {
	switch m {
	case StemTrigger:
		return "trigger"
	case StemHeuristic:
		return "heuristic"
	default:
		return "identity"
	}
}

// StemResult is a resolved stem tagged with its resolution method.
type StemResult struct {
	Stem   string
	Method StemMethod
}

// Fallback suffixes tried, in order, when no configured trigger matches.
// They cover the common Greek terminal letters for nouns, adjectives and
// verbs in citation form.
var fallbackSuffixes = []string{"ος", "η", "ο", "ω"}

// ResolveStem derives the stem of word for the given paradigm from the
// paradigm's configured suffix triggers. Triggers are scanned in the
// index's global descending-length order so the longest matching suffix
// wins. It reports ok=false when no trigger of that paradigm is a
// trailing substring of word, which is expected when the paradigm was
// matched via template rather than suffix.
func (idx *Index) ResolveStem(word string, paradigmID int) (string, bool) {
	for _, t := range idx.suffixes {
		if t.ParadigmID != paradigmID {
			continue
		}
		if strings.HasSuffix(word, t.Suffix) {
			return strings.TrimSuffix(word, t.Suffix), true
		}
	}
	return "", false
}

// Stem resolves the stem of word for paradigmID with the full fallback
// chain: configured triggers first, then the fixed heuristic suffixes,
// and finally the word itself as an explicitly lossy last resort.
func (idx *Index) Stem(word string, paradigmID int) StemResult {
	if stem, ok := idx.ResolveStem(word, paradigmID); ok {
		return StemResult{Stem: stem, Method: StemTrigger}
	}
	for _, suffix := range fallbackSuffixes {
		if strings.HasSuffix(word, suffix) {
			return StemResult{Stem: strings.TrimSuffix(word, suffix), Method: StemHeuristic}
		}
	}
	return StemResult{Stem: word, Method: StemIdentity}
}
