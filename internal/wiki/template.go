package wiki

import "strings"

// Templates returns the names of all template invocations in wikitext,
// in encounter order, outer templates before the ones nested in their
// arguments. A name runs from the opening braces to the first argument
// separator or closing braces; surrounding whitespace is trimmed.
func Templates(text string) []string {
	var names []string
	for i := 0; i < len(text); {
		open := strings.Index(text[i:], "{{")
		if open < 0 {
			break
		}
		start := i + open + 2

		end := start
	scan:
		for end < len(text) {
			switch {
			case text[end] == '|' || text[end] == '\n':
				break scan
			case strings.HasPrefix(text[end:], "}}") || strings.HasPrefix(text[end:], "{{"):
				break scan
			default:
				end++
			}
		}

		if name := strings.TrimSpace(text[start:end]); name != "" {
			names = append(names, name)
		}
		i = start
	}
	return names
}

// HasTemplate reports whether the wikitext invokes the named template.
func HasTemplate(text, name string) bool {
	for _, n := range Templates(text) {
		if n == name {
			return true
		}
	}
	return false
}
