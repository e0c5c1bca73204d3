package speller

import "strings"

// Sample picks up to max distinct synonyms from meanings for a compact list.
// The first pass takes at most one new synonym from each meaning, the second
// fills the remaining room in meaning order. Words are compared ignoring case
// and the original word is never returned. more reports that at least one
// further candidate was left out.
func Sample(original string, meanings []Meaning, max int) (words []string, more bool) {
	seen := map[string]bool{normalizeKey(original): true}

	// take adds syn when it is new; full reports that a new candidate did not fit
	take := func(syn string) (added, full bool) {
		key := normalizeKey(syn)
		if key == "" || seen[key] {
			return false, false
		}
		if len(words) >= max {
			return false, true
		}
		seen[key] = true
		words = append(words, strings.TrimSpace(syn))
		return true, false
	}

	// breadth: one per meaning
	for _, m := range meanings {
		for _, syn := range m.Synonyms() {
			added, full := take(syn)
			if full {
				return words, true
			}
			if added {
				break
			}
		}
	}

	// depth: whatever is left
	for _, m := range meanings {
		for _, syn := range m.Synonyms() {
			if _, full := take(syn); full {
				return words, true
			}
		}
	}

	return words, false
}

func normalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
