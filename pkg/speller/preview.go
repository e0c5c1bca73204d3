package speller

import "strings"

// Limits used when meanings and suggestions are shown in a menu
const (
	// MaxMenuItems caps suggestions and meanings offered at once
	MaxMenuItems = 15
	// MaxPreviewWords caps synonyms shown on a meaning's one-line preview
	MaxPreviewWords = 5
	// MaxDisplayWord is the length a quoted word is cut to in menu labels
	MaxDisplayWord = 10
)

// Preview renders a meaning on one line: the description followed by up to
// maxWords synonyms. The first synonym is skipped since thesauri repeat the
// head word there. A trailing "..." marks synonyms left out.
func Preview(m Meaning, maxWords int) string {
	if len(m) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(m[0])
	for i := 2; i < len(m) && i < maxWords+1; i++ {
		b.WriteString(", ")
		b.WriteString(m[i])
	}
	if len(m) > maxWords+1 {
		b.WriteString(", ...")
	}
	return b.String()
}

// Abbreviate shortens word to max characters, ending it with "..."
func Abbreviate(word string, max int) string {
	r := []rune(word)
	if len(r) <= max || max < 3 {
		return word
	}
	return string(r[:max-2]) + "..."
}
