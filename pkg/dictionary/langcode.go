package dictionary

import (
	"strings"
	"unicode"
)

// thesaurusPrefix is the conventional prefix of MyThes data files (th_en_US.dat)
const thesaurusPrefix = "th_"

// NormalizeLanguage turns a dictionary or thesaurus filename into a language
// code. The canonical form is ab-XY (e.g. en-US); names that do not look like a
// language tag are returned as they are once the directory and extension are gone.
func NormalizeLanguage(filename string, isSpeller bool) string {
	name := filename

	// Strip the directory and the extension
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.LastIndex(name, "."); i > 0 {
		name = name[:i]
	}

	if !isSpeller && strings.HasPrefix(name, thesaurusPrefix) {
		name = name[len(thesaurusPrefix):]
	}

	r := []rune(name)
	if len(r) > 2 && r[2] == '_' {
		r[2] = '-'
	}

	// ab-XY or ab-XY_vN collapse to ab-XY
	if len(r) > 2 && r[2] == '-' && (len(r) == 5 || isVersionSuffix(r)) {
		return strings.ToLower(string(r[0:2])) + "-" + strings.ToUpper(string(r[3:5]))
	}

	return string(r)
}

// isVersionSuffix reports whether r continues with _vN after the region part
func isVersionSuffix(r []rune) bool {
	return len(r) >= 8 && r[5] == '_' && r[6] == 'v' && unicode.IsDigit(r[7])
}

// baseName returns path without its extension. A leading dot in the file name
// is not treated as an extension separator.
func baseName(path string) string {
	slash := strings.LastIndex(path, "/")
	if dot := strings.LastIndex(path, "."); dot > slash+1 {
		return path[:dot]
	}
	return path
}
