//go:build !(cgo && hunspell)

package engine

func openDefaultSpeller(affPath, dicPath string) (Speller, error) {
	return OpenWordList(affPath, dicPath)
}
