//go:build cgo && hunspell

package engine

func openDefaultSpeller(affPath, dicPath string) (Speller, error) {
	return OpenHunspell(affPath, dicPath)
}
