//go:build cgo && mythes

package engine

func openDefaultThesaurus(idxPath, datPath string) (Thesaurus, error) {
	return OpenMyThes(idxPath, datPath)
}
