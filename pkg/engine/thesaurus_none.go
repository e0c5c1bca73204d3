//go:build !(cgo && mythes)

package engine

func openDefaultThesaurus(idxPath, datPath string) (Thesaurus, error) {
	return nil, ErrThesaurusUnsupported
}
