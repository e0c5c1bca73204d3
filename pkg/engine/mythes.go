//go:build cgo && mythes

package engine

// #cgo pkg-config: mythes
// #cgo CXXFLAGS: -std=c++11
//
// #include <stdlib.h>
// #include "mythes_shim.h"
import "C"

import (
	"fmt"
	"unsafe"
)

// MyThes is a Thesaurus backed by libmythes (OpenOffice .idx/.dat files)
type MyThes struct {
	handle *C.mythes_handle
}

// OpenMyThes loads a thesaurus index and data file
func OpenMyThes(idxPath, datPath string) (*MyThes, error) {
	if !readable(idxPath) || !readable(datPath) {
		return nil, fmt.Errorf("%w: %s, %s", ErrUnreadable, datPath, idxPath)
	}

	cIdx := C.CString(idxPath)
	defer C.free(unsafe.Pointer(cIdx))

	cDat := C.CString(datPath)
	defer C.free(unsafe.Pointer(cDat))

	return &MyThes{handle: C.mythes_create(cIdx, cDat)}, nil
}

// Lookup implements Thesaurus
func (t *MyThes) Lookup(word []byte) *Entries {
	cWord := C.CString(string(word))
	defer C.free(unsafe.Pointer(cWord))

	var result unsafe.Pointer
	count := C.mythes_lookup(t.handle, cWord, C.int(len(word)), &result)
	if count <= 0 {
		return NewEntries(nil, nil)
	}

	senses := make([]Sense, int(count))
	for i := range senses {
		ci := C.int(i)
		senses[i].Description = C.GoString(C.mythes_defn(result, ci))
		n := int(C.mythes_syn_count(result, ci))
		senses[i].Synonyms = make([]string, n)
		for j := 0; j < n; j++ {
			senses[i].Synonyms[j] = C.GoString(C.mythes_syn(result, ci, C.int(j)))
		}
	}

	handle := t.handle
	return NewEntries(senses, func() {
		C.mythes_cleanup(handle, &result, count)
	})
}

// Encoding implements Thesaurus
func (t *MyThes) Encoding() string {
	return C.GoString(C.mythes_encoding(t.handle))
}

// Close implements Thesaurus
func (t *MyThes) Close() error {
	if t.handle != nil {
		C.mythes_destroy(t.handle)
		t.handle = nil
	}
	return nil
}
