//go:build cgo && hunspell

package engine

// #cgo pkg-config: hunspell
//
// #include <stdlib.h>
// #include <hunspell.h>
import "C"

import (
	"errors"
	"fmt"
	"unsafe"
)

// Hunspell is a Speller backed by libhunspell
type Hunspell struct {
	handle *C.Hunhandle
}

// OpenHunspell loads an affix file and a dictionary
func OpenHunspell(affPath, dicPath string) (*Hunspell, error) {
	if !readable(affPath) || !readable(dicPath) {
		return nil, fmt.Errorf("%w: %s, %s", ErrUnreadable, dicPath, affPath)
	}

	cAffPath := C.CString(affPath)
	defer C.free(unsafe.Pointer(cAffPath))

	cDicPath := C.CString(dicPath)
	defer C.free(unsafe.Pointer(cDicPath))

	handle := C.Hunspell_create(cAffPath, cDicPath)
	if handle == nil {
		return nil, errors.New("hunspell: failed to create handle")
	}
	return &Hunspell{handle: handle}, nil
}

// Spell implements Speller
func (h *Hunspell) Spell(word []byte) bool {
	cWord := C.CString(string(word))
	defer C.free(unsafe.Pointer(cWord))

	return C.Hunspell_spell(h.handle, cWord) != 0
}

// Suggest implements Speller
func (h *Hunspell) Suggest(word []byte) *List {
	cWord := C.CString(string(word))
	defer C.free(unsafe.Pointer(cWord))

	var cArray **C.char
	n := C.Hunspell_suggest(h.handle, &cArray, cWord)
	return h.list(cArray, n)
}

// Stem implements Speller
func (h *Hunspell) Stem(word []byte) *List {
	cWord := C.CString(string(word))
	defer C.free(unsafe.Pointer(cWord))

	var cArray **C.char
	n := C.Hunspell_stem(h.handle, &cArray, cWord)
	return h.list(cArray, n)
}

// Generate implements Speller
func (h *Hunspell) Generate(word, model []byte) *List {
	cWord := C.CString(string(word))
	defer C.free(unsafe.Pointer(cWord))

	cModel := C.CString(string(model))
	defer C.free(unsafe.Pointer(cModel))

	var cArray **C.char
	n := C.Hunspell_generate(h.handle, &cArray, cWord, cModel)
	return h.list(cArray, n)
}

// Add implements Speller
func (h *Hunspell) Add(word []byte) {
	cWord := C.CString(string(word))
	defer C.free(unsafe.Pointer(cWord))

	C.Hunspell_add(h.handle, cWord)
}

// Encoding implements Speller
func (h *Hunspell) Encoding() string {
	return C.GoString(C.Hunspell_get_dic_encoding(h.handle))
}

// Close implements Speller
func (h *Hunspell) Close() error {
	if h.handle != nil {
		C.Hunspell_destroy(h.handle)
		h.handle = nil
	}
	return nil
}

// list copies a hunspell string list; the native array is freed on Release
func (h *Hunspell) list(cArray **C.char, n C.int) *List {
	if n <= 0 {
		return NewList(nil, nil)
	}

	words := make([]string, int(n))
	for i, v := range unsafe.Slice(cArray, int(n)) {
		words[i] = C.GoString(v)
	}

	handle := h.handle
	return NewList(words, func() {
		C.Hunspell_free_list(handle, &cArray, n)
	})
}
