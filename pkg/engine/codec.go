package engine

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
)

// Codec converts between Go strings and an engine's character set
type Codec struct {
	name string
	enc  encoding.Encoding
}

// UTF8 is the codec used when an engine does not name its encoding
var UTF8 = Codec{name: "UTF-8", enc: unicode.UTF8}

// dictionary encodings as they appear in hunspell SET lines and mythes headers,
// upper-cased with separators removed
var knownEncodings = map[string]encoding.Encoding{
	"UTF8":       unicode.UTF8,
	"ISO88591":   charmap.ISO8859_1,
	"ISO88592":   charmap.ISO8859_2,
	"ISO88593":   charmap.ISO8859_3,
	"ISO88594":   charmap.ISO8859_4,
	"ISO88595":   charmap.ISO8859_5,
	"ISO88596":   charmap.ISO8859_6,
	"ISO88597":   charmap.ISO8859_7,
	"ISO88598":   charmap.ISO8859_8,
	"ISO88599":   charmap.ISO8859_9,
	"ISO885910":  charmap.ISO8859_10,
	"ISO885913":  charmap.ISO8859_13,
	"ISO885914":  charmap.ISO8859_14,
	"ISO885915":  charmap.ISO8859_15,
	"ISO885916":  charmap.ISO8859_16,
	"KOI8R":      charmap.KOI8R,
	"KOI8U":      charmap.KOI8U,
	"CP1250":     charmap.Windows1250,
	"CP1251":     charmap.Windows1251,
	"CP1252":     charmap.Windows1252,
	"CP1253":     charmap.Windows1253,
	"CP1254":     charmap.Windows1254,
	"CP1255":     charmap.Windows1255,
	"CP1256":     charmap.Windows1256,
	"CP1257":     charmap.Windows1257,
	"CP1258":     charmap.Windows1258,
	"TIS6202533": charmap.Windows874,
}

// LookupCodec finds the codec for an encoding name such as "ISO8859-1",
// "UTF-8" or "microsoft-cp1251". An empty name means UTF-8.
func LookupCodec(name string) (Codec, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return UTF8, nil
	}

	key := encodingKey(name)
	key = strings.TrimPrefix(key, "MICROSOFT")
	key = strings.TrimPrefix(key, "WINDOWS")
	if strings.HasPrefix(key, "125") {
		key = "CP" + key
	}
	if enc, ok := knownEncodings[key]; ok {
		return Codec{name: name, enc: enc}, nil
	}

	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		return UTF8, fmt.Errorf("unsupported encoding %q", name)
	}
	return Codec{name: name, enc: enc}, nil
}

// encodingKey upper-cases name and drops '-', '_' and spaces
func encodingKey(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '-', '_', ' ':
			return -1
		}
		return r
	}, strings.ToUpper(name))
}

// Name returns the encoding name the codec was looked up with
func (c Codec) Name() string {
	if c.enc == nil {
		return UTF8.name
	}
	return c.name
}

func (c Codec) isUTF8() bool {
	return c.enc == nil || c.enc == unicode.UTF8
}

// Encode converts s to the engine character set. Characters the set cannot
// represent are replaced by its substitute byte.
func (c Codec) Encode(s string) []byte {
	if c.isUTF8() {
		return []byte(s)
	}
	out, err := encoding.ReplaceUnsupported(c.enc.NewEncoder()).String(s)
	if err != nil {
		return []byte(s)
	}
	return []byte(out)
}

// Decode converts engine bytes to a Go string
func (c Codec) Decode(b []byte) string {
	return c.DecodeString(string(b))
}

// DecodeString converts an engine string held in a Go string
func (c Codec) DecodeString(s string) string {
	if c.isUTF8() {
		return strings.ToValidUTF8(s, "�")
	}
	out, err := c.enc.NewDecoder().String(s)
	if err != nil {
		return s
	}
	return out
}

// DecodeAll decodes every word of a list
func (c Codec) DecodeAll(words []string) []string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = c.DecodeString(w)
	}
	return out
}
