package dictionary

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeLanguage(t *testing.T) {
	tests := []struct {
		filename  string
		isSpeller bool
		want      string
	}{
		{"/usr/share/hunspell/en_US.dic", true, "en-US"},
		{"en_US.aff", true, "en-US"},
		{"de-de.dic", true, "de-DE"},
		{"EN_gb.dic", true, "en-GB"},
		{"/usr/share/mythes/th_en_US_v2.dat", false, "en-US"},
		{"th_de_CH_v3.idx", false, "de-CH"},
		{"th_fr_FR.dat", false, "fr-FR"},
		{"pt_BR_v1.dic", true, "pt-BR"},
		{"th_en_US.dic", true, "th-en_US"},
		{"hu_HU_vX.dic", true, "hu-HU_vX"},
		{"sr-Latn-RS.dic", true, "sr-Latn-RS"},
		{"ca_ES-valencia.dic", true, "ca-ES-valencia"},
		{"eo.dic", true, "eo"},
		{"medical.dic", true, "medical"},
		{"dir.with.dots/en_AU.dic", true, "en-AU"},
		{".hidden", true, ".hidden"},
		{"en_US", true, "en-US"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeLanguage(tt.filename, tt.isSpeller), "filename %q", tt.filename)
	}
}

func TestNormalizeLanguageIdempotent(t *testing.T) {
	inputs := []string{"en_US.dic", "th_en_US_v2.dat", "de-de.dic", "eo.dic", "sr-Latn-RS.dic", "pt_BR_v1.dic"}

	for _, in := range inputs {
		for _, isSpeller := range []bool{true, false} {
			once := NormalizeLanguage(in, isSpeller)
			assert.Equal(t, once, NormalizeLanguage(once, isSpeller), "input %q", in)
		}
	}
}

func TestBaseName(t *testing.T) {
	assert.Equal(t, "/d/en_US", baseName("/d/en_US.dic"))
	assert.Equal(t, "/d.x/en_US", baseName("/d.x/en_US"))
	assert.Equal(t, "/d/.hidden", baseName("/d/.hidden"))
	assert.Equal(t, "/d/th_en_US_v2", baseName("/d/th_en_US_v2.dat"))
}
