package dictionary

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCandidatePaths(t *testing.T) {
	loc := Locations{
		ConfigDir:  "/home/u/.config/wordspinneret",
		DataDirs:   []string{"/opt/app", "/home/u/.config/wordspinneret/"},
		SystemDirs: []string{"/usr/share", "/usr/local/share/", "/usr/share/"},
	}

	assert.Equal(t, []string{
		"/home/u/.config/wordspinneret/dicts/",
		"/opt/app/dicts/",
		"/usr/share/hunspell/",
		"/usr/share/myspell/dicts/",
		"/usr/local/share/hunspell/",
		"/usr/local/share/myspell/dicts/",
	}, CandidatePaths(loc))
}

func TestCandidatePathsWithoutConfigDir(t *testing.T) {
	loc := Locations{SystemDirs: []string{`C:\share`}}

	assert.Equal(t, []string{"C:/share/hunspell/", "C:/share/myspell/dicts/"}, CandidatePaths(loc))
}

func TestSystemDirs(t *testing.T) {
	assert.Equal(t, []string{"/a", "/b", "/usr/local/share/", "/usr/share/"}, SystemDirs("/a:/b::"))
	assert.Equal(t, []string{"/usr/local/share/", "/usr/share/"}, SystemDirs(""))
}

func TestDefaultLocations(t *testing.T) {
	t.Setenv(EnvDataDirs, "/xdg/one:/xdg/two")

	loc := DefaultLocations()
	assert.Equal(t, []string{"/xdg/one", "/xdg/two", "/usr/local/share/", "/usr/share/"}, loc.SystemDirs)
	assert.Empty(t, loc.DataDirs)
	if loc.ConfigDir != "" {
		assert.True(t, strings.HasSuffix(filepath.ToSlash(loc.ConfigDir), DefaultConfigDirName))
	}
}

func TestScanOrder(t *testing.T) {
	root := t.TempDir()
	important := filepath.Join(root, "user")
	middle := filepath.Join(root, "app")
	least := filepath.Join(root, "system")
	touch(t, important)
	touch(t, middle)
	touch(t, least)

	got := ScanOrder([]string{important, filepath.Join(root, "missing"), middle, least})
	assert.Equal(t, []string{least, middle, important}, got)
}
