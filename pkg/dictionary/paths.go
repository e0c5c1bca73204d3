package dictionary

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
)

// Sub-directories appended to each search location
const (
	userSubDir           = "dicts/"
	hunspellSubDir       = "hunspell/"
	myspellSubDir        = "myspell/dicts/"
	EnvDataDirs          = "XDG_DATA_DIRS"
	DefaultConfigDirName = ".config/wordspinneret"
)

// Locations lists the roots that dictionary directories are derived from, each
// group in descending importance.
type Locations struct {
	// ConfigDir is the user's own directory; its dicts/ overrides everything
	ConfigDir string
	// DataDirs are application data directories, searched under dicts/
	DataDirs []string
	// SystemDirs are shared data roots, searched under hunspell/ and myspell/dicts/
	SystemDirs []string
}

// DefaultLocations returns the user config directory, no application data
// directories, and the system roots from XDG_DATA_DIRS followed by
// /usr/local/share and /usr/share.
func DefaultLocations() Locations {
	var loc Locations
	if home, err := homedir.Dir(); err == nil {
		loc.ConfigDir = filepath.Join(home, DefaultConfigDirName)
	}
	loc.SystemDirs = SystemDirs(os.Getenv(EnvDataDirs))
	return loc
}

// SystemDirs splits a colon separated XDG_DATA_DIRS value and appends the
// standard shared roots.
func SystemDirs(xdgDataDirs string) []string {
	var dirs []string
	for _, d := range strings.Split(xdgDataDirs, ":") {
		if d != "" {
			dirs = append(dirs, d)
		}
	}
	return append(dirs, "/usr/local/share/", "/usr/share/")
}

// CandidatePaths returns every directory that may hold dictionaries, most
// important first, without duplicates. Directories are not checked for
// existence.
func CandidatePaths(loc Locations) []string {
	var all []string

	// user dir and application data dirs
	user := append([]string{}, loc.DataDirs...)
	if loc.ConfigDir != "" {
		user = append([]string{loc.ConfigDir}, user...)
	}
	for _, d := range user {
		all = append(all, normalizeDir(d)+userSubDir)
	}

	// system data dirs
	for _, d := range loc.SystemDirs {
		all = append(all, normalizeDir(d)+hunspellSubDir)
		all = append(all, normalizeDir(d)+myspellSubDir)
	}

	// keep the first, more important, occurrence
	seen := make(map[string]bool, len(all))
	unique := all[:0]
	for _, p := range all {
		if seen[p] {
			continue
		}
		seen[p] = true
		unique = append(unique, p)
	}
	return unique
}

// ScanOrder drops the directories that do not exist and reverses the rest, so
// that the most important directory is scanned last and overrides the others.
func ScanOrder(candidates []string) []string {
	var paths []string
	for i := len(candidates) - 1; i >= 0; i-- {
		if dirExists(candidates[i]) {
			paths = append(paths, candidates[i])
		}
	}
	return paths
}

// normalizeDir uses forward slashes and always ends with one
func normalizeDir(path string) string {
	path = toSlash(path)
	if strings.HasSuffix(path, "/") {
		return path
	}
	return path + "/"
}
