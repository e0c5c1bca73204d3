package spellcheck

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Code-Monger/WordSpinneret/pkg/speller"
)

// CheckPath checks a file, or every file of a directory whose name matches
// pattern. Sub-directories are only entered when recursive is set. An empty
// pattern matches every file.
func CheckPath(s *speller.Session, path, pattern string, recursive bool, maxSuggestions int) ([]SpellCheckResult, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("error accessing path: %w", err)
	}
	if !info.IsDir() {
		return CheckFile(s, path, maxSuggestions)
	}
	if pattern != "" {
		// reject a malformed pattern before walking
		if _, err := filepath.Match(pattern, ""); err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
		}
	}

	var results []SpellCheckResult
	walkFn := func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if p != path && !recursive {
				return filepath.SkipDir
			}
			return nil
		}

		if pattern != "" {
			if matched, _ := filepath.Match(pattern, d.Name()); !matched {
				return nil
			}
		}

		found, err := CheckFile(s, p, maxSuggestions)
		if err != nil {
			return err
		}
		results = append(results, found...)
		return nil
	}

	if err := filepath.WalkDir(path, walkFn); err != nil {
		return nil, err
	}
	return results, nil
}
