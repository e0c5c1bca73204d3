package spellcheck

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTree(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"a.txt":     "a qiuck fox\n",
		"b.md":      "qiuck\n",
		"sub/c.txt": "a fox qiuck\n",
	}
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return dir
}

func files(results []SpellCheckResult) []string {
	var out []string
	for _, r := range results {
		out = append(out, filepath.Base(r.FilePath))
	}
	return out
}

func TestCheckPath(t *testing.T) {
	s := newSession(t)
	dir := writeTree(t)

	tests := []struct {
		name      string
		pattern   string
		recursive bool
		want      []string
	}{
		{name: "top level only", want: []string{"a.txt", "b.md"}},
		{name: "pattern", pattern: "*.txt", want: []string{"a.txt"}},
		{name: "recursive", pattern: "*.txt", recursive: true, want: []string{"a.txt", "c.txt"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results, err := CheckPath(s, dir, tt.pattern, tt.recursive, 0)
			require.NoError(t, err)
			assert.Equal(t, tt.want, files(results))
		})
	}
}

func TestCheckPathSingleFile(t *testing.T) {
	s := newSession(t)
	dir := writeTree(t)

	results, err := CheckPath(s, filepath.Join(dir, "b.md"), "*.txt", false, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"b.md"}, files(results))
}

func TestCheckPathErrors(t *testing.T) {
	s := newSession(t)
	dir := writeTree(t)

	_, err := CheckPath(s, filepath.Join(dir, "missing"), "", false, 0)
	assert.Error(t, err)

	_, err = CheckPath(s, dir, "[", false, 0)
	assert.ErrorContains(t, err, "invalid pattern")
}
