package dictionary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheScansOnce(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "en_US.dic", "en_US.aff")
	cache := NewCache([]string{dir}, nil)

	first, err := cache.Catalog()
	require.NoError(t, err)
	assert.Equal(t, []string{"en-US"}, first.Languages())
	assert.Equal(t, []string{dir}, cache.Dirs())

	touch(t, dir, "de_DE.dic", "de_DE.aff")
	again, err := cache.Catalog()
	require.NoError(t, err)
	assert.Same(t, first, again, "the catalog is memoized until a rescan")

	rescanned, err := cache.Rescan()
	require.NoError(t, err)
	assert.Equal(t, []string{"de-DE", "en-US"}, rescanned.Languages())

	latest, err := cache.Catalog()
	require.NoError(t, err)
	assert.Same(t, rescanned, latest)
	assert.Equal(t, 1, first.Len(), "a committed catalog never changes")
}

func TestCacheWithoutDirectories(t *testing.T) {
	cache := NewCacheFromLocations(Locations{SystemDirs: []string{t.TempDir() + "/none"}}, nil)

	catalog, err := cache.Catalog()
	require.NoError(t, err)
	assert.Zero(t, catalog.Len())
	assert.Len(t, cache.Candidates(), 2)
	assert.Empty(t, cache.Dirs())
}
