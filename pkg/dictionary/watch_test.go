package dictionary

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherRescansOnNewDictionary(t *testing.T) {
	dir := t.TempDir()
	cache := NewCache([]string{dir}, nil)
	catalog, err := cache.Catalog()
	require.NoError(t, err)
	require.Zero(t, catalog.Len())

	rescans := make(chan *Catalog, 16)
	w, err := NewWatcher(cache, func(c *Catalog, err error) {
		assert.NoError(t, err)
		rescans <- c
	}, 20*time.Millisecond, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, w.Start(ctx))
	defer w.Stop()

	touch(t, dir, "README")
	touch(t, dir, "en_US.aff", "en_US.dic")

	timeout := time.After(5 * time.Second)
	for {
		select {
		case c := <-rescans:
			if c.Contains("en-US") {
				cached, err := cache.Catalog()
				require.NoError(t, err)
				assert.Same(t, c, cached)
				return
			}
		case <-timeout:
			t.Fatal("watcher did not rescan after the dictionary was added")
		}
	}
}

func TestWatcherStopTwice(t *testing.T) {
	w, err := NewWatcher(NewCache(nil, nil), nil, 0, nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultDebounce, w.debounce)

	require.NoError(t, w.Start(context.Background()))
	w.Stop()
	w.Stop()
}

func TestIsDictionaryFile(t *testing.T) {
	for _, name := range []string{"en_US.dic", "/x/en_US.aff", "th_en_US.dat", "th_en_US.idx"} {
		assert.True(t, isDictionaryFile(name), name)
	}
	for _, name := range []string{"README", "en_US.dic~", "notes.txt"} {
		assert.False(t, isDictionaryFile(name), name)
	}
}
