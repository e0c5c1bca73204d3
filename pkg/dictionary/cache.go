package dictionary

import (
	"log/slog"
	"sync"
)

// Cache memoizes a catalog scan. The first call to Catalog scans the
// directories; later calls return the same catalog until Rescan is called.
type Cache struct {
	candidates []string
	logger     *slog.Logger

	mutex   sync.Mutex
	catalog *Catalog
	dirs    []string
}

// NewCache creates a cache over the given candidate directories, most
// important first (see CandidatePaths).
func NewCache(candidates []string, logger *slog.Logger) *Cache {
	if logger == nil {
		logger = slog.Default()
	}
	return &Cache{
		candidates: append([]string(nil), candidates...),
		logger:     logger,
	}
}

// NewCacheFromLocations is a convenience wrapper around CandidatePaths
func NewCacheFromLocations(loc Locations, logger *slog.Logger) *Cache {
	return NewCache(CandidatePaths(loc), logger)
}

// Catalog returns the cached catalog, scanning on first use
func (c *Cache) Catalog() (*Catalog, error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if c.catalog != nil {
		return c.catalog, nil
	}
	return c.scanLocked()
}

// Rescan enumerates the directories again. On failure the previous catalog
// stays in place and the error is returned.
func (c *Cache) Rescan() (*Catalog, error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	return c.scanLocked()
}

// Dirs returns the existing directories used by the last successful scan, in
// scan order.
func (c *Cache) Dirs() []string {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	return append([]string(nil), c.dirs...)
}

// Candidates returns the directories the cache searches, most important first
func (c *Cache) Candidates() []string {
	return append([]string(nil), c.candidates...)
}

func (c *Cache) scanLocked() (*Catalog, error) {
	dirs := ScanOrder(c.candidates)
	for i, d := range dirs {
		c.logger.Debug("dictionary search path", "index", i, "path", d)
	}

	catalog, err := Scan(dirs, c.logger)
	if err != nil {
		c.logger.Warn("dictionary scan failed, keeping previous catalog", "err", err)
		return c.catalog, err
	}

	c.catalog = catalog
	c.dirs = dirs
	c.logger.Info("dictionaries enumerated", "languages", catalog.Len(), "dirs", len(dirs))
	return catalog, nil
}
