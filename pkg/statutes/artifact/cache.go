package artifact

import (
	"os"
	"path/filepath"

	lru "github.com/hashicorp/golang-lru/v2"
)

// cacheKey identifies one artifact snapshot. A rewritten artifact has a
// new mtime and therefore a new key, so stale tables age out instead of
// being served forever.
type cacheKey struct {
	path  string
	mtime int64
}

// Cache is the process-lifetime, read-only cache of loaded artifacts the
// display layer loads through. Entries are immutable once inserted.
type Cache struct {
	tags    *lru.Cache[cacheKey, *TagTable]
	effects *lru.Cache[cacheKey, *EffectTable]
}

// NewCache creates a cache holding up to size tables per pipeline variant.
func NewCache(size int) (*Cache, error) {
	tc, err := lru.New[cacheKey, *TagTable](size)
	if err != nil {
		return nil, err
	}
	ec, err := lru.New[cacheKey, *EffectTable](size)
	if err != nil {
		return nil, err
	}
	return &Cache{tags: tc, effects: ec}, nil
}

func keyFor(path string) (cacheKey, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return cacheKey{}, err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return cacheKey{}, err
	}
	return cacheKey{path: abs, mtime: info.ModTime().UnixNano()}, nil
}

// TagTable returns the cached table for the artifact at path, loading it
// on first use.
func (c *Cache) TagTable(path string) (*TagTable, error) {
	key, err := keyFor(path)
	if err != nil {
		return nil, err
	}
	if t, ok := c.tags.Get(key); ok {
		return t, nil
	}
	t, err := LoadTagTable(key.path)
	if err != nil {
		return nil, err
	}
	c.tags.Add(key, t)
	return t, nil
}

// EffectTable returns the cached table for the artifact at path, loading
// it on first use.
func (c *Cache) EffectTable(path string) (*EffectTable, error) {
	key, err := keyFor(path)
	if err != nil {
		return nil, err
	}
	if t, ok := c.effects.Get(key); ok {
		return t, nil
	}
	t, err := LoadEffectTable(key.path)
	if err != nil {
		return nil, err
	}
	c.effects.Add(key, t)
	return t, nil
}
