package wordlist

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"
)

// ErrCacheWrite wraps cache write failures from LoadCached. The returned
// list is still valid when this error is returned.
var ErrCacheWrite = errors.New("cache list")

// Current schema version - increment when payload format changes
const cacheSchemaVersion uint16 = 1

// Cache хранит нормализованные списки на диске по Digest исходного файла.
// Thread-safe for concurrent access.
type Cache struct {
	mu  sync.RWMutex
	dir string
}

type payload struct {
	Schema  uint16
	Entries []string
	Notes   []Note
}

// OpenCache initializes a cache at dir, or at $XDG_CACHE_HOME/<app> when dir is empty.
func OpenCache(app, dir string) (*Cache, error) {
	if dir == "" {
		base := os.Getenv("XDG_CACHE_HOME")
		if base == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return nil, err
			}
			base = filepath.Join(home, ".cache")
		}
		dir = filepath.Join(base, app)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Cache{dir: dir}, nil
}

// Dir returns the cache directory.
func (c *Cache) Dir() string { return c.dir }

func (c *Cache) pathFor(key Digest) string {
	return filepath.Join(c.dir, "lists", hex.EncodeToString(key[:])+".mp")
}

// Put serializes a list to the cache.
func (c *Cache) Put(l *List) (err error) {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(l.Digest)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		if rmErr := os.Remove(f.Name()); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) && err == nil {
			err = rmErr
		}
	}()

	enc := msgpack.NewEncoder(f)
	if err := enc.Encode(&payload{Schema: cacheSchemaVersion, Entries: l.Entries, Notes: l.Notes}); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	// Атомарная замена
	return os.Rename(f.Name(), p)
}

// Get reads a cached list by digest. Entries written with another schema are treated as missing.
func (c *Cache) Get(key Digest) (*List, bool, error) {
	if c == nil {
		return nil, false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	defer f.Close()

	var p payload
	if err := msgpack.NewDecoder(f).Decode(&p); err != nil {
		return nil, false, fmt.Errorf("decode cached list: %w", err)
	}
	if p.Schema != cacheSchemaVersion {
		return nil, false, nil
	}
	return &List{Entries: p.Entries, Notes: p.Notes, Digest: key}, true, nil
}

// DropAll invalidates the cache.
func (c *Cache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return os.RemoveAll(filepath.Join(c.dir, "lists"))
}

// LoadCached reads path, serving the normalized list from c when the file
// content is unchanged. A nil cache behaves like Load.
func LoadCached(c *Cache, path string) (*List, bool, error) {
	if c == nil {
		l, err := Load(path)
		return l, false, err
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, false, fmt.Errorf("read list %q: %w", path, err)
	}
	key := Digest(sha256.Sum256(raw))
	if l, ok, err := c.Get(key); err == nil && ok {
		l.Path = path
		return l, true, nil
	}
	l, err := Parse(raw)
	if err != nil {
		return nil, false, fmt.Errorf("parse list %q: %w", path, err)
	}
	l.Path = path
	if err := c.Put(l); err != nil {
		return l, false, fmt.Errorf("%w %q: %v", ErrCacheWrite, path, err)
	}
	return l, false, nil
}
