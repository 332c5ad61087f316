// Package uuidcache assigns stable UUIDs to generated library elements.
//
// Regenerating a library must never change the identity of an element that
// already exists, so every minted UUID is recorded in a CSV file keyed by a
// normalized description of the element. Reruns resolve the same keys to the
// same UUIDs; only genuinely new elements mint new ones.
package uuidcache

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// Cache is a persistent key to UUID mapping. It is safe for concurrent use;
// the mutex is the only synchronization point of a generator run.
type Cache struct {
	mu      sync.Mutex
	path    string
	entries map[string]string
	dirty   bool
}

// New loads the cache backing file at path. A missing file yields an empty
// cache; any other read error is returned.
func New(path string) (*Cache, error) {
	c := &Cache{path: path, entries: make(map[string]string)}

	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return c, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening uuid cache: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = 2
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading uuid cache %s: %w", path, err)
		}
		c.entries[row[0]] = row[1]
	}
	return c, nil
}

// Key builds the normalized cache key for an element. The three parts are
// joined with dashes, lower-cased, and spaces are replaced with tildes so
// that keys never need CSV quoting for the common case.
func Key(category, fullName, identifier string) string {
	key := category + "-" + fullName + "-" + identifier
	key = strings.ToLower(key)
	return strings.ReplaceAll(key, " ", "~")
}

// Resolve returns the UUID stored for key, minting and recording a new
// random UUID on first use.
func (c *Cache) Resolve(key string) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if v, ok := c.entries[key]; ok {
		return v
	}
	v := uuid.New().String()
	c.entries[key] = v
	c.dirty = true
	return v
}

// Lookup returns the UUID stored for key without minting.
func (c *Cache) Lookup(key string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.entries[key]
	return v, ok
}

// Len reports the number of cached entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Dirty reports whether entries were minted since the last Save.
func (c *Cache) Dirty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dirty
}

// Save writes all entries sorted by key. The file is written to a temporary
// sibling first and atomically renamed into place, so a crashed run never
// leaves a truncated cache behind.
func (c *Cache) Save() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	keys := make([]string, 0, len(c.entries))
	for k := range c.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	tmp := c.path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("creating uuid cache: %w", err)
	}

	w := csv.NewWriter(f)
	for _, k := range keys {
		if err := w.Write([]string{k, c.entries[k]}); err != nil {
			f.Close()
			os.Remove(tmp)
			return fmt.Errorf("writing uuid cache: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("writing uuid cache: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("closing uuid cache: %w", err)
	}
	if err := os.Rename(tmp, c.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replacing uuid cache: %w", err)
	}
	c.dirty = false
	return nil
}
