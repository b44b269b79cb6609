// Package json implements cheat.Cache as a single JSON file.
package json

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fwojciec/cheat"
)

var _ cheat.Cache = (*Cache)(nil)

// envelope is the v1 wire format of the cache file.
type envelope struct {
	Version int              `json:"version"`
	Entries map[string]entry `json:"entries"`
}

type entry struct {
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Cache keeps every entry in memory and rewrites the whole file on Put.
type Cache struct {
	path string
	now  func() time.Time

	mu      sync.RWMutex
	entries map[string]entry
}

// Open loads the cache file at path. A missing file is an empty cache; it
// is created on the first Put.
func Open(path string) (*Cache, error) {
	c := &Cache{path: path, now: time.Now, entries: make(map[string]entry)}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return c, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	if c.entries, err = unmarshal(data); err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return c, nil
}

// Get returns the value stored under key.
func (c *Cache) Get(_ context.Context, key string) (string, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[key]
	return e.Value, ok, nil
}

// Put stores value under key and saves the file. On a failed save the
// in-memory state is rolled back.
func (c *Cache) Put(_ context.Context, key, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	prev, had := c.entries[key]
	c.entries[key] = entry{Value: value, UpdatedAt: c.now().UTC()}
	if err := c.save(); err != nil {
		if had {
			c.entries[key] = prev
		} else {
			delete(c.entries, key)
		}
		return err
	}
	return nil
}

func (c *Cache) save() error {
	data, err := json.MarshalIndent(envelope{Version: 1, Entries: c.entries}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	dir := filepath.Dir(c.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("create directories: %w", err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(c.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	_, werr := tmp.Write(data)
	cerr := tmp.Close()
	if err := errors.Join(werr, cerr); err != nil {
		os.Remove(tmp.Name()) // best-effort cleanup
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), c.path); err != nil {
		os.Remove(tmp.Name()) // best-effort cleanup
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

func unmarshal(data []byte) (map[string]entry, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("unmarshal envelope: %w", err)
	}
	if env.Version != 1 {
		return nil, fmt.Errorf("unsupported envelope version: %d", env.Version)
	}
	if env.Entries == nil {
		env.Entries = make(map[string]entry)
	}
	return env.Entries, nil
}
