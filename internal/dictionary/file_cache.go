package dictionary

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync"
)

// FileCache is a word cache kept fully in memory and persisted as a single JSON object.
// Every Put rewrites the whole file. There is no eviction, so the file grows for as
// long as new words are looked up.
type FileCache struct {
	path string

	mu      sync.RWMutex
	records map[string]WordRecord
}

// NewFileCache loads the cache file at path.
// A missing or unreadable file results in an empty cache.
func NewFileCache(path string) *FileCache {
	cache := &FileCache{
		path:    path,
		records: make(map[string]WordRecord),
	}
	cache.load()
	return cache
}

func (cache *FileCache) load() {
	contents, err := os.ReadFile(cache.path)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Default().Warn("failed to read word cache, starting empty",
				"path", cache.path,
				"error", err)
		}
		return
	}
	if len(contents) == 0 {
		return
	}

	records := make(map[string]WordRecord)
	if err := json.Unmarshal(contents, &records); err != nil {
		slog.Default().Warn("failed to parse word cache, starting empty",
			"path", cache.path,
			"error", err)
		return
	}
	cache.records = records
	slog.Default().Debug("loaded word cache", "path", cache.path, "entries", len(records))
}

// Get returns the record stored under key.
func (cache *FileCache) Get(key string) (WordRecord, bool) {
	cache.mu.RLock()
	defer cache.mu.RUnlock()
	record, ok := cache.records[key]
	return record, ok
}

// Put stores record under key and flushes the whole cache to disk.
// When the flush fails the record stays in memory and the error is returned.
func (cache *FileCache) Put(key string, record WordRecord) error {
	cache.mu.Lock()
	defer cache.mu.Unlock()

	cache.records[key] = record
	if err := cache.flush(); err != nil {
		slog.Default().Warn("failed to persist word cache, keeping entry in memory only",
			"path", cache.path,
			"key", key,
			"error", err)
		return err
	}
	return nil
}

// Len returns the number of cached records.
func (cache *FileCache) Len() int {
	cache.mu.RLock()
	defer cache.mu.RUnlock()
	return len(cache.records)
}

// Entry is a cached record together with its key.
type Entry struct {
	Key    string     `json:"key" yaml:"key"`
	Record WordRecord `json:"record" yaml:"record"`
}

// Entries returns a snapshot of the cache sorted by key.
func (cache *FileCache) Entries() []Entry {
	cache.mu.RLock()
	defer cache.mu.RUnlock()

	entries := make([]Entry, 0, len(cache.records))
	for key, record := range cache.records {
		entries = append(entries, Entry{Key: key, Record: record})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Key < entries[j].Key
	})
	return entries
}

// Clear removes every record from memory and from the file.
func (cache *FileCache) Clear() error {
	cache.mu.Lock()
	defer cache.mu.Unlock()

	cache.records = make(map[string]WordRecord)
	return cache.flush()
}

// flush must be called with mu held.
func (cache *FileCache) flush() error {
	contents, err := json.MarshalIndent(cache.records, "", "  ")
	if err != nil {
		return fmt.Errorf("json.MarshalIndent > %w", err)
	}
	if dir := filepath.Dir(cache.path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("os.MkdirAll(%s) > %w", dir, err)
		}
	}
	if err := os.WriteFile(cache.path, contents, 0644); err != nil {
		return fmt.Errorf("os.WriteFile(%s) > %w", cache.path, err)
	}
	return nil
}
