// Package datasync provides import/export between YAML files and the word cache.
package datasync

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/at-ishikawa/vocabstudy/internal/dictionary"
)

// WordCache is the subset of the word cache that import and export need.
type WordCache interface {
	Get(key string) (dictionary.WordRecord, bool)
	Put(key string, record dictionary.WordRecord) error
	Entries() []dictionary.Entry
}

var _ WordCache = (*dictionary.FileCache)(nil)

// ImportResult tracks counts for each import operation.
type ImportResult struct {
	New     int
	Skipped int
	Updated int
	Invalid int
}

// ImportOptions controls import behavior.
type ImportOptions struct {
	DryRun         bool
	UpdateExisting bool
}

// ExportData is the YAML document layout shared by export and import.
type ExportData struct {
	Entries []dictionary.Entry `yaml:"entries"`
}

// Importer reads a YAML document of word records and puts them into the cache.
type Importer struct {
	cache  WordCache
	writer io.Writer
}

// NewImporter creates a new Importer. Progress for skipped entries is written to writer.
func NewImporter(cache WordCache, writer io.Writer) *Importer {
	return &Importer{
		cache:  cache,
		writer: writer,
	}
}

// Import reads entries from r. Keys are normalized, and an entry without a key is keyed by its word.
func (imp *Importer) Import(r io.Reader, opts ImportOptions) (*ImportResult, error) {
	var data ExportData
	if err := yaml.NewDecoder(r).Decode(&data); err != nil {
		if errors.Is(err, io.EOF) {
			return &ImportResult{}, nil
		}
		return nil, fmt.Errorf("yaml.Decode() > %w", err)
	}

	var result ImportResult
	for i, entry := range data.Entries {
		record := entry.Record
		key := dictionary.NormalizeKey(entry.Key)
		if key == "" {
			key = dictionary.NormalizeKey(record.Word)
		}
		if key == "" || strings.TrimSpace(record.Word) == "" {
			result.Invalid++
			_, _ = fmt.Fprintf(imp.writer, "skipping entry %d: a word is required\n", i+1)
			continue
		}
		if record.Meanings == nil {
			record.Meanings = []dictionary.Meaning{}
		}
		if record.Examples == nil {
			record.Examples = []string{}
		}

		_, exists := imp.cache.Get(key)
		if exists && !opts.UpdateExisting {
			result.Skipped++
			continue
		}
		if !opts.DryRun {
			if err := imp.cache.Put(key, record); err != nil {
				return nil, fmt.Errorf("cache.Put(%s) > %w", key, err)
			}
		}
		if exists {
			result.Updated++
		} else {
			result.New++
		}
	}
	return &result, nil
}

// Exporter writes every cached record as a YAML document.
type Exporter struct {
	cache WordCache
}

// NewExporter creates a new Exporter.
func NewExporter(cache WordCache) *Exporter {
	return &Exporter{cache: cache}
}

// Export writes the cache to w ordered by key and returns the number of records written.
func (e *Exporter) Export(w io.Writer) (int, error) {
	data := ExportData{
		Entries: e.cache.Entries(),
	}

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(data); err != nil {
		return 0, fmt.Errorf("yaml.Encode() > %w", err)
	}
	if err := encoder.Close(); err != nil {
		return 0, fmt.Errorf("encoder.Close() > %w", err)
	}
	return len(data.Entries), nil
}
