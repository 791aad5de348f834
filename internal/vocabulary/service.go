// Package vocabulary assembles word details, category word lists and study sessions
// from a word cache, a lookup provider and a category word source.
package vocabulary

import (
	"context"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/at-ishikawa/vocabstudy/internal/dictionary"
	"github.com/samber/lo"
)

// WordCache is the subset of the word cache the service reads and writes.
type WordCache interface {
	Get(key string) (dictionary.WordRecord, bool)
	Put(key string, record dictionary.WordRecord) error
}

var _ WordCache = (*dictionary.FileCache)(nil)

type Service struct {
	cache    WordCache
	provider dictionary.Provider
	source   CategorySource

	randMu sync.Mutex
	rand   *rand.Rand
}

type Option func(*Service)

// WithCategorySource replaces the built-in category table
func WithCategorySource(source CategorySource) Option {
	return func(s *Service) {
		s.source = source
	}
}

// WithRand sets the random source used to shuffle study sessions
func WithRand(r *rand.Rand) Option {
	return func(s *Service) {
		s.rand = r
	}
}

func NewService(cache WordCache, provider dictionary.Provider, opts ...Option) *Service {
	s := &Service{
		cache:    cache,
		provider: provider,
		source:   NewStaticCategorySource(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rand == nil {
		s.rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return s
}

// Categories returns the built-in category names
func (s *Service) Categories() []string {
	return Categories()
}

// GetWordDetails returns the record for word from the cache, looking it up and caching it on a miss.
// The second result is false when no record could be produced.
func (s *Service) GetWordDetails(ctx context.Context, word string) (dictionary.WordRecord, bool) {
	key := dictionary.NormalizeKey(word)
	if key == "" {
		return dictionary.WordRecord{}, false
	}
	if record, ok := s.cache.Get(key); ok {
		return record, true
	}

	record, err := s.provider.Lookup(ctx, word)
	if err != nil {
		slog.Default().Info("word lookup failed",
			"word", word,
			"error", err)
		return dictionary.WordRecord{}, false
	}
	if err := s.cache.Put(key, record); err != nil {
		slog.Default().Warn("failed to persist word to cache",
			"word", word,
			"error", err)
	}
	return record, true
}

// GetCategoryWords returns details for up to limit words of category, in the source's order.
// When the category source fails, a single placeholder record named after the category is returned.
func (s *Service) GetCategoryWords(ctx context.Context, category string, limit int) []dictionary.WordRecord {
	if limit <= 0 {
		return []dictionary.WordRecord{}
	}

	words, err := s.source.WordsFor(ctx, category, limit)
	if err != nil {
		slog.Default().Warn("category word source failed",
			"category", category,
			"error", err)
		return []dictionary.WordRecord{dictionary.Placeholder(category)}
	}
	return s.enrich(ctx, truncate(words, limit))
}

// GenerateStudySession returns at most wordCount distinct words in random order.
// An empty category mixes words from every category.
func (s *Service) GenerateStudySession(ctx context.Context, category string, wordCount int) []dictionary.WordRecord {
	if wordCount <= 0 {
		return []dictionary.WordRecord{}
	}

	var records []dictionary.WordRecord
	if category != "" {
		records = s.GetCategoryWords(ctx, category, wordCount)
	} else {
		words, err := s.source.MixedWords(ctx, wordCount)
		if err != nil || len(words) == 0 {
			slog.Default().Warn("mixed word source failed, using the built-in categories",
				"error", err)
			words = staticMixedWords()
		}
		records = s.enrich(ctx, words)
	}

	records = lo.Filter(records, func(record dictionary.WordRecord, _ int) bool {
		return record.Word != ""
	})
	records = lo.UniqBy(records, func(record dictionary.WordRecord) string {
		return record.Word
	})
	s.shuffle(records)
	if len(records) > wordCount {
		records = records[:wordCount]
	}
	return records
}

func (s *Service) enrich(ctx context.Context, words []string) []dictionary.WordRecord {
	records := make([]dictionary.WordRecord, 0, len(words))
	for _, word := range words {
		if dictionary.NormalizeKey(word) == "" {
			continue
		}
		record, ok := s.GetWordDetails(ctx, word)
		if !ok {
			continue
		}
		records = append(records, record)
	}
	return records
}

func (s *Service) shuffle(records []dictionary.WordRecord) {
	s.randMu.Lock()
	defer s.randMu.Unlock()
	s.rand.Shuffle(len(records), func(i, j int) {
		records[i], records[j] = records[j], records[i]
	})
}
