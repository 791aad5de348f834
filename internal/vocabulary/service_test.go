package vocabulary

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/at-ishikawa/vocabstudy/internal/dictionary"
	mock_dictionary "github.com/at-ishikawa/vocabstudy/internal/mocks/dictionary"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// echoProvider returns a stub record for any word without touching the network
type echoProvider struct {
	calls []string
}

func (p *echoProvider) Lookup(_ context.Context, word string) (dictionary.WordRecord, error) {
	p.calls = append(p.calls, word)
	return stubRecord(word), nil
}

func stubRecord(word string) dictionary.WordRecord {
	return dictionary.WordRecord{
		Word: word,
		Meanings: []dictionary.Meaning{
			{PartOfSpeech: "interjection", Definitions: []string{"stub"}},
		},
		Examples: []string{},
	}
}

type failingProvider struct{}

func (failingProvider) Lookup(_ context.Context, word string) (dictionary.WordRecord, error) {
	return dictionary.WordRecord{}, errors.New("provider unavailable")
}

type stubCategorySource struct {
	words      []string
	mixedWords []string
	err        error
}

func (s stubCategorySource) WordsFor(_ context.Context, _ string, limit int) ([]string, error) {
	if s.err != nil {
		return nil, s.err
	}
	return truncate(s.words, limit), nil
}

func (s stubCategorySource) MixedWords(_ context.Context, limit int) ([]string, error) {
	if s.err != nil {
		return nil, s.err
	}
	return truncate(s.mixedWords, limit), nil
}

func newTestCache(t *testing.T) *dictionary.FileCache {
	t.Helper()
	return dictionary.NewFileCache(filepath.Join(t.TempDir(), "word_cache.json"))
}

func words(records []dictionary.WordRecord) []string {
	result := make([]string, 0, len(records))
	for _, record := range records {
		result = append(result, record.Word)
	}
	return result
}

func TestService_GetWordDetails_CachesAcrossCaseAndWhitespace(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mock_dictionary.NewMockProvider(ctrl)
	provider.EXPECT().
		Lookup(gomock.Any(), "Hello").
		Return(stubRecord("hello"), nil).
		Times(1)

	cache := newTestCache(t)
	service := NewService(cache, provider)

	first, ok := service.GetWordDetails(context.Background(), "Hello")
	require.True(t, ok)
	second, ok := service.GetWordDetails(context.Background(), "  hello ")
	require.True(t, ok)
	third, ok := service.GetWordDetails(context.Background(), "HELLO")
	require.True(t, ok)

	assert.Equal(t, first, second)
	assert.Equal(t, first, third)
	assert.Equal(t, 1, cache.Len())
}

func TestService_GetWordDetails_PersistsAcrossRestart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "word_cache.json")
	provider := &echoProvider{}

	service := NewService(dictionary.NewFileCache(path), provider)
	want, ok := service.GetWordDetails(context.Background(), "welcome")
	require.True(t, ok)

	restarted := NewService(dictionary.NewFileCache(path), failingProvider{})
	got, ok := restarted.GetWordDetails(context.Background(), "Welcome")
	require.True(t, ok)
	assert.Equal(t, want, got)
	assert.Equal(t, []string{"welcome"}, provider.calls)
}

// countingProvider is an echoProvider that is safe for concurrent lookups
type countingProvider struct {
	calls atomic.Int32
}

func (p *countingProvider) Lookup(_ context.Context, word string) (dictionary.WordRecord, error) {
	p.calls.Add(1)
	return stubRecord(word), nil
}

func TestService_GetWordDetails_ConcurrentLookups(t *testing.T) {
	const lookups = 24
	path := filepath.Join(t.TempDir(), "word_cache.json")
	provider := &countingProvider{}
	service := NewService(dictionary.NewFileCache(path), provider)

	var wg sync.WaitGroup
	var missing atomic.Int32
	for i := range lookups {
		wg.Add(1)
		go func() {
			defer wg.Done()
			word := fmt.Sprintf("Word%02d", i)
			record, ok := service.GetWordDetails(context.Background(), word)
			if !ok || record.Word != word {
				missing.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Zero(t, missing.Load())
	assert.Equal(t, int32(lookups), provider.calls.Load())

	reloaded := dictionary.NewFileCache(path)
	require.Equal(t, lookups, reloaded.Len())
	restarted := NewService(reloaded, failingProvider{})
	for i := range lookups {
		_, ok := restarted.GetWordDetails(context.Background(), fmt.Sprintf("word%02d", i))
		assert.True(t, ok)
	}
}

func TestService_GetWordDetails(t *testing.T) {
	tests := []struct {
		name     string
		word     string
		provider dictionary.Provider
		wantOK   bool
		want     dictionary.WordRecord
	}{
		{
			name:     "provider success",
			word:     "hi",
			provider: &echoProvider{},
			wantOK:   true,
			want:     stubRecord("hi"),
		},
		{
			name:     "provider failure is absent",
			word:     "hi",
			provider: failingProvider{},
			wantOK:   false,
		},
		{
			name:     "blank word is absent",
			word:     "   ",
			provider: &echoProvider{},
			wantOK:   false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cache := newTestCache(t)
			service := NewService(cache, tt.provider)

			got, ok := service.GetWordDetails(context.Background(), tt.word)
			assert.Equal(t, tt.wantOK, ok)
			if !tt.wantOK {
				assert.Equal(t, 0, cache.Len())
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestService_GetWordDetails_CacheWriteFailureStillReturnsRecord(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("not a directory"), 0644))

	cache := dictionary.NewFileCache(filepath.Join(blocker, "word_cache.json"))
	service := NewService(cache, &echoProvider{})

	got, ok := service.GetWordDetails(context.Background(), "farewell")
	require.True(t, ok)
	assert.Equal(t, "farewell", got.Word)
}

func TestService_GetCategoryWords(t *testing.T) {
	tests := []struct {
		name     string
		category string
		limit    int
		source   CategorySource
		provider dictionary.Provider
		want     []string
	}{
		{
			name:     "greetings in table order",
			category: "greetings",
			limit:    5,
			provider: &echoProvider{},
			want:     []string{"hello", "goodbye", "welcome", "farewell", "hi"},
		},
		{
			name:     "category lookup is case-insensitive and limited",
			category: "Travel",
			limit:    2,
			provider: &echoProvider{},
			want:     []string{"passport", "itinerary"},
		},
		{
			name:     "unknown category is empty",
			category: "unknown_xyz",
			limit:    5,
			provider: &echoProvider{},
			want:     []string{},
		},
		{
			name:     "zero limit is empty",
			category: "greetings",
			limit:    0,
			provider: &echoProvider{},
			want:     []string{},
		},
		{
			name:     "absent words are skipped",
			category: "food",
			limit:    5,
			provider: failingProvider{},
			want:     []string{},
		},
		{
			name:     "blank candidates are skipped",
			category: "anything",
			limit:    5,
			source:   stubCategorySource{words: []string{"cool", " ", "", "dude"}},
			provider: &echoProvider{},
			want:     []string{"cool", "dude"},
		},
		{
			name:     "source failure yields a placeholder",
			category: "space",
			limit:    5,
			source:   stubCategorySource{err: errors.New("model unavailable")},
			provider: &echoProvider{},
			want:     []string{"space"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var opts []Option
			if tt.source != nil {
				opts = append(opts, WithCategorySource(tt.source))
			}
			service := NewService(newTestCache(t), tt.provider, opts...)

			got := service.GetCategoryWords(context.Background(), tt.category, tt.limit)
			assert.Equal(t, tt.want, words(got))
		})
	}
}

func TestService_GetCategoryWords_Greetings(t *testing.T) {
	provider := &echoProvider{}
	service := NewService(newTestCache(t), provider)

	got := service.GetCategoryWords(context.Background(), "greetings", 5)

	require.Len(t, got, 5)
	for _, record := range got {
		assert.Equal(t, stubRecord(record.Word), record)
	}
	assert.Equal(t, []string{"hello", "goodbye", "welcome", "farewell", "hi"}, words(got))
	assert.Equal(t, []string{"hello", "goodbye", "welcome", "farewell", "hi"}, provider.calls)
}

func TestService_GetCategoryWords_Placeholder(t *testing.T) {
	service := NewService(newTestCache(t), &echoProvider{},
		WithCategorySource(stubCategorySource{err: errors.New("boom")}))

	got := service.GetCategoryWords(context.Background(), "space", 3)
	assert.Equal(t, []dictionary.WordRecord{dictionary.Placeholder("space")}, got)
}

func TestService_GenerateStudySession(t *testing.T) {
	tests := []struct {
		name      string
		category  string
		wordCount int
		source    CategorySource
		provider  dictionary.Provider
		wantLen   int
		wantWords []string
	}{
		{
			name:      "category session is truncated",
			category:  "food",
			wordCount: 3,
			provider:  &echoProvider{},
			wantLen:   3,
			wantWords: []string{"restaurant", "menu", "appetizer"},
		},
		{
			name:      "mixed session from static table",
			wordCount: 5,
			provider:  &echoProvider{},
			wantLen:   5,
		},
		{
			name:      "mixed source failure falls back to static table",
			wordCount: 4,
			source:    stubCategorySource{err: errors.New("boom")},
			provider:  &echoProvider{},
			wantLen:   4,
		},
		{
			name:      "duplicates are removed",
			category:  "anything",
			wordCount: 5,
			source:    stubCategorySource{words: []string{"Cool", "cool", "COOL ", "dude"}},
			provider:  lowercaseProvider{},
			wantLen:   2,
			wantWords: []string{"cool", "dude"},
		},
		{
			name:      "provider failure gives an empty session",
			category:  "food",
			wordCount: 3,
			provider:  failingProvider{},
			wantLen:   0,
		},
		{
			name:      "non-positive count gives an empty session",
			category:  "food",
			wordCount: 0,
			provider:  &echoProvider{},
			wantLen:   0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := []Option{WithRand(rand.New(rand.NewSource(1)))}
			if tt.source != nil {
				opts = append(opts, WithCategorySource(tt.source))
			}
			service := NewService(newTestCache(t), tt.provider, opts...)

			got := service.GenerateStudySession(context.Background(), tt.category, tt.wordCount)
			require.Len(t, got, tt.wantLen)

			seen := map[string]bool{}
			for _, record := range got {
				assert.NotEmpty(t, record.Word)
				assert.False(t, seen[record.Word], "duplicate word %s", record.Word)
				seen[record.Word] = true
			}
			if tt.wantWords != nil {
				assert.ElementsMatch(t, tt.wantWords, words(got))
			}
		})
	}
}

func TestService_GenerateStudySession_SeededShuffleIsDeterministic(t *testing.T) {
	newSeeded := func() *Service {
		return NewService(newTestCache(t), &echoProvider{}, WithRand(rand.New(rand.NewSource(42))))
	}

	first := newSeeded().GenerateStudySession(context.Background(), "", 10)
	second := newSeeded().GenerateStudySession(context.Background(), "", 10)

	require.Len(t, first, 10)
	assert.Equal(t, words(first), words(second))
}

func TestService_GenerateStudySession_KeepsFirstDuplicate(t *testing.T) {
	provider := recordsProvider{
		"colour": {Word: "color", Phonetic: "/ˈkʌl.ər/", Meanings: []dictionary.Meaning{}, Examples: []string{}},
		"color":  {Word: "color", Meanings: []dictionary.Meaning{}, Examples: []string{}},
	}
	service := NewService(newTestCache(t), provider,
		WithCategorySource(stubCategorySource{words: []string{"colour", "color"}}))

	got := service.GenerateStudySession(context.Background(), "spelling", 5)
	require.Len(t, got, 1)
	assert.Equal(t, "/ˈkʌl.ər/", got[0].Phonetic)
}

func TestService_Categories(t *testing.T) {
	service := NewService(newTestCache(t), &echoProvider{})
	assert.Equal(t, []string{
		"greetings", "business", "food", "travel",
		"slang", "phrases", "emergency", "idioms",
	}, service.Categories())
}

type lowercaseProvider struct{}

func (lowercaseProvider) Lookup(_ context.Context, word string) (dictionary.WordRecord, error) {
	return stubRecord(dictionary.NormalizeKey(word)), nil
}

type recordsProvider map[string]dictionary.WordRecord

func (p recordsProvider) Lookup(_ context.Context, word string) (dictionary.WordRecord, error) {
	record, ok := p[word]
	if !ok {
		return dictionary.WordRecord{}, dictionary.ErrNotFound
	}
	return record, nil
}
