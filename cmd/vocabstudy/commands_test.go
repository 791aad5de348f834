package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/vocabstudy/internal/dictionary"
	"github.com/at-ishikawa/vocabstudy/internal/testutil"
)

var foodDefinitions = map[string]string{
	"restaurant": "a place where meals are served",
	"menu":       "a list of dishes",
	"appetizer":  "a small dish before a meal",
	"entree":     "the main course",
	"dessert":    "the sweet course",
	"hello":      "a greeting",
}

func setupCommandTest(t *testing.T) (string, *testutil.DictionaryServer) {
	t.Helper()
	server := testutil.NewDictionaryServer(t, foodDefinitions)
	tmpDir := t.TempDir()
	setConfigFile(t, testutil.SetupTestConfig(t, tmpDir, server.URL))
	setProviderOverride(t, "")
	return tmpDir, server
}

func TestNewLookupCommand(t *testing.T) {
	tmpDir, server := setupCommandTest(t)

	output, err := executeCommand(t, newLookupCommand(), "Menu")
	require.NoError(t, err)
	assert.Contains(t, output, "menu")
	assert.Contains(t, output, "noun")
	assert.Contains(t, output, "1. a list of dishes")

	_, err = executeCommand(t, newLookupCommand(), "  menu ")
	require.NoError(t, err)
	assert.Equal(t, 1, server.Calls())

	cache := dictionary.NewFileCache(testutil.CacheFile(tmpDir))
	assert.Equal(t, 1, cache.Len())
}

func TestNewLookupCommand_NotFound(t *testing.T) {
	tmpDir, _ := setupCommandTest(t)

	_, err := executeCommand(t, newLookupCommand(), "zyzzyva")
	assert.ErrorIs(t, err, errNoDetails)

	cache := dictionary.NewFileCache(testutil.CacheFile(tmpDir))
	assert.Equal(t, 0, cache.Len())
}

func TestNewLookupCommand_GenerativeProvider(t *testing.T) {
	description := `{"word": "lit", "phonetic": "/lɪt/", "translation": "最高", "transliteration": "saikou",
		"meanings": [{"part_of_speech": "adjective", "definitions": ["exciting"]}],
		"examples": ["The party was lit."], "translated_examples": ["パーティーは最高だった。"],
		"usage_notes": "Informal.", "is_slang": true}`
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		body, err := json.Marshal(map[string]any{
			"choices": []map[string]any{{
				"index":         0,
				"message":       map[string]any{"role": "assistant", "content": description},
				"finish_reason": "stop",
			}},
		})
		require.NoError(t, err)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(body)
	}))
	defer ts.Close()

	tmpDir := t.TempDir()
	setConfigFile(t, testutil.SetupTestConfigWithAPIKey(t, tmpDir, ts.URL))
	setProviderOverride(t, "")

	output, err := executeCommand(t, newLookupCommand(), "lit")
	require.NoError(t, err)
	assert.Contains(t, output, "lit /lɪt/ [slang]")
	assert.Contains(t, output, "最高 (saikou)")
	assert.Contains(t, output, "パーティーは最高だった。")

	cached, ok := dictionary.NewFileCache(testutil.CacheFile(tmpDir)).Get("lit")
	require.True(t, ok)
	assert.Equal(t, "Informal.", cached.UsageNotes)
}

func TestNewCategoriesCommand(t *testing.T) {
	setupCommandTest(t)

	tests := []struct {
		name      string
		args      []string
		wantLines []string
	}{
		{
			name:      "category names",
			args:      nil,
			wantLines: []string{"greetings", "business", "food", "travel", "slang", "phrases", "emergency", "idioms"},
		},
		{
			name:      "words of a category",
			args:      []string{"food", "--limit", "2"},
			wantLines: []string{"1. restaurant", "   noun", "     1. a place where meals are served", "", "2. menu", "   noun", "     1. a list of dishes"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := executeCommand(t, newCategoriesCommand(), tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.wantLines, strings.Split(strings.TrimSuffix(output, "\n"), "\n"))
		})
	}
}

func TestNewStudyCommand(t *testing.T) {
	tests := []struct {
		name      string
		args      func(tmpDir string) []string
		wantErr   error
		wantWords int
		validate  func(t *testing.T, tmpDir string, output string)
	}{
		{
			name:      "category session printed",
			args:      func(string) []string { return []string{"--category", "food", "--word-count", "3"} },
			wantWords: 3,
		},
		{
			name:      "mixed session keeps only words with details",
			args:      func(string) []string { return []string{"--word-count", "10"} },
			wantWords: 3,
			validate: func(t *testing.T, _ string, output string) {
				assert.Contains(t, output, "hello")
				assert.Contains(t, output, "restaurant")
				assert.Contains(t, output, "menu")
			},
		},
		{
			name: "markdown study sheet",
			args: func(tmpDir string) []string {
				return []string{"--category", "food", "--word-count", "5", "--output", filepath.Join(tmpDir, "sheets", "food.md")}
			},
			validate: func(t *testing.T, tmpDir string, output string) {
				path := filepath.Join(tmpDir, "sheets", "food.md")
				assert.Contains(t, output, "Wrote 5 words to "+path)
				content, err := os.ReadFile(path)
				require.NoError(t, err)
				assert.Contains(t, string(content), "# Study session")
				assert.Contains(t, string(content), "Category: **food**")
				assert.Contains(t, string(content), "## 5. ")
			},
		},
		{
			name: "pdf study sheet in the output directory",
			args: func(string) []string { return []string{"--category", "food", "--word-count", "2", "--pdf"} },
			validate: func(t *testing.T, tmpDir string, output string) {
				assert.Contains(t, output, "Wrote PDF to ")
				pdfs, err := filepath.Glob(filepath.Join(tmpDir, "outputs", "study-food-*.pdf"))
				require.NoError(t, err)
				assert.Len(t, pdfs, 1)
			},
		},
		{
			name:    "zero word count",
			args:    func(string) []string { return []string{"--word-count", "0"} },
			wantErr: errInvalidWordCount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir, _ := setupCommandTest(t)

			output, err := executeCommand(t, newStudyCommand(), tt.args(tmpDir)...)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			if tt.wantWords > 0 {
				for i := 1; i <= tt.wantWords; i++ {
					assert.Regexp(t, `(?m)^`+strconv.Itoa(i)+`\. `, output)
				}
				assert.NotRegexp(t, `(?m)^`+strconv.Itoa(tt.wantWords+1)+`\. `, output)
			}
			if tt.validate != nil {
				tt.validate(t, tmpDir, output)
			}
		})
	}
}

func TestStudySheetFileName(t *testing.T) {
	now := time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)
	tests := []struct {
		name     string
		category string
		want     string
	}{
		{name: "category", category: "food", want: "study-food-20250301-093000.md"},
		{name: "no category", category: "", want: "study-mixed-20250301-093000.md"},
		{name: "path separators", category: "a/b\\c", want: "study-a-b-c-20250301-093000.md"},
		{name: "parent directory", category: "../../etc/passwd", want: "study-etc-passwd-20250301-093000.md"},
		{name: "only separators", category: "../", want: "study-mixed-20250301-093000.md"},
		{name: "spaces", category: " food & drink ", want: "study-food-drink-20250301-093000.md"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := studySheetFileName(tt.category, now)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, filepath.Base(got))
		})
	}
}

func TestNewCacheCommand(t *testing.T) {
	cmd := newCacheCommand()
	assert.Equal(t, "cache", cmd.Use)

	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.ElementsMatch(t, []string{"list", "clear", "export", "import"}, names)
}

func TestCacheCommands(t *testing.T) {
	tmpDir, _ := setupCommandTest(t)
	testutil.SeedWordCache(t, testutil.CacheFile(tmpDir),
		dictionary.WordRecord{Word: "menu", Meanings: []dictionary.Meaning{}, Examples: []string{}},
		dictionary.WordRecord{Word: "Dessert", Meanings: []dictionary.Meaning{}, Examples: []string{}},
	)

	output, err := executeCommand(t, newCacheCommand(), "list")
	require.NoError(t, err)
	assert.Equal(t, "dessert (Dessert)\nmenu\n", output)

	exportPath := filepath.Join(tmpDir, "words.yml")
	output, err = executeCommand(t, newCacheCommand(), "export", "--output", exportPath)
	require.NoError(t, err)
	assert.Equal(t, "Exported 2 words to "+exportPath+"\n", output)

	output, err = executeCommand(t, newCacheCommand(), "clear")
	require.NoError(t, err)
	assert.Equal(t, "Removed 2 words\n", output)
	assert.Equal(t, 0, dictionary.NewFileCache(testutil.CacheFile(tmpDir)).Len())

	output, err = executeCommand(t, newCacheCommand(), "import", exportPath, "--dry-run")
	require.NoError(t, err)
	assert.Contains(t, output, "dry-run mode")
	assert.Contains(t, output, "Words: 2 new, 0 skipped, 0 updated, 0 invalid")
	assert.Equal(t, 0, dictionary.NewFileCache(testutil.CacheFile(tmpDir)).Len())

	output, err = executeCommand(t, newCacheCommand(), "import", exportPath)
	require.NoError(t, err)
	assert.Contains(t, output, "Words: 2 new, 0 skipped, 0 updated, 0 invalid")
	cache := dictionary.NewFileCache(testutil.CacheFile(tmpDir))
	assert.Equal(t, 2, cache.Len())
	dessert, ok := cache.Get("dessert")
	require.True(t, ok)
	assert.Equal(t, "Dessert", dessert.Word)

	output, err = executeCommand(t, newCacheCommand(), "export")
	require.NoError(t, err)
	assert.Contains(t, output, "key: dessert")
	assert.Contains(t, output, "word: Dessert")
}

func TestCacheCommands_InvalidConfig(t *testing.T) {
	setConfigFile(t, setupBrokenConfigFile(t))

	for _, args := range [][]string{{"list"}, {"clear"}, {"export"}, {"import", "words.yml"}} {
		t.Run(args[0], func(t *testing.T) {
			_, err := executeCommand(t, newCacheCommand(), args...)
			assert.Error(t, err)
		})
	}
}
