// Package testutil provides shared test helpers for config files, word caches and a fake dictionary API.
package testutil

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/vocabstudy/internal/dictionary"
)

// SetupTestConfig creates a config file whose cache and outputs live under tmpDir,
// looking words up in the Free Dictionary API at dictionaryURL.
// Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir string, dictionaryURL string) string {
	t.Helper()

	dirs := []string{"data", "outputs"}
	for _, d := range dirs {
		require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, d), 0755))
	}

	configContent := fmt.Sprintf(`vocabulary:
  provider: dictionary
  category_source: static
  cache_file: %s
  shuffle_seed: 42
dictionaries:
  backend: free_dictionary
  free_dictionary:
    base_url: %s
outputs:
  study_directory: %s
`,
		CacheFile(tmpDir),
		dictionaryURL,
		filepath.Join(tmpDir, "outputs"),
	)

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}

// SetupTestConfigWithAPIKey creates a config file that selects the generative tier with a fake OpenAI key.
func SetupTestConfigWithAPIKey(t *testing.T, tmpDir string, openaiURL string) string {
	t.Helper()
	cfgPath := SetupTestConfig(t, tmpDir, "http://127.0.0.1:0")

	content, err := os.ReadFile(cfgPath)
	require.NoError(t, err)
	content = []byte(strings.Replace(string(content), "provider: dictionary", "provider: generative", 1))
	content = append(content, []byte(fmt.Sprintf("openai:\n  api_key: fake-key-for-testing\n  base_url: %s\n  model: gpt-4o-mini\n  max_retry_attempts: 0\n", openaiURL))...)
	require.NoError(t, os.WriteFile(cfgPath, content, 0644))
	return cfgPath
}

// CacheFile returns the word cache path that SetupTestConfig configures for tmpDir.
func CacheFile(tmpDir string) string {
	return filepath.Join(tmpDir, "data", "word_cache.json")
}

// SeedWordCache puts records into the word cache at path, keyed by their normalized words.
func SeedWordCache(t *testing.T, path string, records ...dictionary.WordRecord) {
	t.Helper()
	cache := dictionary.NewFileCache(path)
	for _, record := range records {
		require.NoError(t, cache.Put(dictionary.NormalizeKey(record.Word), record))
	}
}

// DictionaryServer is a fake Free Dictionary API answering with one definition per known word.
type DictionaryServer struct {
	URL   string
	calls atomic.Int32
}

// Calls returns the number of lookups the server has answered.
func (s *DictionaryServer) Calls() int {
	return int(s.calls.Load())
}

// NewDictionaryServer starts a fake dictionary API. Words missing from definitions get a 404.
func NewDictionaryServer(t *testing.T, definitions map[string]string) *DictionaryServer {
	t.Helper()
	server := &DictionaryServer{}
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		server.calls.Add(1)
		word := strings.ToLower(strings.TrimPrefix(r.URL.Path, "/"))
		definition, ok := definitions[word]
		w.Header().Set("Content-Type", "application/json")
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"title": "No Definitions Found"}`))
			return
		}

		body, err := json.Marshal([]map[string]any{{
			"word": word,
			"meanings": []map[string]any{{
				"partOfSpeech": "noun",
				"definitions":  []map[string]any{{"definition": definition}},
			}},
		}})
		if err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write(body)
	}))
	t.Cleanup(ts.Close)
	server.URL = ts.URL
	return server
}
