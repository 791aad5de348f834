package assets

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/vocabstudy/internal/dictionary"
)

func TestWriteStudySheet(t *testing.T) {
	isSlang := true
	sheet := StudySheet{
		Title:    "Study session",
		Category: "slang",
		Date:     time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		Words: []dictionary.WordRecord{
			{
				Word:     "lit",
				Phonetic: "/lɪt/",
				Meanings: []dictionary.Meaning{
					{PartOfSpeech: "adjective", Definitions: []string{"exciting", "excellent"}},
				},
				Examples:           []string{"The party was lit.", "That show was lit."},
				Translation:        "最高",
				Transliteration:    "saikou",
				TranslatedExamples: []string{"パーティーは最高だった。"},
				UsageNotes:         "Informal.",
				IsSlang:            &isSlang,
				ImageURL:           "https://images.example.com/lit.jpg",
			},
			{
				Word:     "hello",
				Meanings: []dictionary.Meaning{{PartOfSpeech: "interjection", Definitions: []string{"a greeting"}}},
				Examples: []string{},
			},
		},
	}

	tests := []struct {
		name         string
		templatePath func(t *testing.T) string
		wantContains []string
	}{
		{
			name: "uses filesystem template when available",
			templatePath: func(t *testing.T) string {
				templatePath := filepath.Join(t.TempDir(), "custom.md.go.tmpl")
				content := `Custom: {{ range .Words }}{{ .Word }},{{ end }}`
				require.NoError(t, os.WriteFile(templatePath, []byte(content), 0644))
				return templatePath
			},
			wantContains: []string{"Custom: lit,hello,"},
		},
		{
			name: "uses embedded template when file doesn't exist",
			templatePath: func(t *testing.T) string {
				return "/non/existent/invalid.md.go.tmpl"
			},
			wantContains: []string{
				"# Study session",
				"Category: **slang**",
				"2 words",
				"2025-03-01",
				"## 1. lit /lɪt/",
				"**最高** (saikou)",
				"_slang_",
				"- _adjective_: exciting; excellent",
				"> The party was lit.\n> パーティーは最高だった。",
				"> That show was lit.",
				"Note: Informal.",
				"![lit](https://images.example.com/lit.jpg)",
				"## 2. hello",
				"- _interjection_: a greeting",
			},
		},
		{
			name: "falls back when the file template is broken",
			templatePath: func(t *testing.T) string {
				templatePath := filepath.Join(t.TempDir(), "broken.md.go.tmpl")
				require.NoError(t, os.WriteFile(templatePath, []byte(`{{ range .Words }`), 0644))
				return templatePath
			},
			wantContains: []string{"# Study session"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var output bytes.Buffer
			err := WriteStudySheet(&output, tt.templatePath(t), sheet)
			require.NoError(t, err)

			for _, want := range tt.wantContains {
				assert.Contains(t, output.String(), want)
			}
		})
	}
}
