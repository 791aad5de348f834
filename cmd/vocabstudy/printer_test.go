package main

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"github.com/at-ishikawa/vocabstudy/internal/dictionary"
)

func TestWordPrinter_PrintWord(t *testing.T) {
	noColor := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = noColor })

	isSlang := true
	tests := []struct {
		name   string
		index  int
		record dictionary.WordRecord
		want   string
	}{
		{
			name:  "generative record",
			index: 0,
			record: dictionary.WordRecord{
				Word:               "lit",
				Phonetic:           "/lɪt/",
				Meanings:           []dictionary.Meaning{{PartOfSpeech: "adjective", Definitions: []string{"exciting", "excellent"}}},
				Examples:           []string{"The party was lit.", "That show was lit."},
				Translation:        "最高",
				Transliteration:    "saikou",
				TranslatedExamples: []string{"パーティーは最高だった。"},
				UsageNotes:         "Informal.",
				IsSlang:            &isSlang,
				ImageURL:           "https://images.example.com/lit.jpg",
			},
			want: `lit /lɪt/ [slang]
   最高 (saikou)
   adjective
     1. exciting
     2. excellent
   > The party was lit.
     パーティーは最高だった。
   > That show was lit.
   Note: Informal.
   Image: https://images.example.com/lit.jpg
`,
		},
		{
			name:   "numbered placeholder",
			index:  2,
			record: dictionary.Placeholder("food"),
			want:   "2. food\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var output bytes.Buffer
			newWordPrinter(&output).printWord(tt.index, tt.record)
			assert.Equal(t, tt.want, output.String())
		})
	}
}
