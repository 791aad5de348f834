// Package dictionary provides the word record model, the word cache and the
// dictionary-backed lookup provider.
package dictionary

import (
	"strings"
)

// WordRecord is a word enriched with definitions and, depending on the provider, translations and an image.
type WordRecord struct {
	Word               string    `json:"word" yaml:"word"`
	Phonetic           string    `json:"phonetic" yaml:"phonetic"`
	Meanings           []Meaning `json:"meanings" yaml:"meanings"`
	Examples           []string  `json:"examples" yaml:"examples"`
	Translation        string    `json:"translation,omitempty" yaml:"translation,omitempty"`
	Transliteration    string    `json:"transliteration,omitempty" yaml:"transliteration,omitempty"`
	TranslatedExamples []string  `json:"translated_examples,omitempty" yaml:"translated_examples,omitempty"`
	UsageNotes         string    `json:"usage_notes,omitempty" yaml:"usage_notes,omitempty"`
	IsSlang            *bool     `json:"is_slang,omitempty" yaml:"is_slang,omitempty"`
	ImageURL           string    `json:"image_url,omitempty" yaml:"image_url,omitempty"`
}

type Meaning struct {
	PartOfSpeech string   `json:"part_of_speech" yaml:"part_of_speech"`
	Definitions  []string `json:"definitions" yaml:"definitions"`
}

// NormalizeKey returns the cache key for a word.
// Words that differ only by case or surrounding whitespace share a key.
func NormalizeKey(word string) string {
	return strings.ToLower(strings.TrimSpace(word))
}

// Placeholder is the degenerate record used when no word could be produced for a category.
func Placeholder(word string) WordRecord {
	return WordRecord{
		Word:     word,
		Meanings: []Meaning{},
		Examples: []string{},
	}
}
