package inference

import (
	"context"
)

//go:generate mockgen -source=interface.go -destination=../mocks/inference/mock_client.go -package=mock_inference

// Client interface defines the methods for generative-model operations
type Client interface {
	DescribeWord(ctx context.Context, params DescribeWordRequest) (WordDescription, error)
	SuggestWords(ctx context.Context, params SuggestWordsRequest) (SuggestWordsResponse, error)
	CompleteText(ctx context.Context, prompt string) (string, error)
}

// DescribeWordRequest asks for a learner-oriented description of a single word
type DescribeWordRequest struct {
	Word string `json:"word"`
	// TargetLanguage is the learner's native language used for translations
	TargetLanguage string `json:"target_language"`
}

// WordDescription is the fixed response schema for DescribeWord
type WordDescription struct {
	Word               string    `json:"word"`
	Phonetic           string    `json:"phonetic"`
	Translation        string    `json:"translation"`
	Transliteration    string    `json:"transliteration"`
	Meanings           []Meaning `json:"meanings"`
	Examples           []string  `json:"examples"`
	TranslatedExamples []string  `json:"translated_examples"`
	UsageNotes         string    `json:"usage_notes"`
	IsSlang            bool      `json:"is_slang"`
}

type Meaning struct {
	PartOfSpeech string   `json:"part_of_speech"`
	Definitions  []string `json:"definitions"`
}

// SuggestWordsRequest asks for words related to a category.
// An empty Category asks for a diverse list across everyday topics.
type SuggestWordsRequest struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

type SuggestWordsResponse struct {
	Words []string `json:"words"`
}

const (
	DefaultMaxRetryAttempts = 3
)
