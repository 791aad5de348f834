package vocabulary

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/at-ishikawa/vocabstudy/internal/dictionary"
	"github.com/at-ishikawa/vocabstudy/internal/inference"
	"github.com/samber/lo"
)

// GenerativeProvider looks words up by asking a generative model for a learner-oriented description.
type GenerativeProvider struct {
	client         inference.Client
	targetLanguage string
}

var _ dictionary.Provider = (*GenerativeProvider)(nil)

func NewGenerativeProvider(client inference.Client, targetLanguage string) *GenerativeProvider {
	return &GenerativeProvider{
		client:         client,
		targetLanguage: targetLanguage,
	}
}

func (p *GenerativeProvider) Lookup(ctx context.Context, word string) (dictionary.WordRecord, error) {
	description, err := p.client.DescribeWord(ctx, inference.DescribeWordRequest{
		Word:           word,
		TargetLanguage: p.targetLanguage,
	})
	if err != nil {
		return dictionary.WordRecord{}, fmt.Errorf("client.DescribeWord(%s) > %w", word, err)
	}
	if strings.TrimSpace(description.Word) == "" {
		return dictionary.WordRecord{}, fmt.Errorf("client.DescribeWord(%s) returned no word: %w", word, dictionary.ErrNotFound)
	}
	return toWordRecord(description), nil
}

func toWordRecord(description inference.WordDescription) dictionary.WordRecord {
	meanings := make([]dictionary.Meaning, 0, len(description.Meanings))
	for _, m := range description.Meanings {
		meanings = append(meanings, dictionary.Meaning{
			PartOfSpeech: m.PartOfSpeech,
			Definitions:  m.Definitions,
		})
	}
	examples := description.Examples
	if examples == nil {
		examples = []string{}
	}
	isSlang := description.IsSlang
	return dictionary.WordRecord{
		Word:               description.Word,
		Phonetic:           description.Phonetic,
		Meanings:           meanings,
		Examples:           examples,
		Translation:        description.Translation,
		Transliteration:    description.Transliteration,
		TranslatedExamples: description.TranslatedExamples,
		UsageNotes:         description.UsageNotes,
		IsSlang:            &isSlang,
	}
}

// GenerativeCategorySource asks a generative model for words related to a category
type GenerativeCategorySource struct {
	client inference.Client
}

var _ CategorySource = (*GenerativeCategorySource)(nil)

func NewGenerativeCategorySource(client inference.Client) *GenerativeCategorySource {
	return &GenerativeCategorySource{
		client: client,
	}
}

func (s *GenerativeCategorySource) WordsFor(ctx context.Context, category string, limit int) ([]string, error) {
	if limit <= 0 {
		return []string{}, nil
	}

	response, err := s.client.SuggestWords(ctx, inference.SuggestWordsRequest{
		Category: category,
		Count:    limit,
	})
	if err == nil && len(response.Words) > 0 {
		return truncate(response.Words, limit), nil
	}
	slog.Default().Warn("structured word suggestion failed, falling back to plain text",
		"category", category,
		"error", err)

	prompt := fmt.Sprintf("List %d common English words or short phrases related to %q. "+
		"Write one per line without numbering or explanations.", limit, category)
	text, textErr := s.client.CompleteText(ctx, prompt)
	if textErr != nil {
		return nil, fmt.Errorf("client.CompleteText(%s) > %w", category, errors.Join(err, textErr))
	}

	words := parseWordLines(text)
	if len(words) == 0 {
		return nil, fmt.Errorf("client.CompleteText(%s) returned no words", category)
	}
	return truncate(words, limit), nil
}

func (s *GenerativeCategorySource) MixedWords(ctx context.Context, limit int) ([]string, error) {
	if limit <= 0 {
		return []string{}, nil
	}

	response, err := s.client.SuggestWords(ctx, inference.SuggestWordsRequest{
		Count: limit,
	})
	if err != nil {
		return nil, fmt.Errorf("client.SuggestWords > %w", err)
	}
	if len(response.Words) == 0 {
		return nil, errors.New("client.SuggestWords returned no words")
	}
	return truncate(response.Words, limit), nil
}

// parseWordLines reads one word per line, dropping list markers and blank lines
func parseWordLines(text string) []string {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	words := lo.FilterMap(lines, func(line string, _ int) (string, bool) {
		word := strings.TrimSpace(line)
		word = strings.TrimLeft(word, "-*•0123456789.) \t")
		word = strings.Trim(strings.TrimSpace(word), `"'`)
		return word, word != ""
	})
	return words
}
