package dictionary

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

//go:generate mockgen -source=provider.go -destination=../mocks/dictionary/mock_provider.go -package=mock_dictionary

// ErrNotFound is returned by a provider or a definition source that has no entry for a word.
var ErrNotFound = errors.New("word not found")

// Provider performs one external lookup for a single word.
type Provider interface {
	Lookup(ctx context.Context, word string) (WordRecord, error)
}

// DefinitionSource fetches definitions, pronunciation and examples for a word.
type DefinitionSource interface {
	Define(ctx context.Context, word string) (WordRecord, error)
}

// ImageSearcher finds an illustrative image URL for a query.
type ImageSearcher interface {
	SearchImage(ctx context.Context, query string) (string, error)
}

// DictionaryProvider looks words up in a dictionary API and optionally attaches an image.
type DictionaryProvider struct {
	definitions DefinitionSource
	images      ImageSearcher
}

var _ Provider = (*DictionaryProvider)(nil)

// NewDictionaryProvider creates a provider. images may be nil to skip image enrichment.
func NewDictionaryProvider(definitions DefinitionSource, images ImageSearcher) *DictionaryProvider {
	return &DictionaryProvider{
		definitions: definitions,
		images:      images,
	}
}

func (p *DictionaryProvider) Lookup(ctx context.Context, word string) (WordRecord, error) {
	record, err := p.definitions.Define(ctx, word)
	if err != nil {
		return WordRecord{}, fmt.Errorf("definitions.Define(%s) > %w", word, err)
	}
	if record.Word == "" {
		return WordRecord{}, fmt.Errorf("definitions.Define(%s) returned no word: %w", word, ErrNotFound)
	}

	if p.images == nil {
		return record, nil
	}
	imageURL, err := p.images.SearchImage(ctx, word)
	if err != nil {
		slog.Default().Debug("image search failed, continuing without an image",
			"word", word,
			"error", err)
		return record, nil
	}
	record.ImageURL = imageURL
	return record, nil
}
