package vocabulary

import (
	"context"
	"strings"
)

// CategorySource proposes candidate words for a study category.
type CategorySource interface {
	WordsFor(ctx context.Context, category string, limit int) ([]string, error)
	MixedWords(ctx context.Context, limit int) ([]string, error)
}

// mixedWordsPerCategory is how many words of each category the static mixed list takes
const mixedWordsPerCategory = 2

type category struct {
	name  string
	words []string
}

var staticCategories = []category{
	{name: "greetings", words: []string{"hello", "goodbye", "welcome", "farewell", "hi"}},
	{name: "business", words: []string{"meeting", "presentation", "deadline", "budget", "project"}},
	{name: "food", words: []string{"restaurant", "menu", "appetizer", "entree", "dessert"}},
	{name: "travel", words: []string{"passport", "itinerary", "reservation", "destination", "luggage"}},
	{name: "slang", words: []string{"cool", "awesome", "dude", "chill", "lit"}},
	{name: "phrases", words: []string{"how are you", "nice to meet you", "what time is it", "excuse me", "thank you"}},
	{name: "emergency", words: []string{"help", "emergency", "hospital", "police", "fire"}},
	{name: "idioms", words: []string{"break a leg", "piece of cake", "raining cats and dogs", "hit the hay", "under the weather"}},
}

// Categories returns the names of the built-in categories in their display order
func Categories() []string {
	names := make([]string, 0, len(staticCategories))
	for _, c := range staticCategories {
		names = append(names, c.name)
	}
	return names
}

// StaticCategorySource serves words from the built-in category table. It never fails.
type StaticCategorySource struct{}

var _ CategorySource = StaticCategorySource{}

func NewStaticCategorySource() StaticCategorySource {
	return StaticCategorySource{}
}

func (StaticCategorySource) WordsFor(_ context.Context, categoryName string, limit int) ([]string, error) {
	name := strings.ToLower(strings.TrimSpace(categoryName))
	for _, c := range staticCategories {
		if c.name != name {
			continue
		}
		return truncate(c.words, limit), nil
	}
	return []string{}, nil
}

// MixedWords returns the leading words of every category regardless of limit.
// The caller shuffles before truncating, so every category has a chance to appear.
func (StaticCategorySource) MixedWords(_ context.Context, _ int) ([]string, error) {
	return staticMixedWords(), nil
}

func staticMixedWords() []string {
	words := make([]string, 0, len(staticCategories)*mixedWordsPerCategory)
	for _, c := range staticCategories {
		words = append(words, truncate(c.words, mixedWordsPerCategory)...)
	}
	return words
}

// truncate returns a copy of at most limit leading words
func truncate(words []string, limit int) []string {
	if limit <= 0 {
		return []string{}
	}
	if len(words) > limit {
		words = words[:limit]
	}
	result := make([]string, len(words))
	copy(result, words)
	return result
}
