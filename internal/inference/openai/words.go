package openai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/at-ishikawa/vocabstudy/internal/inference"
	"github.com/avast/retry-go"
)

var wordDescriptionSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"word":            map[string]any{"type": "string"},
		"phonetic":        map[string]any{"type": "string"},
		"translation":     map[string]any{"type": "string"},
		"transliteration": map[string]any{"type": "string"},
		"meanings": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"part_of_speech": map[string]any{"type": "string"},
					"definitions": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "string"},
					},
				},
				"required":             []string{"part_of_speech", "definitions"},
				"additionalProperties": false,
			},
		},
		"examples":            map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
		"translated_examples": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
		"usage_notes":         map[string]any{"type": "string"},
		"is_slang":            map[string]any{"type": "boolean"},
	},
	"required": []string{
		"word", "phonetic", "translation", "transliteration", "meanings",
		"examples", "translated_examples", "usage_notes", "is_slang",
	},
	"additionalProperties": false,
}

var suggestWordsSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"words": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
	},
	"required":             []string{"words"},
	"additionalProperties": false,
}

// DescribeWord implements the inference.Client interface
func (client *Client) DescribeWord(
	ctx context.Context,
	params inference.DescribeWordRequest,
) (inference.WordDescription, error) {
	return withRetry(ctx, client.maxRetryAttempts, "DescribeWord", func() (inference.WordDescription, error) {
		return client.describeWord(ctx, params)
	})
}

func (client *Client) describeWord(
	ctx context.Context,
	params inference.DescribeWordRequest,
) (inference.WordDescription, error) {
	targetLanguage := params.TargetLanguage
	if targetLanguage == "" {
		targetLanguage = "Japanese"
	}

	systemPrompt := fmt.Sprintf(`You are a dictionary for English learners whose native language is %s.

For the given English word or phrase return ONLY a JSON object with these fields:
- "word": the word or phrase in its dictionary form
- "phonetic": IPA pronunciation, or an empty string if unknown
- "translation": the most common %s translation
- "transliteration": a romanized reading of the translation, or an empty string when not applicable
- "meanings": an array of {"part_of_speech": string, "definitions": [string]} ordered from most to least common
- "examples": two or three natural English example sentences
- "translated_examples": the %s translation of each example, in the same order
- "usage_notes": one or two sentences about register, nuance or common mistakes
- "is_slang": true only if the word is informal slang

Do NOT include any text outside the JSON.`, targetLanguage, targetLanguage, targetLanguage)

	requestBody := ChatCompletionRequest{
		Model:       client.model,
		Temperature: 0.2,
		Messages: []Message{
			{Role: RoleSystem, Content: systemPrompt},
			{Role: RoleUser, Content: params.Word},
		},
		ResponseFormat: &ResponseFormat{
			Type: "json_schema",
			JSONSchema: &JSONSchema{
				Name:   "word_description",
				Strict: true,
				Schema: wordDescriptionSchema,
			},
		},
	}

	content, err := client.chat(ctx, requestBody)
	if err != nil {
		return inference.WordDescription{}, err
	}

	var decoded inference.WordDescription
	if err := decodeJSON(content, &decoded); err != nil {
		slog.Default().Error("Failed to parse OpenAI response as JSON",
			"word", params.Word,
			"error", err)
		return inference.WordDescription{}, err
	}
	if strings.TrimSpace(decoded.Word) == "" {
		return inference.WordDescription{}, retry.Unrecoverable(errors.New("response is missing the word field"))
	}
	return decoded, nil
}

// SuggestWords implements the inference.Client interface
func (client *Client) SuggestWords(
	ctx context.Context,
	params inference.SuggestWordsRequest,
) (inference.SuggestWordsResponse, error) {
	return withRetry(ctx, client.maxRetryAttempts, "SuggestWords", func() (inference.SuggestWordsResponse, error) {
		return client.suggestWords(ctx, params)
	})
}

func (client *Client) suggestWords(
	ctx context.Context,
	params inference.SuggestWordsRequest,
) (inference.SuggestWordsResponse, error) {
	if params.Count <= 0 {
		return inference.SuggestWordsResponse{Words: []string{}}, nil
	}

	systemPrompt := `You pick vocabulary for English learners.
Return ONLY a JSON object {"words": [string]} with distinct, commonly used English words or short phrases.
Do NOT include numbering, definitions or any text outside the JSON.`

	userMessage := fmt.Sprintf("Give me %d words about the topic %q.", params.Count, params.Category)
	if params.Category == "" {
		userMessage = fmt.Sprintf("Give me %d useful words from a diverse mix of everyday topics.", params.Count)
	}

	requestBody := ChatCompletionRequest{
		Model:       client.model,
		Temperature: 0.7,
		Messages: []Message{
			{Role: RoleSystem, Content: systemPrompt},
			{Role: RoleUser, Content: userMessage},
		},
		ResponseFormat: &ResponseFormat{
			Type: "json_schema",
			JSONSchema: &JSONSchema{
				Name:   "word_suggestions",
				Strict: true,
				Schema: suggestWordsSchema,
			},
		},
	}

	content, err := client.chat(ctx, requestBody)
	if err != nil {
		return inference.SuggestWordsResponse{}, err
	}

	var decoded inference.SuggestWordsResponse
	if err := decodeJSON(content, &decoded); err != nil {
		return inference.SuggestWordsResponse{}, err
	}

	words := make([]string, 0, len(decoded.Words))
	for _, word := range decoded.Words {
		word = strings.TrimSpace(word)
		if word == "" {
			continue
		}
		words = append(words, word)
	}
	if len(words) == 0 {
		return inference.SuggestWordsResponse{}, retry.Unrecoverable(errors.New("response contains no words"))
	}
	if len(words) > params.Count {
		words = words[:params.Count]
	}
	return inference.SuggestWordsResponse{Words: words}, nil
}

// CompleteText implements the inference.Client interface
func (client *Client) CompleteText(ctx context.Context, prompt string) (string, error) {
	return withRetry(ctx, client.maxRetryAttempts, "CompleteText", func() (string, error) {
		return client.chat(ctx, ChatCompletionRequest{
			Model:       client.model,
			Temperature: 0.7,
			Messages: []Message{
				{Role: RoleUser, Content: prompt},
			},
		})
	})
}

// decodeJSON decodes content, retrying once on the first JSON object embedded in it
func decodeJSON(content string, v any) error {
	err := json.Unmarshal([]byte(content), v)
	if err == nil {
		return nil
	}
	if extracted := extractJSONObject(content); extracted != content {
		if retryErr := json.Unmarshal([]byte(extracted), v); retryErr == nil {
			return nil
		}
	}
	return fmt.Errorf("json.Unmarshal(%s) > %w", content, err)
}
