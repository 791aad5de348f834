package openai

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/avast/retry-go"
)

// isRetryableError determines if an error should trigger a retry
func isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	// Retry on JSON parsing errors as they might be due to incomplete responses
	errStr := err.Error()
	if strings.Contains(errStr, "json.Unmarshal") || strings.Contains(errStr, "unexpected end of JSON input") {
		return true
	}

	// Retry on network-related errors
	if strings.Contains(errStr, "connection refused") || strings.Contains(errStr, "i/o timeout") {
		return true
	}

	// Retry on 5xx errors (server errors)
	if strings.Contains(errStr, "response error 5") {
		return true
	}

	// Retry on rate limiting (429)
	if strings.Contains(errStr, "response error 429") {
		return true
	}

	return false
}

// withRetry runs call until it succeeds, fails with a non-retryable error, or runs out of attempts
func withRetry[T any](ctx context.Context, maxRetryAttempts uint, operation string, call func() (T, error)) (T, error) {
	var result T
	if err := retry.Do(
		func() error {
			response, err := call()
			if err != nil {
				if !isRetryableError(err) {
					return retry.Unrecoverable(err)
				}
				return err
			}
			result = response
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(maxRetryAttempts+1),
		retry.DelayType(func(n uint, err error, config *retry.Config) time.Duration {
			return retry.BackOffDelay(n, err, config)
		}),
		retry.OnRetry(func(n uint, err error) {
			slog.Default().Info("Retrying OpenAI API call",
				"operation", operation,
				"attempt", n+1,
				"lastError", err)
		}),
	); err != nil {
		var zero T
		return zero, err
	}
	return result, nil
}

// extractJSONObject returns the first complete JSON object in content, ignoring any text around it
func extractJSONObject(content string) string {
	firstBrace := -1
	braceCount := 0
	inString := false
	escapeNext := false

	for i, ch := range content {
		// Handle string escaping to avoid counting braces inside strings
		if escapeNext {
			escapeNext = false
			continue
		}
		if ch == '\\' && inString {
			escapeNext = true
			continue
		}
		if ch == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}

		switch ch {
		case '{':
			if firstBrace == -1 {
				firstBrace = i
			}
			braceCount++
		case '}':
			if firstBrace == -1 {
				continue
			}
			braceCount--
			if braceCount == 0 {
				return content[firstBrace : i+1]
			}
		}
	}
	return content
}
