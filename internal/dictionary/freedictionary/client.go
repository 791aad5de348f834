// https://dictionaryapi.dev/
package freedictionary

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/at-ishikawa/vocabstudy/internal/dictionary"
	"github.com/go-resty/resty/v2"
)

type Client struct {
	httpClient *resty.Client
}

var _ dictionary.DefinitionSource = (*Client)(nil)

func NewClient(baseURL string, timeout time.Duration) *Client {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")
	return &Client{
		httpClient: client,
	}
}

// Define looks the word up and converts the first returned entry.
func (c *Client) Define(ctx context.Context, word string) (dictionary.WordRecord, error) {
	var entries []Entry
	res, err := c.httpClient.R().
		SetContext(ctx).
		SetResult(&entries).
		Get("/" + url.PathEscape(word))
	if err != nil {
		return dictionary.WordRecord{}, fmt.Errorf("httpClient.Get(%s) > %w", word, err)
	}
	if res.StatusCode() == http.StatusNotFound {
		return dictionary.WordRecord{}, fmt.Errorf("word %s: %w", word, dictionary.ErrNotFound)
	}
	if res.StatusCode() != http.StatusOK {
		return dictionary.WordRecord{}, fmt.Errorf("status code: %d, body: %s", res.StatusCode(), res.String())
	}
	if len(entries) == 0 {
		return dictionary.WordRecord{}, fmt.Errorf("empty response for %s: %w", word, dictionary.ErrNotFound)
	}
	return entries[0].ToWordRecord(), nil
}
