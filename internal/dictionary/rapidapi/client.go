package rapidapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/at-ishikawa/vocabstudy/internal/dictionary"
	"github.com/go-resty/resty/v2"
)

type Config struct {
	Host string
	Key  string
}

type Client struct {
	httpClient *resty.Client
}

var _ dictionary.DefinitionSource = (*Client)(nil)

func NewClient(config Config, timeout time.Duration) *Client {
	return newClient(fmt.Sprintf("https://%s", config.Host), config, timeout)
}

func newClient(baseURL string, config Config, timeout time.Duration) *Client {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("x-rapidapi-host", config.Host).
		SetHeader("x-rapidapi-key", config.Key)
	return &Client{
		httpClient: client,
	}
}

func (c *Client) Define(ctx context.Context, word string) (dictionary.WordRecord, error) {
	var response Response
	res, err := c.httpClient.R().
		SetContext(ctx).
		SetResult(&response).
		Get("/words/" + url.PathEscape(word))
	if err != nil {
		return dictionary.WordRecord{}, fmt.Errorf("client.R.Get > %w", err)
	}
	if res.StatusCode() == http.StatusNotFound {
		return dictionary.WordRecord{}, fmt.Errorf("word %s: %w", word, dictionary.ErrNotFound)
	}
	if res.StatusCode() != http.StatusOK {
		return dictionary.WordRecord{}, fmt.Errorf("status code: %d, body: %s", res.StatusCode(), res.String())
	}
	if len(response.Results) == 0 {
		return dictionary.WordRecord{}, fmt.Errorf("no results for %s: %w", word, dictionary.ErrNotFound)
	}
	return response.ToWordRecord(), nil
}
