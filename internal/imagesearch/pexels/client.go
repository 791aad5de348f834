// Package pexels searches photos with the Pexels API.
// https://www.pexels.com/api/documentation/
package pexels

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/at-ishikawa/vocabstudy/internal/dictionary"
	"github.com/go-resty/resty/v2"
)

var ErrNoImage = errors.New("no image found")

type Client struct {
	httpClient *resty.Client
}

var _ dictionary.ImageSearcher = (*Client)(nil)

func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Authorization", apiKey)
	return &Client{
		httpClient: client,
	}
}

type SearchResponse struct {
	TotalResults int     `json:"total_results"`
	Page         int     `json:"page"`
	PerPage      int     `json:"per_page"`
	Photos       []Photo `json:"photos"`
}

type Photo struct {
	ID  int64    `json:"id"`
	URL string   `json:"url"`
	Alt string   `json:"alt"`
	Src PhotoSrc `json:"src"`
}

type PhotoSrc struct {
	Original string `json:"original"`
	Medium   string `json:"medium"`
	Small    string `json:"small"`
}

// SearchImage returns the medium-sized URL of the first photo matching query.
func (c *Client) SearchImage(ctx context.Context, query string) (string, error) {
	var response SearchResponse
	res, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"query":    query,
			"per_page": strconv.Itoa(1),
		}).
		SetResult(&response).
		Get("/search")
	if err != nil {
		return "", fmt.Errorf("httpClient.Get(search) > %w", err)
	}
	if res.StatusCode() != http.StatusOK {
		return "", fmt.Errorf("status code: %d, body: %s", res.StatusCode(), res.String())
	}
	if len(response.Photos) == 0 || response.Photos[0].Src.Medium == "" {
		return "", fmt.Errorf("query %s: %w", query, ErrNoImage)
	}
	return response.Photos[0].Src.Medium, nil
}
