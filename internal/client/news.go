package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/healsmart/healsmart-api/pkg/circuitbreaker"
	"github.com/healsmart/healsmart-api/pkg/metrics"
)

// NewsClient queries the news search API for health articles.
type NewsClient struct {
	baseURL string
	apiKey  string
	http    *http.Client
	cb      *circuitbreaker.CircuitBreaker
	metrics *metrics.Metrics
}

// RawArticle mirrors the news API's article shape before mapping.
type RawArticle struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	URLToImage  string `json:"urlToImage"`
	PublishedAt string `json:"publishedAt"`
	Source      struct {
		Name string `json:"name"`
	} `json:"source"`
}

func NewNewsClient(baseURL, apiKey string, timeout time.Duration, m *metrics.Metrics) *NewsClient {
	return &NewsClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: timeout},
		metrics: m,
		cb: circuitbreaker.NewCircuitBreaker(circuitbreaker.Settings{
			Name:        "news",
			MaxFailures: 5,
			Timeout:     30 * time.Second,
		}),
	}
}

func (c *NewsClient) Search(ctx context.Context, query string, pageSize int) ([]RawArticle, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("language", "en")
	params.Set("sortBy", "relevance")
	params.Set("apiKey", c.apiKey)
	params.Set("pageSize", fmt.Sprintf("%d", pageSize))

	var articles []RawArticle
	start := time.Now()
	err := c.cb.Execute(func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
		if err != nil {
			return fmt.Errorf("failed to create request: %w", err)
		}

		resp, err := c.http.Do(req)
		if err != nil {
			return fmt.Errorf("news request failed: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("news API returned status %d", resp.StatusCode)
		}

		var payload struct {
			Articles []RawArticle `json:"articles"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
			return fmt.Errorf("failed to decode news response: %w", err)
		}
		articles = payload.Articles
		return nil
	})
	observeUpstream(c.metrics, "news", start, err)
	if err != nil {
		return nil, err
	}

	return articles, nil
}

// FetchPage retrieves an article page body for summarization.
func (c *NewsClient) FetchPage(ctx context.Context, pageURL string) ([]byte, error) {
	var body []byte
	start := time.Now()
	err := c.cb.Execute(func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
		if err != nil {
			return fmt.Errorf("failed to create request: %w", err)
		}

		resp, err := c.http.Do(req)
		if err != nil {
			return fmt.Errorf("page fetch failed: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("page returned status %d", resp.StatusCode)
		}

		body, err = readAll(resp.Body)
		return err
	})
	observeUpstream(c.metrics, "news", start, err)
	if err != nil {
		return nil, err
	}
	return body, nil
}
