package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/healsmart/healsmart-api/pkg/circuitbreaker"
	"github.com/healsmart/healsmart-api/pkg/metrics"
)

// SummarizerClient relays text to a hosted summarization model.
type SummarizerClient struct {
	baseURL string
	apiKey  string
	http    *http.Client
	cb      *circuitbreaker.CircuitBreaker
	metrics *metrics.Metrics
}

func NewSummarizerClient(baseURL, apiKey string, timeout time.Duration, m *metrics.Metrics) *SummarizerClient {
	return &SummarizerClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: timeout},
		metrics: m,
		cb: circuitbreaker.NewCircuitBreaker(circuitbreaker.Settings{
			Name:        "summarizer",
			MaxFailures: 5,
			Timeout:     30 * time.Second,
		}),
	}
}

func (c *SummarizerClient) Summarize(ctx context.Context, text string, minLength, maxLength int) (string, error) {
	body, err := json.Marshal(map[string]interface{}{
		"inputs": text,
		"parameters": map[string]interface{}{
			"min_length": minLength,
			"max_length": maxLength,
			"do_sample":  false,
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	var summary string
	start := time.Now()
	err = c.cb.Execute(func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
		if err != nil {
			return fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+c.apiKey)

		resp, err := c.http.Do(req)
		if err != nil {
			return fmt.Errorf("summarizer request failed: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("summarizer returned status %d", resp.StatusCode)
		}

		var payload []struct {
			SummaryText string `json:"summary_text"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
			return fmt.Errorf("failed to decode summarizer response: %w", err)
		}
		if len(payload) == 0 || payload[0].SummaryText == "" {
			return fmt.Errorf("no summary returned")
		}
		summary = payload[0].SummaryText
		return nil
	})
	observeUpstream(c.metrics, "summarizer", start, err)
	if err != nil {
		return "", err
	}

	return summary, nil
}

func readAll(r io.Reader) ([]byte, error) {
	b, err := io.ReadAll(io.LimitReader(r, 4<<20))
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return b, nil
}
