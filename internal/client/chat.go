package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/healsmart/healsmart-api/pkg/circuitbreaker"
	"github.com/healsmart/healsmart-api/pkg/metrics"
)

// ChatClient relays a single user message to a chat-completion API together
// with a fixed system prompt. No conversation state is kept server-side.
type ChatClient struct {
	baseURL string
	apiKey  string
	http    *http.Client
	cb      *circuitbreaker.CircuitBreaker
	metrics *metrics.Metrics
}

type chatPart struct {
	Text string `json:"text"`
}

type chatContent struct {
	Role  string     `json:"role"`
	Parts []chatPart `json:"parts"`
}

type chatRequestBody struct {
	Contents []chatContent `json:"contents"`
}

type chatResponseBody struct {
	Candidates []struct {
		Content struct {
			Parts []chatPart `json:"parts"`
			Role  string     `json:"role"`
		} `json:"content"`
	} `json:"candidates"`
}

func NewChatClient(baseURL, apiKey string, timeout time.Duration, m *metrics.Metrics) *ChatClient {
	return &ChatClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: timeout},
		metrics: m,
		cb: circuitbreaker.NewCircuitBreaker(circuitbreaker.Settings{
			Name:        "chat",
			MaxFailures: 5,
			Timeout:     30 * time.Second,
		}),
	}
}

func (c *ChatClient) Complete(ctx context.Context, systemPrompt, message string) (string, error) {
	body, err := json.Marshal(chatRequestBody{
		Contents: []chatContent{
			{Role: "user", Parts: []chatPart{{Text: systemPrompt}}},
			{Role: "model", Parts: []chatPart{{Text: "Understood. I will follow these rules."}}},
			{Role: "user", Parts: []chatPart{{Text: message}}},
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	var reply string
	start := time.Now()
	err = c.cb.Execute(func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"?key="+c.apiKey, bytes.NewReader(body))
		if err != nil {
			return fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.http.Do(req)
		if err != nil {
			return fmt.Errorf("chat request failed: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("chat API returned status %d", resp.StatusCode)
		}

		var payload chatResponseBody
		if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
			return fmt.Errorf("failed to decode chat response: %w", err)
		}
		if len(payload.Candidates) == 0 || len(payload.Candidates[0].Content.Parts) == 0 {
			return fmt.Errorf("empty chat response")
		}
		reply = payload.Candidates[0].Content.Parts[0].Text
		return nil
	})
	observeUpstream(c.metrics, "chat", start, err)
	if err != nil {
		return "", err
	}

	return reply, nil
}
