package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/healsmart/healsmart-api/internal/model"
	"github.com/healsmart/healsmart-api/pkg/circuitbreaker"
	"github.com/healsmart/healsmart-api/pkg/metrics"
)

// PredictorClient calls the disease-prediction microservice. The model and
// its symptom vocabulary live entirely on the other side; this client only
// relays symptom tokens and translates failures.
type PredictorClient struct {
	baseURL string
	http    *http.Client
	cb      *circuitbreaker.CircuitBreaker
	metrics *metrics.Metrics
}

// PredictorError carries a validation failure reported by the predictor,
// including its symptom suggestions, so the handler can pass them through.
type PredictorError struct {
	Status          int               `json:"-"`
	Message         string            `json:"error"`
	Details         string            `json:"message,omitempty"`
	InvalidSymptoms []string          `json:"invalid_symptoms,omitempty"`
	Suggestions     map[string]string `json:"suggestions,omitempty"`
}

func (e *PredictorError) Error() string {
	return fmt.Sprintf("predictor rejected request: %s", e.Message)
}

func NewPredictorClient(baseURL string, timeout time.Duration, m *metrics.Metrics) *PredictorClient {
	return &PredictorClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		metrics: m,
		cb: circuitbreaker.NewCircuitBreaker(circuitbreaker.Settings{
			Name:        "predictor",
			MaxFailures: 5,
			Timeout:     30 * time.Second,
		}),
	}
}

func (c *PredictorClient) Predict(ctx context.Context, symptoms []string) (*model.PredictionResult, error) {
	body, err := json.Marshal(map[string][]string{"symptoms": symptoms})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	var result model.PredictionResult
	start := time.Now()
	err = c.cb.Execute(func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
		if err != nil {
			return fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.http.Do(req)
		if err != nil {
			return fmt.Errorf("predictor request failed: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 400 && resp.StatusCode < 500 {
			predErr := &PredictorError{Status: resp.StatusCode}
			if err := json.NewDecoder(resp.Body).Decode(predErr); err != nil {
				predErr.Message = "prediction failed"
			}
			return predErr
		}
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("predictor returned status %d", resp.StatusCode)
		}

		var payload struct {
			Prediction       string   `json:"prediction"`
			SymptomsReceived []string `json:"symptoms_received"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
			return fmt.Errorf("failed to decode predictor response: %w", err)
		}

		result.Prediction = payload.Prediction
		result.SymptomsReceived = payload.SymptomsReceived
		return nil
	})
	observeUpstream(c.metrics, "predictor", start, err)
	if err != nil {
		return nil, err
	}

	return &result, nil
}
