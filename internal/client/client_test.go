package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/healsmart/healsmart-api/pkg/metrics"
)

// Shared across tests: the metrics collectors register globally and may
// only be created once per process.
var testMetrics = metrics.NewMetrics("healsmart", "client_test")

func TestPredictorClient_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string][]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, []string{"headache", "nausea"}, body["symptoms"])

		json.NewEncoder(w).Encode(map[string]interface{}{
			"prediction":        "Migraine",
			"symptoms_received": []string{"headache", "nausea"},
		})
	}))
	defer srv.Close()

	c := NewPredictorClient(srv.URL, time.Second, testMetrics)
	result, err := c.Predict(context.Background(), []string{"headache", "nausea"})
	require.NoError(t, err)
	assert.Equal(t, "Migraine", result.Prediction)
	assert.Equal(t, []string{"headache", "nausea"}, result.SymptomsReceived)
}

func TestPredictorClient_ValidationError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error":            "invalid symptoms provided",
			"invalid_symptoms": []string{"hedache"},
			"suggestions":      map[string]string{"hedache": "headache"},
		})
	}))
	defer srv.Close()

	c := NewPredictorClient(srv.URL, time.Second, testMetrics)
	_, err := c.Predict(context.Background(), []string{"hedache"})

	var predErr *PredictorError
	require.True(t, errors.As(err, &predErr))
	assert.Equal(t, http.StatusBadRequest, predErr.Status)
	assert.Equal(t, "invalid symptoms provided", predErr.Message)
	assert.Equal(t, []string{"hedache"}, predErr.InvalidSymptoms)
	assert.Equal(t, "headache", predErr.Suggestions["hedache"])
}

func TestPredictorClient_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewPredictorClient(srv.URL, time.Second, testMetrics)
	_, err := c.Predict(context.Background(), []string{"headache"})
	require.Error(t, err)

	var predErr *PredictorError
	assert.False(t, errors.As(err, &predErr))
}

func TestNewsClient_Search(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "headache AND (health)", q.Get("q"))
		assert.Equal(t, "en", q.Get("language"))
		assert.Equal(t, "test-key", q.Get("apiKey"))
		assert.Equal(t, "20", q.Get("pageSize"))

		json.NewEncoder(w).Encode(map[string]interface{}{
			"articles": []map[string]interface{}{
				{
					"title":       "Headache research",
					"description": "New health findings",
					"url":         "https://example.com/a",
					"source":      map[string]string{"name": "Example News"},
				},
			},
		})
	}))
	defer srv.Close()

	c := NewNewsClient(srv.URL, "test-key", time.Second, testMetrics)
	articles, err := c.Search(context.Background(), "headache AND (health)", 20)
	require.NoError(t, err)
	require.Len(t, articles, 1)
	assert.Equal(t, "Headache research", articles[0].Title)
	assert.Equal(t, "Example News", articles[0].Source.Name)
}

func TestSummarizerClient(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "long article text", body["inputs"])

		json.NewEncoder(w).Encode([]map[string]string{
			{"summary_text": "Short summary."},
		})
	}))
	defer srv.Close()

	c := NewSummarizerClient(srv.URL, "test-key", time.Second, testMetrics)
	summary, err := c.Summarize(context.Background(), "long article text", 200, 600)
	require.NoError(t, err)
	assert.Equal(t, "Short summary.", summary)
}

func TestChatClient(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		var body chatRequestBody
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Len(t, body.Contents, 3)
		assert.Equal(t, "system prompt", body.Contents[0].Parts[0].Text)
		assert.Equal(t, "hello", body.Contents[2].Parts[0].Text)

		json.NewEncoder(w).Encode(map[string]interface{}{
			"candidates": []map[string]interface{}{
				{"content": map[string]interface{}{
					"role":  "model",
					"parts": []map[string]string{{"text": "Hi, how can I help?"}},
				}},
			},
		})
	}))
	defer srv.Close()

	c := NewChatClient(srv.URL, "test-key", time.Second, testMetrics)
	reply, err := c.Complete(context.Background(), "system prompt", "hello")
	require.NoError(t, err)
	assert.Equal(t, "Hi, how can I help?", reply)
}

func TestChatClient_EmptyCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"candidates": []interface{}{}})
	}))
	defer srv.Close()

	c := NewChatClient(srv.URL, "test-key", time.Second, testMetrics)
	_, err := c.Complete(context.Background(), "system prompt", "hello")
	assert.Error(t, err)
}

func upstreamCount(service, status string) float64 {
	return testutil.ToFloat64(testMetrics.UpstreamRequests.WithLabelValues(service, status))
}

func TestPredictorClient_RecordsUpstreamMetrics(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"prediction": "Migraine"})
	}))
	defer srv.Close()

	c := NewPredictorClient(srv.URL, time.Second, testMetrics)

	before := upstreamCount("predictor", "success")
	_, err := c.Predict(context.Background(), []string{"headache"})
	require.NoError(t, err)
	assert.Equal(t, before+1, upstreamCount("predictor", "success"))
}

func TestPredictorClient_RecordsUpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewPredictorClient(srv.URL, time.Second, testMetrics)

	before := upstreamCount("predictor", "error")
	_, err := c.Predict(context.Background(), []string{"headache"})
	require.Error(t, err)
	assert.Equal(t, before+1, upstreamCount("predictor", "error"))
}
