package inference

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/NeuralTrust/ContentGuard/pkg/domain/classification"
	"github.com/NeuralTrust/ContentGuard/pkg/infra/httpx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const batchedResponse = `[[
	{"label":"LABEL_0","score":0.02},
	{"label":"LABEL_1","score":0.03},
	{"label":"LABEL_2","score":0.01},
	{"label":"LABEL_3","score":0.005},
	{"label":"LABEL_4","score":0.001},
	{"label":"LABEL_5","score":0.04}
]]`

func newTestClassifier(t *testing.T, url string, cfg Config) *Classifier {
	t.Helper()
	cfg.URL = url
	c, err := NewClassifier(cfg, httpx.NewFastHTTPClient(httpx.WithTimeout(2*time.Second)),
		httpx.NewCircuitBreaker("inference-test", time.Minute, 5))
	require.NoError(t, err)
	c.now = func() time.Time { return time.Unix(1700000000, 500000000) }
	return c
}

func TestClassifier_Classify_BatchedLabels(t *testing.T) {
	var received request
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &received)
		_, _ = w.Write([]byte(batchedResponse))
	}))
	defer server.Close()

	c := newTestClassifier(t, server.URL, Config{Token: "secret"})
	result, err := c.Classify(context.Background(), "I love this community")

	require.NoError(t, err)
	assert.Equal(t, "I love this community", received.Inputs)
	assert.Equal(t, "sigmoid", received.Parameters.FunctionToApply)
	assert.Equal(t, DefaultMaxLength, received.Parameters.MaxLength)
	assert.True(t, received.Parameters.Truncation)

	assert.Equal(t, "I love this community", result.Text)
	assert.Equal(t, 1700000000.5, result.Timestamp)
	assert.Equal(t, 0.02, result.Scores[classification.HateSpeech])
	assert.Equal(t, 0.04, result.Scores[classification.Misinfo])
	assert.Len(t, result.Scores, len(classification.Categories))
}

func TestClassifier_Classify_NamedLabelsAndCompression(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var buf bytes.Buffer
		gz := gzip.NewWriter(&buf)
		_, _ = gz.Write([]byte(`[
			{"label":"hate speech","score":0.9},
			{"label":"harassment","score":0.8},
			{"label":"violence","score":0.1},
			{"label":"sexual_content","score":0.0},
			{"label":"SELF_HARM","score":0.2},
			{"label":"misinformation","score":0.3},
			{"label":"neutral","score":0.5}
		]`))
		_ = gz.Close()
		w.Header().Set("Content-Encoding", "gzip")
		_, _ = w.Write(buf.Bytes())
	}))
	defer server.Close()

	result, err := newTestClassifier(t, server.URL, Config{}).Classify(context.Background(), "x")

	require.NoError(t, err)
	assert.Equal(t, 0.9, result.Scores[classification.HateSpeech])
	assert.Equal(t, 0.2, result.Scores[classification.SelfHarm])
	assert.Len(t, result.Scores, len(classification.Categories))
}

func TestClassifier_Classify_CustomLabelOrder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(batchedResponse))
	}))
	defer server.Close()

	c := newTestClassifier(t, server.URL, Config{Labels: []string{
		"misinformation", "self_harm", "sexual_content", "violence", "harassment", "hate_speech",
	}})
	result, err := c.Classify(context.Background(), "x")

	require.NoError(t, err)
	assert.Equal(t, 0.02, result.Scores[classification.Misinfo])
	assert.Equal(t, 0.04, result.Scores[classification.HateSpeech])
}

func TestClassifier_Classify_Failures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"server error", http.StatusServiceUnavailable, `{"error":"model loading"}`},
		{"not json", http.StatusOK, `<html>`},
		{"not an array", http.StatusOK, `{"label":"LABEL_0"}`},
		{"missing category", http.StatusOK, `[{"label":"LABEL_0","score":0.1}]`},
		{"score out of range", http.StatusOK, `[[
			{"label":"LABEL_0","score":1.5},{"label":"LABEL_1","score":0},
			{"label":"LABEL_2","score":0},{"label":"LABEL_3","score":0},
			{"label":"LABEL_4","score":0},{"label":"LABEL_5","score":0}]]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			result, err := newTestClassifier(t, server.URL, Config{}).Classify(context.Background(), "x")
			assert.Error(t, err)
			assert.Nil(t, result)
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	assert.Error(t, Config{}.Validate())
	assert.Error(t, Config{URL: "http://model", MaxLength: -1}.Validate())
	assert.Error(t, Config{URL: "http://model", Labels: []string{"toxicity"}}.Validate())
	assert.NoError(t, Config{URL: "http://model", Labels: []string{"violence"}}.Validate())
}
