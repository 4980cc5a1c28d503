package azure

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/NeuralTrust/ContentGuard/pkg/domain/classification"
	"github.com/NeuralTrust/ContentGuard/pkg/infra/httpx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCredential struct {
	calls atomic.Int32
	err   error
}

func (f *fakeCredential) GetToken(_ context.Context, opts policy.TokenRequestOptions) (azcore.AccessToken, error) {
	f.calls.Add(1)
	if f.err != nil {
		return azcore.AccessToken{}, f.err
	}
	return azcore.AccessToken{Token: "entra-token", ExpiresOn: time.Now().Add(time.Hour)}, nil
}

const analyzeBody = `{"blocklistsMatch":[],"categoriesAnalysis":[
	{"category":"Hate","severity":7},
	{"category":"SelfHarm","severity":0},
	{"category":"Sexual","severity":2},
	{"category":"Violence","severity":4}
]}`

func newServer(t *testing.T, check func(r *http.Request)) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/contentsafety/text:analyze", r.URL.Path)
		assert.Equal(t, DefaultAPIVersion, r.URL.Query().Get("api-version"))
		check(r)
		_, _ = w.Write([]byte(analyzeBody))
	}))
}

func breaker() httpx.CircuitBreaker {
	return httpx.NewCircuitBreaker("azure-test", time.Minute, 5)
}

func TestClassifier_Classify_APIKey(t *testing.T) {
	server := newServer(t, func(r *http.Request) {
		assert.Equal(t, "key-1", r.Header.Get("Ocp-Apim-Subscription-Key"))
		var req analyzeRequest
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &req))
		assert.Equal(t, "some text", req.Text)
		assert.Equal(t, "EightSeverityLevels", req.OutputType)
	})
	defer server.Close()

	c, err := NewClassifierWithCredential(Config{Endpoint: server.URL + "/", APIKey: "key-1"},
		httpx.NewFastHTTPClient(), breaker(), nil)
	require.NoError(t, err)

	result, err := c.Classify(context.Background(), "some text")

	require.NoError(t, err)
	assert.Equal(t, 1.0, result.Scores[classification.HateSpeech])
	assert.InDelta(t, 4.0/7.0, result.Scores[classification.Violence], 1e-9)
	assert.InDelta(t, 2.0/7.0, result.Scores[classification.SexualContent], 1e-9)
	assert.Equal(t, 0.0, result.Scores[classification.Harassment])
	assert.Equal(t, 0.0, result.Scores[classification.Misinfo])
}

func TestClassifier_Classify_EntraTokenCached(t *testing.T) {
	server := newServer(t, func(r *http.Request) {
		assert.Equal(t, "Bearer entra-token", r.Header.Get("Authorization"))
		assert.Empty(t, r.Header.Get("Ocp-Apim-Subscription-Key"))
	})
	defer server.Close()

	cred := &fakeCredential{}
	c, err := NewClassifierWithCredential(Config{Endpoint: server.URL}, httpx.NewFastHTTPClient(), breaker(), cred)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err := c.Classify(context.Background(), "text")
		require.NoError(t, err)
	}
	assert.Equal(t, int32(1), cred.calls.Load())
}

func TestClassifier_Classify_TokenFailure(t *testing.T) {
	cred := &fakeCredential{err: errors.New("no identity")}
	c, err := NewClassifierWithCredential(Config{Endpoint: "http://127.0.0.1:1"}, httpx.NewFastHTTPClient(), breaker(), cred)
	require.NoError(t, err)

	_, err = c.Classify(context.Background(), "text")
	assert.ErrorContains(t, err, "failed to get azure token")
}

func TestClassifier_Classify_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"code":"TooManyRequests"}}`))
	}))
	defer server.Close()

	c, err := NewClassifierWithCredential(Config{Endpoint: server.URL, APIKey: "k"}, httpx.NewFastHTTPClient(), breaker(), nil)
	require.NoError(t, err)

	_, err = c.Classify(context.Background(), "text")
	assert.ErrorContains(t, err, "status 429")
}

func TestNewClassifierWithCredential_Validation(t *testing.T) {
	_, err := NewClassifierWithCredential(Config{}, nil, nil, nil)
	assert.EqualError(t, err, "azure endpoint is required")

	_, err = NewClassifierWithCredential(Config{Endpoint: "https://x"}, nil, nil, nil)
	assert.EqualError(t, err, "azure api_key or credential is required")
}

func TestTruncateRunes(t *testing.T) {
	assert.Equal(t, "abc", truncateRunes("abc", 5))
	assert.Equal(t, "żó", truncateRunes("żółw", 2))
	assert.Len(t, []rune(truncateRunes(strings.Repeat("a", 20000), maxTextRunes)), maxTextRunes)
}
