package prometheus

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder_Counters(t *testing.T) {
	r := NewRecorder(Config{})

	r.IncRequest()
	r.IncRequest()
	r.IncCacheHit()
	r.IncCacheMiss()
	r.IncCacheError("get")
	r.ObserveHTTPRequest("POST", "/classify", 200)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.requestsTotal))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.cacheHits))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.cacheMisses))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.cacheErrors.WithLabelValues("get")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.httpRequests.WithLabelValues("POST", "/classify", "200")))
}

func TestRecorder_HistogramObservation(t *testing.T) {
	r := NewRecorder(Config{})
	r.ObserveClassification(150 * time.Millisecond)

	assert.Equal(t, 1, testutil.CollectAndCount(r.classificationDuration))
}

func TestRecorder_IsolatedRegistries(t *testing.T) {
	a := NewRecorder(Config{})
	b := NewRecorder(Config{EnableRuntime: true})

	a.IncRequest()

	assert.Equal(t, 1.0, testutil.ToFloat64(a.requestsTotal))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.requestsTotal))
}

func TestRecorder_Handler(t *testing.T) {
	r := NewRecorder(Config{})
	r.IncRequest()

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "contentguard_requests_total 1")
	assert.Contains(t, body, "contentguard_classification_duration_seconds_bucket")
}
