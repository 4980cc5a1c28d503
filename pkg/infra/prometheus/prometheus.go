package prometheus

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "contentguard"

type Config struct {
	// EnableRuntime registers the process and Go runtime collectors.
	EnableRuntime bool
}

// Recorder owns its registry; each instance is isolated so tests can build
// as many as they need.
type Recorder struct {
	registry *prometheus.Registry

	requestsTotal          prometheus.Counter
	cacheHits              prometheus.Counter
	cacheMisses            prometheus.Counter
	classificationDuration prometheus.Histogram
	cacheErrors            *prometheus.CounterVec
	httpRequests           *prometheus.CounterVec
}

func NewRecorder(cfg Config) *Recorder {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	r := &Recorder{
		registry: registry,
		requestsTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "requests_total",
			Help:      "Total classification requests",
		}),
		cacheHits: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_hits_total",
			Help:      "Classification results served from cache",
		}),
		cacheMisses: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_misses_total",
			Help:      "Classification requests not found in cache",
		}),
		classificationDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "classification_duration_seconds",
			Help:      "Time spent invoking the classifier",
			Buckets:   prometheus.DefBuckets,
		}),
		cacheErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_errors_total",
			Help:      "Cache operations that failed",
		}, []string{"operation"}),
		httpRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status",
		}, []string{"method", "route", "status"}),
	}

	if cfg.EnableRuntime {
		registry.MustRegister(
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			collectors.NewGoCollector(),
		)
	}
	return r
}

func (r *Recorder) IncRequest() {
	r.requestsTotal.Inc()
}

func (r *Recorder) IncCacheHit() {
	r.cacheHits.Inc()
}

func (r *Recorder) IncCacheMiss() {
	r.cacheMisses.Inc()
}

func (r *Recorder) ObserveClassification(d time.Duration) {
	r.classificationDuration.Observe(d.Seconds())
}

func (r *Recorder) IncCacheError(operation string) {
	r.cacheErrors.WithLabelValues(operation).Inc()
}

func (r *Recorder) ObserveHTTPRequest(method, route string, status int) {
	r.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
}

func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}
