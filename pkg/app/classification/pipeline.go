package classification

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/NeuralTrust/ContentGuard/pkg/common"
	domainClassification "github.com/NeuralTrust/ContentGuard/pkg/domain/classification"
	domain "github.com/NeuralTrust/ContentGuard/pkg/domain/errors"
	"github.com/NeuralTrust/ContentGuard/pkg/infra/cache"
	"github.com/NeuralTrust/ContentGuard/pkg/infra/metrics/metric_events"
	"github.com/NeuralTrust/ContentGuard/pkg/infra/prometheus"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultTTL           = time.Hour
	DefaultFlagThreshold = 0.5

	cacheOpGet = "get"
	cacheOpSet = "set"
)

// Outcome carries the result together with the exact bytes served to the
// client. On a cache hit Raw is the stored value, unchanged.
type Outcome struct {
	Result   *domainClassification.Result
	Raw      []byte
	CacheHit bool
	CacheKey string
}

//go:generate mockery --name=Pipeline --dir=. --output=../../../mocks --filename=pipeline_mock.go --case=underscore --with-expecter
type Pipeline interface {
	Classify(ctx context.Context, req domainClassification.Request) (*Outcome, error)
	ClassifyBatch(ctx context.Context, req domainClassification.BatchRequest) ([]*Outcome, error)
}

type EventPublisher interface {
	Publish(evt *metric_events.Event)
}

type Options struct {
	TTL               time.Duration
	FailOpen          bool
	ClassifierTimeout time.Duration
	BatchMaxSize      int
	BatchConcurrency  int
	FlagThreshold     float64
}

type pipeline struct {
	logger     *logrus.Logger
	cache      cache.Client
	classifier domainClassification.Classifier
	recorder   *prometheus.Recorder
	publisher  EventPublisher
	opts       Options
}

func NewPipeline(
	logger *logrus.Logger,
	cacheClient cache.Client,
	classifier domainClassification.Classifier,
	recorder *prometheus.Recorder,
	publisher EventPublisher,
	opts Options,
) Pipeline {
	if opts.TTL <= 0 {
		opts.TTL = DefaultTTL
	}
	if opts.FlagThreshold <= 0 {
		opts.FlagThreshold = DefaultFlagThreshold
	}
	if opts.BatchConcurrency <= 0 {
		opts.BatchConcurrency = 1
	}
	return &pipeline{
		logger:     logger,
		cache:      cacheClient,
		classifier: classifier,
		recorder:   recorder,
		publisher:  publisher,
		opts:       opts,
	}
}

func (p *pipeline) Classify(ctx context.Context, req domainClassification.Request) (*Outcome, error) {
	p.recorder.IncRequest()
	if req.Text == "" {
		return nil, domain.ErrNoText
	}

	start := time.Now()
	key := cache.KeyForText(req.Text)

	outcome, err := p.lookup(ctx, key)
	if err != nil {
		return nil, err
	}
	if outcome == nil {
		outcome, err = p.classifyAndStore(ctx, req.Text, key)
		if err != nil {
			return nil, err
		}
	}

	p.publish(ctx, outcome, time.Since(start))
	return outcome, nil
}

// lookup returns a nil outcome on a miss, including a read failure when the
// cache fails open.
func (p *pipeline) lookup(ctx context.Context, key string) (*Outcome, error) {
	raw, err := p.cache.Get(ctx, key)
	switch {
	case err == nil:
		p.recorder.IncCacheHit()
		var result domainClassification.Result
		if err := json.Unmarshal([]byte(raw), &result); err != nil {
			p.logger.WithError(err).WithField("cache_key", key).Error("corrupt cached classification")
			return nil, domain.NewInternalError("decode cached result", err)
		}
		return &Outcome{
			Result:   &result,
			Raw:      []byte(raw),
			CacheHit: true,
			CacheKey: key,
		}, nil
	case errors.Is(err, cache.ErrCacheMiss):
		return nil, nil
	default:
		p.recorder.IncCacheError(cacheOpGet)
		p.logger.WithError(err).WithField("cache_key", key).Error("failed to read classification cache")
		if !p.opts.FailOpen {
			return nil, domain.NewInternalError("cache get", err)
		}
		return nil, nil
	}
}

func (p *pipeline) classifyAndStore(ctx context.Context, text, key string) (*Outcome, error) {
	p.recorder.IncCacheMiss()

	classifyCtx := ctx
	if p.opts.ClassifierTimeout > 0 {
		var cancel context.CancelFunc
		classifyCtx, cancel = context.WithTimeout(ctx, p.opts.ClassifierTimeout)
		defer cancel()
	}

	start := time.Now()
	result, err := p.classifier.Classify(classifyCtx, text)
	p.recorder.ObserveClassification(time.Since(start))
	if err != nil {
		p.logger.WithError(err).WithField("provider", p.classifier.Name()).Error("classification failed")
		return nil, domain.NewInternalError("classify", err)
	}
	if result == nil {
		return nil, domain.NewInternalError("classify", errors.New("classifier returned no result"))
	}
	if err := result.Validate(); err != nil {
		p.logger.WithError(err).WithField("provider", p.classifier.Name()).Error("classifier broke its output contract")
		return nil, domain.NewInternalError("classify", err)
	}

	raw, err := json.Marshal(result)
	if err != nil {
		return nil, domain.NewInternalError("encode result", err)
	}

	// The entry is written even if the client has gone away.
	if err := p.cache.Set(context.WithoutCancel(ctx), key, string(raw), p.opts.TTL); err != nil {
		p.recorder.IncCacheError(cacheOpSet)
		p.logger.WithError(err).WithField("cache_key", key).Error("failed to write classification cache")
		if !p.opts.FailOpen {
			return nil, domain.NewInternalError("cache set", err)
		}
	}

	return &Outcome{
		Result:   result,
		Raw:      raw,
		CacheHit: false,
		CacheKey: key,
	}, nil
}

// ClassifyBatch runs every text through Classify with bounded concurrency.
// Results keep the request order; the first failure cancels the rest.
func (p *pipeline) ClassifyBatch(ctx context.Context, req domainClassification.BatchRequest) ([]*Outcome, error) {
	if len(req.Texts) == 0 {
		return nil, domain.NewValidationError("no texts provided")
	}
	if p.opts.BatchMaxSize > 0 && len(req.Texts) > p.opts.BatchMaxSize {
		return nil, domain.NewValidationError(fmt.Sprintf("batch exceeds maximum size of %d", p.opts.BatchMaxSize))
	}
	for i, text := range req.Texts {
		if text == "" {
			return nil, domain.NewValidationError(fmt.Sprintf("text at index %d is empty", i))
		}
	}

	outcomes := make([]*Outcome, len(req.Texts))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.opts.BatchConcurrency)
	for i, text := range req.Texts {
		g.Go(func() error {
			outcome, err := p.Classify(gctx, domainClassification.Request{Text: text})
			if err != nil {
				return err
			}
			outcomes[i] = outcome
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return outcomes, nil
}

func (p *pipeline) publish(ctx context.Context, outcome *Outcome, latency time.Duration) {
	if p.publisher == nil {
		return
	}
	evt := metric_events.NewClassificationEvent()
	evt.RequestID = common.RequestIDFromContext(ctx)
	evt.Source = common.SourceFromContext(ctx)
	evt.Provider = p.classifier.Name()
	evt.CacheKey = outcome.CacheKey
	evt.CacheHit = outcome.CacheHit
	evt.Latency = latency.Milliseconds()
	evt.Scores = make(map[string]float64, len(outcome.Result.Scores))
	for c, score := range outcome.Result.Scores {
		evt.Scores[string(c)] = score
	}
	for _, c := range outcome.Result.Flagged(p.opts.FlagThreshold) {
		evt.Flagged = append(evt.Flagged, string(c))
	}
	p.publisher.Publish(evt)
}
