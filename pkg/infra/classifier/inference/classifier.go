package inference

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/NeuralTrust/ContentGuard/pkg/domain/classification"
	"github.com/NeuralTrust/ContentGuard/pkg/infra/httpx"
	"github.com/valyala/fastjson"
)

const (
	ProviderName = "inference"

	DefaultMaxLength = 512
	labelPrefix      = "LABEL_"
	errorBodyLimit   = 256
)

var ErrUnexpectedResponse = errors.New("unexpected model server response")

// Config describes a text-classification model server speaking the Hugging
// Face inference protocol.
type Config struct {
	URL       string   `mapstructure:"url"`
	Token     string   `mapstructure:"token"`
	MaxLength int      `mapstructure:"max_length"`
	Labels    []string `mapstructure:"labels"`
}

func (c Config) Validate() error {
	if c.URL == "" {
		return errors.New("inference url is required")
	}
	if c.MaxLength < 0 {
		return errors.New("inference max_length must not be negative")
	}
	for _, label := range c.Labels {
		if !classification.IsCategory(label) {
			return fmt.Errorf("unknown label %q", label)
		}
	}
	return nil
}

type requestParameters struct {
	FunctionToApply string `json:"function_to_apply"`
	TopK            int    `json:"top_k"`
	Truncation      bool   `json:"truncation"`
	MaxLength       int    `json:"max_length"`
}

type request struct {
	Inputs     string            `json:"inputs"`
	Parameters requestParameters `json:"parameters"`
}

type Classifier struct {
	cfg     Config
	labels  []classification.Category
	client  httpx.Client
	breaker httpx.CircuitBreaker
	parsers fastjson.ParserPool
	now     func() time.Time
}

func NewClassifier(cfg Config, client httpx.Client, breaker httpx.CircuitBreaker) (*Classifier, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.MaxLength == 0 {
		cfg.MaxLength = DefaultMaxLength
	}
	labels := classification.Categories
	if len(cfg.Labels) > 0 {
		labels = make([]classification.Category, len(cfg.Labels))
		for i, l := range cfg.Labels {
			labels[i] = classification.Category(l)
		}
	}
	return &Classifier{
		cfg:     cfg,
		labels:  labels,
		client:  client,
		breaker: breaker,
		now:     time.Now,
	}, nil
}

func (c *Classifier) Name() string {
	return ProviderName
}

// Classify scores text with independent sigmoid probabilities, so the six
// categories need not sum to one.
func (c *Classifier) Classify(ctx context.Context, text string) (*classification.Result, error) {
	payload, err := json.Marshal(request{
		Inputs: text,
		Parameters: requestParameters{
			FunctionToApply: "sigmoid",
			TopK:            len(c.labels),
			Truncation:      true,
			MaxLength:       c.cfg.MaxLength,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	var body []byte
	err = c.breaker.Execute(func() error {
		body, err = c.call(ctx, payload)
		return err
	})
	if err != nil {
		return nil, err
	}

	scores, err := c.parseScores(body)
	if err != nil {
		return nil, err
	}
	return classification.NewResult(text, scores, c.now())
}

func (c *Classifier) call(ctx context.Context, payload []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.URL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Encoding", "br, gzip, zstd")
	if c.cfg.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.Token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("model server request failed: %w", err)
	}
	body, err := httpx.ReadBody(resp)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("model server returned status %d: %s", resp.StatusCode, truncate(body))
	}
	return body, nil
}

// parseScores accepts both the batched shape [[{label,score}...]] and the
// flat shape [{label,score}...].
func (c *Classifier) parseScores(body []byte) (classification.Scores, error) {
	p := c.parsers.Get()
	defer c.parsers.Put(p)

	v, err := p.ParseBytes(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnexpectedResponse, err)
	}
	items, err := v.Array()
	if err != nil {
		return nil, fmt.Errorf("%w: expected array", ErrUnexpectedResponse)
	}
	if len(items) > 0 && items[0].Type() == fastjson.TypeArray {
		items = items[0].GetArray()
	}

	scores := make(classification.Scores, len(c.labels))
	for _, item := range items {
		label := string(item.GetStringBytes("label"))
		category, ok := c.categoryFor(label)
		if !ok {
			continue
		}
		scoreValue := item.Get("score")
		if scoreValue == nil {
			return nil, fmt.Errorf("%w: missing score for %s", ErrUnexpectedResponse, label)
		}
		score, err := scoreValue.Float64()
		if err != nil {
			return nil, fmt.Errorf("%w: invalid score for %s", ErrUnexpectedResponse, label)
		}
		scores[category] = score
	}
	return scores, nil
}

func (c *Classifier) categoryFor(label string) (classification.Category, bool) {
	if strings.HasPrefix(label, labelPrefix) {
		idx, err := strconv.Atoi(strings.TrimPrefix(label, labelPrefix))
		if err != nil || idx < 0 || idx >= len(c.labels) {
			return "", false
		}
		return c.labels[idx], true
	}
	normalized := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(label), " ", "_"))
	if classification.IsCategory(normalized) {
		return classification.Category(normalized), true
	}
	return "", false
}

func truncate(body []byte) string {
	if len(body) > errorBodyLimit {
		return string(body[:errorBodyLimit]) + "..."
	}
	return string(body)
}
