package azure

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/NeuralTrust/ContentGuard/pkg/domain/classification"
	"github.com/NeuralTrust/ContentGuard/pkg/infra/httpx"
	"golang.org/x/sync/singleflight"
)

const (
	ProviderName = "azure"

	DefaultAPIVersion = "2024-09-01"
	cognitiveScope    = "https://cognitiveservices.azure.com/.default"
	maxTextRunes      = 10000
	maxSeverity       = 7.0
	tokenRefreshSkew  = 5 * time.Minute
)

// Config selects key auth when APIKey is set, Entra ID otherwise.
type Config struct {
	Endpoint   string `mapstructure:"endpoint"`
	APIKey     string `mapstructure:"api_key"`
	APIVersion string `mapstructure:"api_version"`
}

type analyzeRequest struct {
	Text       string   `json:"text"`
	Categories []string `json:"categories"`
	OutputType string   `json:"outputType"`
}

type analyzeResponse struct {
	CategoriesAnalysis []struct {
		Category string `json:"category"`
		Severity int    `json:"severity"`
	} `json:"categoriesAnalysis"`
}

var categoryMap = map[string]classification.Category{
	"Hate":     classification.HateSpeech,
	"SelfHarm": classification.SelfHarm,
	"Sexual":   classification.SexualContent,
	"Violence": classification.Violence,
}

// Classifier scores text with Azure AI Content Safety. Severities on the
// eight level scale are normalised to [0,1]; harassment and misinformation
// have no Azure counterpart and are reported as zero.
type Classifier struct {
	cfg        Config
	client     httpx.Client
	breaker    httpx.CircuitBreaker
	credential azcore.TokenCredential

	tokenMu sync.RWMutex
	token   azcore.AccessToken
	sf      singleflight.Group
	now     func() time.Time
}

func NewClassifier(cfg Config, client httpx.Client, breaker httpx.CircuitBreaker) (*Classifier, error) {
	var credential azcore.TokenCredential
	if cfg.APIKey == "" {
		cred, err := azidentity.NewDefaultAzureCredential(nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create azure credential: %w", err)
		}
		credential = cred
	}
	return NewClassifierWithCredential(cfg, client, breaker, credential)
}

func NewClassifierWithCredential(
	cfg Config,
	client httpx.Client,
	breaker httpx.CircuitBreaker,
	credential azcore.TokenCredential,
) (*Classifier, error) {
	if cfg.Endpoint == "" {
		return nil, errors.New("azure endpoint is required")
	}
	if cfg.APIKey == "" && credential == nil {
		return nil, errors.New("azure api_key or credential is required")
	}
	if cfg.APIVersion == "" {
		cfg.APIVersion = DefaultAPIVersion
	}
	cfg.Endpoint = strings.TrimRight(cfg.Endpoint, "/")
	return &Classifier{
		cfg:        cfg,
		client:     client,
		breaker:    breaker,
		credential: credential,
		now:        time.Now,
	}, nil
}

func (c *Classifier) Name() string {
	return ProviderName
}

func (c *Classifier) Classify(ctx context.Context, text string) (*classification.Result, error) {
	payload, err := json.Marshal(analyzeRequest{
		Text:       truncateRunes(text, maxTextRunes),
		Categories: []string{"Hate", "SelfHarm", "Sexual", "Violence"},
		OutputType: "EightSeverityLevels",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	var parsed analyzeResponse
	err = c.breaker.Execute(func() error {
		return c.analyze(ctx, payload, &parsed)
	})
	if err != nil {
		return nil, err
	}

	scores := classification.NewScores()
	for _, item := range parsed.CategoriesAnalysis {
		category, ok := categoryMap[item.Category]
		if !ok {
			continue
		}
		scores.Raise(category, float64(item.Severity)/maxSeverity)
	}
	return classification.NewResult(text, scores, c.now())
}

func (c *Classifier) analyze(ctx context.Context, payload []byte, out *analyzeResponse) error {
	url := fmt.Sprintf("%s/contentsafety/text:analyze?api-version=%s", c.cfg.Endpoint, c.cfg.APIVersion)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.cfg.APIKey != "" {
		req.Header.Set("Ocp-Apim-Subscription-Key", c.cfg.APIKey)
	} else {
		token, err := c.accessToken(ctx)
		if err != nil {
			return err
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("azure content safety request failed: %w", err)
	}
	body, err := httpx.ReadBody(resp)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("azure content safety returned status %d: %s", resp.StatusCode, string(body))
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse azure response: %w", err)
	}
	return nil
}

// accessToken returns the cached Entra ID token, refreshing it once for all
// concurrent callers when it is about to expire.
func (c *Classifier) accessToken(ctx context.Context) (string, error) {
	c.tokenMu.RLock()
	token := c.token
	c.tokenMu.RUnlock()
	if token.Token != "" && c.now().Add(tokenRefreshSkew).Before(token.ExpiresOn) {
		return token.Token, nil
	}

	v, err, _ := c.sf.Do("token", func() (interface{}, error) {
		fresh, err := c.credential.GetToken(ctx, policy.TokenRequestOptions{
			Scopes: []string{cognitiveScope},
		})
		if err != nil {
			return nil, fmt.Errorf("failed to get azure token: %w", err)
		}
		c.tokenMu.Lock()
		c.token = fresh
		c.tokenMu.Unlock()
		return fresh.Token, nil
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

func truncateRunes(s string, n int) string {
	if len(s) <= n {
		return s
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
