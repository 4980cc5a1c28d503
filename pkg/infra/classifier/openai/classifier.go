package openai

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/NeuralTrust/ContentGuard/pkg/domain/classification"
	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
)

const (
	ProviderName = "openai"
	DefaultModel = string(openai.ModerationModelOmniModerationLatest)
)

type Config struct {
	APIKey  string `mapstructure:"api_key"`
	Model   string `mapstructure:"model"`
	BaseURL string `mapstructure:"base_url"`
}

// Classifier scores text with the OpenAI moderation endpoint. Misinformation
// is not part of the moderation taxonomy and is always reported as zero.
type Classifier struct {
	client openai.Client
	model  string
	now    func() time.Time
}

func NewClassifier(cfg Config) (*Classifier, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("openai api_key is required")
	}
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}
	return &Classifier{
		client: openai.NewClient(opts...),
		model:  model,
		now:    time.Now,
	}, nil
}

func (c *Classifier) Name() string {
	return ProviderName
}

func (c *Classifier) Classify(ctx context.Context, text string) (*classification.Result, error) {
	resp, err := c.client.Moderations.New(ctx, openai.ModerationNewParams{
		Input: openai.ModerationNewParamsInputUnion{OfString: openai.String(text)},
		Model: openai.ModerationModel(c.model),
	})
	if err != nil {
		return nil, fmt.Errorf("openai moderation request failed: %w", err)
	}
	if len(resp.Results) == 0 {
		return nil, errors.New("openai moderation returned no results")
	}
	return classification.NewResult(text, mapScores(resp.Results[0].CategoryScores), c.now())
}

func mapScores(s openai.ModerationCategoryScores) classification.Scores {
	scores := classification.NewScores()
	scores.Raise(classification.HateSpeech, s.Hate)
	scores.Raise(classification.HateSpeech, s.HateThreatening)
	scores.Raise(classification.Harassment, s.Harassment)
	scores.Raise(classification.Harassment, s.HarassmentThreatening)
	scores.Raise(classification.Violence, s.Violence)
	scores.Raise(classification.Violence, s.ViolenceGraphic)
	scores.Raise(classification.SexualContent, s.Sexual)
	scores.Raise(classification.SexualContent, s.SexualMinors)
	scores.Raise(classification.SelfHarm, s.SelfHarm)
	scores.Raise(classification.SelfHarm, s.SelfHarmIntent)
	scores.Raise(classification.SelfHarm, s.SelfHarmInstructions)
	return scores
}
