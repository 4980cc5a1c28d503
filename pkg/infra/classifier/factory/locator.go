package factory

import (
	"context"
	"fmt"
	"time"

	"github.com/NeuralTrust/ContentGuard/pkg/config"
	"github.com/NeuralTrust/ContentGuard/pkg/domain/classification"
	"github.com/NeuralTrust/ContentGuard/pkg/infra/classifier/azure"
	"github.com/NeuralTrust/ContentGuard/pkg/infra/classifier/bedrock"
	"github.com/NeuralTrust/ContentGuard/pkg/infra/classifier/inference"
	"github.com/NeuralTrust/ContentGuard/pkg/infra/classifier/llmjudge"
	"github.com/NeuralTrust/ContentGuard/pkg/infra/classifier/openai"
	"github.com/NeuralTrust/ContentGuard/pkg/infra/httpx"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
)

const (
	ProviderInference = inference.ProviderName
	ProviderOpenAI    = openai.ProviderName
	ProviderAzure     = azure.ProviderName
	ProviderBedrock   = bedrock.ProviderName
	ProviderAnthropic = llmjudge.AnthropicProviderName
	ProviderGemini    = llmjudge.GeminiProviderName

	breakerTimeout     = 30 * time.Second
	breakerMaxFailures = 5
)

//go:generate mockery --name=ClassifierLocator --dir=. --output=../../../../mocks --filename=classifier_locator_mock.go --case=underscore --with-expecter
type ClassifierLocator interface {
	Get(ctx context.Context, cfg config.ClassifierConfig) (classification.Classifier, error)
}

type classifierLocator struct {
	logger     *logrus.Logger
	httpClient httpx.Client
}

func NewClassifierLocator(logger *logrus.Logger, httpClient httpx.Client) ClassifierLocator {
	return &classifierLocator{
		logger:     logger,
		httpClient: httpClient,
	}
}

func (l *classifierLocator) Get(ctx context.Context, cfg config.ClassifierConfig) (classification.Classifier, error) {
	switch cfg.Provider {
	case ProviderInference:
		var c inference.Config
		if err := decode(cfg.Settings, &c); err != nil {
			return nil, err
		}
		if c.MaxLength == 0 {
			c.MaxLength = cfg.MaxLength
		}
		return inference.NewClassifier(c, l.httpClient, l.breaker(cfg.Provider))
	case ProviderOpenAI:
		var c openai.Config
		if err := decode(cfg.Settings, &c); err != nil {
			return nil, err
		}
		return openai.NewClassifier(c)
	case ProviderAzure:
		var c azure.Config
		if err := decode(cfg.Settings, &c); err != nil {
			return nil, err
		}
		return azure.NewClassifier(c, l.httpClient, l.breaker(cfg.Provider))
	case ProviderBedrock:
		var c bedrock.Config
		if err := decode(cfg.Settings, &c); err != nil {
			return nil, err
		}
		if err := c.Validate(); err != nil {
			return nil, err
		}
		client, err := bedrock.NewGuardrailClient(ctx, c)
		if err != nil {
			return nil, err
		}
		return bedrock.NewClassifier(c, client, l.logger)
	case ProviderAnthropic:
		var c llmjudge.AnthropicConfig
		if err := decode(cfg.Settings, &c); err != nil {
			return nil, err
		}
		completer, err := llmjudge.NewAnthropicCompleter(c)
		if err != nil {
			return nil, err
		}
		return llmjudge.NewClassifier(cfg.Provider, completer), nil
	case ProviderGemini:
		var c llmjudge.GeminiConfig
		if err := decode(cfg.Settings, &c); err != nil {
			return nil, err
		}
		completer, err := llmjudge.NewGeminiCompleter(ctx, c)
		if err != nil {
			return nil, err
		}
		return llmjudge.NewClassifier(cfg.Provider, completer), nil
	default:
		return nil, fmt.Errorf("unsupported classifier provider: %s", cfg.Provider)
	}
}

func (l *classifierLocator) breaker(provider string) httpx.CircuitBreaker {
	return httpx.NewCircuitBreaker(provider+"-classifier", breakerTimeout, breakerMaxFailures)
}

func decode(settings map[string]interface{}, out interface{}) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return err
	}
	if err := decoder.Decode(settings); err != nil {
		return fmt.Errorf("invalid classifier settings: %w", err)
	}
	return nil
}
