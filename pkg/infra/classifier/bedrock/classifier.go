package bedrock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/NeuralTrust/ContentGuard/pkg/domain/classification"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime/types"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/sirupsen/logrus"
)

const (
	ProviderName = "bedrock"

	defaultRegion      = "us-east-1"
	defaultSessionName = "ContentGuardSession"
)

//go:generate mockery --name=GuardrailClient --dir=. --output=../../../../mocks --filename=guardrail_client_mock.go --case=underscore --with-expecter
type GuardrailClient interface {
	ApplyGuardrail(
		ctx context.Context,
		params *bedrockruntime.ApplyGuardrailInput,
		optFns ...func(*bedrockruntime.Options),
	) (*bedrockruntime.ApplyGuardrailOutput, error)
}

type Config struct {
	GuardrailID string `mapstructure:"guardrail_id"`
	Version     string `mapstructure:"version"`
	Region      string `mapstructure:"region"`
	AccessKey   string `mapstructure:"access_key"`
	SecretKey   string `mapstructure:"secret_key"`
	RoleARN     string `mapstructure:"role_arn"`
}

func (c Config) Validate() error {
	if c.GuardrailID == "" {
		return errors.New("bedrock guardrail_id is required")
	}
	if c.Version == "" {
		return errors.New("bedrock version is required")
	}
	if (c.AccessKey == "") != (c.SecretKey == "") {
		return errors.New("bedrock access_key and secret_key must be set together")
	}
	return nil
}

var filterMap = map[types.GuardrailContentFilterType]classification.Category{
	types.GuardrailContentFilterTypeHate:     classification.HateSpeech,
	types.GuardrailContentFilterTypeInsults:  classification.Harassment,
	types.GuardrailContentFilterTypeSexual:   classification.SexualContent,
	types.GuardrailContentFilterTypeViolence: classification.Violence,
}

var confidenceScore = map[types.GuardrailContentFilterConfidence]float64{
	types.GuardrailContentFilterConfidenceNone:   0,
	types.GuardrailContentFilterConfidenceLow:    0.35,
	types.GuardrailContentFilterConfidenceMedium: 0.65,
	types.GuardrailContentFilterConfidenceHigh:   0.95,
}

// Classifier scores text with a Bedrock guardrail content policy. Guardrails
// report coarse confidence levels, mapped to fixed scores.
type Classifier struct {
	cfg    Config
	client GuardrailClient
	logger *logrus.Logger
	now    func() time.Time
}

func NewClassifier(cfg Config, client GuardrailClient, logger *logrus.Logger) (*Classifier, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Classifier{
		cfg:    cfg,
		client: client,
		logger: logger,
		now:    time.Now,
	}, nil
}

// NewGuardrailClient builds a bedrockruntime client from static keys, an
// assumed role, or the default AWS credential chain.
func NewGuardrailClient(ctx context.Context, cfg Config) (GuardrailClient, error) {
	region := cfg.Region
	if region == "" {
		region = defaultRegion
	}
	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(region)}
	if cfg.AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	if cfg.RoleARN != "" {
		out, err := sts.NewFromConfig(awsCfg).AssumeRole(ctx, &sts.AssumeRoleInput{
			RoleArn:         aws.String(cfg.RoleARN),
			RoleSessionName: aws.String(defaultSessionName),
		})
		if err != nil {
			return nil, fmt.Errorf("failed to assume role: %w", err)
		}
		awsCfg.Credentials = aws.NewCredentialsCache(credentials.NewStaticCredentialsProvider(
			aws.ToString(out.Credentials.AccessKeyId),
			aws.ToString(out.Credentials.SecretAccessKey),
			aws.ToString(out.Credentials.SessionToken),
		))
	}
	return bedrockruntime.NewFromConfig(awsCfg), nil
}

func (c *Classifier) Name() string {
	return ProviderName
}

func (c *Classifier) Classify(ctx context.Context, text string) (*classification.Result, error) {
	output, err := c.client.ApplyGuardrail(ctx, &bedrockruntime.ApplyGuardrailInput{
		Content: []types.GuardrailContentBlock{
			&types.GuardrailContentBlockMemberText{
				Value: types.GuardrailTextBlock{Text: aws.String(text)},
			},
		},
		GuardrailIdentifier: aws.String(c.cfg.GuardrailID),
		GuardrailVersion:    aws.String(c.cfg.Version),
		Source:              types.GuardrailContentSourceInput,
	})
	if err != nil {
		return nil, fmt.Errorf("bedrock guardrail request failed: %w", err)
	}

	scores := classification.NewScores()
	for _, assessment := range output.Assessments {
		if assessment.ContentPolicy == nil {
			continue
		}
		for _, filter := range assessment.ContentPolicy.Filters {
			category, ok := filterMap[filter.Type]
			if !ok {
				continue
			}
			score, ok := confidenceScore[filter.Confidence]
			if !ok {
				c.logger.WithField("confidence", filter.Confidence).Warn("unknown guardrail confidence")
				continue
			}
			scores.Raise(category, score)
		}
	}
	return classification.NewResult(text, scores, c.now())
}
