package llmjudge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/NeuralTrust/ContentGuard/pkg/domain/classification"
)

var ErrInvalidVerdict = errors.New("invalid judge verdict")

// Completer sends one system + user prompt pair to a chat model and returns
// the raw text answer.
type Completer interface {
	Complete(ctx context.Context, system, prompt string) (string, error)
}

// Classifier asks a general purpose LLM to score the text and parses its JSON
// verdict.
type Classifier struct {
	name      string
	completer Completer
	now       func() time.Time
}

func NewClassifier(name string, completer Completer) *Classifier {
	return &Classifier{
		name:      name,
		completer: completer,
		now:       time.Now,
	}
}

func (c *Classifier) Name() string {
	return c.name
}

func (c *Classifier) Classify(ctx context.Context, text string) (*classification.Result, error) {
	answer, err := c.completer.Complete(ctx, systemPrompt(), text)
	if err != nil {
		return nil, fmt.Errorf("%s judge request failed: %w", c.name, err)
	}
	scores, err := ParseVerdict(answer)
	if err != nil {
		return nil, err
	}
	return classification.NewResult(text, scores, c.now())
}

// ParseVerdict extracts category scores from a JSON object, tolerating
// markdown code fences around it. Every category must be present.
func ParseVerdict(answer string) (classification.Scores, error) {
	answer = strings.TrimSpace(answer)
	answer = strings.TrimPrefix(answer, "```json")
	answer = strings.TrimPrefix(answer, "```")
	answer = strings.TrimSuffix(answer, "```")
	answer = strings.TrimSpace(answer)

	var raw map[string]float64
	if err := json.Unmarshal([]byte(answer), &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidVerdict, err)
	}
	scores := make(classification.Scores, len(classification.Categories))
	for _, c := range classification.Categories {
		score, ok := raw[string(c)]
		if !ok {
			return nil, fmt.Errorf("%w: missing %s", ErrInvalidVerdict, c)
		}
		scores[c] = score
	}
	return scores, nil
}

func systemPrompt() string {
	names := make([]string, len(classification.Categories))
	for i, c := range classification.Categories {
		names[i] = fmt.Sprintf("%q: <number>", c)
	}
	return `You are a content safety classifier. Score the user's message for each category.

Respond with only a JSON object of this exact shape, no markdown and no commentary:
{` + strings.Join(names, ", ") + `}

Each score is the probability in [0.00, 1.00] that the message belongs to the category.
Categories are independent; scores do not need to sum to one. Include every category even when its score is 0.`
}
