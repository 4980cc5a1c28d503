package classification

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sort"
	"time"
)

const (
	textField      = "text"
	timestampField = "timestamp"
)

var (
	ErrMissingCategory = errors.New("missing category score")
	ErrScoreOutOfRange = errors.New("score out of range")
)

type Scores map[Category]float64

// NewScores returns Scores with every category present at zero, for backends
// whose taxonomy does not cover all of them.
func NewScores() Scores {
	scores := make(Scores, len(Categories))
	for _, c := range Categories {
		scores[c] = 0
	}
	return scores
}

// Raise sets c to score when score is higher than the current value.
func (s Scores) Raise(c Category, score float64) {
	if score > s[c] {
		s[c] = score
	}
}

// Result is the classifier output: one score per category plus the echoed
// text and the classification time. It serializes to a flat JSON object.
type Result struct {
	Scores    Scores
	Text      string
	Timestamp float64
}

func NewResult(text string, scores Scores, at time.Time) (*Result, error) {
	r := &Result{
		Scores:    scores,
		Text:      text,
		Timestamp: Timestamp(at),
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

// Timestamp converts t to fractional seconds since the epoch.
func Timestamp(t time.Time) float64 {
	return float64(t.UnixNano()) / float64(time.Second)
}

func (r *Result) Validate() error {
	for _, c := range Categories {
		score, ok := r.Scores[c]
		if !ok {
			return fmt.Errorf("%w: %s", ErrMissingCategory, c)
		}
		if math.IsNaN(score) || score < 0 || score > 1 {
			return fmt.Errorf("%w: %s=%v", ErrScoreOutOfRange, c, score)
		}
	}
	return nil
}

// Flagged returns the categories scoring at or above threshold, sorted by name.
func (r *Result) Flagged(threshold float64) []Category {
	var flagged []Category
	for c, score := range r.Scores {
		if score >= threshold {
			flagged = append(flagged, c)
		}
	}
	sort.Slice(flagged, func(i, j int) bool { return flagged[i] < flagged[j] })
	return flagged
}

func (r Result) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, len(r.Scores)+2)
	for c, score := range r.Scores {
		out[string(c)] = score
	}
	out[textField] = r.Text
	out[timestampField] = r.Timestamp
	return json.Marshal(out)
}

func (r *Result) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	scores := make(Scores, len(Categories))
	for key, value := range raw {
		switch key {
		case textField:
			if err := json.Unmarshal(value, &r.Text); err != nil {
				return fmt.Errorf("invalid %s: %w", textField, err)
			}
		case timestampField:
			if err := json.Unmarshal(value, &r.Timestamp); err != nil {
				return fmt.Errorf("invalid %s: %w", timestampField, err)
			}
		default:
			if !IsCategory(key) {
				continue
			}
			var score float64
			if err := json.Unmarshal(value, &score); err != nil {
				return fmt.Errorf("invalid score for %s: %w", key, err)
			}
			scores[Category(key)] = score
		}
	}
	r.Scores = scores
	return r.Validate()
}
