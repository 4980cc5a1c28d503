package metric_events

import (
	"time"

	"github.com/google/uuid"
)

const (
	ClassificationType = "classification"
)

// Event describes one pipeline outcome. It never carries the classified text.
type Event struct {
	EventID   string             `json:"event_id"`
	RequestID string             `json:"request_id,omitempty"`
	Type      string             `json:"type"`
	Source    string             `json:"source"`
	Provider  string             `json:"provider"`
	CacheKey  string             `json:"cache_key"`
	CacheHit  bool               `json:"cache_hit"`
	Latency   int64              `json:"latency"`
	Timestamp int64              `json:"timestamp"`
	Scores    map[string]float64 `json:"scores,omitempty"`
	Flagged   []string           `json:"flagged,omitempty"`
	Error     string             `json:"error,omitempty"`
}

func NewClassificationEvent() *Event {
	return &Event{
		EventID:   uuid.New().String(),
		Type:      ClassificationType,
		Timestamp: time.Now().Unix(),
	}
}

func (evt *Event) IsTypeClassification() bool {
	return evt.Type == ClassificationType
}
