package telemetry

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type Outcome string

const (
	OutcomeServed Outcome = "served"
	OutcomeFailed Outcome = "failed"
)

// PredictionEvent records one prediction attempt
type PredictionEvent struct {
	ID              uuid.UUID `json:"id"`
	Canteen         string    `json:"canteen"`
	Time            string    `json:"time"`
	Outcome         Outcome   `json:"outcome"`
	QueueLength     string    `json:"queue_length,omitempty"`
	WaitTimeMinutes int       `json:"wait_time_minutes,omitempty"`
	Error           string    `json:"error,omitempty"`
	DurationMs      int64     `json:"duration_ms"`
	CreatedAt       time.Time `json:"created_at"`
}

func NewPredictionEvent(canteen, timeOfDay string, duration time.Duration) *PredictionEvent {
	return &PredictionEvent{
		ID:         uuid.New(),
		Canteen:    canteen,
		Time:       timeOfDay,
		DurationMs: duration.Milliseconds(),
		CreatedAt:  time.Now().UTC(),
	}
}

func (e *PredictionEvent) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// GetPartitionKey keeps events for one canteen in order
func (e *PredictionEvent) GetPartitionKey() string {
	return e.Canteen
}
