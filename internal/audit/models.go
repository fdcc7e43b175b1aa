package audit

import (
	"time"

	"github.com/google/uuid"
)

// Event is emitted whenever consent state moves. Keep it transport-agnostic so
// stores and sinks can fan out.
type Event struct {
	ID        uuid.UUID `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Module    string    `json:"module"`
	Action    string    `json:"action"`
	Key       string    `json:"key,omitempty"`
	Value     string    `json:"value,omitempty"`
	Source    string    `json:"source,omitempty"`
	Succeeded bool      `json:"succeeded"`
}
