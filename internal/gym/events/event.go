package events

import "time"

const (
	TypeSessionStart  = "session_start"
	TypeSessionFinish = "session_finish"
)

// Event is one append-only gym event, currently training session start and
// finish markers with an arbitrary string payload.
type Event struct {
	ID        int               `json:"event_id"`
	UserID    int               `json:"user_id"`
	Type      string            `json:"type"`
	Timestamp time.Time         `json:"timestamp"`
	Data      map[string]string `json:"data"`
}
