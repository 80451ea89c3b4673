package entities

import (
	"encoding/json"
	"time"
)

// ThreadEvent is one immutable audit record of a state-changing action on a
// thread. Rows are append-only.
type ThreadEvent struct {
	ID        uint
	ThreadID  uint
	UserID    string
	EventType string
	Payload   json.RawMessage
	CreatedAt time.Time
}
