package comm

import (
	"encoding/json"
	"time"
)

// Subjects the register service publishes on.
const (
	VisitorSubject    = "register.visitor"
	ContractorSubject = "register.contractor"
)

// Event types.
const (
	VisitorCreated    = "visitor-created"
	ContractorCreated = "contractor-created"
	ContractorUpdated = "contractor-updated"
)

// Event is the envelope published after a successful write.
type Event struct {
	ID        string          `json:"id"`
	Type      string          `json:"type"` // e.g. "visitor-created"
	Data      json.RawMessage `json:"data"`
	Instance  string          `json:"instance"` // publishing service instance
	Timestamp time.Time       `json:"timestamp"`
}
