// Package domain defines the core domain models for the advisor engine.
package domain

import (
	"encoding/json"
	"time"
)

// Role identifies the author of a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Session represents a conversation session. Sessions are identified by an
// opaque caller-supplied key and materialized on first use.
type Session struct {
	SessionID string    `json:"session_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Message represents a single message in a session. Messages are append-only;
// they are never mutated and only removed by a full session reset.
type Message struct {
	MessageID         string          `json:"message_id"`
	SessionID         string          `json:"session_id"`
	Role              Role            `json:"role"`
	Content           string          `json:"content"`
	StructuredPayload json.RawMessage `json:"structured_payload,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
}
