// Package store provides durable persistence for sessions, messages and
// profiles.
package store

import (
	"context"
	"time"

	"github.com/biashara-ai/advisor/internal/domain"
)

// Store is the persistence contract the rest of the engine works against.
type Store interface {
	// EnsureSession upserts the session row so that messages and the profile
	// have a real parent to reference.
	EnsureSession(ctx context.Context, sessionID string) error

	// AppendMessage persists msg, assigning the current time as its
	// timestamp. Append order is preserved for reads.
	AppendMessage(ctx context.Context, msg *domain.Message) error

	// Messages returns all messages for a session in append order. An
	// unknown session yields an empty slice, not an error.
	Messages(ctx context.Context, sessionID string) ([]domain.Message, error)

	// GetProfile returns the profile row, or nil if none exists yet.
	GetProfile(ctx context.Context, sessionID string) (*domain.Profile, error)

	// CreateProfile inserts a profile row. At most one row per session.
	CreateProfile(ctx context.Context, p *domain.Profile) error

	// UpdateProfileFields overwrites only the supplied columns. Keys must be
	// recognized profile field names.
	UpdateProfileFields(ctx context.Context, sessionID string, fields map[string]string, updatedAt time.Time) error

	// Reset deletes all messages and the profile row for the session.
	// Resetting an unknown session succeeds silently.
	Reset(ctx context.Context, sessionID string) error

	Close() error
}
