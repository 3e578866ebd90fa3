package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/biashara-ai/advisor/internal/domain"
)

var errNoChoices = errors.New("generation response contained no choices")

// History returns all messages for a session in append order. An unknown
// session yields an empty history.
func (s *Service) History(ctx context.Context, sessionID string) ([]domain.Message, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil, newError(ErrorInvalidInput, "missing session_id", nil)
	}

	messages, err := s.store.Messages(ctx, sessionID)
	if err != nil {
		return nil, newError(ErrorInternal, "failed to get messages", err)
	}
	return messages, nil
}

// Reset clears all messages and the profile for a session. It is idempotent;
// resetting an unknown session succeeds.
func (s *Service) Reset(ctx context.Context, sessionID string) error {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return newError(ErrorInvalidInput, "missing session_id", nil)
	}

	if err := s.store.Reset(ctx, sessionID); err != nil {
		return newError(ErrorInternal, "failed to reset session", err)
	}
	return nil
}

// Export renders the full transcript as one deterministic text block: the
// profile snapshot first, then the chronological turns.
func (s *Service) Export(ctx context.Context, sessionID string) (string, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return "", newError(ErrorInvalidInput, "missing session_id", nil)
	}

	messages, err := s.store.Messages(ctx, sessionID)
	if err != nil {
		return "", newError(ErrorInternal, "failed to get messages", err)
	}
	if len(messages) == 0 {
		return "", newError(ErrorNotFound, "no messages found for session", nil)
	}

	summary, err := s.profiles.Summarize(ctx, sessionID)
	if err != nil {
		return "", newError(ErrorInternal, "failed to summarize profile", err)
	}

	var b strings.Builder
	b.WriteString(summary)
	b.WriteString("\n\n")
	for _, msg := range messages {
		who := "You"
		if msg.Role == domain.RoleAssistant {
			who = "Assistant"
		}
		fmt.Fprintf(&b, "%s (%s):\n%s\n\n", who, msg.CreatedAt.Format("2006-01-02 15:04"), msg.Content)
	}
	return strings.TrimRight(b.String(), "\n") + "\n", nil
}
