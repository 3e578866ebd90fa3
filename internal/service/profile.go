package service

import (
	"context"
	"errors"
	"strings"

	"github.com/biashara-ai/advisor/internal/domain"
	"github.com/biashara-ai/advisor/internal/profile"
)

// GetProfile returns the current profile snapshot, materializing the default
// row on first access.
func (s *Service) GetProfile(ctx context.Context, sessionID string) (*domain.Profile, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil, newError(ErrorInvalidInput, "missing session_id", nil)
	}

	p, err := s.profiles.Get(ctx, sessionID)
	if err != nil {
		return nil, newError(ErrorInternal, "failed to get profile", err)
	}
	return p, nil
}

// UpdateProfile applies a partial field update. The merge is all-or-nothing:
// an unknown field or out-of-enum value rejects the whole call and leaves
// the profile unmodified.
func (s *Service) UpdateProfile(ctx context.Context, sessionID string, fields map[string]string) (*domain.Profile, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil, newError(ErrorInvalidInput, "missing session_id", nil)
	}
	if len(fields) == 0 {
		return nil, newError(ErrorInvalidInput, "no fields supplied", nil)
	}

	p, err := s.profiles.Merge(ctx, sessionID, fields)
	if err != nil {
		var fieldErr *profile.InvalidFieldError
		if errors.As(err, &fieldErr) {
			return nil, newError(ErrorInvalidField, fieldErr.Error(), err)
		}
		var enumErr *profile.InvalidEnumError
		if errors.As(err, &enumErr) {
			return nil, newError(ErrorInvalidEnum, enumErr.Error(), err)
		}
		return nil, newError(ErrorInternal, "failed to update profile", err)
	}
	return p, nil
}
