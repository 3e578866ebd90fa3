// Package respond turns raw generation output into a typed, tagged
// StructuredResponse. It never fails: the worst outcome is a minimal
// general_advice response carrying the raw text verbatim.
package respond

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/biashara-ai/advisor/internal/domain"
)

// Warning records a substructure entry dropped during validation. Warnings
// are observability-only; the response is still returned.
type Warning struct {
	Substructure string `json:"substructure"`
	Index        int    `json:"index"`
	Reason       string `json:"reason"`
}

func (w Warning) String() string {
	return fmt.Sprintf("%s[%d]: %s", w.Substructure, w.Index, w.Reason)
}

// envelope defers substructure decoding so one malformed entry can be
// dropped without losing the rest.
type envelope struct {
	ResponseType       string            `json:"response_type"`
	Message            string            `json:"message"`
	Recommendations    []json.RawMessage `json:"recommendations"`
	BudgetItems        []json.RawMessage `json:"budget_items"`
	LicenseSteps       []json.RawMessage `json:"license_steps"`
	Suppliers          []json.RawMessage `json:"suppliers"`
	MonthlyProjections []json.RawMessage `json:"monthly_projections"`
	ActionSteps        []json.RawMessage `json:"action_steps"`
	FollowUpQuestions  []string          `json:"follow_up_questions"`
	UserProfileSummary string            `json:"user_profile_summary"`
	NextSuggestedTopic string            `json:"next_suggested_topic"`
}

// Validate parses and validates raw generation output. The returned response
// always has a non-empty message and a valid tag. Substructures validate
// independently of the tag: a recommendations-tagged response may carry
// budget items and both survive.
func Validate(raw string) (*domain.StructuredResponse, []Warning) {
	var env envelope
	if err := json.Unmarshal([]byte(stripFences(raw)), &env); err != nil || env.Message == "" {
		return fallback(raw), nil
	}

	resp := &domain.StructuredResponse{
		ResponseType:       domain.ResponseType(env.ResponseType),
		Message:            env.Message,
		FollowUpQuestions:  env.FollowUpQuestions,
		UserProfileSummary: env.UserProfileSummary,
		NextSuggestedTopic: env.NextSuggestedTopic,
	}
	if !resp.ResponseType.Valid() {
		// A bad tag never costs us the content.
		resp.ResponseType = domain.ResponseGeneralAdvice
	}

	var warnings []Warning
	resp.Recommendations = decodeList(env.Recommendations, "recommendations", &warnings, validateRecommendation)
	resp.BudgetItems = decodeList(env.BudgetItems, "budget_items", &warnings, validateBudgetItem)
	resp.LicenseSteps = decodeList(env.LicenseSteps, "license_steps", &warnings, validateLicenseStep)
	resp.Suppliers = decodeList(env.Suppliers, "suppliers", &warnings, validateSupplierEntry)
	resp.MonthlyProjections = decodeList(env.MonthlyProjections, "monthly_projections", &warnings, validateMonthlyProjection)
	resp.ActionSteps = decodeList(env.ActionSteps, "action_steps", &warnings, validateActionStep)

	return resp, warnings
}

// fallback is the minimal response produced when parsing cannot succeed.
func fallback(raw string) *domain.StructuredResponse {
	return &domain.StructuredResponse{
		ResponseType: domain.ResponseGeneralAdvice,
		Message:      raw,
	}
}

// decodeList validates each entry of one substructure, dropping entries that
// fail and recording a warning for each drop.
func decodeList[T any](entries []json.RawMessage, name string, warnings *[]Warning, validate func(T) error) []T {
	if len(entries) == 0 {
		return nil
	}
	out := make([]T, 0, len(entries))
	for i, entry := range entries {
		var rec T
		if err := json.Unmarshal(entry, &rec); err != nil {
			*warnings = append(*warnings, Warning{Substructure: name, Index: i, Reason: err.Error()})
			continue
		}
		if err := validate(rec); err != nil {
			*warnings = append(*warnings, Warning{Substructure: name, Index: i, Reason: err.Error()})
			continue
		}
		out = append(out, rec)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// stripFences removes a surrounding markdown code fence, which generation
// services like to wrap JSON in.
func stripFences(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
