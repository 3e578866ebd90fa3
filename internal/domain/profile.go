package domain

import "time"

// LocationType classifies where the user plans to operate.
type LocationType string

const (
	LocationUrban   LocationType = "urban"
	LocationRural   LocationType = "rural"
	LocationUnknown LocationType = "unknown"
)

// TimeCommitment is how much time the user can put into a business.
type TimeCommitment string

const (
	TimeFullTime TimeCommitment = "full-time"
	TimePartTime TimeCommitment = "part-time"
	TimeFlexible TimeCommitment = "flexible"
	TimeUnknown  TimeCommitment = "unknown"
)

// ConversationStage tracks how far the advisory conversation has progressed.
type ConversationStage string

const (
	StageDiscovery      ConversationStage = "discovery"
	StageRecommendation ConversationStage = "recommendation"
	StagePlanning       ConversationStage = "planning"
	StageExecution      ConversationStage = "execution"
)

// Profile is the incrementally-merged state tracked per session. Exactly one
// row exists per session; unset free-text fields stay empty strings.
type Profile struct {
	SessionID         string            `json:"session_id"`
	CapitalAvailable  string            `json:"capital_available,omitempty"`
	LocationCounty    string            `json:"location_county,omitempty"`
	LocationType      LocationType      `json:"location_type"`
	TimeCommitment    TimeCommitment    `json:"time_commitment"`
	Skills            string            `json:"skills,omitempty"`
	Interests         string            `json:"interests,omitempty"`
	RiskTolerance     string            `json:"risk_tolerance,omitempty"`
	SelectedBusiness  string            `json:"selected_business,omitempty"`
	ConversationStage ConversationStage `json:"conversation_stage"`
	UpdatedAt         time.Time         `json:"updated_at"`
}

// NewProfile returns the default profile materialized on first access.
func NewProfile(sessionID string, now time.Time) *Profile {
	return &Profile{
		SessionID:         sessionID,
		LocationType:      LocationUnknown,
		TimeCommitment:    TimeUnknown,
		ConversationStage: StageDiscovery,
		UpdatedAt:         now,
	}
}
