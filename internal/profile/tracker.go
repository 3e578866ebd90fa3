// Package profile tracks the incrementally-merged per-session user profile.
package profile

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/biashara-ai/advisor/internal/domain"
	"github.com/biashara-ai/advisor/internal/store"
)

// InvalidFieldError reports an update key outside the recognized field set.
type InvalidFieldError struct {
	Field string
}

func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("unrecognized profile field %q", e.Field)
}

// InvalidEnumError reports an enum field set to a value outside its
// enumeration.
type InvalidEnumError struct {
	Field string
	Value string
}

func (e *InvalidEnumError) Error() string {
	return fmt.Sprintf("invalid value %q for profile field %q", e.Value, e.Field)
}

// enumValues lists the allowed values for the enum-typed fields. Free-text
// fields accept anything.
var enumValues = map[string][]string{
	"location_type": {
		string(domain.LocationUrban),
		string(domain.LocationRural),
		string(domain.LocationUnknown),
	},
	"time_commitment": {
		string(domain.TimeFullTime),
		string(domain.TimePartTime),
		string(domain.TimeFlexible),
		string(domain.TimeUnknown),
	},
	"conversation_stage": {
		string(domain.StageDiscovery),
		string(domain.StageRecommendation),
		string(domain.StagePlanning),
		string(domain.StageExecution),
	},
}

var recognizedFields = map[string]struct{}{
	"capital_available":  {},
	"location_county":    {},
	"location_type":      {},
	"time_commitment":    {},
	"skills":             {},
	"interests":          {},
	"risk_tolerance":     {},
	"selected_business":  {},
	"conversation_stage": {},
}

// Fields returns the recognized field names in sorted order.
func Fields() []string {
	names := make([]string, 0, len(recognizedFields))
	for name := range recognizedFields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Tracker owns profile reads and merges. Merges for one session are mutually
// exclusive so two concurrent partial updates compose instead of clobbering
// each other.
type Tracker struct {
	store store.Store

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewTracker creates a tracker backed by the given store.
func NewTracker(s store.Store) *Tracker {
	return &Tracker{
		store: s,
		locks: make(map[string]*sync.Mutex),
	}
}

func (t *Tracker) sessionLock(sessionID string) *sync.Mutex {
	t.mu.Lock()
	defer t.mu.Unlock()
	lock, ok := t.locks[sessionID]
	if !ok {
		lock = &sync.Mutex{}
		t.locks[sessionID] = lock
	}
	return lock
}

// Get returns the profile for a session, materializing the default row on
// first access.
func (t *Tracker) Get(ctx context.Context, sessionID string) (*domain.Profile, error) {
	lock := t.sessionLock(sessionID)
	lock.Lock()
	defer lock.Unlock()

	return t.getLocked(ctx, sessionID)
}

func (t *Tracker) getLocked(ctx context.Context, sessionID string) (*domain.Profile, error) {
	p, err := t.store.GetProfile(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	if p != nil {
		return p, nil
	}

	if err := t.store.EnsureSession(ctx, sessionID); err != nil {
		return nil, fmt.Errorf("failed to ensure session: %w", err)
	}
	p = domain.NewProfile(sessionID, time.Now().UTC())
	if err := t.store.CreateProfile(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}
	return p, nil
}

// Merge applies a partial update: supplied fields overwrite, absent fields
// are untouched. The whole call is rejected before any write if a key is
// unrecognized or an enum value is out of range.
func (t *Tracker) Merge(ctx context.Context, sessionID string, fields map[string]string) (*domain.Profile, error) {
	for name, value := range fields {
		if _, ok := recognizedFields[name]; !ok {
			return nil, &InvalidFieldError{Field: name}
		}
		if allowed, isEnum := enumValues[name]; isEnum {
			valid := false
			for _, v := range allowed {
				if value == v {
					valid = true
					break
				}
			}
			if !valid {
				return nil, &InvalidEnumError{Field: name, Value: value}
			}
		}
	}

	lock := t.sessionLock(sessionID)
	lock.Lock()
	defer lock.Unlock()

	if _, err := t.getLocked(ctx, sessionID); err != nil {
		return nil, err
	}
	if err := t.store.UpdateProfileFields(ctx, sessionID, fields, time.Now().UTC()); err != nil {
		return nil, fmt.Errorf("failed to merge profile: %w", err)
	}
	return t.getLocked(ctx, sessionID)
}

// Summarize renders a deterministic snapshot of the profile for prompt
// injection. Unset fields render as "Unknown" so the prompt keeps a stable
// shape across turns.
func (t *Tracker) Summarize(ctx context.Context, sessionID string) (string, error) {
	p, err := t.Get(ctx, sessionID)
	if err != nil {
		return "", err
	}
	return Summary(p), nil
}

// Summary renders the snapshot for an already-loaded profile.
func Summary(p *domain.Profile) string {
	var b strings.Builder
	b.WriteString("Current user profile:\n")
	b.WriteString("- Capital available: " + orUnknown(p.CapitalAvailable) + "\n")
	b.WriteString("- Location county: " + orUnknown(p.LocationCounty) + "\n")
	b.WriteString("- Location type: " + string(p.LocationType) + "\n")
	b.WriteString("- Time commitment: " + string(p.TimeCommitment) + "\n")
	b.WriteString("- Skills: " + orUnknown(p.Skills) + "\n")
	b.WriteString("- Interests: " + orUnknown(p.Interests) + "\n")
	b.WriteString("- Risk tolerance: " + orUnknown(p.RiskTolerance) + "\n")
	b.WriteString("- Selected business: " + orUnknown(p.SelectedBusiness) + "\n")
	b.WriteString("- Conversation stage: " + string(p.ConversationStage))
	return b.String()
}

func orUnknown(s string) string {
	if s == "" {
		return "Unknown"
	}
	return s
}
