package profile

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/biashara-ai/advisor/internal/domain"
	"github.com/biashara-ai/advisor/internal/store"
)

func newTestTracker(t *testing.T) *Tracker {
	t.Helper()
	s, err := store.NewSQLiteStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = s.Close()
	})
	return NewTracker(s)
}

func TestGetMaterializesDefault(t *testing.T) {
	tracker := newTestTracker(t)
	ctx := context.Background()

	p, err := tracker.Get(ctx, "s1")
	require.NoError(t, err)
	require.Equal(t, "s1", p.SessionID)
	require.Equal(t, domain.StageDiscovery, p.ConversationStage)
	require.Equal(t, domain.LocationUnknown, p.LocationType)
	require.Equal(t, domain.TimeUnknown, p.TimeCommitment)
	require.Empty(t, p.CapitalAvailable)

	// Second get returns the same row, not a second default.
	again, err := tracker.Get(ctx, "s1")
	require.NoError(t, err)
	require.WithinDuration(t, p.UpdatedAt, again.UpdatedAt, time.Second)
}

func TestMergePartialOverwrite(t *testing.T) {
	tracker := newTestTracker(t)
	ctx := context.Background()

	_, err := tracker.Merge(ctx, "s1", map[string]string{"capital_available": "20000 KES"})
	require.NoError(t, err)

	p, err := tracker.Merge(ctx, "s1", map[string]string{"skills": "tailoring"})
	require.NoError(t, err)
	require.Equal(t, "20000 KES", p.CapitalAvailable)
	require.Equal(t, "tailoring", p.Skills)

	// Last writer wins per field, not per call.
	p, err = tracker.Merge(ctx, "s1", map[string]string{"capital_available": "50000 KES"})
	require.NoError(t, err)
	require.Equal(t, "50000 KES", p.CapitalAvailable)
	require.Equal(t, "tailoring", p.Skills)
}

func TestMergeRejectsUnknownField(t *testing.T) {
	tracker := newTestTracker(t)

	_, err := tracker.Merge(context.Background(), "s1", map[string]string{"shoe_size": "42"})
	var fieldErr *InvalidFieldError
	require.ErrorAs(t, err, &fieldErr)
	require.Equal(t, "shoe_size", fieldErr.Field)
}

func TestMergeRejectsInvalidEnum(t *testing.T) {
	tracker := newTestTracker(t)
	ctx := context.Background()

	_, err := tracker.Merge(ctx, "s1", map[string]string{"location_type": "suburban"})
	var enumErr *InvalidEnumError
	require.ErrorAs(t, err, &enumErr)
	require.Equal(t, "location_type", enumErr.Field)
}

func TestMergeAllOrNothing(t *testing.T) {
	tracker := newTestTracker(t)
	ctx := context.Background()

	// A bad enum in the same call must leave the valid field unapplied.
	_, err := tracker.Merge(ctx, "s1", map[string]string{
		"capital_available": "9000 KES",
		"time_commitment":   "weekends-only",
	})
	require.Error(t, err)

	p, err := tracker.Get(ctx, "s1")
	require.NoError(t, err)
	require.Empty(t, p.CapitalAvailable)
}

func TestConcurrentDisjointMerges(t *testing.T) {
	tracker := newTestTracker(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	errs := make([]error, 2)

	wg.Add(2)
	go func() {
		defer wg.Done()
		_, errs[0] = tracker.Merge(ctx, "s1", map[string]string{"capital_available": "20000 KES"})
	}()
	go func() {
		defer wg.Done()
		_, errs[1] = tracker.Merge(ctx, "s1", map[string]string{"location_county": "Kisumu"})
	}()
	wg.Wait()

	require.NoError(t, errs[0])
	require.NoError(t, errs[1])

	p, err := tracker.Get(ctx, "s1")
	require.NoError(t, err)
	require.Equal(t, "20000 KES", p.CapitalAvailable)
	require.Equal(t, "Kisumu", p.LocationCounty)
}

func TestSummarizeDeterministicShape(t *testing.T) {
	tracker := newTestTracker(t)
	ctx := context.Background()

	summary, err := tracker.Summarize(ctx, "s1")
	require.NoError(t, err)
	require.Contains(t, summary, "Capital available: Unknown")
	require.Contains(t, summary, "Location type: unknown")
	require.Contains(t, summary, "Conversation stage: discovery")

	// Every recognized field shows up even when unset.
	require.Equal(t, len(Fields())+1, len(strings.Split(summary, "\n")))

	again, err := tracker.Summarize(ctx, "s1")
	require.NoError(t, err)
	require.Equal(t, summary, again)

	_, err = tracker.Merge(ctx, "s1", map[string]string{"interests": "poultry farming"})
	require.NoError(t, err)
	summary, err = tracker.Summarize(ctx, "s1")
	require.NoError(t, err)
	require.Contains(t, summary, "Interests: poultry farming")
}

func TestMergeManySessionsIndependent(t *testing.T) {
	tracker := newTestTracker(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		id := fmt.Sprintf("s%d", i)
		_, err := tracker.Merge(ctx, id, map[string]string{"location_county": "County-" + id})
		require.NoError(t, err)
	}

	for i := 0; i < 3; i++ {
		id := fmt.Sprintf("s%d", i)
		p, err := tracker.Get(ctx, id)
		require.NoError(t, err)
		require.Equal(t, "County-"+id, p.LocationCounty)
	}
}

func TestMergeErrorTypes(t *testing.T) {
	tracker := newTestTracker(t)

	_, err := tracker.Merge(context.Background(), "s1", map[string]string{"conversation_stage": "wrapping_up"})
	require.Error(t, err)
	var enumErr *InvalidEnumError
	require.True(t, errors.As(err, &enumErr))
	require.Equal(t, "wrapping_up", enumErr.Value)
}
