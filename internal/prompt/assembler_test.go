package prompt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/biashara-ai/advisor/internal/domain"
)

func TestAssembleOrderAndContent(t *testing.T) {
	a := NewAssembler()

	history := []domain.Message{
		{Role: domain.RoleUser, Content: "I have 20000 KES", CreatedAt: time.Now()},
		{Role: domain.RoleAssistant, Content: "Great, which county?", CreatedAt: time.Now()},
		{Role: domain.RoleUser, Content: "Nakuru", CreatedAt: time.Now()},
	}

	messages := a.Assemble("Current user profile:\n- Capital available: 20000 KES", history)

	require.Len(t, messages, 4)
	require.Equal(t, "system", messages[0].Role)
	require.Contains(t, messages[0].Content, "business assistant focused on Kenya")
	require.Contains(t, messages[0].Content, "Capital available: 20000 KES")

	require.Equal(t, "user", messages[1].Role)
	require.Equal(t, "I have 20000 KES", messages[1].Content)
	require.Equal(t, "assistant", messages[2].Role)
	require.Equal(t, "user", messages[3].Role)
	require.Equal(t, "Nakuru", messages[3].Content)
}

func TestAssembleIsReproducible(t *testing.T) {
	a := NewAssembler()

	history := []domain.Message{
		{Role: domain.RoleUser, Content: "hello", CreatedAt: time.Now()},
	}

	first := a.Assemble("profile", history)
	second := a.Assemble("profile", history)
	require.Equal(t, first, second)
}

func TestAssembleEmptyHistory(t *testing.T) {
	a := NewAssembler()

	messages := a.Assemble("profile", nil)
	require.Len(t, messages, 1)
	require.Equal(t, "system", messages[0].Role)
}

func TestAssembleDoesNotEnforceAlternation(t *testing.T) {
	a := NewAssembler()

	history := []domain.Message{
		{Role: domain.RoleUser, Content: "one"},
		{Role: domain.RoleUser, Content: "two"},
	}

	messages := a.Assemble("profile", history)
	require.Len(t, messages, 3)
	require.Equal(t, "user", messages[1].Role)
	require.Equal(t, "user", messages[2].Role)
}
