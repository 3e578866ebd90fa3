package respond

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/biashara-ai/advisor/internal/domain"
)

func TestValidateMalformedTextFallsBack(t *testing.T) {
	raw := "Sorry, I can't answer in JSON today. Try a chemist shop!"

	resp, warnings := Validate(raw)

	require.Equal(t, domain.ResponseGeneralAdvice, resp.ResponseType)
	require.Equal(t, raw, resp.Message)
	require.Empty(t, warnings)
	require.Nil(t, resp.Recommendations)
	require.Nil(t, resp.BudgetItems)
}

func TestValidateMissingTagAcceptedWithFallbackTag(t *testing.T) {
	resp, warnings := Validate(`{"message":"Here is some advice."}`)

	require.Equal(t, domain.ResponseGeneralAdvice, resp.ResponseType)
	require.Equal(t, "Here is some advice.", resp.Message)
	require.Empty(t, warnings)
}

func TestValidateInvalidTagAcceptedWithFallbackTag(t *testing.T) {
	resp, _ := Validate(`{"response_type":"poetry","message":"A haiku about duka shops."}`)

	require.Equal(t, domain.ResponseGeneralAdvice, resp.ResponseType)
	require.Equal(t, "A haiku about duka shops.", resp.Message)
}

func TestValidateMissingMessageFallsBack(t *testing.T) {
	raw := `{"response_type":"greeting"}`

	resp, _ := Validate(raw)

	require.Equal(t, domain.ResponseGeneralAdvice, resp.ResponseType)
	require.Equal(t, raw, resp.Message)
}

func TestValidateWellFormedResponse(t *testing.T) {
	raw := `{
		"response_type": "budget_breakdown",
		"message": "Here is a startup budget for a salon in Nairobi.",
		"budget_items": [
			{"item": "Rent deposit", "cost_low": 30000, "cost_high": 60000},
			{"item": "Equipment", "cost_low": 45000, "cost_high": 90000, "notes": "second-hand chairs"}
		],
		"follow_up_questions": ["Do you already have premises?"],
		"next_suggested_topic": "licensing"
	}`

	resp, warnings := Validate(raw)

	require.Empty(t, warnings)
	require.Equal(t, domain.ResponseBudgetBreakdown, resp.ResponseType)
	require.Len(t, resp.BudgetItems, 2)
	require.Equal(t, "Rent deposit", resp.BudgetItems[0].Item)
	require.Equal(t, 30000.0, *resp.BudgetItems[0].CostLow)
	require.Equal(t, []string{"Do you already have premises?"}, resp.FollowUpQuestions)
	require.Equal(t, "licensing", resp.NextSuggestedTopic)
}

func TestValidateDropsBadBudgetItemKeepsRest(t *testing.T) {
	raw := `{
		"response_type": "budget_breakdown",
		"message": "Budget below.",
		"budget_items": [
			{"item": "Rent", "cost_low": 10000, "cost_high": 20000},
			{"item": "Mystery line", "cost_high": 5000},
			{"item": "Stock", "cost_low": 40000, "cost_high": 70000}
		]
	}`

	resp, warnings := Validate(raw)

	require.Len(t, resp.BudgetItems, 2)
	require.Equal(t, "Rent", resp.BudgetItems[0].Item)
	require.Equal(t, "Stock", resp.BudgetItems[1].Item)

	require.Len(t, warnings, 1)
	require.Equal(t, "budget_items", warnings[0].Substructure)
	require.Equal(t, 1, warnings[0].Index)
	require.Contains(t, warnings[0].Reason, "cost_low")
}

func TestValidateDropsNonObjectEntry(t *testing.T) {
	raw := `{
		"response_type": "recommendations",
		"message": "Two ideas.",
		"recommendations": [
			{"business_name": "Mitumba stall", "description": "Second-hand clothes resale."},
			"just a string"
		]
	}`

	resp, warnings := Validate(raw)

	require.Len(t, resp.Recommendations, 1)
	require.Equal(t, "Mitumba stall", resp.Recommendations[0].BusinessName)
	require.Len(t, warnings, 1)
	require.Equal(t, "recommendations", warnings[0].Substructure)
}

func TestValidateTagPayloadMismatchPermitted(t *testing.T) {
	// A recommendations tag with budget items is legal: tag and payload are
	// validated independently.
	raw := `{
		"response_type": "recommendations",
		"message": "Mixed payload.",
		"budget_items": [
			{"item": "Rent", "cost_low": 10000, "cost_high": 20000}
		]
	}`

	resp, warnings := Validate(raw)

	require.Equal(t, domain.ResponseRecommendations, resp.ResponseType)
	require.Len(t, resp.BudgetItems, 1)
	require.Empty(t, warnings)
}

func TestValidateAllEntriesDroppedYieldsNilList(t *testing.T) {
	raw := `{
		"response_type": "action_plan",
		"message": "Plan.",
		"action_steps": [
			{"action": "Register the business"}
		]
	}`

	resp, warnings := Validate(raw)

	require.Nil(t, resp.ActionSteps)
	require.Len(t, warnings, 1)
	require.Contains(t, warnings[0].Reason, "step_number")
}

func TestValidateStripsCodeFences(t *testing.T) {
	raw := "```json\n{\"response_type\":\"greeting\",\"message\":\"Karibu!\"}\n```"

	resp, _ := Validate(raw)

	require.Equal(t, domain.ResponseGreeting, resp.ResponseType)
	require.Equal(t, "Karibu!", resp.Message)
}

func TestValidateProjectionRequiredFields(t *testing.T) {
	raw := `{
		"response_type": "profit_projection",
		"message": "Projection.",
		"monthly_projections": [
			{"month": 1, "revenue": 80000, "expenses": 60000, "profit": 20000},
			{"month": 2, "revenue": 90000}
		]
	}`

	resp, warnings := Validate(raw)

	require.Len(t, resp.MonthlyProjections, 1)
	require.Equal(t, 1, *resp.MonthlyProjections[0].Month)
	require.Len(t, warnings, 1)
	require.Contains(t, warnings[0].Reason, "expenses")
}
