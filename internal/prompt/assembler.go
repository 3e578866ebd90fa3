// Package prompt builds the ordered payload sent to the generation
// collaborator for one turn.
package prompt

import (
	"github.com/biashara-ai/advisor/internal/domain"
	"github.com/biashara-ai/advisor/internal/llm"
)

// systemInstructions is the static instruction block. It is fixed content,
// loaded once at process start.
const systemInstructions = `You are a smart and realistic business assistant focused on Kenya. Your role is to:
1. Suggest viable business and investment opportunities in Kenya.
2. Generate startup budgets with details like rent, licenses, staff, and marketing.
3. Estimate profits/losses with local pricing assumptions in KES.
4. Recommend ideas based on the user's capital, location, and interests.
5. Offer timelines, digital tools, and registration steps in Kenya where useful.
6. Redirect any international queries back to local context.
Be clear, practical, and user-focused.

Always answer with a single JSON object. The object must contain:
- "response_type": one of "greeting", "gathering_info", "recommendations",
  "budget_breakdown", "license_guide", "supplier_guide", "profit_projection",
  "action_plan", "general_advice", "clarification".
- "message": the conversational reply text.
Optionally include any of:
- "recommendations": [{"business_name", "description", "startup_cost_min", "startup_cost_max", "why_recommended"}]
- "budget_items": [{"item", "cost_low", "cost_high", "notes"}]
- "license_steps": [{"step", "authority", "cost", "duration"}]
- "suppliers": [{"name", "location", "products", "contact"}]
- "monthly_projections": [{"month", "revenue", "expenses", "profit"}]
- "action_steps": [{"step_number", "action", "timeline", "details"}]
- "follow_up_questions": ["..."]
- "user_profile_summary": "..."
- "next_suggested_topic": "..."
All money amounts are in KES.`

// Assembler builds generation payloads. It performs no writes and embeds no
// wall-clock state, so assembling twice for the same session yields identical
// output until something is appended or merged.
type Assembler struct {
	instructions string
}

// NewAssembler creates an assembler with the default instruction block.
func NewAssembler() *Assembler {
	return &Assembler{instructions: systemInstructions}
}

// Assemble returns the ordered messages for one turn: the instruction block
// with the current profile snapshot, then the full session history in append
// order. Alternation of roles is not enforced; history passes through as the
// store returned it.
func (a *Assembler) Assemble(profileSummary string, history []domain.Message) []llm.ChatMessage {
	messages := make([]llm.ChatMessage, 0, len(history)+1)
	messages = append(messages, llm.ChatMessage{
		Role:    "system",
		Content: a.instructions + "\n\n" + profileSummary,
	})
	for _, msg := range history {
		messages = append(messages, llm.ChatMessage{
			Role:    string(msg.Role),
			Content: msg.Content,
		})
	}
	return messages
}
