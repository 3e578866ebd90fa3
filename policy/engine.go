// Package policy gates inbound turns with a rego policy before any
// generation call is made.
package policy

import (
	"context"
	"fmt"

	"github.com/open-policy-agent/opa/rego"
)

// Decision values returned by the policy.
const (
	DecisionAllow = "allow"
	DecisionBlock = "block"
)

// Engine is the OPA policy engine.
type Engine struct {
	query rego.PreparedEvalQuery
}

// NewEngine creates a new policy engine with the given policy content.
func NewEngine(ctx context.Context, policyContent string) (*Engine, error) {
	r := rego.New(
		rego.Query("data.turn_policy.decision"),
		rego.Module("turn_policy.rego", policyContent),
	)

	query, err := r.PrepareForEval(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare rego: %w", err)
	}

	return &Engine{query: query}, nil
}

// TurnInput is the input document for one turn admission decision.
type TurnInput struct {
	SessionID     string `json:"session_id"`
	Message       string `json:"message"`
	MessageLength int    `json:"message_length"`
}

// Evaluate checks the turn policy. Returns the decision (allow or block) and
// an optional reason.
func (e *Engine) Evaluate(ctx context.Context, input TurnInput) (string, string, error) {
	results, err := e.query.Eval(ctx, rego.EvalInput(input))
	if err != nil {
		return "", "", fmt.Errorf("failed to evaluate policy: %w", err)
	}

	if len(results) == 0 || len(results[0].Expressions) == 0 {
		// The policy defines a default; an empty result means it is missing.
		return DecisionAllow, "default", nil
	}

	val := results[0].Expressions[0].Value
	if s, ok := val.(string); ok {
		return s, "", nil
	}
	if obj, ok := val.(map[string]interface{}); ok {
		decision, _ := obj["decision"].(string)
		reason, _ := obj["reason"].(string)
		if decision != "" {
			return decision, reason, nil
		}
	}

	return DecisionAllow, "unexpected return type", nil
}

// DefaultPolicy is the default turn policy content. It admits everything
// except oversized messages, which would otherwise blow the prompt budget.
const DefaultPolicy = `
package turn_policy

import rego.v1

default decision := "allow"

decision := "block" if {
	input.message_length > 4000
}
`
