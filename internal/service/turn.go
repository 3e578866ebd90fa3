package service

import (
	"context"
	"encoding/json"
	"log"
	"strings"

	"github.com/google/uuid"

	"github.com/biashara-ai/advisor/internal/domain"
	"github.com/biashara-ai/advisor/internal/llm"
	"github.com/biashara-ai/advisor/internal/profile"
	"github.com/biashara-ai/advisor/internal/respond"
	"github.com/biashara-ai/advisor/policy"
)

// TurnResult is what one submitted turn returns to the caller.
type TurnResult struct {
	Response *domain.StructuredResponse `json:"response"`
	Profile  *domain.Profile            `json:"profile"`
}

// SubmitTurn runs one conversational turn: persist the user message, build
// the prompt from profile and history, invoke the generator, validate its
// output and persist the assistant message.
//
// A generator failure or a cancelled request leaves the user message in
// place but never persists a partial assistant turn.
func (s *Service) SubmitTurn(ctx context.Context, sessionID, message string) (*TurnResult, error) {
	sessionID = strings.TrimSpace(sessionID)
	message = strings.TrimSpace(message)
	if sessionID == "" {
		return nil, newError(ErrorInvalidInput, "missing session_id", nil)
	}
	if message == "" {
		return nil, newError(ErrorInvalidInput, "missing message", nil)
	}

	decision, reason, err := s.policyEngine.Evaluate(ctx, policy.TurnInput{
		SessionID:     sessionID,
		Message:       message,
		MessageLength: len(message),
	})
	if err != nil {
		return nil, newError(ErrorInternal, "policy evaluation failed", err)
	}
	if decision == policy.DecisionBlock {
		if reason == "" {
			reason = "turn rejected by policy"
		}
		return nil, newError(ErrorPolicyBlocked, reason, nil)
	}

	if err := s.store.EnsureSession(ctx, sessionID); err != nil {
		return nil, newError(ErrorInternal, "failed to ensure session", err)
	}

	userMsg := &domain.Message{
		MessageID: "msg_" + uuid.NewString(),
		SessionID: sessionID,
		Role:      domain.RoleUser,
		Content:   message,
	}
	if err := s.store.AppendMessage(ctx, userMsg); err != nil {
		return nil, newError(ErrorInternal, "failed to append user message", err)
	}

	prof, err := s.profiles.Get(ctx, sessionID)
	if err != nil {
		return nil, newError(ErrorInternal, "failed to load profile", err)
	}

	history, err := s.store.Messages(ctx, sessionID)
	if err != nil {
		return nil, newError(ErrorInternal, "failed to load history", err)
	}

	messages := s.assembler.Assemble(profile.Summary(prof), history)

	raw, err := s.generate(ctx, messages)
	if err != nil {
		return nil, newError(ErrorGeneration, "generation service failed", err)
	}

	// A cancelled request must not persist a partial turn; the committed
	// user message stands.
	if ctx.Err() != nil {
		return nil, newError(ErrorGeneration, "request cancelled", ctx.Err())
	}

	structured, warnings := respond.Validate(raw)
	for _, w := range warnings {
		log.Printf("WARN: session %s: dropped substructure entry: %s", sessionID, w)
	}

	payload, err := json.Marshal(structured)
	if err != nil {
		return nil, newError(ErrorInternal, "failed to marshal structured response", err)
	}

	assistantMsg := &domain.Message{
		MessageID:         "msg_" + uuid.NewString(),
		SessionID:         sessionID,
		Role:              domain.RoleAssistant,
		Content:           structured.Message,
		StructuredPayload: payload,
	}
	if err := s.store.AppendMessage(ctx, assistantMsg); err != nil {
		return nil, newError(ErrorInternal, "failed to append assistant message", err)
	}

	return &TurnResult{
		Response: structured,
		Profile:  prof,
	}, nil
}

// generate invokes the generation collaborator and extracts the raw text.
func (s *Service) generate(ctx context.Context, messages []llm.ChatMessage) (string, error) {
	req := &llm.ChatCompletionRequest{
		Model:    s.config.LLMModel,
		Messages: messages,
		ResponseFormat: map[string]interface{}{
			"type": "json_object",
		},
	}

	resp, err := s.llmClient.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message == nil {
		return "", errNoChoices
	}
	return resp.Choices[0].Message.Content, nil
}
