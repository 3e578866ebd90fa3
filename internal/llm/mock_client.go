package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// MockClient is a mock implementation of LLMClient for local development and
// testing. It answers with a well-formed structured advisor response.
type MockClient struct{}

// NewMockClient creates a new mock LLM client.
func NewMockClient() *MockClient {
	return &MockClient{}
}

// Ensure MockClient implements LLMClient interface.
var _ LLMClient = (*MockClient)(nil)

// CreateChatCompletion returns a mock response.
func (m *MockClient) CreateChatCompletion(ctx context.Context, req *ChatCompletionRequest) (*ChatCompletionResponse, error) {
	responseContent := m.generateMockResponse(req)

	return &ChatCompletionResponse{
		ID:      fmt.Sprintf("mock-chatcmpl-%d", time.Now().UnixNano()),
		Object:  "chat.completion",
		Created: time.Now().Unix(),
		Model:   req.Model,
		Choices: []Choice{
			{
				Index: 0,
				Message: &ChatMessage{
					Role:    "assistant",
					Content: responseContent,
				},
				FinishReason: "stop",
			},
		},
		Usage: &Usage{
			PromptTokens:     m.estimateTokens(req),
			CompletionTokens: len(responseContent) / 4,
			TotalTokens:      m.estimateTokens(req) + len(responseContent)/4,
		},
	}, nil
}

// generateMockResponse builds a structured reply echoing the last user
// message.
func (m *MockClient) generateMockResponse(req *ChatCompletionRequest) string {
	var lastUserMessage string
	for i := len(req.Messages) - 1; i >= 0; i-- {
		if req.Messages[i].Role == "user" {
			lastUserMessage = req.Messages[i].Content
			break
		}
	}

	body := map[string]interface{}{
		"response_type": "gathering_info",
		"message": fmt.Sprintf("[MOCK] Received %q. Tell me about your capital and county so I can suggest businesses.",
			truncate(lastUserMessage, 100)),
		"follow_up_questions": []string{
			"How much capital do you have available?",
			"Which county are you based in?",
		},
		"next_suggested_topic": "capital and location",
	}
	out, _ := json.Marshal(body)
	return string(out)
}

// estimateTokens provides a rough token count estimate.
func (m *MockClient) estimateTokens(req *ChatCompletionRequest) int {
	total := 0
	for _, msg := range req.Messages {
		total += len(msg.Content) / 4
	}
	return total
}

// truncate truncates a string to the given length.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
