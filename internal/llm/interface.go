package llm

import "context"

// LLMClient defines the interface for the generation collaborator. The call
// is blocking; retry and backoff belong to callers, not this client.
type LLMClient interface {
	CreateChatCompletion(ctx context.Context, req *ChatCompletionRequest) (*ChatCompletionResponse, error)
}

// Ensure Client implements LLMClient interface.
var _ LLMClient = (*Client)(nil)
