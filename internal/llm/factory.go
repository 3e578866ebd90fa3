package llm

import (
	"log"
	"os"
	"time"
)

const (
	// EnvAdvisorMode is the environment variable name for mode selection.
	EnvAdvisorMode = "ADVISOR_MODE"
	// ModeMock indicates mock mode should be used.
	ModeMock = "MOCK"
)

// NewLLMClient creates an LLM client based on the ADVISOR_MODE environment
// variable. If ADVISOR_MODE=MOCK, returns a MockClient; otherwise returns a
// real Client.
func NewLLMClient(baseURL, apiKey string, timeout time.Duration) LLMClient {
	if os.Getenv(EnvAdvisorMode) == ModeMock {
		log.Println("ADVISOR_MODE=MOCK detected, using mock LLM client")
		return NewMockClient()
	}

	return NewClient(baseURL, apiKey, timeout)
}
