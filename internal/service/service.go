// Package service composes the store, profile tracker, prompt assembler,
// validator and generation client into the per-request turn lifecycle.
package service

import (
	"github.com/biashara-ai/advisor/internal/config"
	"github.com/biashara-ai/advisor/internal/llm"
	"github.com/biashara-ai/advisor/internal/profile"
	"github.com/biashara-ai/advisor/internal/prompt"
	"github.com/biashara-ai/advisor/internal/store"
	"github.com/biashara-ai/advisor/policy"
)

type Service struct {
	store        store.Store
	profiles     *profile.Tracker
	assembler    *prompt.Assembler
	llmClient    llm.LLMClient
	policyEngine *policy.Engine
	config       *config.Config
}

func New(store store.Store, llmClient llm.LLMClient, cfg *config.Config, policyEngine *policy.Engine) *Service {
	return &Service{
		store:        store,
		profiles:     profile.NewTracker(store),
		assembler:    prompt.NewAssembler(),
		llmClient:    llmClient,
		policyEngine: policyEngine,
		config:       cfg,
	}
}
