package worker

import (
	"fmt"

	"github.com/mkats/go-epicjudge/internal/config"
	"github.com/mkats/go-epicjudge/internal/llm"
	"github.com/mkats/go-epicjudge/internal/rubric"
)

// InitializeLLMClient creates the generation client from configuration.
// Returns the client for dependency injection rather than setting global
// state.
func InitializeLLMClient(cfg *config.Config) (llm.Client, error) {
	client, err := llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.Model)
	if err != nil {
		return nil, fmt.Errorf("initialize llm client: %w", err)
	}
	return client, nil
}

// InitializePacer creates the post-call pacing policy from configuration.
func InitializePacer(cfg *config.Config) llm.Pacer {
	return llm.NewFixedPacer(cfg.CallDelay)
}

// InitializeRubric loads the rubric text, falling back to the built-in
// standards when no override file is configured.
func InitializeRubric(cfg *config.Config) (string, error) {
	text, err := rubric.Load(cfg.RubricPath)
	if err != nil {
		return "", fmt.Errorf("load rubric: %w", err)
	}
	return text, nil
}
