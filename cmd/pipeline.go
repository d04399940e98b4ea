package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/unholyblue/bloom/internal/config"
	"github.com/unholyblue/bloom/internal/conversation"
	"github.com/unholyblue/bloom/internal/llm"
	"github.com/unholyblue/bloom/internal/reframe"
	"github.com/unholyblue/bloom/internal/store"
)

// buildGenerator returns the configured reframe backend. An LLM backend
// that cannot be constructed degrades to templates with a warning, the
// same way a failed generation degrades to pass-through.
func buildGenerator(ctx context.Context, cfg config.Config, events store.EventRepo) reframe.Generator {
	if cfg.Reframe.Backend != config.BackendLLM {
		return reframe.NewTemplateGenerator()
	}

	provider, err := llm.NewProvider(ctx, cfg.LLM, events)
	if err != nil {
		fmt.Fprintln(os.Stderr, "warning: LLM provider unavailable:", err)
		fmt.Fprintln(os.Stderr, "warning: using template reframes instead.")
		return reframe.NewTemplateGenerator()
	}
	return reframe.NewLLMGenerator(provider, reframe.Config{
		MaxTokens:   cfg.Reframe.MaxTokens,
		Temperature: cfg.Reframe.Temperature,
	})
}

func newConversation(ctx context.Context, cfg config.Config, events store.EventRepo) *conversation.Conversation {
	return conversation.New(
		buildGenerator(ctx, cfg, events),
		conversation.WithGenerationTimeout(cfg.Reframe.GenerationTimeout),
	)
}
