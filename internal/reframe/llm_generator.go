package reframe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/unholyblue/bloom/internal/distortion"
	"github.com/unholyblue/bloom/internal/llm"
)

// ErrUnusableResponse is returned when a model answer parses but cannot be
// shown: an empty field, or a question that just repeats the message.
var ErrUnusableResponse = errors.New("unusable reframe response")

// Config controls the LLMGenerator.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns the generator defaults. NewLLMGenerator uses its
// MaxTokens when the given config leaves it unset.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   400,
		Temperature: 0.7,
	}
}

// LLMGenerator asks a model for the reframe. Errors are returned to the
// caller, which falls back to a pass-through reply.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

func NewLLMGenerator(provider llm.Provider, cfg Config) *LLMGenerator {
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = DefaultConfig().MaxTokens
	}
	return &LLMGenerator{provider: provider, config: cfg}
}

type responseOutput struct {
	Message          string `json:"message"`
	FollowUpQuestion string `json:"follow_up_question"`
}

func (g *LLMGenerator) Generate(ctx context.Context, input string, primary distortion.Definition) (Response, error) {
	ctx = llm.WithPurpose(ctx, "reframe")

	resp, err := g.provider.Generate(ctx, llm.Request{
		System:      systemPrompt,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: buildUserMessage(input, primary)}},
		Schema:      ResponseSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	})
	if err != nil {
		return Response{}, fmt.Errorf("reframe generation failed: %w", err)
	}

	var out responseOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return Response{}, fmt.Errorf("parse reframe response: %w", err)
	}

	r := Response{
		Message:          strings.TrimSpace(out.Message),
		FollowUpQuestion: strings.TrimSpace(out.FollowUpQuestion),
	}
	switch {
	case r.Message == "" || r.FollowUpQuestion == "":
		return Response{}, fmt.Errorf("%w: empty field", ErrUnusableResponse)
	case strings.EqualFold(r.Message, r.FollowUpQuestion):
		return Response{}, fmt.Errorf("%w: question repeats message", ErrUnusableResponse)
	}
	return r, nil
}
