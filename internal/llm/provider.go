package llm

import (
	"context"
	"encoding/json"
)

// Provider is the seam every generative backend sits behind.
type Provider interface {
	// Generate sends req to the model. When req.Schema is set the provider
	// asks for structured output and returns JSON that has already been
	// validated against the schema.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier requests are sent to.
	ModelID() string
}

// Request is a single generation call.
type Request struct {
	// System sets the assistant's role and constraints.
	System string

	// Messages is the conversation so far. Reframing sends one user turn.
	Messages []Message

	// Schema, when non-nil, requests JSON output conforming to it. When nil
	// the response Content holds the raw text.
	Schema *Schema

	MaxTokens int

	// Temperature in [0,1]. Zero leaves the provider default.
	Temperature float64
}

// Message is one turn of the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role identifies who sent a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema describes the JSON object a caller expects back.
type Schema struct {
	// Name is a kebab-case identifier, e.g. "reframe-response". Providers
	// use it as the schema or tool name.
	Name string

	Description string

	// Definition is a JSON Schema document.
	Definition map[string]any
}

// Response is the model output for one Request.
type Response struct {
	// Content is the validated JSON object when a Schema was given,
	// otherwise the raw text.
	Content json.RawMessage

	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end", "max_tokens" or "error".
	StopReason string
}

// Usage counts tokens for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
