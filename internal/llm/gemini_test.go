package llm

import (
	"testing"

	"google.golang.org/genai"
)

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"gemini-flash", "gemini-2.0-flash"},
		{"gemini-pro", "gemini-2.0-pro"},
		{"gemini-2.5-flash", "gemini-2.5-flash"},
	}
	for _, tt := range tests {
		if got := resolveModel(tt.input, geminiModels); got != tt.want {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestGeminiSchema(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"message":            map[string]any{"type": "string"},
			"follow_up_question": map[string]any{"type": "string"},
			"tone":               map[string]any{"type": "string", "enum": []any{"warm", "neutral"}},
			"distortions": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required": []string{"message", "follow_up_question"},
	}

	s := geminiSchema(def)
	if s.Type != genai.TypeObject {
		t.Fatalf("type = %s, want OBJECT", s.Type)
	}
	if len(s.Properties) != 4 {
		t.Fatalf("got %d properties, want 4", len(s.Properties))
	}
	if s.Properties["message"].Type != genai.TypeString {
		t.Fatalf("message type = %s", s.Properties["message"].Type)
	}
	if len(s.Properties["tone"].Enum) != 2 {
		t.Fatalf("tone enum = %v", s.Properties["tone"].Enum)
	}
	if s.Properties["distortions"].Items.Type != genai.TypeString {
		t.Fatalf("items type = %s", s.Properties["distortions"].Items.Type)
	}
	if len(s.Required) != 2 {
		t.Fatalf("required = %v", s.Required)
	}
}
