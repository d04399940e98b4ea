package reframe

import "github.com/unholyblue/bloom/internal/llm"

// ResponseSchema is the JSON shape requested from a model.
var ResponseSchema = &llm.Schema{
	Name:        "reframe-response",
	Description: "A short, supportive reframe of an unhelpful thought and one follow-up question",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"message": map[string]any{
				"type":        "string",
				"minLength":   1,
				"description": "Two or three warm sentences that acknowledge the feeling and gently offer another perspective",
			},
			"follow_up_question": map[string]any{
				"type":        "string",
				"minLength":   1,
				"description": "One open-ended question that invites the person to examine the thought",
			},
		},
		"required":             []any{"message", "follow_up_question"},
		"additionalProperties": false,
	},
}
