package quiz

import "github.com/rmehra/retain/internal/llm"

// QuizSchema defines the JSON schema for LLM quiz generation responses.
var QuizSchema = &llm.Schema{
	Name:        "video-quiz",
	Description: "A short multiple-choice quiz about a video lesson",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"text": map[string]any{
							"type":        "string",
							"description": "The question prompt, in plain ASCII text",
						},
						"choices": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type": "string",
							},
							"description": "Exactly 4 options",
						},
						"answer": map[string]any{
							"type":        "string",
							"description": "The text of the correct option, matching one of choices exactly",
						},
						"explanation": map[string]any{
							"type":        "string",
							"description": "One-sentence justification shown after answering",
						},
					},
					"required":             []any{"text", "choices", "answer", "explanation"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}
