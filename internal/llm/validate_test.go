package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func quizQuestionSchema() *Schema {
	return &Schema{
		Name:        "quiz-question",
		Description: "A single quiz question",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"question": map[string]any{"type": "string"},
				"answer":   map[string]any{"type": "string"},
				"kind":     map[string]any{"type": "string", "enum": []any{"multiple_choice", "free_text"}},
			},
			"required": []any{"question", "answer"},
		},
	}
}

func TestValidateResponse_Accepts(t *testing.T) {
	accepted := map[string]string{
		"all fields":       `{"question":"Which call emits the signal?","answer":"emit","kind":"free_text"}`,
		"without optional": `{"question":"What phase runs first?","answer":"capture"}`,
	}
	for name, raw := range accepted {
		t.Run(name, func(t *testing.T) {
			if err := validateResponse(quizQuestionSchema(), json.RawMessage(raw)); err != nil {
				t.Fatalf("validateResponse(%s): %v", raw, err)
			}
		})
	}
}

func TestValidateResponse_Rejects(t *testing.T) {
	rejected := map[string]string{
		"missing required field": `{"question":"What phase runs first?"}`,
		"wrong field type":       `{"question":"What phase runs first?","answer":42}`,
		"value outside enum":     `{"question":"q","answer":"a","kind":"essay"}`,
		"malformed JSON":         `{not json}`,
		"empty response":         ``,
	}
	for name, raw := range rejected {
		t.Run(name, func(t *testing.T) {
			err := validateResponse(quizQuestionSchema(), json.RawMessage(raw))
			if err == nil {
				t.Fatalf("validateResponse(%s) = nil, want error", raw)
			}
			var invErr *ErrInvalidResponse
			if !errors.As(err, &invErr) {
				t.Fatalf("got %T (%v), want ErrInvalidResponse", err, err)
			}
		})
	}
}

func TestValidateResponse_NilSchemaSkipsValidation(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`{"anything":"goes"}`)); err != nil {
		t.Fatalf("nil schema should accept anything, got: %v", err)
	}
}

func TestValidateResponse_NestedObjects(t *testing.T) {
	schema := &Schema{
		Name:        "quiz-set",
		Description: "A quiz with scored questions",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"video": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"id": map[string]any{"type": "string"},
					},
					"required": []any{"id"},
				},
				"questions": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
			},
			"required": []any{"video", "questions"},
		},
	}

	valid := json.RawMessage(`{"video":{"id":"vid-1"},"questions":["What runs first?","Which call emits?"]}`)
	if err := validateResponse(schema, valid); err != nil {
		t.Fatalf("valid nested document rejected: %v", err)
	}

	invalid := json.RawMessage(`{"video":{"id":"vid-1"},"questions":[1,2]}`)
	if err := validateResponse(schema, invalid); err == nil {
		t.Fatal("wrong array item type accepted")
	}
}
