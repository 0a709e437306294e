package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LLMRequestEvent journals every provider call: which model was asked,
// for what, at what token cost, and whether it came back usable.
type LLMRequestEvent struct {
	ent.Schema
}

func (LLMRequestEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (LLMRequestEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("provider").
			Comment("Vendor the call went to: anthropic, openai, gemini, openrouter"),
		field.String("model").
			Comment("Resolved wire-level model ID, after alias mapping"),
		field.String("purpose").
			Comment("Caller-supplied label carried via context: tutor, quiz"),
		field.Int("input_tokens").
			Default(0).
			Comment("Prompt tokens as reported by the vendor"),
		field.Int("output_tokens").
			Default(0).
			Comment("Completion tokens as reported by the vendor"),
		field.Int64("latency_ms").
			Default(0).
			Comment("Wall-clock duration of the round trip"),
		field.Bool("success").
			Comment("False when the call errored or failed schema validation"),
		field.String("error_message").
			Default("").
			Comment("Error text for failed calls, empty otherwise"),
		field.Text("request_body").
			Default("").
			Comment("Rendered prompt, kept for journal inspection"),
		field.Text("response_body").
			Default("").
			Comment("Raw model output, kept for journal inspection"),
	}
}

func (LLMRequestEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("provider"),
		index.Fields("purpose"),
		index.Fields("success"),
	}
}
