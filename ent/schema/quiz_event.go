package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QuizEvent records a single answered question from a post-video quiz.
type QuizEvent struct {
	ent.Schema
}

func (QuizEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (QuizEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty(),
		field.String("video_id").
			NotEmpty(),
		field.String("question_text").
			NotEmpty(),
		field.String("correct_answer").
			NotEmpty(),
		field.String("learner_answer").
			NotEmpty(),
		field.Bool("correct"),
	}
}

func (QuizEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("video_id"),
		index.Fields("correct"),
	}
}
