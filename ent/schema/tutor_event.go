package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TutorEvent records one tutor chat exchange during a watch session.
type TutorEvent struct {
	ent.Schema
}

func (TutorEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (TutorEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty(),
		field.String("video_id").
			NotEmpty(),
		field.Float("position_secs").
			Default(0).
			Comment("Playback position when the learner asked"),
		field.String("question").
			NotEmpty().
			Comment("What the learner asked"),
		field.String("reply").
			NotEmpty().
			Comment("The tutor's answer"),
	}
}

func (TutorEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("video_id"),
	}
}
