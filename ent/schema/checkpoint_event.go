package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CheckpointEvent records one checkpoint lifecycle step: fired when the
// engine pauses playback, then completed or skipped when the learner acts.
type CheckpointEvent struct {
	ent.Schema
}

func (CheckpointEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (CheckpointEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Links to SessionEvent"),
		field.String("video_id").
			NotEmpty(),
		field.String("checkpoint_id").
			NotEmpty(),
		field.String("action").
			NotEmpty().
			Comment("fired, completed, or skipped"),
		field.Float("position_secs").
			Default(0).
			Comment("Playback position when the action happened"),
		field.String("learner_answer").
			Default("").
			Comment("What the learner submitted (completed only)"),
		field.Int("attempts").
			Default(0).
			Comment("Submissions before the checkpoint resolved"),
	}
}

func (CheckpointEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("video_id"),
		index.Fields("checkpoint_id"),
		index.Fields("action"),
	}
}
