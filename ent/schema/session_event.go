package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records watch-session lifecycle events (start/end).
type SessionEvent struct {
	ent.Schema
}

func (SessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping events in a watch session"),
		field.String("video_id").
			NotEmpty().
			Comment("Video being watched"),
		field.String("action").
			NotEmpty().
			Comment("start or end"),
		field.Int("duration_secs").
			Default(0).
			Comment("Wall-clock session length (on end only)"),
		field.Float("final_position_secs").
			Default(0).
			Comment("Playback position when the session ended (on end only)"),
		field.Int("checkpoints_completed").
			Default(0).
			Comment("Checkpoints answered (on end only)"),
		field.Int("checkpoints_skipped").
			Default(0).
			Comment("Checkpoints dismissed (on end only)"),
		field.Bool("reached_end").
			Default(false).
			Comment("Whether playback hit the end threshold"),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("video_id"),
		index.Fields("action"),
	}
}
