package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ProgressRecord is the last known watch position for a (user, video)
// pair. Unlike the event tables this is an upsert row: writes are
// last-write-wins on position_secs, which makes the engine's best-effort
// throttled persistence safe to drop.
type ProgressRecord struct {
	ent.Schema
}

func (ProgressRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty().
			Comment("Local profile identifier"),
		field.String("video_id").
			NotEmpty().
			Comment("Video within the course library"),
		field.Float("position_secs").
			Default(0).
			Comment("Last persisted playback position"),
		field.Bool("completed").
			Default(false).
			Comment("Whether the video was watched to the end"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("Wall-clock time of the last write"),
	}
}

func (ProgressRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "video_id").Unique(),
	}
}
