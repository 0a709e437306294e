// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CheckpointEventsColumns holds the columns for the "checkpoint_events" table.
	CheckpointEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "video_id", Type: field.TypeString},
		{Name: "checkpoint_id", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "position_secs", Type: field.TypeFloat64, Default: 0},
		{Name: "learner_answer", Type: field.TypeString, Default: ""},
		{Name: "attempts", Type: field.TypeInt, Default: 0},
	}
	// CheckpointEventsTable holds the schema information for the "checkpoint_events" table.
	CheckpointEventsTable = &schema.Table{
		Name:       "checkpoint_events",
		Columns:    CheckpointEventsColumns,
		PrimaryKey: []*schema.Column{CheckpointEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "checkpointevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{CheckpointEventsColumns[1]},
			},
			{
				Name:    "checkpointevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{CheckpointEventsColumns[2]},
			},
			{
				Name:    "checkpointevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{CheckpointEventsColumns[3]},
			},
			{
				Name:    "checkpointevent_video_id",
				Unique:  false,
				Columns: []*schema.Column{CheckpointEventsColumns[4]},
			},
			{
				Name:    "checkpointevent_checkpoint_id",
				Unique:  false,
				Columns: []*schema.Column{CheckpointEventsColumns[5]},
			},
			{
				Name:    "checkpointevent_action",
				Unique:  false,
				Columns: []*schema.Column{CheckpointEventsColumns[6]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// ProgressRecordsColumns holds the columns for the "progress_records" table.
	ProgressRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "video_id", Type: field.TypeString},
		{Name: "position_secs", Type: field.TypeFloat64, Default: 0},
		{Name: "completed", Type: field.TypeBool, Default: false},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ProgressRecordsTable holds the schema information for the "progress_records" table.
	ProgressRecordsTable = &schema.Table{
		Name:       "progress_records",
		Columns:    ProgressRecordsColumns,
		PrimaryKey: []*schema.Column{ProgressRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "progressrecord_user_id_video_id",
				Unique:  true,
				Columns: []*schema.Column{ProgressRecordsColumns[1], ProgressRecordsColumns[2]},
			},
		},
	}
	// QuizEventsColumns holds the columns for the "quiz_events" table.
	QuizEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "video_id", Type: field.TypeString},
		{Name: "question_text", Type: field.TypeString},
		{Name: "correct_answer", Type: field.TypeString},
		{Name: "learner_answer", Type: field.TypeString},
		{Name: "correct", Type: field.TypeBool},
	}
	// QuizEventsTable holds the schema information for the "quiz_events" table.
	QuizEventsTable = &schema.Table{
		Name:       "quiz_events",
		Columns:    QuizEventsColumns,
		PrimaryKey: []*schema.Column{QuizEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "quizevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{QuizEventsColumns[1]},
			},
			{
				Name:    "quizevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{QuizEventsColumns[2]},
			},
			{
				Name:    "quizevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{QuizEventsColumns[3]},
			},
			{
				Name:    "quizevent_video_id",
				Unique:  false,
				Columns: []*schema.Column{QuizEventsColumns[4]},
			},
			{
				Name:    "quizevent_correct",
				Unique:  false,
				Columns: []*schema.Column{QuizEventsColumns[8]},
			},
		},
	}
	// SessionEventsColumns holds the columns for the "session_events" table.
	SessionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "video_id", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "duration_secs", Type: field.TypeInt, Default: 0},
		{Name: "final_position_secs", Type: field.TypeFloat64, Default: 0},
		{Name: "checkpoints_completed", Type: field.TypeInt, Default: 0},
		{Name: "checkpoints_skipped", Type: field.TypeInt, Default: 0},
		{Name: "reached_end", Type: field.TypeBool, Default: false},
	}
	// SessionEventsTable holds the schema information for the "session_events" table.
	SessionEventsTable = &schema.Table{
		Name:       "session_events",
		Columns:    SessionEventsColumns,
		PrimaryKey: []*schema.Column{SessionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[1]},
			},
			{
				Name:    "sessionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[2]},
			},
			{
				Name:    "sessionevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[3]},
			},
			{
				Name:    "sessionevent_video_id",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[4]},
			},
			{
				Name:    "sessionevent_action",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[5]},
			},
		},
	}
	// TutorEventsColumns holds the columns for the "tutor_events" table.
	TutorEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "video_id", Type: field.TypeString},
		{Name: "position_secs", Type: field.TypeFloat64, Default: 0},
		{Name: "question", Type: field.TypeString},
		{Name: "reply", Type: field.TypeString},
	}
	// TutorEventsTable holds the schema information for the "tutor_events" table.
	TutorEventsTable = &schema.Table{
		Name:       "tutor_events",
		Columns:    TutorEventsColumns,
		PrimaryKey: []*schema.Column{TutorEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "tutorevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{TutorEventsColumns[1]},
			},
			{
				Name:    "tutorevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{TutorEventsColumns[2]},
			},
			{
				Name:    "tutorevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{TutorEventsColumns[3]},
			},
			{
				Name:    "tutorevent_video_id",
				Unique:  false,
				Columns: []*schema.Column{TutorEventsColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CheckpointEventsTable,
		LlmRequestEventsTable,
		ProgressRecordsTable,
		QuizEventsTable,
		SessionEventsTable,
		TutorEventsTable,
	}
)

func init() {
}
