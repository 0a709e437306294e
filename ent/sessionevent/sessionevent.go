// Code generated by ent, DO NOT EDIT.

package sessionevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the sessionevent type in the database.
	Label = "session_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldVideoID holds the string denoting the video_id field in the database.
	FieldVideoID = "video_id"
	// FieldAction holds the string denoting the action field in the database.
	FieldAction = "action"
	// FieldDurationSecs holds the string denoting the duration_secs field in the database.
	FieldDurationSecs = "duration_secs"
	// FieldFinalPositionSecs holds the string denoting the final_position_secs field in the database.
	FieldFinalPositionSecs = "final_position_secs"
	// FieldCheckpointsCompleted holds the string denoting the checkpoints_completed field in the database.
	FieldCheckpointsCompleted = "checkpoints_completed"
	// FieldCheckpointsSkipped holds the string denoting the checkpoints_skipped field in the database.
	FieldCheckpointsSkipped = "checkpoints_skipped"
	// FieldReachedEnd holds the string denoting the reached_end field in the database.
	FieldReachedEnd = "reached_end"
	// Table holds the table name of the sessionevent in the database.
	Table = "session_events"
)

// Columns holds all SQL columns for sessionevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSessionID,
	FieldVideoID,
	FieldAction,
	FieldDurationSecs,
	FieldFinalPositionSecs,
	FieldCheckpointsCompleted,
	FieldCheckpointsSkipped,
	FieldReachedEnd,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// VideoIDValidator is a validator for the "video_id" field. It is called by the builders before save.
	VideoIDValidator func(string) error
	// ActionValidator is a validator for the "action" field. It is called by the builders before save.
	ActionValidator func(string) error
	// DefaultDurationSecs holds the default value on creation for the "duration_secs" field.
	DefaultDurationSecs int
	// DefaultFinalPositionSecs holds the default value on creation for the "final_position_secs" field.
	DefaultFinalPositionSecs float64
	// DefaultCheckpointsCompleted holds the default value on creation for the "checkpoints_completed" field.
	DefaultCheckpointsCompleted int
	// DefaultCheckpointsSkipped holds the default value on creation for the "checkpoints_skipped" field.
	DefaultCheckpointsSkipped int
	// DefaultReachedEnd holds the default value on creation for the "reached_end" field.
	DefaultReachedEnd bool
)

// OrderOption defines the ordering options for the SessionEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByVideoID orders the results by the video_id field.
func ByVideoID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVideoID, opts...).ToFunc()
}

// ByAction orders the results by the action field.
func ByAction(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAction, opts...).ToFunc()
}

// ByDurationSecs orders the results by the duration_secs field.
func ByDurationSecs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationSecs, opts...).ToFunc()
}

// ByFinalPositionSecs orders the results by the final_position_secs field.
func ByFinalPositionSecs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFinalPositionSecs, opts...).ToFunc()
}

// ByCheckpointsCompleted orders the results by the checkpoints_completed field.
func ByCheckpointsCompleted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCheckpointsCompleted, opts...).ToFunc()
}

// ByCheckpointsSkipped orders the results by the checkpoints_skipped field.
func ByCheckpointsSkipped(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCheckpointsSkipped, opts...).ToFunc()
}

// ByReachedEnd orders the results by the reached_end field.
func ByReachedEnd(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReachedEnd, opts...).ToFunc()
}
