// Code generated by ent, DO NOT EDIT.

package tutorevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the tutorevent type in the database.
	Label = "tutor_event"
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
	// FieldPositionSecs holds the string denoting the position_secs field in the database.
	FieldPositionSecs = "position_secs"
	// FieldQuestion holds the string denoting the question field in the database.
	FieldQuestion = "question"
	// FieldReply holds the string denoting the reply field in the database.
	FieldReply = "reply"
	// Table holds the table name of the tutorevent in the database.
	Table = "tutor_events"
)

// Columns holds all SQL columns for tutorevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSessionID,
	FieldVideoID,
	FieldPositionSecs,
	FieldQuestion,
	FieldReply,
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
	// DefaultPositionSecs holds the default value on creation for the "position_secs" field.
	DefaultPositionSecs float64
	// QuestionValidator is a validator for the "question" field. It is called by the builders before save.
	QuestionValidator func(string) error
	// ReplyValidator is a validator for the "reply" field. It is called by the builders before save.
	ReplyValidator func(string) error
)

// OrderOption defines the ordering options for the TutorEvent queries.
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

// ByPositionSecs orders the results by the position_secs field.
func ByPositionSecs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPositionSecs, opts...).ToFunc()
}

// ByQuestion orders the results by the question field.
func ByQuestion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestion, opts...).ToFunc()
}

// ByReply orders the results by the reply field.
func ByReply(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReply, opts...).ToFunc()
}
