// Code generated by ent, DO NOT EDIT.

package tutorevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/rmehra/retain/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.TutorEvent {
	return predicate.TutorEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.TutorEvent {
	return predicate.TutorEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.TutorEvent {
	return predicate.TutorEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.TutorEvent {
	return predicate.TutorEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.TutorEvent {
	return predicate.TutorEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.TutorEvent {
	return predicate.TutorEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.TutorEvent {
	return predicate.TutorEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.TutorEvent {
	return predicate.TutorEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.TutorEvent {
	return predicate.TutorEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.TutorEvent {
	return predicate.TutorEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.TutorEvent {
	return predicate.TutorEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.TutorEvent {
	return predicate.TutorEvent(sql.FieldEQ(FieldSessionID, v))
}

// VideoID applies equality check predicate on the "video_id" field. It's identical to VideoIDEQ.
func VideoID(v string) predicate.TutorEvent {
	return predicate.TutorEvent(sql.FieldEQ(FieldVideoID, v))
}

// PositionSecs applies equality check predicate on the "position_secs" field. It's identical to PositionSecsEQ.
func PositionSecs(v float64) predicate.TutorEvent {
	return predicate.TutorEvent(sql.FieldEQ(FieldPositionSecs, v))
}

// Question applies equality check predicate on the "question" field. It's identical to QuestionEQ.
func Question(v string) predicate.TutorEvent {
	return predicate.TutorEvent(sql.FieldEQ(FieldQuestion, v))
}

// Reply applies equality check predicate on the "reply" field. It's identical to ReplyEQ.
func Reply(v string) predicate.TutorEvent {
	return predicate.TutorEvent(sql.FieldEQ(FieldReply, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.TutorEvent {
	return predicate.TutorEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.TutorEvent {
	return predicate.TutorEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.TutorEvent {
	return predicate.TutorEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.TutorEvent {
	return predicate.TutorEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.TutorEvent {
	return predicate.TutorEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.TutorEvent {
	return predicate.TutorEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.TutorEvent {
	return predicate.TutorEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.TutorEvent {
	return predicate.TutorEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.TutorEvent {
	return predicate.TutorEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.TutorEvent {
	return predicate.TutorEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.TutorEvent {
	return predicate.TutorEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.TutorEvent {
	return predicate.TutorEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.TutorEvent {
	return predicate.TutorEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.TutorEvent {
	return predicate.TutorEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.TutorEvent {
	return predicate.TutorEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.TutorEvent {
	return predicate.TutorEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.TutorEvent {
	return predicate.TutorEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.TutorEvent {
	return predicate.TutorEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.TutorEvent {
	return predicate.TutorEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.TutorEvent {
	return predicate.TutorEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.TutorEvent {
	return predicate.TutorEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.TutorEvent {
	return predicate.TutorEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.TutorEvent {
	return predicate.TutorEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.TutorEvent {
	return predicate.TutorEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.TutorEvent {
	return predicate.TutorEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.TutorEvent {
	return predicate.TutorEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.TutorEvent {
	return predicate.TutorEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.TutorEvent {
	return predicate.TutorEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.TutorEvent {
	return predicate.TutorEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// VideoIDEQ applies the EQ predicate on the "video_id" field.
func VideoIDEQ(v string) predicate.TutorEvent {
	return predicate.TutorEvent(sql.FieldEQ(FieldVideoID, v))
}

// VideoIDNEQ applies the NEQ predicate on the "video_id" field.
func VideoIDNEQ(v string) predicate.TutorEvent {
	return predicate.TutorEvent(sql.FieldNEQ(FieldVideoID, v))
}

// VideoIDIn applies the In predicate on the "video_id" field.
func VideoIDIn(vs ...string) predicate.TutorEvent {
	return predicate.TutorEvent(sql.FieldIn(FieldVideoID, vs...))
}

// VideoIDNotIn applies the NotIn predicate on the "video_id" field.
func VideoIDNotIn(vs ...string) predicate.TutorEvent {
	return predicate.TutorEvent(sql.FieldNotIn(FieldVideoID, vs...))
}

// VideoIDGT applies the GT predicate on the "video_id" field.
func VideoIDGT(v string) predicate.TutorEvent {
	return predicate.TutorEvent(sql.FieldGT(FieldVideoID, v))
}

// VideoIDGTE applies the GTE predicate on the "video_id" field.
func VideoIDGTE(v string) predicate.TutorEvent {
	return predicate.TutorEvent(sql.FieldGTE(FieldVideoID, v))
}

// VideoIDLT applies the LT predicate on the "video_id" field.
func VideoIDLT(v string) predicate.TutorEvent {
	return predicate.TutorEvent(sql.FieldLT(FieldVideoID, v))
}

// VideoIDLTE applies the LTE predicate on the "video_id" field.
func VideoIDLTE(v string) predicate.TutorEvent {
	return predicate.TutorEvent(sql.FieldLTE(FieldVideoID, v))
}

// VideoIDContains applies the Contains predicate on the "video_id" field.
func VideoIDContains(v string) predicate.TutorEvent {
	return predicate.TutorEvent(sql.FieldContains(FieldVideoID, v))
}

// VideoIDHasPrefix applies the HasPrefix predicate on the "video_id" field.
func VideoIDHasPrefix(v string) predicate.TutorEvent {
	return predicate.TutorEvent(sql.FieldHasPrefix(FieldVideoID, v))
}

// VideoIDHasSuffix applies the HasSuffix predicate on the "video_id" field.
func VideoIDHasSuffix(v string) predicate.TutorEvent {
	return predicate.TutorEvent(sql.FieldHasSuffix(FieldVideoID, v))
}

// VideoIDEqualFold applies the EqualFold predicate on the "video_id" field.
func VideoIDEqualFold(v string) predicate.TutorEvent {
	return predicate.TutorEvent(sql.FieldEqualFold(FieldVideoID, v))
}

// VideoIDContainsFold applies the ContainsFold predicate on the "video_id" field.
func VideoIDContainsFold(v string) predicate.TutorEvent {
	return predicate.TutorEvent(sql.FieldContainsFold(FieldVideoID, v))
}

// PositionSecsEQ applies the EQ predicate on the "position_secs" field.
func PositionSecsEQ(v float64) predicate.TutorEvent {
	return predicate.TutorEvent(sql.FieldEQ(FieldPositionSecs, v))
}

// PositionSecsNEQ applies the NEQ predicate on the "position_secs" field.
func PositionSecsNEQ(v float64) predicate.TutorEvent {
	return predicate.TutorEvent(sql.FieldNEQ(FieldPositionSecs, v))
}

// PositionSecsIn applies the In predicate on the "position_secs" field.
func PositionSecsIn(vs ...float64) predicate.TutorEvent {
	return predicate.TutorEvent(sql.FieldIn(FieldPositionSecs, vs...))
}

// PositionSecsNotIn applies the NotIn predicate on the "position_secs" field.
func PositionSecsNotIn(vs ...float64) predicate.TutorEvent {
	return predicate.TutorEvent(sql.FieldNotIn(FieldPositionSecs, vs...))
}

// PositionSecsGT applies the GT predicate on the "position_secs" field.
func PositionSecsGT(v float64) predicate.TutorEvent {
	return predicate.TutorEvent(sql.FieldGT(FieldPositionSecs, v))
}

// PositionSecsGTE applies the GTE predicate on the "position_secs" field.
func PositionSecsGTE(v float64) predicate.TutorEvent {
	return predicate.TutorEvent(sql.FieldGTE(FieldPositionSecs, v))
}

// PositionSecsLT applies the LT predicate on the "position_secs" field.
func PositionSecsLT(v float64) predicate.TutorEvent {
	return predicate.TutorEvent(sql.FieldLT(FieldPositionSecs, v))
}

// PositionSecsLTE applies the LTE predicate on the "position_secs" field.
func PositionSecsLTE(v float64) predicate.TutorEvent {
	return predicate.TutorEvent(sql.FieldLTE(FieldPositionSecs, v))
}

// QuestionEQ applies the EQ predicate on the "question" field.
func QuestionEQ(v string) predicate.TutorEvent {
	return predicate.TutorEvent(sql.FieldEQ(FieldQuestion, v))
}

// QuestionNEQ applies the NEQ predicate on the "question" field.
func QuestionNEQ(v string) predicate.TutorEvent {
	return predicate.TutorEvent(sql.FieldNEQ(FieldQuestion, v))
}

// QuestionIn applies the In predicate on the "question" field.
func QuestionIn(vs ...string) predicate.TutorEvent {
	return predicate.TutorEvent(sql.FieldIn(FieldQuestion, vs...))
}

// QuestionNotIn applies the NotIn predicate on the "question" field.
func QuestionNotIn(vs ...string) predicate.TutorEvent {
	return predicate.TutorEvent(sql.FieldNotIn(FieldQuestion, vs...))
}

// QuestionGT applies the GT predicate on the "question" field.
func QuestionGT(v string) predicate.TutorEvent {
	return predicate.TutorEvent(sql.FieldGT(FieldQuestion, v))
}

// QuestionGTE applies the GTE predicate on the "question" field.
func QuestionGTE(v string) predicate.TutorEvent {
	return predicate.TutorEvent(sql.FieldGTE(FieldQuestion, v))
}

// QuestionLT applies the LT predicate on the "question" field.
func QuestionLT(v string) predicate.TutorEvent {
	return predicate.TutorEvent(sql.FieldLT(FieldQuestion, v))
}

// QuestionLTE applies the LTE predicate on the "question" field.
func QuestionLTE(v string) predicate.TutorEvent {
	return predicate.TutorEvent(sql.FieldLTE(FieldQuestion, v))
}

// QuestionContains applies the Contains predicate on the "question" field.
func QuestionContains(v string) predicate.TutorEvent {
	return predicate.TutorEvent(sql.FieldContains(FieldQuestion, v))
}

// QuestionHasPrefix applies the HasPrefix predicate on the "question" field.
func QuestionHasPrefix(v string) predicate.TutorEvent {
	return predicate.TutorEvent(sql.FieldHasPrefix(FieldQuestion, v))
}

// QuestionHasSuffix applies the HasSuffix predicate on the "question" field.
func QuestionHasSuffix(v string) predicate.TutorEvent {
	return predicate.TutorEvent(sql.FieldHasSuffix(FieldQuestion, v))
}

// QuestionEqualFold applies the EqualFold predicate on the "question" field.
func QuestionEqualFold(v string) predicate.TutorEvent {
	return predicate.TutorEvent(sql.FieldEqualFold(FieldQuestion, v))
}

// QuestionContainsFold applies the ContainsFold predicate on the "question" field.
func QuestionContainsFold(v string) predicate.TutorEvent {
	return predicate.TutorEvent(sql.FieldContainsFold(FieldQuestion, v))
}

// ReplyEQ applies the EQ predicate on the "reply" field.
func ReplyEQ(v string) predicate.TutorEvent {
	return predicate.TutorEvent(sql.FieldEQ(FieldReply, v))
}

// ReplyNEQ applies the NEQ predicate on the "reply" field.
func ReplyNEQ(v string) predicate.TutorEvent {
	return predicate.TutorEvent(sql.FieldNEQ(FieldReply, v))
}

// ReplyIn applies the In predicate on the "reply" field.
func ReplyIn(vs ...string) predicate.TutorEvent {
	return predicate.TutorEvent(sql.FieldIn(FieldReply, vs...))
}

// ReplyNotIn applies the NotIn predicate on the "reply" field.
func ReplyNotIn(vs ...string) predicate.TutorEvent {
	return predicate.TutorEvent(sql.FieldNotIn(FieldReply, vs...))
}

// ReplyGT applies the GT predicate on the "reply" field.
func ReplyGT(v string) predicate.TutorEvent {
	return predicate.TutorEvent(sql.FieldGT(FieldReply, v))
}

// ReplyGTE applies the GTE predicate on the "reply" field.
func ReplyGTE(v string) predicate.TutorEvent {
	return predicate.TutorEvent(sql.FieldGTE(FieldReply, v))
}

// ReplyLT applies the LT predicate on the "reply" field.
func ReplyLT(v string) predicate.TutorEvent {
	return predicate.TutorEvent(sql.FieldLT(FieldReply, v))
}

// ReplyLTE applies the LTE predicate on the "reply" field.
func ReplyLTE(v string) predicate.TutorEvent {
	return predicate.TutorEvent(sql.FieldLTE(FieldReply, v))
}

// ReplyContains applies the Contains predicate on the "reply" field.
func ReplyContains(v string) predicate.TutorEvent {
	return predicate.TutorEvent(sql.FieldContains(FieldReply, v))
}

// ReplyHasPrefix applies the HasPrefix predicate on the "reply" field.
func ReplyHasPrefix(v string) predicate.TutorEvent {
	return predicate.TutorEvent(sql.FieldHasPrefix(FieldReply, v))
}

// ReplyHasSuffix applies the HasSuffix predicate on the "reply" field.
func ReplyHasSuffix(v string) predicate.TutorEvent {
	return predicate.TutorEvent(sql.FieldHasSuffix(FieldReply, v))
}

// ReplyEqualFold applies the EqualFold predicate on the "reply" field.
func ReplyEqualFold(v string) predicate.TutorEvent {
	return predicate.TutorEvent(sql.FieldEqualFold(FieldReply, v))
}

// ReplyContainsFold applies the ContainsFold predicate on the "reply" field.
func ReplyContainsFold(v string) predicate.TutorEvent {
	return predicate.TutorEvent(sql.FieldContainsFold(FieldReply, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TutorEvent) predicate.TutorEvent {
	return predicate.TutorEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TutorEvent) predicate.TutorEvent {
	return predicate.TutorEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TutorEvent) predicate.TutorEvent {
	return predicate.TutorEvent(sql.NotPredicates(p))
}
