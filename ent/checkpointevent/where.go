// Code generated by ent, DO NOT EDIT.

package checkpointevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/rmehra/retain/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldEQ(FieldSessionID, v))
}

// VideoID applies equality check predicate on the "video_id" field. It's identical to VideoIDEQ.
func VideoID(v string) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldEQ(FieldVideoID, v))
}

// CheckpointID applies equality check predicate on the "checkpoint_id" field. It's identical to CheckpointIDEQ.
func CheckpointID(v string) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldEQ(FieldCheckpointID, v))
}

// Action applies equality check predicate on the "action" field. It's identical to ActionEQ.
func Action(v string) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldEQ(FieldAction, v))
}

// PositionSecs applies equality check predicate on the "position_secs" field. It's identical to PositionSecsEQ.
func PositionSecs(v float64) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldEQ(FieldPositionSecs, v))
}

// LearnerAnswer applies equality check predicate on the "learner_answer" field. It's identical to LearnerAnswerEQ.
func LearnerAnswer(v string) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldEQ(FieldLearnerAnswer, v))
}

// Attempts applies equality check predicate on the "attempts" field. It's identical to AttemptsEQ.
func Attempts(v int) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldEQ(FieldAttempts, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// VideoIDEQ applies the EQ predicate on the "video_id" field.
func VideoIDEQ(v string) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldEQ(FieldVideoID, v))
}

// VideoIDNEQ applies the NEQ predicate on the "video_id" field.
func VideoIDNEQ(v string) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldNEQ(FieldVideoID, v))
}

// VideoIDIn applies the In predicate on the "video_id" field.
func VideoIDIn(vs ...string) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldIn(FieldVideoID, vs...))
}

// VideoIDNotIn applies the NotIn predicate on the "video_id" field.
func VideoIDNotIn(vs ...string) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldNotIn(FieldVideoID, vs...))
}

// VideoIDGT applies the GT predicate on the "video_id" field.
func VideoIDGT(v string) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldGT(FieldVideoID, v))
}

// VideoIDGTE applies the GTE predicate on the "video_id" field.
func VideoIDGTE(v string) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldGTE(FieldVideoID, v))
}

// VideoIDLT applies the LT predicate on the "video_id" field.
func VideoIDLT(v string) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldLT(FieldVideoID, v))
}

// VideoIDLTE applies the LTE predicate on the "video_id" field.
func VideoIDLTE(v string) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldLTE(FieldVideoID, v))
}

// VideoIDContains applies the Contains predicate on the "video_id" field.
func VideoIDContains(v string) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldContains(FieldVideoID, v))
}

// VideoIDHasPrefix applies the HasPrefix predicate on the "video_id" field.
func VideoIDHasPrefix(v string) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldHasPrefix(FieldVideoID, v))
}

// VideoIDHasSuffix applies the HasSuffix predicate on the "video_id" field.
func VideoIDHasSuffix(v string) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldHasSuffix(FieldVideoID, v))
}

// VideoIDEqualFold applies the EqualFold predicate on the "video_id" field.
func VideoIDEqualFold(v string) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldEqualFold(FieldVideoID, v))
}

// VideoIDContainsFold applies the ContainsFold predicate on the "video_id" field.
func VideoIDContainsFold(v string) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldContainsFold(FieldVideoID, v))
}

// CheckpointIDEQ applies the EQ predicate on the "checkpoint_id" field.
func CheckpointIDEQ(v string) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldEQ(FieldCheckpointID, v))
}

// CheckpointIDNEQ applies the NEQ predicate on the "checkpoint_id" field.
func CheckpointIDNEQ(v string) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldNEQ(FieldCheckpointID, v))
}

// CheckpointIDIn applies the In predicate on the "checkpoint_id" field.
func CheckpointIDIn(vs ...string) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldIn(FieldCheckpointID, vs...))
}

// CheckpointIDNotIn applies the NotIn predicate on the "checkpoint_id" field.
func CheckpointIDNotIn(vs ...string) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldNotIn(FieldCheckpointID, vs...))
}

// CheckpointIDGT applies the GT predicate on the "checkpoint_id" field.
func CheckpointIDGT(v string) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldGT(FieldCheckpointID, v))
}

// CheckpointIDGTE applies the GTE predicate on the "checkpoint_id" field.
func CheckpointIDGTE(v string) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldGTE(FieldCheckpointID, v))
}

// CheckpointIDLT applies the LT predicate on the "checkpoint_id" field.
func CheckpointIDLT(v string) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldLT(FieldCheckpointID, v))
}

// CheckpointIDLTE applies the LTE predicate on the "checkpoint_id" field.
func CheckpointIDLTE(v string) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldLTE(FieldCheckpointID, v))
}

// CheckpointIDContains applies the Contains predicate on the "checkpoint_id" field.
func CheckpointIDContains(v string) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldContains(FieldCheckpointID, v))
}

// CheckpointIDHasPrefix applies the HasPrefix predicate on the "checkpoint_id" field.
func CheckpointIDHasPrefix(v string) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldHasPrefix(FieldCheckpointID, v))
}

// CheckpointIDHasSuffix applies the HasSuffix predicate on the "checkpoint_id" field.
func CheckpointIDHasSuffix(v string) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldHasSuffix(FieldCheckpointID, v))
}

// CheckpointIDEqualFold applies the EqualFold predicate on the "checkpoint_id" field.
func CheckpointIDEqualFold(v string) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldEqualFold(FieldCheckpointID, v))
}

// CheckpointIDContainsFold applies the ContainsFold predicate on the "checkpoint_id" field.
func CheckpointIDContainsFold(v string) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldContainsFold(FieldCheckpointID, v))
}

// ActionEQ applies the EQ predicate on the "action" field.
func ActionEQ(v string) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldEQ(FieldAction, v))
}

// ActionNEQ applies the NEQ predicate on the "action" field.
func ActionNEQ(v string) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldNEQ(FieldAction, v))
}

// ActionIn applies the In predicate on the "action" field.
func ActionIn(vs ...string) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldIn(FieldAction, vs...))
}

// ActionNotIn applies the NotIn predicate on the "action" field.
func ActionNotIn(vs ...string) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldNotIn(FieldAction, vs...))
}

// ActionGT applies the GT predicate on the "action" field.
func ActionGT(v string) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldGT(FieldAction, v))
}

// ActionGTE applies the GTE predicate on the "action" field.
func ActionGTE(v string) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldGTE(FieldAction, v))
}

// ActionLT applies the LT predicate on the "action" field.
func ActionLT(v string) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldLT(FieldAction, v))
}

// ActionLTE applies the LTE predicate on the "action" field.
func ActionLTE(v string) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldLTE(FieldAction, v))
}

// ActionContains applies the Contains predicate on the "action" field.
func ActionContains(v string) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldContains(FieldAction, v))
}

// ActionHasPrefix applies the HasPrefix predicate on the "action" field.
func ActionHasPrefix(v string) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldHasPrefix(FieldAction, v))
}

// ActionHasSuffix applies the HasSuffix predicate on the "action" field.
func ActionHasSuffix(v string) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldHasSuffix(FieldAction, v))
}

// ActionEqualFold applies the EqualFold predicate on the "action" field.
func ActionEqualFold(v string) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldEqualFold(FieldAction, v))
}

// ActionContainsFold applies the ContainsFold predicate on the "action" field.
func ActionContainsFold(v string) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldContainsFold(FieldAction, v))
}

// PositionSecsEQ applies the EQ predicate on the "position_secs" field.
func PositionSecsEQ(v float64) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldEQ(FieldPositionSecs, v))
}

// PositionSecsNEQ applies the NEQ predicate on the "position_secs" field.
func PositionSecsNEQ(v float64) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldNEQ(FieldPositionSecs, v))
}

// PositionSecsIn applies the In predicate on the "position_secs" field.
func PositionSecsIn(vs ...float64) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldIn(FieldPositionSecs, vs...))
}

// PositionSecsNotIn applies the NotIn predicate on the "position_secs" field.
func PositionSecsNotIn(vs ...float64) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldNotIn(FieldPositionSecs, vs...))
}

// PositionSecsGT applies the GT predicate on the "position_secs" field.
func PositionSecsGT(v float64) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldGT(FieldPositionSecs, v))
}

// PositionSecsGTE applies the GTE predicate on the "position_secs" field.
func PositionSecsGTE(v float64) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldGTE(FieldPositionSecs, v))
}

// PositionSecsLT applies the LT predicate on the "position_secs" field.
func PositionSecsLT(v float64) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldLT(FieldPositionSecs, v))
}

// PositionSecsLTE applies the LTE predicate on the "position_secs" field.
func PositionSecsLTE(v float64) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldLTE(FieldPositionSecs, v))
}

// LearnerAnswerEQ applies the EQ predicate on the "learner_answer" field.
func LearnerAnswerEQ(v string) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldEQ(FieldLearnerAnswer, v))
}

// LearnerAnswerNEQ applies the NEQ predicate on the "learner_answer" field.
func LearnerAnswerNEQ(v string) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldNEQ(FieldLearnerAnswer, v))
}

// LearnerAnswerIn applies the In predicate on the "learner_answer" field.
func LearnerAnswerIn(vs ...string) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldIn(FieldLearnerAnswer, vs...))
}

// LearnerAnswerNotIn applies the NotIn predicate on the "learner_answer" field.
func LearnerAnswerNotIn(vs ...string) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldNotIn(FieldLearnerAnswer, vs...))
}

// LearnerAnswerGT applies the GT predicate on the "learner_answer" field.
func LearnerAnswerGT(v string) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldGT(FieldLearnerAnswer, v))
}

// LearnerAnswerGTE applies the GTE predicate on the "learner_answer" field.
func LearnerAnswerGTE(v string) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldGTE(FieldLearnerAnswer, v))
}

// LearnerAnswerLT applies the LT predicate on the "learner_answer" field.
func LearnerAnswerLT(v string) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldLT(FieldLearnerAnswer, v))
}

// LearnerAnswerLTE applies the LTE predicate on the "learner_answer" field.
func LearnerAnswerLTE(v string) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldLTE(FieldLearnerAnswer, v))
}

// LearnerAnswerContains applies the Contains predicate on the "learner_answer" field.
func LearnerAnswerContains(v string) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldContains(FieldLearnerAnswer, v))
}

// LearnerAnswerHasPrefix applies the HasPrefix predicate on the "learner_answer" field.
func LearnerAnswerHasPrefix(v string) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldHasPrefix(FieldLearnerAnswer, v))
}

// LearnerAnswerHasSuffix applies the HasSuffix predicate on the "learner_answer" field.
func LearnerAnswerHasSuffix(v string) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldHasSuffix(FieldLearnerAnswer, v))
}

// LearnerAnswerEqualFold applies the EqualFold predicate on the "learner_answer" field.
func LearnerAnswerEqualFold(v string) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldEqualFold(FieldLearnerAnswer, v))
}

// LearnerAnswerContainsFold applies the ContainsFold predicate on the "learner_answer" field.
func LearnerAnswerContainsFold(v string) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldContainsFold(FieldLearnerAnswer, v))
}

// AttemptsEQ applies the EQ predicate on the "attempts" field.
func AttemptsEQ(v int) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldEQ(FieldAttempts, v))
}

// AttemptsNEQ applies the NEQ predicate on the "attempts" field.
func AttemptsNEQ(v int) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldNEQ(FieldAttempts, v))
}

// AttemptsIn applies the In predicate on the "attempts" field.
func AttemptsIn(vs ...int) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldIn(FieldAttempts, vs...))
}

// AttemptsNotIn applies the NotIn predicate on the "attempts" field.
func AttemptsNotIn(vs ...int) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldNotIn(FieldAttempts, vs...))
}

// AttemptsGT applies the GT predicate on the "attempts" field.
func AttemptsGT(v int) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldGT(FieldAttempts, v))
}

// AttemptsGTE applies the GTE predicate on the "attempts" field.
func AttemptsGTE(v int) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldGTE(FieldAttempts, v))
}

// AttemptsLT applies the LT predicate on the "attempts" field.
func AttemptsLT(v int) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldLT(FieldAttempts, v))
}

// AttemptsLTE applies the LTE predicate on the "attempts" field.
func AttemptsLTE(v int) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.FieldLTE(FieldAttempts, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CheckpointEvent) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CheckpointEvent) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CheckpointEvent) predicate.CheckpointEvent {
	return predicate.CheckpointEvent(sql.NotPredicates(p))
}
