// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/rmehra/retain/ent/checkpointevent"
	"github.com/rmehra/retain/ent/llmrequestevent"
	"github.com/rmehra/retain/ent/progressrecord"
	"github.com/rmehra/retain/ent/quizevent"
	"github.com/rmehra/retain/ent/schema"
	"github.com/rmehra/retain/ent/sessionevent"
	"github.com/rmehra/retain/ent/tutorevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	checkpointeventMixin := schema.CheckpointEvent{}.Mixin()
	checkpointeventMixinFields0 := checkpointeventMixin[0].Fields()
	_ = checkpointeventMixinFields0
	checkpointeventFields := schema.CheckpointEvent{}.Fields()
	_ = checkpointeventFields
	// checkpointeventDescTimestamp is the schema descriptor for timestamp field.
	checkpointeventDescTimestamp := checkpointeventMixinFields0[1].Descriptor()
	// checkpointevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	checkpointevent.DefaultTimestamp = checkpointeventDescTimestamp.Default.(func() time.Time)
	// checkpointeventDescSessionID is the schema descriptor for session_id field.
	checkpointeventDescSessionID := checkpointeventFields[0].Descriptor()
	// checkpointevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	checkpointevent.SessionIDValidator = checkpointeventDescSessionID.Validators[0].(func(string) error)
	// checkpointeventDescVideoID is the schema descriptor for video_id field.
	checkpointeventDescVideoID := checkpointeventFields[1].Descriptor()
	// checkpointevent.VideoIDValidator is a validator for the "video_id" field. It is called by the builders before save.
	checkpointevent.VideoIDValidator = checkpointeventDescVideoID.Validators[0].(func(string) error)
	// checkpointeventDescCheckpointID is the schema descriptor for checkpoint_id field.
	checkpointeventDescCheckpointID := checkpointeventFields[2].Descriptor()
	// checkpointevent.CheckpointIDValidator is a validator for the "checkpoint_id" field. It is called by the builders before save.
	checkpointevent.CheckpointIDValidator = checkpointeventDescCheckpointID.Validators[0].(func(string) error)
	// checkpointeventDescAction is the schema descriptor for action field.
	checkpointeventDescAction := checkpointeventFields[3].Descriptor()
	// checkpointevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	checkpointevent.ActionValidator = checkpointeventDescAction.Validators[0].(func(string) error)
	// checkpointeventDescPositionSecs is the schema descriptor for position_secs field.
	checkpointeventDescPositionSecs := checkpointeventFields[4].Descriptor()
	// checkpointevent.DefaultPositionSecs holds the default value on creation for the position_secs field.
	checkpointevent.DefaultPositionSecs = checkpointeventDescPositionSecs.Default.(float64)
	// checkpointeventDescLearnerAnswer is the schema descriptor for learner_answer field.
	checkpointeventDescLearnerAnswer := checkpointeventFields[5].Descriptor()
	// checkpointevent.DefaultLearnerAnswer holds the default value on creation for the learner_answer field.
	checkpointevent.DefaultLearnerAnswer = checkpointeventDescLearnerAnswer.Default.(string)
	// checkpointeventDescAttempts is the schema descriptor for attempts field.
	checkpointeventDescAttempts := checkpointeventFields[6].Descriptor()
	// checkpointevent.DefaultAttempts holds the default value on creation for the attempts field.
	checkpointevent.DefaultAttempts = checkpointeventDescAttempts.Default.(int)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	progressrecordFields := schema.ProgressRecord{}.Fields()
	_ = progressrecordFields
	// progressrecordDescUserID is the schema descriptor for user_id field.
	progressrecordDescUserID := progressrecordFields[0].Descriptor()
	// progressrecord.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	progressrecord.UserIDValidator = progressrecordDescUserID.Validators[0].(func(string) error)
	// progressrecordDescVideoID is the schema descriptor for video_id field.
	progressrecordDescVideoID := progressrecordFields[1].Descriptor()
	// progressrecord.VideoIDValidator is a validator for the "video_id" field. It is called by the builders before save.
	progressrecord.VideoIDValidator = progressrecordDescVideoID.Validators[0].(func(string) error)
	// progressrecordDescPositionSecs is the schema descriptor for position_secs field.
	progressrecordDescPositionSecs := progressrecordFields[2].Descriptor()
	// progressrecord.DefaultPositionSecs holds the default value on creation for the position_secs field.
	progressrecord.DefaultPositionSecs = progressrecordDescPositionSecs.Default.(float64)
	// progressrecordDescCompleted is the schema descriptor for completed field.
	progressrecordDescCompleted := progressrecordFields[3].Descriptor()
	// progressrecord.DefaultCompleted holds the default value on creation for the completed field.
	progressrecord.DefaultCompleted = progressrecordDescCompleted.Default.(bool)
	// progressrecordDescUpdatedAt is the schema descriptor for updated_at field.
	progressrecordDescUpdatedAt := progressrecordFields[4].Descriptor()
	// progressrecord.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	progressrecord.DefaultUpdatedAt = progressrecordDescUpdatedAt.Default.(func() time.Time)
	// progressrecord.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	progressrecord.UpdateDefaultUpdatedAt = progressrecordDescUpdatedAt.UpdateDefault.(func() time.Time)
	quizeventMixin := schema.QuizEvent{}.Mixin()
	quizeventMixinFields0 := quizeventMixin[0].Fields()
	_ = quizeventMixinFields0
	quizeventFields := schema.QuizEvent{}.Fields()
	_ = quizeventFields
	// quizeventDescTimestamp is the schema descriptor for timestamp field.
	quizeventDescTimestamp := quizeventMixinFields0[1].Descriptor()
	// quizevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	quizevent.DefaultTimestamp = quizeventDescTimestamp.Default.(func() time.Time)
	// quizeventDescSessionID is the schema descriptor for session_id field.
	quizeventDescSessionID := quizeventFields[0].Descriptor()
	// quizevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	quizevent.SessionIDValidator = quizeventDescSessionID.Validators[0].(func(string) error)
	// quizeventDescVideoID is the schema descriptor for video_id field.
	quizeventDescVideoID := quizeventFields[1].Descriptor()
	// quizevent.VideoIDValidator is a validator for the "video_id" field. It is called by the builders before save.
	quizevent.VideoIDValidator = quizeventDescVideoID.Validators[0].(func(string) error)
	// quizeventDescQuestionText is the schema descriptor for question_text field.
	quizeventDescQuestionText := quizeventFields[2].Descriptor()
	// quizevent.QuestionTextValidator is a validator for the "question_text" field. It is called by the builders before save.
	quizevent.QuestionTextValidator = quizeventDescQuestionText.Validators[0].(func(string) error)
	// quizeventDescCorrectAnswer is the schema descriptor for correct_answer field.
	quizeventDescCorrectAnswer := quizeventFields[3].Descriptor()
	// quizevent.CorrectAnswerValidator is a validator for the "correct_answer" field. It is called by the builders before save.
	quizevent.CorrectAnswerValidator = quizeventDescCorrectAnswer.Validators[0].(func(string) error)
	// quizeventDescLearnerAnswer is the schema descriptor for learner_answer field.
	quizeventDescLearnerAnswer := quizeventFields[4].Descriptor()
	// quizevent.LearnerAnswerValidator is a validator for the "learner_answer" field. It is called by the builders before save.
	quizevent.LearnerAnswerValidator = quizeventDescLearnerAnswer.Validators[0].(func(string) error)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescVideoID is the schema descriptor for video_id field.
	sessioneventDescVideoID := sessioneventFields[1].Descriptor()
	// sessionevent.VideoIDValidator is a validator for the "video_id" field. It is called by the builders before save.
	sessionevent.VideoIDValidator = sessioneventDescVideoID.Validators[0].(func(string) error)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[2].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescDurationSecs is the schema descriptor for duration_secs field.
	sessioneventDescDurationSecs := sessioneventFields[3].Descriptor()
	// sessionevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	sessionevent.DefaultDurationSecs = sessioneventDescDurationSecs.Default.(int)
	// sessioneventDescFinalPositionSecs is the schema descriptor for final_position_secs field.
	sessioneventDescFinalPositionSecs := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultFinalPositionSecs holds the default value on creation for the final_position_secs field.
	sessionevent.DefaultFinalPositionSecs = sessioneventDescFinalPositionSecs.Default.(float64)
	// sessioneventDescCheckpointsCompleted is the schema descriptor for checkpoints_completed field.
	sessioneventDescCheckpointsCompleted := sessioneventFields[5].Descriptor()
	// sessionevent.DefaultCheckpointsCompleted holds the default value on creation for the checkpoints_completed field.
	sessionevent.DefaultCheckpointsCompleted = sessioneventDescCheckpointsCompleted.Default.(int)
	// sessioneventDescCheckpointsSkipped is the schema descriptor for checkpoints_skipped field.
	sessioneventDescCheckpointsSkipped := sessioneventFields[6].Descriptor()
	// sessionevent.DefaultCheckpointsSkipped holds the default value on creation for the checkpoints_skipped field.
	sessionevent.DefaultCheckpointsSkipped = sessioneventDescCheckpointsSkipped.Default.(int)
	// sessioneventDescReachedEnd is the schema descriptor for reached_end field.
	sessioneventDescReachedEnd := sessioneventFields[7].Descriptor()
	// sessionevent.DefaultReachedEnd holds the default value on creation for the reached_end field.
	sessionevent.DefaultReachedEnd = sessioneventDescReachedEnd.Default.(bool)
	tutoreventMixin := schema.TutorEvent{}.Mixin()
	tutoreventMixinFields0 := tutoreventMixin[0].Fields()
	_ = tutoreventMixinFields0
	tutoreventFields := schema.TutorEvent{}.Fields()
	_ = tutoreventFields
	// tutoreventDescTimestamp is the schema descriptor for timestamp field.
	tutoreventDescTimestamp := tutoreventMixinFields0[1].Descriptor()
	// tutorevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	tutorevent.DefaultTimestamp = tutoreventDescTimestamp.Default.(func() time.Time)
	// tutoreventDescSessionID is the schema descriptor for session_id field.
	tutoreventDescSessionID := tutoreventFields[0].Descriptor()
	// tutorevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	tutorevent.SessionIDValidator = tutoreventDescSessionID.Validators[0].(func(string) error)
	// tutoreventDescVideoID is the schema descriptor for video_id field.
	tutoreventDescVideoID := tutoreventFields[1].Descriptor()
	// tutorevent.VideoIDValidator is a validator for the "video_id" field. It is called by the builders before save.
	tutorevent.VideoIDValidator = tutoreventDescVideoID.Validators[0].(func(string) error)
	// tutoreventDescPositionSecs is the schema descriptor for position_secs field.
	tutoreventDescPositionSecs := tutoreventFields[2].Descriptor()
	// tutorevent.DefaultPositionSecs holds the default value on creation for the position_secs field.
	tutorevent.DefaultPositionSecs = tutoreventDescPositionSecs.Default.(float64)
	// tutoreventDescQuestion is the schema descriptor for question field.
	tutoreventDescQuestion := tutoreventFields[3].Descriptor()
	// tutorevent.QuestionValidator is a validator for the "question" field. It is called by the builders before save.
	tutorevent.QuestionValidator = tutoreventDescQuestion.Validators[0].(func(string) error)
	// tutoreventDescReply is the schema descriptor for reply field.
	tutoreventDescReply := tutoreventFields[4].Descriptor()
	// tutorevent.ReplyValidator is a validator for the "reply" field. It is called by the builders before save.
	tutorevent.ReplyValidator = tutoreventDescReply.Validators[0].(func(string) error)
}
