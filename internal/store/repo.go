package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit   int    // max results (0 = unlimited)
	VideoID string // restrict to one video ("" = all)
}

// Progress is the last known watch position for a (user, video) pair.
type Progress struct {
	UserID       string
	VideoID      string
	PositionSecs float64
	Completed    bool
	UpdatedAt    time.Time
}

// ProgressRepo manages watch-progress rows. Writes are last-write-wins;
// the engine's throttler bounds their frequency.
type ProgressRepo interface {
	// Get returns the progress for a (user, video) pair, or nil if the
	// video has never been watched.
	Get(ctx context.Context, userID, videoID string) (*Progress, error)

	// Upsert writes the latest position, creating the row if needed.
	Upsert(ctx context.Context, userID, videoID string, positionSecs float64) error

	// MarkCompleted flags the video as watched to the end.
	MarkCompleted(ctx context.Context, userID, videoID string) error

	// All returns every progress row for a user, most recent first.
	All(ctx context.Context, userID string) ([]Progress, error)

	// DeleteAll removes every progress row for a user and returns the
	// number removed. The event journal is untouched.
	DeleteAll(ctx context.Context, userID string) (int, error)
}

// SessionEventData captures a watch-session lifecycle event.
type SessionEventData struct {
	SessionID            string
	VideoID              string
	Action               string // "start" or "end"
	DurationSecs         int
	FinalPositionSecs    float64
	CheckpointsCompleted int
	CheckpointsSkipped   int
	ReachedEnd           bool
}

// CheckpointEventData captures one checkpoint lifecycle step.
type CheckpointEventData struct {
	SessionID     string
	VideoID       string
	CheckpointID  string
	Action        string // "fired", "completed", or "skipped"
	PositionSecs  float64
	LearnerAnswer string
	Attempts      int
}

// QuizEventData captures a single answered quiz question.
type QuizEventData struct {
	SessionID     string
	VideoID       string
	QuestionText  string
	CorrectAnswer string
	LearnerAnswer string
	Correct       bool
}

// TutorEventData captures one tutor chat exchange.
type TutorEventData struct {
	SessionID    string
	VideoID      string
	PositionSecs float64
	Question     string
	Reply        string
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEventRecord is an LLM request event as read back for inspection.
type LLMEventRecord struct {
	ID           int
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMUsageStat aggregates token usage for one purpose label.
type LLMUsageStat struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMModelUsage aggregates token usage for one model.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// SessionSummaryRecord is a finished watch session as read back for the
// history screen.
type SessionSummaryRecord struct {
	SessionID            string
	VideoID              string
	Timestamp            time.Time
	DurationSecs         int
	FinalPositionSecs    float64
	CheckpointsCompleted int
	CheckpointsSkipped   int
	ReachedEnd           bool
}

// EventRepo provides append and query access to the event journal.
type EventRepo interface {
	AppendSessionEvent(ctx context.Context, data SessionEventData) error
	AppendCheckpointEvent(ctx context.Context, data CheckpointEventData) error
	AppendQuizEvent(ctx context.Context, data QuizEventData) error
	AppendTutorEvent(ctx context.Context, data TutorEventData) error

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns LLM request events, most recent first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEventRecord, error)

	// GetLLMEvent returns one LLM event with full request/response bodies,
	// or nil if no event has that ID.
	GetLLMEvent(ctx context.Context, id int) (*LLMEventRecord, error)

	// LLMUsageByPurpose aggregates token usage per purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStat, error)

	// LLMUsageByModel aggregates token usage per model.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)

	// QuerySessionSummaries returns finished sessions, most recent first.
	QuerySessionSummaries(ctx context.Context, opts QueryOpts) ([]SessionSummaryRecord, error)

	// QuizAccuracy returns the fraction of quiz answers that were correct
	// for a video, and the number of answers. Zero answers yields (0, 0).
	QuizAccuracy(ctx context.Context, videoID string) (float64, int, error)
}
