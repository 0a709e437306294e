package playback

// CheckpointKind distinguishes how a checkpoint's answer is collected.
type CheckpointKind string

const (
	KindFreeText       CheckpointKind = "free_text"
	KindMultipleChoice CheckpointKind = "multiple_choice"
)

// Checkpoint is a fixed playback timestamp at which the session pauses for
// an interaction. The question content is opaque to the scheduler; only At
// and ID drive triggering.
type Checkpoint struct {
	// ID is unique within a video.
	ID string

	// At is the playback timestamp in seconds at which the checkpoint fires.
	// Negative values mark the checkpoint unreachable (malformed input is
	// tolerated, never triggered).
	At float64

	// Question, Choices and Answer are the interaction content, carried
	// through to the UI and the validator but never inspected by the
	// scheduler.
	Question string
	Choices  []string
	Answer   string
	Kind     CheckpointKind
}

// CheckpointState is the per-checkpoint lifecycle state.
type CheckpointState int

const (
	// StateArmed means the checkpoint may fire when playback enters its
	// trigger window.
	StateArmed CheckpointState = iota

	// StateFired means the checkpoint has triggered and is awaiting a
	// resolve or skip.
	StateFired

	// StateCompleted means the learner answered the checkpoint.
	StateCompleted

	// StateSkipped means the learner dismissed the checkpoint unanswered.
	StateSkipped
)

// String returns the lowercase state name, used in event records.
func (s CheckpointState) String() string {
	switch s {
	case StateArmed:
		return "armed"
	case StateFired:
		return "fired"
	case StateCompleted:
		return "completed"
	case StateSkipped:
		return "skipped"
	}
	return "unknown"
}
