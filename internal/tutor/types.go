// Package tutor answers learner questions about the current lesson via
// the LLM provider. Requests are asynchronous: the watch screen submits a
// question and polls for the reply on its tick.
package tutor

// Exchange is one question/reply pair in the session's chat.
type Exchange struct {
	Question     string
	Reply        string
	PositionSecs float64
}

// Input carries the lesson context for one tutor request.
type Input struct {
	CourseTitle string
	VideoTitle  string

	// PositionSecs is the playback position when the learner asked.
	PositionSecs float64

	// CheckpointQuestion is set when the learner asks while paused at a
	// checkpoint, so the tutor can help without giving the answer away.
	CheckpointQuestion string

	// History is the session's prior exchanges, oldest first.
	History []Exchange

	// Question is what the learner asked.
	Question string
}
