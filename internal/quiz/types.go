// Package quiz generates and grades the post-video quiz. Generation is
// gated on the engine's end-of-video flag: the quiz covers material the
// learner has actually watched.
package quiz

// Question is one multiple-choice quiz question.
type Question struct {
	Text        string
	Choices     []string
	Answer      string
	Explanation string
}

// Quiz is a generated set of questions for one video.
type Quiz struct {
	VideoID   string
	Questions []Question
}

// Result is the outcome of grading one answered question.
type Result struct {
	Question      Question
	LearnerAnswer string
	Correct       bool
}

// Input carries the lesson context for quiz generation.
type Input struct {
	CourseTitle string
	VideoTitle  string
	VideoID     string

	// CheckpointQuestions are the video's authored checkpoint questions,
	// used to anchor the quiz to what the lesson covered.
	CheckpointQuestions []string

	// NumQuestions is how many questions to generate.
	NumQuestions int
}
