package playback

import (
	"strconv"
	"strings"
)

// CheckAnswer compares the learner's input against a checkpoint's expected
// answer. Returns true if the answer is correct.
//
// Free-text answers are trimmed and compared case-insensitively. Multiple
// choice accepts either the 1-based choice index or the choice text,
// compared against the expected answer as-is: the selection and the
// answer both come from the same authored manifest, so normalizing would
// only mask manifest mistakes. Empty input is always wrong.
func CheckAnswer(learnerAnswer string, cp Checkpoint) bool {
	if cp.Kind == KindMultipleChoice {
		return checkMultipleChoice(learnerAnswer, cp)
	}

	learnerAnswer = strings.TrimSpace(learnerAnswer)
	if learnerAnswer == "" {
		return false
	}
	return strings.EqualFold(learnerAnswer, strings.TrimSpace(cp.Answer))
}

// checkMultipleChoice matches by index (1-N) first, then by choice text.
func checkMultipleChoice(selected string, cp Checkpoint) bool {
	if selected == "" {
		return false
	}
	if idx, err := strconv.Atoi(selected); err == nil && idx >= 1 && idx <= len(cp.Choices) {
		return cp.Choices[idx-1] == cp.Answer
	}
	return selected == cp.Answer
}
