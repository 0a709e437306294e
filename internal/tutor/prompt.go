package tutor

import (
	"fmt"
	"strings"
)

const tutorSystemPrompt = `You are a patient tutor embedded in a video-learning app. The learner is watching an instructional video and has paused to ask you a question. Answer clearly and concisely, grounded in the lesson context you are given. If the learner is stuck on a checkpoint question, guide them toward the answer with hints — never state the answer outright.`

func buildTutorUserMessage(input Input) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Course: %s\n", input.CourseTitle))
	b.WriteString(fmt.Sprintf("Video: %s\n", input.VideoTitle))
	b.WriteString(fmt.Sprintf("Playback position: %s\n", formatPosition(input.PositionSecs)))

	if input.CheckpointQuestion != "" {
		b.WriteString(fmt.Sprintf("\nThe learner is paused at a checkpoint asking: %q\n", input.CheckpointQuestion))
	}

	if len(input.History) > 0 {
		b.WriteString("\nEarlier in this session:\n")
		history := input.History
		if len(history) > MaxHistoryExchanges {
			history = history[len(history)-MaxHistoryExchanges:]
		}
		for _, ex := range history {
			b.WriteString(fmt.Sprintf("Learner: %s\nTutor: %s\n", ex.Question, ex.Reply))
		}
	}

	b.WriteString(fmt.Sprintf("\nLearner's question: %s\n", input.Question))
	b.WriteString("\nReply in plain text, at most a short paragraph.")

	return b.String()
}

// formatPosition renders seconds as m:ss for the prompt.
func formatPosition(secs float64) string {
	s := int(secs)
	return fmt.Sprintf("%d:%02d", s/60, s%60)
}
