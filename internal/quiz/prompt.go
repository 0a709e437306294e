package quiz

import (
	"fmt"
	"strings"
)

const quizSystemPrompt = `You are writing a short recall quiz for a learner who has just finished watching an instructional video. Questions must test understanding of the lesson's material, not trivia about the video itself.`

func buildQuizUserMessage(input Input) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Course: %s\n", input.CourseTitle))
	b.WriteString(fmt.Sprintf("Video: %s\n", input.VideoTitle))

	b.WriteString("\nCheckpoint questions the learner already answered during the video:\n")
	if len(input.CheckpointQuestions) == 0 {
		b.WriteString("None\n")
	} else {
		for _, q := range input.CheckpointQuestions {
			b.WriteString(fmt.Sprintf("- %s\n", q))
		}
	}

	b.WriteString(fmt.Sprintf(`
Instructions:
Write %d multiple-choice questions that:
1. Cover the same material as the checkpoint questions above, but are NOT restatements of them.
2. Have exactly 4 plausible choices each, with a single unambiguous correct answer.
3. Use plain ASCII text.
4. Include a one-sentence explanation for the correct answer.`, input.NumQuestions))

	return b.String()
}
