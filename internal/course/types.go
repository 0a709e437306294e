// Package course loads and validates lesson catalogs. A course is a JSON
// manifest of videos, each carrying an ordered checkpoint list. Manifests
// are read once at startup and are immutable for the session's duration.
package course

import "github.com/rmehra/retain/internal/playback"

// Course is a sequence of video lessons.
type Course struct {
	ID     string  `json:"id"`
	Title  string  `json:"title"`
	Videos []Video `json:"videos"`
}

// Video is one lesson: a media source plus its checkpoint set.
type Video struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Media    string  `json:"media"` // file path or URL handed to the player
	Duration float64 `json:"duration_secs"`

	Checkpoints []CheckpointDef `json:"checkpoints"`
}

// CheckpointDef is the authored form of a checkpoint.
type CheckpointDef struct {
	ID       string   `json:"id"`
	At       float64  `json:"at_secs"`
	Kind     string   `json:"kind"` // "free_text" or "multiple_choice"
	Question string   `json:"question"`
	Choices  []string `json:"choices,omitempty"`
	Answer   string   `json:"answer"`
}

// EngineCheckpoints converts the video's authored checkpoints into the
// engine's representation.
func (v Video) EngineCheckpoints() []playback.Checkpoint {
	cps := make([]playback.Checkpoint, 0, len(v.Checkpoints))
	for _, def := range v.Checkpoints {
		kind := playback.KindFreeText
		if def.Kind == string(playback.KindMultipleChoice) {
			kind = playback.KindMultipleChoice
		}
		cps = append(cps, playback.Checkpoint{
			ID:       def.ID,
			At:       def.At,
			Kind:     kind,
			Question: def.Question,
			Choices:  def.Choices,
			Answer:   def.Answer,
		})
	}
	return cps
}

// FindVideo returns the video with the given ID.
func (c Course) FindVideo(id string) (Video, bool) {
	for _, v := range c.Videos {
		if v.ID == id {
			return v, true
		}
	}
	return Video{}, false
}
