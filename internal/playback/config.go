package playback

import "time"

// Config holds the engine's timing constants. The defaults match the
// product behavior; tests tighten them.
type Config struct {
	// TriggerWindow is how far past a checkpoint's timestamp a sample may
	// land and still fire it. Sampling is coarse (~1 Hz), so an exact-hit
	// rule would miss checkpoints; a sample before the timestamp never
	// fires it.
	TriggerWindow float64

	// RearmSlack is how many seconds before a fired checkpoint's timestamp
	// the position must fall (via backward seek) before the checkpoint
	// re-arms. Absorbs small negative jitter from the player clock.
	RearmSlack float64

	// PersistInterval is the minimum wall-clock gap between progress
	// writes.
	PersistInterval time.Duration

	// EndThreshold is how close to the video duration counts as "ended".
	EndThreshold float64

	// SampleInterval is the position polling cadence.
	SampleInterval time.Duration

	// ResumeSettleDelay is how long after player-ready to wait before
	// issuing the resume seek. Some players report ready before they are
	// seek-capable.
	ResumeSettleDelay time.Duration
}

// DefaultConfig returns the production timing constants.
func DefaultConfig() Config {
	return Config{
		TriggerWindow:     1.5,
		RearmSlack:        5,
		PersistInterval:   10 * time.Second,
		EndThreshold:      2,
		SampleInterval:    time.Second,
		ResumeSettleDelay: time.Second,
	}
}
