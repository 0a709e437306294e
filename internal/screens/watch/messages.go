package watch

import "time"

// sampleTickMsg drives one engine sampling step. The tick cadence is the
// engine's SampleInterval.
type sampleTickMsg time.Time

// resumeLoadedMsg carries the saved position fetched at session start.
type resumeLoadedMsg struct {
	Position float64
	Found    bool
}
