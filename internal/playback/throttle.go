package playback

import "time"

// Throttler bounds progress-write frequency to at most one per interval.
// It only decides; the coordinator performs the actual write. The design is
// best-effort at-most-once per interval: a failed write is not retried, the
// next interval tick supersedes it with a fresher position.
type Throttler struct {
	interval    time.Duration
	lastPersist time.Time
}

// NewThrottler creates a throttler with the given minimum write interval.
func NewThrottler(interval time.Duration) *Throttler {
	return &Throttler{interval: interval}
}

// OnTimeSample reports whether a progress write should happen for position
// t at wall-clock now. hasIdentity gates on a persistable user and video
// being present. When it returns true the throttle timestamp is advanced
// immediately — before the write completes — so a slow write cannot overlap
// with the next one.
func (th *Throttler) OnTimeSample(t float64, now time.Time, hasIdentity bool) bool {
	if !hasIdentity || t <= 0 {
		return false
	}
	// First sample establishes the baseline; the first write happens one
	// full interval later, not immediately on session start.
	if th.lastPersist.IsZero() {
		th.lastPersist = now
		return false
	}
	if now.Sub(th.lastPersist) < th.interval {
		return false
	}
	th.lastPersist = now
	return true
}

// EndDetector tracks whether playback has reached the end of the video,
// with hysteresis: once ended, seeking back before the threshold clears the
// flag again.
type EndDetector struct {
	threshold float64
	ended     bool
}

// NewEndDetector creates a detector that considers the video ended when
// the position is within threshold seconds of the duration.
func NewEndDetector(threshold float64) *EndDetector {
	return &EndDetector{threshold: threshold}
}

// Observe updates the ended flag from a position sample and reports the
// current value. A non-positive duration means the player has not reported
// one yet; the flag is left unchanged.
func (e *EndDetector) Observe(t, duration float64) bool {
	if duration <= 0 {
		return e.ended
	}
	e.ended = duration-t <= e.threshold
	return e.ended
}

// Ended returns the current flag without observing a new sample.
func (e *EndDetector) Ended() bool {
	return e.ended
}
