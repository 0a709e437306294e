package playback

import "time"

// Hooks are the side effects the coordinator drives. All are optional; a
// nil hook is skipped. Hooks run synchronously on the sample path, so they
// should hand anything slow (persistence writes) off to a goroutine.
type Hooks struct {
	PausePlayer         func()
	ResumePlayer        func()
	CheckpointDue       func(cp Checkpoint)
	PersistProgress     func(seconds float64)
	ApplyResumeSeek     func(seconds float64)
	VideoEnded          func()
	VideoResumedPlaying func()
}

// SessionState is the mutable per-session state, owned exclusively by the
// coordinator. The scheduler and throttler return decisions; only the
// coordinator applies them here.
type SessionState struct {
	// ActiveCheckpointID is non-empty iff the player is expected to be
	// paused for a checkpoint. At most one checkpoint is active at a time.
	ActiveCheckpointID string

	// Completed holds the IDs of checkpoints answered this session.
	Completed map[string]bool

	// Skipped holds the IDs of checkpoints dismissed unanswered.
	Skipped map[string]bool

	// VideoEnded reports whether playback has reached the end threshold.
	VideoEnded bool

	// LastKnownTime is the most recent position sample.
	LastKnownTime float64
}

// Coordinator is the engine façade: it routes each time sample through the
// scheduler, throttler and end detector, applies their decisions to the
// session state, and invokes the side-effect hooks. It is driven from a
// single callback context and performs no internal locking.
type Coordinator struct {
	cfg   Config
	sched *Scheduler
	th    *Throttler
	end   *EndDetector
	guard ResumeGuard
	hooks Hooks

	state SessionState

	userID  string
	videoID string

	duration    float64
	playerReady bool
	readyAt     time.Time
	closed      bool
}

// NewCoordinator creates the engine for one watch session.
func NewCoordinator(userID, videoID string, checkpoints []Checkpoint, duration float64, hooks Hooks, cfg Config) *Coordinator {
	return &Coordinator{
		cfg:      cfg,
		sched:    NewScheduler(checkpoints, cfg),
		th:       NewThrottler(cfg.PersistInterval),
		end:      NewEndDetector(cfg.EndThreshold),
		hooks:    hooks,
		userID:   userID,
		videoID:  videoID,
		duration: duration,
		state: SessionState{
			Completed: make(map[string]bool),
			Skipped:   make(map[string]bool),
		},
	}
}

// OnPlayerReady records the player's one-time ready signal. The resume
// seek, if any, is issued from a later sample once the settle delay has
// elapsed.
func (c *Coordinator) OnPlayerReady(now time.Time) {
	if c.playerReady {
		return
	}
	c.playerReady = true
	c.readyAt = now
}

// SetSavedPosition feeds the resume position fetched from the store. Safe
// to call with zero (no saved progress) or after teardown. A load that
// arrives after the player is ready is dropped: playback is live by then,
// and seeking would yank the learner backward mid-watch.
func (c *Coordinator) SetSavedPosition(seconds float64) {
	if c.closed || c.playerReady {
		return
	}
	c.guard.SetSavedPosition(seconds)
}

// SetDuration updates the video duration once the player reports it.
func (c *Coordinator) SetDuration(seconds float64) {
	if seconds > 0 {
		c.duration = seconds
	}
}

// OnTimeSample processes one position sample at wall-clock now. This is
// the engine's single decision step: resume application, checkpoint
// triggering, progress throttling and end detection all happen here, in
// that order.
func (c *Coordinator) OnTimeSample(t float64, now time.Time) {
	if c.closed {
		return
	}
	c.state.LastKnownTime = t

	// Resume takes priority: once the seek is issued the player's position
	// is about to jump, so this sample's value must not drive triggers.
	if c.resumeDue(now) {
		if pos, ok := c.guard.MaybeResume(true); ok {
			if c.hooks.ApplyResumeSeek != nil {
				c.hooks.ApplyResumeSeek(pos)
			}
			return
		}
	}

	if trigger := c.sched.OnTimeSample(t, c.state.ActiveCheckpointID != ""); trigger != nil {
		cp, _ := c.sched.Lookup(trigger.CheckpointID)
		c.state.ActiveCheckpointID = trigger.CheckpointID
		if c.hooks.PausePlayer != nil {
			c.hooks.PausePlayer()
		}
		if c.hooks.CheckpointDue != nil {
			c.hooks.CheckpointDue(cp)
		}
	}

	if c.th.OnTimeSample(t, now, c.userID != "" && c.videoID != "") {
		if c.hooks.PersistProgress != nil {
			c.hooks.PersistProgress(t)
		}
	}

	c.observeEnd(t)
}

// resumeDue reports whether the settle delay after player-ready has passed.
func (c *Coordinator) resumeDue(now time.Time) bool {
	return c.playerReady && !now.Before(c.readyAt.Add(c.cfg.ResumeSettleDelay))
}

// observeEnd runs end detection and fires the transition hooks.
func (c *Coordinator) observeEnd(t float64) {
	was := c.state.VideoEnded
	c.state.VideoEnded = c.end.Observe(t, c.duration)
	switch {
	case !was && c.state.VideoEnded:
		if c.hooks.VideoEnded != nil {
			c.hooks.VideoEnded()
		}
	case was && !c.state.VideoEnded:
		if c.hooks.VideoResumedPlaying != nil {
			c.hooks.VideoResumedPlaying()
		}
	}
}

// SubmitAnswer validates the learner's answer for a fired checkpoint.
// A correct answer resolves the checkpoint and resumes playback; an
// incorrect one leaves the checkpoint active so the learner can retry or
// skip. Submissions for a checkpoint that is not currently fired are
// no-ops (duplicate UI events).
func (c *Coordinator) SubmitAnswer(id, answer string) bool {
	cp, ok := c.sched.Lookup(id)
	if !ok || c.sched.State(id) != StateFired {
		return false
	}
	if !CheckAnswer(answer, cp) {
		return false
	}
	if c.sched.Resolve(id) {
		c.state.Completed[id] = true
		c.deactivate(id)
	}
	return true
}

// SkipCheckpoint dismisses a fired checkpoint unanswered and resumes
// playback. No-op when the checkpoint is not fired.
func (c *Coordinator) SkipCheckpoint(id string) bool {
	if !c.sched.Skip(id) {
		return false
	}
	c.state.Skipped[id] = true
	c.deactivate(id)
	return true
}

func (c *Coordinator) deactivate(id string) {
	if c.state.ActiveCheckpointID == id {
		c.state.ActiveCheckpointID = ""
		if c.hooks.ResumePlayer != nil {
			c.hooks.ResumePlayer()
		}
	}
}

// State returns a copy of the session state.
func (c *Coordinator) State() SessionState {
	st := c.state
	st.Completed = copySet(c.state.Completed)
	st.Skipped = copySet(c.state.Skipped)
	return st
}

// Scheduler exposes checkpoint lifecycle state for UI rendering (timeline
// markers).
func (c *Coordinator) Scheduler() *Scheduler {
	return c.sched
}

// Close tears the session down. Samples and actions arriving afterwards
// are dropped; in-flight persistence completions are the caller's to
// abandon.
func (c *Coordinator) Close() {
	c.closed = true
}

// Closed reports whether the session has been torn down.
func (c *Coordinator) Closed() bool {
	return c.closed
}

func copySet(m map[string]bool) map[string]bool {
	out := make(map[string]bool, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
