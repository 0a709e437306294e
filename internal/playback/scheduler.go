package playback

import "sort"

// Trigger is the scheduler's decision that a checkpoint is due. The
// coordinator translates it into pause-player and show-checkpoint effects.
type Trigger struct {
	CheckpointID string
}

// Scheduler decides when checkpoints fire. It consumes time samples and
// maintains per-checkpoint lifecycle state; it never touches the player or
// the store directly.
type Scheduler struct {
	checkpoints []Checkpoint // ascending by At
	states      map[string]CheckpointState

	// lastFiredID guards against re-firing the same checkpoint while the
	// position dwells inside its trigger window. Cleared on backward-seek
	// re-arm.
	lastFiredID string

	cfg Config
}

// NewScheduler creates a scheduler over the video's checkpoint set. The
// input order does not matter; checkpoints are processed in ascending
// timestamp order. All checkpoints start Armed.
func NewScheduler(checkpoints []Checkpoint, cfg Config) *Scheduler {
	cps := make([]Checkpoint, len(checkpoints))
	copy(cps, checkpoints)
	sort.SliceStable(cps, func(i, j int) bool { return cps[i].At < cps[j].At })

	states := make(map[string]CheckpointState, len(cps))
	for _, cp := range cps {
		states[cp.ID] = StateArmed
	}

	return &Scheduler{
		checkpoints: cps,
		states:      states,
		cfg:         cfg,
	}
}

// OnTimeSample processes one position sample. It returns a Trigger when a
// checkpoint fires, nil otherwise. At most one checkpoint fires per sample;
// when two windows overlap the earlier-timestamped checkpoint wins and the
// later one must wait for its own window.
//
// active reports whether a checkpoint is currently showing — no new
// checkpoint fires while one is unresolved.
func (s *Scheduler) OnTimeSample(t float64, active bool) *Trigger {
	var trigger *Trigger

	if !active {
		for _, cp := range s.checkpoints {
			if cp.At < 0 {
				continue // malformed, unreachable
			}
			if t < cp.At || t >= cp.At+s.cfg.TriggerWindow {
				continue
			}
			if s.states[cp.ID] != StateArmed {
				continue
			}
			if cp.ID == s.lastFiredID {
				continue
			}
			s.states[cp.ID] = StateFired
			s.lastFiredID = cp.ID
			trigger = &Trigger{CheckpointID: cp.ID}
			break
		}
	}

	// Re-arm never runs while a checkpoint is showing: the learner can
	// seek freely in the player window with the modal up, and resetting
	// the active checkpoint to Armed would make Resolve and Skip no-ops —
	// the modal could never be dismissed.
	if !active {
		s.maybeRearm(t)
	}
	return trigger
}

// maybeRearm resets the most recently fired checkpoint to Armed when the
// position has moved well before its timestamp, so a learner who seeks
// backward across a checkpoint is asked again. The slack keeps small
// negative jitter from re-arming.
func (s *Scheduler) maybeRearm(t float64) {
	if s.lastFiredID == "" {
		return
	}
	cp, ok := s.lookup(s.lastFiredID)
	if !ok {
		s.lastFiredID = ""
		return
	}
	if t < cp.At-s.cfg.RearmSlack {
		s.states[cp.ID] = StateArmed
		s.lastFiredID = ""
	}
}

// Resolve marks a fired checkpoint completed. Calling it on a checkpoint
// that is not in Fired state is a no-op, which absorbs duplicate submit
// events from the UI. Returns true if the transition happened.
func (s *Scheduler) Resolve(id string) bool {
	if s.states[id] != StateFired {
		return false
	}
	s.states[id] = StateCompleted
	return true
}

// Skip marks a fired checkpoint skipped. Same idempotency rule as Resolve.
func (s *Scheduler) Skip(id string) bool {
	if s.states[id] != StateFired {
		return false
	}
	s.states[id] = StateSkipped
	return true
}

// State returns the lifecycle state of a checkpoint.
func (s *Scheduler) State(id string) CheckpointState {
	return s.states[id]
}

// Checkpoints returns the checkpoint set in ascending timestamp order.
func (s *Scheduler) Checkpoints() []Checkpoint {
	return s.checkpoints
}

// Lookup returns the checkpoint with the given ID.
func (s *Scheduler) Lookup(id string) (Checkpoint, bool) {
	return s.lookup(id)
}

func (s *Scheduler) lookup(id string) (Checkpoint, bool) {
	for _, cp := range s.checkpoints {
		if cp.ID == id {
			return cp, true
		}
	}
	return Checkpoint{}, false
}
