package playback

import (
	"testing"
	"time"
)

// hookRecorder captures every side effect the coordinator drives.
type hookRecorder struct {
	pauses      int
	resumes     int
	due         []string
	persisted   []float64
	resumeSeeks []float64
	ended       int
	unEnded     int
}

func (h *hookRecorder) hooks() Hooks {
	return Hooks{
		PausePlayer:         func() { h.pauses++ },
		ResumePlayer:        func() { h.resumes++ },
		CheckpointDue:       func(cp Checkpoint) { h.due = append(h.due, cp.ID) },
		PersistProgress:     func(s float64) { h.persisted = append(h.persisted, s) },
		ApplyResumeSeek:     func(s float64) { h.resumeSeeks = append(h.resumeSeeks, s) },
		VideoEnded:          func() { h.ended++ },
		VideoResumedPlaying: func() { h.unEnded++ },
	}
}

func newTestCoordinator(rec *hookRecorder, cps []Checkpoint) *Coordinator {
	cfg := DefaultConfig()
	return NewCoordinator("local", "vid-1", cps, 100, rec.hooks(), cfg)
}

func TestCoordinator_CheckpointFlow(t *testing.T) {
	rec := &hookRecorder{}
	c := newTestCoordinator(rec, []Checkpoint{
		{ID: "cp", At: 10, Question: "capital of France?", Answer: "paris"},
	})
	now := time.Now()

	c.OnTimeSample(9, now)
	if len(rec.due) != 0 {
		t.Fatal("checkpoint fired before its timestamp")
	}

	c.OnTimeSample(10.3, now.Add(time.Second))
	if rec.pauses != 1 || len(rec.due) != 1 || rec.due[0] != "cp" {
		t.Fatalf("expected pause + due for cp, got pauses=%d due=%v", rec.pauses, rec.due)
	}
	if c.State().ActiveCheckpointID != "cp" {
		t.Fatalf("active = %q, want cp", c.State().ActiveCheckpointID)
	}

	// Wrong answer keeps the checkpoint active.
	if c.SubmitAnswer("cp", "london") {
		t.Error("wrong answer accepted")
	}
	if c.State().ActiveCheckpointID != "cp" || rec.resumes != 0 {
		t.Error("wrong answer must not resume playback")
	}

	// Correct answer resolves and resumes.
	if !c.SubmitAnswer("cp", " Paris ") {
		t.Fatal("correct answer rejected")
	}
	st := c.State()
	if st.ActiveCheckpointID != "" || !st.Completed["cp"] || rec.resumes != 1 {
		t.Errorf("post-resolve state = %+v, resumes = %d", st, rec.resumes)
	}

	// Duplicate submission is a no-op.
	if c.SubmitAnswer("cp", "paris") {
		t.Error("duplicate submit accepted")
	}
	if rec.resumes != 1 {
		t.Errorf("duplicate submit resumed again: %d", rec.resumes)
	}
}

func TestCoordinator_SkipFlow(t *testing.T) {
	rec := &hookRecorder{}
	c := newTestCoordinator(rec, []Checkpoint{{ID: "cp", At: 5, Answer: "x"}})
	now := time.Now()

	c.OnTimeSample(5.2, now)
	if !c.SkipCheckpoint("cp") {
		t.Fatal("skip on fired checkpoint failed")
	}
	st := c.State()
	if st.ActiveCheckpointID != "" || !st.Skipped["cp"] || st.Completed["cp"] {
		t.Errorf("post-skip state = %+v", st)
	}
	if c.SkipCheckpoint("cp") {
		t.Error("second skip accepted")
	}
}

func TestCoordinator_BackwardSeekUnderOpenModal(t *testing.T) {
	rec := &hookRecorder{}
	c := newTestCoordinator(rec, []Checkpoint{
		{ID: "cp", At: 10, Question: "capital of France?", Answer: "paris"},
	})
	now := time.Now()

	c.OnTimeSample(10.2, now)
	if c.State().ActiveCheckpointID != "cp" {
		t.Fatalf("active = %q, want cp", c.State().ActiveCheckpointID)
	}

	// The learner seeks backward in the player window while the modal is
	// up. The checkpoint must stay fired and answerable.
	c.OnTimeSample(2, now.Add(time.Second))
	if c.State().ActiveCheckpointID != "cp" {
		t.Fatalf("active after backward seek = %q, want cp", c.State().ActiveCheckpointID)
	}
	if c.sched.State("cp") != StateFired {
		t.Fatalf("state after backward seek = %v, want StateFired", c.sched.State("cp"))
	}

	if !c.SkipCheckpoint("cp") {
		t.Fatal("skip rejected after the backward seek")
	}
	st := c.State()
	if st.ActiveCheckpointID != "" || rec.resumes != 1 {
		t.Errorf("post-skip: active=%q resumes=%d, want cleared and 1", st.ActiveCheckpointID, rec.resumes)
	}
}

func TestCoordinator_LateResumeLoadIgnored(t *testing.T) {
	rec := &hookRecorder{}
	c := newTestCoordinator(rec, nil)
	start := time.Now()

	c.OnPlayerReady(start)
	c.OnTimeSample(1, start.Add(2*time.Second))
	c.OnTimeSample(2, start.Add(3*time.Second))

	// A slow store fetch delivers the saved position after playback is
	// already live. It must not seek the learner backward.
	c.SetSavedPosition(42)

	c.OnTimeSample(3, start.Add(4*time.Second))
	if len(rec.resumeSeeks) != 0 {
		t.Fatalf("late saved position issued a seek: %v", rec.resumeSeeks)
	}
}

func TestCoordinator_ResumeSeekAfterSettle(t *testing.T) {
	rec := &hookRecorder{}
	c := newTestCoordinator(rec, nil)
	start := time.Now()

	c.SetSavedPosition(42)
	c.OnPlayerReady(start)

	// Before the settle delay elapses, no seek.
	c.OnTimeSample(0.5, start.Add(200*time.Millisecond))
	if len(rec.resumeSeeks) != 0 {
		t.Fatal("seek issued before settle delay")
	}

	c.OnTimeSample(1, start.Add(1100*time.Millisecond))
	if len(rec.resumeSeeks) != 1 || rec.resumeSeeks[0] != 42 {
		t.Fatalf("resumeSeeks = %v, want [42]", rec.resumeSeeks)
	}

	// Never again.
	c.OnTimeSample(42.5, start.Add(2*time.Second))
	if len(rec.resumeSeeks) != 1 {
		t.Error("resume seek repeated")
	}
}

func TestCoordinator_ResumeSampleDoesNotTrigger(t *testing.T) {
	// The sample that issues the resume seek carries a pre-seek position;
	// it must not fire checkpoints or persist progress.
	rec := &hookRecorder{}
	c := newTestCoordinator(rec, []Checkpoint{{ID: "cp", At: 1, Answer: "x"}})
	start := time.Now()

	c.SetSavedPosition(42)
	c.OnPlayerReady(start)
	c.OnTimeSample(1.2, start.Add(2*time.Second))

	if len(rec.due) != 0 {
		t.Error("checkpoint fired on the resume sample")
	}
	if len(rec.resumeSeeks) != 1 {
		t.Error("resume seek not issued")
	}
}

func TestCoordinator_FreshSessionNeverSeeks(t *testing.T) {
	rec := &hookRecorder{}
	c := newTestCoordinator(rec, nil)
	start := time.Now()

	c.OnPlayerReady(start)
	for i := 1; i <= 5; i++ {
		c.OnTimeSample(float64(i), start.Add(time.Duration(i)*time.Second))
	}
	if len(rec.resumeSeeks) != 0 {
		t.Errorf("fresh session issued resume seek: %v", rec.resumeSeeks)
	}
}

func TestCoordinator_ProgressPersistence(t *testing.T) {
	rec := &hookRecorder{}
	c := newTestCoordinator(rec, nil)
	start := time.Now()

	for i := 1; i <= 25; i++ {
		c.OnTimeSample(float64(i), start.Add(time.Duration(i)*time.Second))
	}
	if len(rec.persisted) != 2 {
		t.Fatalf("persisted %d times over 25s, want 2: %v", len(rec.persisted), rec.persisted)
	}
	if rec.persisted[1] <= rec.persisted[0] {
		t.Errorf("persisted positions not increasing: %v", rec.persisted)
	}
}

func TestCoordinator_EndTransitions(t *testing.T) {
	rec := &hookRecorder{}
	c := newTestCoordinator(rec, nil) // duration 100, threshold 2
	now := time.Now()

	c.OnTimeSample(50, now)
	c.OnTimeSample(99, now.Add(time.Second))
	if rec.ended != 1 {
		t.Fatalf("ended hooks = %d, want 1", rec.ended)
	}
	if !c.State().VideoEnded {
		t.Fatal("state not marked ended")
	}

	// Backward seek clears the flag exactly once.
	c.OnTimeSample(95, now.Add(2*time.Second))
	c.OnTimeSample(94, now.Add(3*time.Second))
	if rec.unEnded != 1 {
		t.Errorf("resumed-playing hooks = %d, want 1", rec.unEnded)
	}
}

func TestCoordinator_CloseDropsWork(t *testing.T) {
	rec := &hookRecorder{}
	c := newTestCoordinator(rec, []Checkpoint{{ID: "cp", At: 1, Answer: "x"}})
	now := time.Now()

	c.Close()
	c.OnTimeSample(1.2, now)
	c.SetSavedPosition(10)

	if len(rec.due) != 0 || len(rec.persisted) != 0 {
		t.Error("closed coordinator still produced effects")
	}
}

func TestCoordinator_StateIsACopy(t *testing.T) {
	rec := &hookRecorder{}
	c := newTestCoordinator(rec, []Checkpoint{{ID: "cp", At: 1, Answer: "x"}})

	st := c.State()
	st.Completed["cp"] = true
	if c.State().Completed["cp"] {
		t.Error("mutating the returned state leaked into the coordinator")
	}
}
