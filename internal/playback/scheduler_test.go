package playback

import "testing"

func testConfig() Config {
	cfg := DefaultConfig()
	return cfg
}

func testCheckpoints() []Checkpoint {
	return []Checkpoint{
		{ID: "cp-10", At: 10, Question: "Q1", Answer: "a"},
		{ID: "cp-30", At: 30, Question: "Q2", Answer: "b"},
	}
}

func TestScheduler_FiresWithinWindow(t *testing.T) {
	s := NewScheduler(testCheckpoints(), testConfig())

	if trig := s.OnTimeSample(9, false); trig != nil {
		t.Errorf("sample at 9 fired %q, want no trigger before timestamp", trig.CheckpointID)
	}
	trig := s.OnTimeSample(10.2, false)
	if trig == nil || trig.CheckpointID != "cp-10" {
		t.Fatalf("sample at 10.2 = %v, want trigger for cp-10", trig)
	}
	if s.State("cp-10") != StateFired {
		t.Errorf("state after trigger = %v, want StateFired", s.State("cp-10"))
	}
}

func TestScheduler_NeverFiresBeforeTimestamp(t *testing.T) {
	s := NewScheduler(testCheckpoints(), testConfig())

	for _, sample := range []float64{0, 5, 9.9} {
		if trig := s.OnTimeSample(sample, false); trig != nil {
			t.Errorf("sample at %.1f fired %q, want none", sample, trig.CheckpointID)
		}
	}
}

func TestScheduler_MissedAfterWindow(t *testing.T) {
	// Fast-forward past a checkpoint: once the position is out of the
	// window the checkpoint must not retroactively trigger.
	s := NewScheduler(testCheckpoints(), testConfig())

	if trig := s.OnTimeSample(15, false); trig != nil {
		t.Errorf("sample at 15 fired %q, want none (window for cp-10 is [10, 11.5))", trig.CheckpointID)
	}
	if s.State("cp-10") != StateArmed {
		t.Errorf("missed checkpoint state = %v, want StateArmed", s.State("cp-10"))
	}
}

func TestScheduler_OverlappingWindows(t *testing.T) {
	// Checkpoints at 10 and 12 with a 1.5s window: the sample sequence
	// [9, 10.2, 11, 12.5, 13] fires only the earlier checkpoint. Once it
	// is active (unresolved), later samples trigger nothing, so cp-12's
	// window passes unused. This drop behavior is deliberate.
	s := NewScheduler([]Checkpoint{
		{ID: "cp-10", At: 10},
		{ID: "cp-12", At: 12},
	}, testConfig())

	var fired []string
	active := false
	for _, sample := range []float64{9, 10.2, 11, 12.5, 13} {
		if trig := s.OnTimeSample(sample, active); trig != nil {
			fired = append(fired, trig.CheckpointID)
			active = true
		}
	}

	if len(fired) != 1 || fired[0] != "cp-10" {
		t.Errorf("fired = %v, want exactly [cp-10]", fired)
	}
	if s.State("cp-12") != StateArmed {
		t.Errorf("cp-12 state = %v, want StateArmed (never fired)", s.State("cp-12"))
	}
}

func TestScheduler_FiresAtMostOncePerDwell(t *testing.T) {
	s := NewScheduler(testCheckpoints(), testConfig())

	count := 0
	for _, sample := range []float64{10.1, 10.4, 10.8, 11.2} {
		if s.OnTimeSample(sample, false) != nil {
			count++
		}
	}
	if count != 1 {
		t.Errorf("fired %d times while dwelling in window, want 1", count)
	}
}

func TestScheduler_BackwardSeekRearms(t *testing.T) {
	s := NewScheduler(testCheckpoints(), testConfig())

	if trig := s.OnTimeSample(30.3, false); trig == nil || trig.CheckpointID != "cp-30" {
		t.Fatalf("expected cp-30 to fire at 30.3, got %v", trig)
	}
	if !s.Resolve("cp-30") {
		t.Fatal("resolve after fire should succeed")
	}

	// Seek far enough back (more than the 5s slack) to re-arm.
	s.OnTimeSample(20, false)
	if s.State("cp-30") != StateArmed {
		t.Fatalf("state after backward seek = %v, want StateArmed", s.State("cp-30"))
	}

	// Playing forward again asks the question again.
	trig := s.OnTimeSample(30.5, false)
	if trig == nil || trig.CheckpointID != "cp-30" {
		t.Errorf("expected cp-30 to fire again after re-arm, got %v", trig)
	}
}

func TestScheduler_NoRearmWhileActive(t *testing.T) {
	s := NewScheduler([]Checkpoint{{ID: "cp", At: 10}}, testConfig())

	if trig := s.OnTimeSample(10.2, false); trig == nil || trig.CheckpointID != "cp" {
		t.Fatalf("expected cp to fire at 10.2, got %v", trig)
	}

	// Backward seek past the slack with the checkpoint still unresolved.
	// Fired state must hold: re-arming here would turn Resolve and Skip
	// into permanent no-ops under an open modal.
	s.OnTimeSample(2, true)
	if s.State("cp") != StateFired {
		t.Fatalf("state after backward seek while active = %v, want StateFired", s.State("cp"))
	}
	if !s.Skip("cp") {
		t.Error("skip rejected after the backward seek")
	}

	// With the checkpoint resolved, the same position re-arms as usual.
	s.OnTimeSample(2, false)
	if s.State("cp") != StateArmed {
		t.Errorf("state after inactive backward seek = %v, want StateArmed", s.State("cp"))
	}
}

func TestScheduler_SmallBackwardJitterDoesNotRearm(t *testing.T) {
	s := NewScheduler(testCheckpoints(), testConfig())

	s.OnTimeSample(30.3, false)
	s.Resolve("cp-30")

	// 26 is within the 5s slack of the 30s timestamp.
	s.OnTimeSample(26, false)
	if s.State("cp-30") != StateCompleted {
		t.Errorf("state after jitter = %v, want StateCompleted (no re-arm)", s.State("cp-30"))
	}
}

func TestScheduler_AtMostOnceBetweenRearms(t *testing.T) {
	// Property: a checkpoint fires at most once between any two backward
	// seeks past its re-arm point.
	s := NewScheduler([]Checkpoint{{ID: "cp", At: 20}}, testConfig())

	samples := []float64{19, 20.5, 21, 21.4, 14, 20.2, 20.9, 21.3}
	var fires int
	for _, sample := range samples {
		if trig := s.OnTimeSample(sample, false); trig != nil {
			fires++
			s.Resolve(trig.CheckpointID)
		}
	}
	if fires != 2 {
		t.Errorf("fired %d times across one re-arm cycle, want 2", fires)
	}
}

func TestScheduler_ResolveRequiresFired(t *testing.T) {
	s := NewScheduler(testCheckpoints(), testConfig())

	if s.Resolve("cp-10") {
		t.Error("resolve on armed checkpoint should be a no-op")
	}
	if s.Skip("cp-10") {
		t.Error("skip on armed checkpoint should be a no-op")
	}

	s.OnTimeSample(10.2, false)
	if !s.Resolve("cp-10") {
		t.Error("resolve on fired checkpoint should succeed")
	}
	if s.Resolve("cp-10") {
		t.Error("second resolve should be a no-op")
	}
	if s.Skip("cp-10") {
		t.Error("skip after resolve should be a no-op")
	}
	if s.State("cp-10") != StateCompleted {
		t.Errorf("state = %v, want StateCompleted", s.State("cp-10"))
	}
}

func TestScheduler_NoFireWhileActive(t *testing.T) {
	s := NewScheduler(testCheckpoints(), testConfig())

	if trig := s.OnTimeSample(10.2, true); trig != nil {
		t.Errorf("fired %q while another checkpoint is active", trig.CheckpointID)
	}
}

func TestScheduler_MalformedTimestampNeverFires(t *testing.T) {
	s := NewScheduler([]Checkpoint{{ID: "bad", At: -3}}, testConfig())

	for _, sample := range []float64{-3, -2.5, 0, 1, 100} {
		if trig := s.OnTimeSample(sample, false); trig != nil {
			t.Errorf("malformed checkpoint fired at %.1f", sample)
		}
	}
}

func TestScheduler_SortsUnorderedInput(t *testing.T) {
	s := NewScheduler([]Checkpoint{
		{ID: "late", At: 50},
		{ID: "early", At: 5},
	}, testConfig())

	cps := s.Checkpoints()
	if cps[0].ID != "early" || cps[1].ID != "late" {
		t.Errorf("checkpoints not sorted ascending: %v, %v", cps[0].ID, cps[1].ID)
	}
}
