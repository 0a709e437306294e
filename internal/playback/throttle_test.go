package playback

import (
	"testing"
	"time"
)

func TestThrottler_IntervalSpacing(t *testing.T) {
	// Wall-clock ticks every 1s for 25s with a 10s interval: the first
	// tick establishes the baseline, then writes happen at ~10s and ~20s.
	th := NewThrottler(10 * time.Second)
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	var persisted []float64
	for i := 1; i <= 25; i++ {
		now := start.Add(time.Duration(i) * time.Second)
		pos := float64(i)
		if th.OnTimeSample(pos, now, true) {
			persisted = append(persisted, pos)
		}
	}

	if len(persisted) != 2 {
		t.Fatalf("persisted %d times over 25s, want 2: %v", len(persisted), persisted)
	}
	if persisted[1] <= persisted[0] {
		t.Errorf("positions not increasing: %v", persisted)
	}
}

func TestThrottler_RequiresIdentity(t *testing.T) {
	th := NewThrottler(time.Second)
	now := time.Now()

	if th.OnTimeSample(5, now, false) {
		t.Error("persisted without identity")
	}
	// An identity-less tick must not consume the baseline either.
	if th.OnTimeSample(5, now, true) {
		t.Error("first identified tick should only establish the baseline")
	}
	if !th.OnTimeSample(6, now.Add(2*time.Second), true) {
		t.Error("expected persist after interval elapsed")
	}
}

func TestThrottler_ZeroPositionNeverPersists(t *testing.T) {
	th := NewThrottler(time.Second)
	now := time.Now()

	for i := 0; i < 5; i++ {
		if th.OnTimeSample(0, now.Add(time.Duration(i)*time.Hour), true) {
			t.Fatal("persisted at position 0")
		}
	}
}

func TestThrottler_OptimisticStamp(t *testing.T) {
	// The timestamp advances when the decision is made, not when a write
	// completes, so a slow write cannot cause overlapping writes.
	th := NewThrottler(10 * time.Second)
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	th.OnTimeSample(1, start, true) // baseline
	if !th.OnTimeSample(11, start.Add(10*time.Second), true) {
		t.Fatal("expected persist at interval boundary")
	}
	// Immediately after, even though no write has "completed".
	if th.OnTimeSample(12, start.Add(11*time.Second), true) {
		t.Error("persisted again within the interval")
	}
}

func TestEndDetector_Hysteresis(t *testing.T) {
	e := NewEndDetector(2)
	const duration = 100

	if e.Observe(50, duration) {
		t.Error("ended at mid-video")
	}
	if !e.Observe(99, duration) {
		t.Error("not ended at duration-1")
	}
	// Seeking back past the threshold clears the flag.
	if e.Observe(95, duration) {
		t.Error("still ended after seeking back to duration-5")
	}
	if !e.Observe(98.5, duration) {
		t.Error("not ended after returning inside the threshold")
	}
}

func TestEndDetector_UnknownDuration(t *testing.T) {
	e := NewEndDetector(2)

	if e.Observe(500, 0) {
		t.Error("ended with unknown duration")
	}
	e.Observe(99, 100)
	if !e.Observe(99, 0) {
		t.Error("flag should hold while duration is unknown")
	}
}
