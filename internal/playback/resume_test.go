package playback

import "testing"

func TestResumeGuard_FiresExactlyOnce(t *testing.T) {
	var g ResumeGuard
	g.SetSavedPosition(42.5)

	pos, ok := g.MaybeResume(true)
	if !ok || pos != 42.5 {
		t.Fatalf("MaybeResume = (%v, %v), want (42.5, true)", pos, ok)
	}

	for i := 0; i < 5; i++ {
		if _, ok := g.MaybeResume(true); ok {
			t.Fatal("resume fired a second time")
		}
	}
}

func TestResumeGuard_WaitsForPlayerReady(t *testing.T) {
	var g ResumeGuard
	g.SetSavedPosition(30)

	if _, ok := g.MaybeResume(false); ok {
		t.Fatal("resumed before player ready")
	}
	if _, ok := g.MaybeResume(true); !ok {
		t.Fatal("expected resume once player is ready")
	}
}

func TestResumeGuard_NoSavedPosition(t *testing.T) {
	var g ResumeGuard

	if _, ok := g.MaybeResume(true); ok {
		t.Error("resumed a fresh session with nothing saved")
	}
	if g.Resumed() {
		t.Error("guard marked resumed without firing")
	}
}

func TestResumeGuard_IgnoresZeroAndLatePositions(t *testing.T) {
	var g ResumeGuard
	g.SetSavedPosition(0)
	if _, ok := g.MaybeResume(true); ok {
		t.Error("resumed to position 0")
	}

	g.SetSavedPosition(15)
	g.MaybeResume(true)
	// A position arriving after the one-shot fired must not re-enable it.
	g.SetSavedPosition(99)
	if _, ok := g.MaybeResume(true); ok {
		t.Error("late saved position re-armed the guard")
	}
}
