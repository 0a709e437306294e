package playback

// ResumeGuard enforces the apply-saved-position-exactly-once invariant. A
// saved position loaded at session start must be applied after the player
// signals ready, and never again, regardless of how many ready or sample
// callbacks follow.
type ResumeGuard struct {
	savedPosition float64
	hasSaved      bool
	hasResumed    bool
}

// SetSavedPosition records the position fetched from the store at session
// start. Positions at or below zero are ignored: a fresh session has
// nothing to resume.
func (g *ResumeGuard) SetSavedPosition(seconds float64) {
	if g.hasResumed || seconds <= 0 {
		return
	}
	g.savedPosition = seconds
	g.hasSaved = true
}

// MaybeResume reports whether the resume seek should be issued now, and to
// what position. Returns true at most once per session, and only when the
// player is ready and a saved position was loaded beforehand.
func (g *ResumeGuard) MaybeResume(playerReady bool) (float64, bool) {
	if g.hasResumed || !g.hasSaved || !playerReady {
		return 0, false
	}
	g.hasResumed = true
	return g.savedPosition, true
}

// Resumed reports whether the one-shot has fired.
func (g *ResumeGuard) Resumed() bool {
	return g.hasResumed
}
