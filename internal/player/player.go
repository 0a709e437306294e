// Package player wraps the external video player behind a narrow control
// interface. The engine only ever sees positions, the ready signal and the
// pause/play/seek verbs; everything else about the player is its own
// business.
package player

// Player is the control surface the engine consumes.
type Player interface {
	// CurrentTime returns the playback position in seconds.
	CurrentTime() (float64, error)

	// Duration returns the media duration in seconds, or 0 if the player
	// has not determined it yet.
	Duration() (float64, error)

	// Pause halts playback, keeping the position.
	Pause() error

	// Play resumes playback.
	Play() error

	// SeekTo jumps to an absolute position in seconds.
	SeekTo(seconds float64) error

	// Ready returns a channel closed once after the player has loaded the
	// media and is able to report positions and accept seeks.
	Ready() <-chan struct{}

	// Close tears the player down. Further calls return errors.
	Close() error
}
