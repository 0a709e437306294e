package player

import "sync"

// Scripted is a deterministic in-process player used by tests and by
// --no-player runs. It advances its position only when told to, honors
// pause and seek, and signals ready immediately on Start.
type Scripted struct {
	mu       sync.Mutex
	pos      float64
	duration float64
	playing  bool
	closed   bool

	readyOnce sync.Once
	ready     chan struct{}
}

// NewScripted creates a scripted player for media of the given duration.
func NewScripted(duration float64) *Scripted {
	return &Scripted{
		duration: duration,
		ready:    make(chan struct{}),
	}
}

// Start marks the media loaded and begins playback.
func (s *Scripted) Start() {
	s.mu.Lock()
	s.playing = true
	s.mu.Unlock()
	s.readyOnce.Do(func() { close(s.ready) })
}

// Advance moves the position forward by d seconds if playing, clamped to
// the duration. Tests and the demo ticker drive time through here.
func (s *Scripted) Advance(d float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.playing || s.closed {
		return
	}
	s.pos += d
	if s.pos > s.duration {
		s.pos = s.duration
	}
}

func (s *Scripted) CurrentTime() (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return 0, ErrClosed
	}
	return s.pos, nil
}

func (s *Scripted) Duration() (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.duration, nil
}

func (s *Scripted) Pause() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	s.playing = false
	return nil
}

func (s *Scripted) Play() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	s.playing = true
	return nil
}

func (s *Scripted) SeekTo(seconds float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	if seconds < 0 {
		seconds = 0
	}
	if seconds > s.duration {
		seconds = s.duration
	}
	s.pos = seconds
	return nil
}

// Playing reports whether the scripted player is advancing.
func (s *Scripted) Playing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.playing
}

func (s *Scripted) Ready() <-chan struct{} {
	return s.ready
}

func (s *Scripted) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}
