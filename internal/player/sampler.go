package player

import "time"

// Sampler polls the player's position on a coarse cadence and forwards
// each sample to the engine. It is deliberately thin: a failed poll yields
// no sample for that tick (the player may be between files or gone), and
// the engine simply sees nothing.
type Sampler struct {
	player   Player
	onSample func(t float64, now time.Time)
	readyFwd func(now time.Time)

	signaledReady bool
}

// NewSampler wires a player to the engine's sample and ready callbacks.
func NewSampler(p Player, onSample func(t float64, now time.Time), onReady func(now time.Time)) *Sampler {
	return &Sampler{player: p, onSample: onSample, readyFwd: onReady}
}

// Tick performs one sampling step: forward the ready signal if it has
// arrived, then poll and forward the position. The caller owns the cadence
// (a ticker or the UI's tick message).
func (s *Sampler) Tick(now time.Time) {
	if !s.signaledReady {
		select {
		case <-s.player.Ready():
			s.signaledReady = true
			if s.readyFwd != nil {
				s.readyFwd(now)
			}
		default:
			return // not ready yet, nothing to sample
		}
	}

	t, err := s.player.CurrentTime()
	if err != nil {
		return
	}
	s.onSample(t, now)
}
