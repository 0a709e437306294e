package player

import (
	"testing"
	"time"
)

func TestScripted_AdvanceAndPause(t *testing.T) {
	p := NewScripted(60)
	p.Start()

	p.Advance(5)
	if pos, _ := p.CurrentTime(); pos != 5 {
		t.Errorf("pos = %v, want 5", pos)
	}

	p.Pause()
	p.Advance(5)
	if pos, _ := p.CurrentTime(); pos != 5 {
		t.Errorf("pos advanced while paused: %v", pos)
	}

	p.Play()
	p.Advance(100)
	if pos, _ := p.CurrentTime(); pos != 60 {
		t.Errorf("pos = %v, want clamped to duration 60", pos)
	}
}

func TestScripted_Seek(t *testing.T) {
	p := NewScripted(60)
	p.Start()

	if err := p.SeekTo(30); err != nil {
		t.Fatal(err)
	}
	if pos, _ := p.CurrentTime(); pos != 30 {
		t.Errorf("pos = %v, want 30", pos)
	}

	p.SeekTo(-5)
	if pos, _ := p.CurrentTime(); pos != 0 {
		t.Errorf("negative seek: pos = %v, want 0", pos)
	}
}

func TestScripted_ReadySignal(t *testing.T) {
	p := NewScripted(60)

	select {
	case <-p.Ready():
		t.Fatal("ready before Start")
	default:
	}

	p.Start()
	select {
	case <-p.Ready():
	default:
		t.Fatal("not ready after Start")
	}
}

func TestSampler_WaitsForReady(t *testing.T) {
	p := NewScripted(60)

	var samples []float64
	var readyAt []time.Time
	s := NewSampler(p,
		func(pos float64, _ time.Time) { samples = append(samples, pos) },
		func(now time.Time) { readyAt = append(readyAt, now) },
	)

	now := time.Now()
	s.Tick(now)
	if len(samples) != 0 || len(readyAt) != 0 {
		t.Fatal("sampler produced output before the player was ready")
	}

	p.Start()
	p.Advance(3)
	s.Tick(now.Add(time.Second))
	s.Tick(now.Add(2 * time.Second))

	if len(readyAt) != 1 {
		t.Errorf("ready forwarded %d times, want 1", len(readyAt))
	}
	if len(samples) != 2 || samples[0] != 3 {
		t.Errorf("samples = %v, want two samples at pos 3", samples)
	}
}

func TestSampler_ClosedPlayerYieldsNoSamples(t *testing.T) {
	p := NewScripted(60)
	p.Start()

	var samples []float64
	s := NewSampler(p, func(pos float64, _ time.Time) { samples = append(samples, pos) }, nil)

	p.Close()
	s.Tick(time.Now())
	if len(samples) != 0 {
		t.Errorf("samples from closed player: %v", samples)
	}
}
