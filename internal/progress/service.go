// Package progress bridges the playback engine to the progress store: one
// resume fetch at session start, throttled best-effort writes during
// playback, and a completion mark when the video ends.
package progress

import (
	"context"
	"sync"
	"time"

	"github.com/rmehra/retain/internal/store"
)

// writeTimeout bounds a single persistence write. A write that exceeds it
// is abandoned; the next interval tick supersedes it.
const writeTimeout = 5 * time.Second

// Service performs progress persistence for one user.
type Service struct {
	repo   store.ProgressRepo
	userID string

	mu sync.Mutex
	// onPersisted, when set, is called after a successful async write.
	// Guarded by mu: registration happens on the UI path while writer
	// goroutines read it.
	onPersisted func(videoID string, seconds float64)
	closed      bool

	wg sync.WaitGroup
}

// NewService creates a progress service for the given local profile.
func NewService(repo store.ProgressRepo, userID string) *Service {
	return &Service{repo: repo, userID: userID}
}

// OnPersisted registers a callback invoked after each successful write.
// The watch screen uses it to show when progress last hit the store.
func (s *Service) OnPersisted(fn func(videoID string, seconds float64)) {
	s.mu.Lock()
	s.onPersisted = fn
	s.mu.Unlock()
}

// LoadResume fetches the saved position for a video, once, at session
// start. A missing row or a fetch failure both yield (0, false): the
// session simply starts fresh.
func (s *Service) LoadResume(ctx context.Context, videoID string) (float64, bool) {
	p, err := s.repo.Get(ctx, s.userID, videoID)
	if err != nil || p == nil {
		return 0, false
	}
	return p.PositionSecs, p.PositionSecs > 0
}

// SaveAsync writes the position without blocking the caller. Failures are
// dropped: progress writes are last-write-wins and the next interval tick
// carries a fresher value. Writes started before Close finish on their
// own; their results are not awaited past teardown.
func (s *Service) SaveAsync(videoID string, seconds float64) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.wg.Add(1)
	s.mu.Unlock()

	go func() {
		defer s.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		defer cancel()
		if err := s.repo.Upsert(ctx, s.userID, videoID, seconds); err != nil {
			return
		}
		s.mu.Lock()
		fn := s.onPersisted
		dropped := s.closed
		s.mu.Unlock()
		if !dropped && fn != nil {
			fn(videoID, seconds)
		}
	}()
}

// MarkCompleted flags a video as watched to the end. Synchronous: it runs
// off the sample path (video-end transition, not every tick).
func (s *Service) MarkCompleted(ctx context.Context, videoID string) error {
	return s.repo.MarkCompleted(ctx, s.userID, videoID)
}

// All returns every progress row for the user, most recent first.
func (s *Service) All(ctx context.Context) ([]store.Progress, error) {
	return s.repo.All(ctx, s.userID)
}

// Close stops new writes and drops completion callbacks from in-flight
// ones. It does not wait for them.
func (s *Service) Close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
}

// Wait blocks until in-flight writes finish. Tests use it; teardown does
// not.
func (s *Service) Wait() {
	s.wg.Wait()
}
