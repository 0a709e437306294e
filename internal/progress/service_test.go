package progress

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/rmehra/retain/internal/store"
)

// fakeProgressRepo is an in-memory ProgressRepo for tests.
type fakeProgressRepo struct {
	mu      sync.Mutex
	rows    map[string]*store.Progress // keyed by userID/videoID
	failPut bool
	puts    int
}

func newFakeProgressRepo() *fakeProgressRepo {
	return &fakeProgressRepo{rows: make(map[string]*store.Progress)}
}

func (f *fakeProgressRepo) key(u, v string) string { return u + "/" + v }

func (f *fakeProgressRepo) Get(_ context.Context, u, v string) (*store.Progress, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.rows[f.key(u, v)]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProgressRepo) Upsert(_ context.Context, u, v string, pos float64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.puts++
	if f.failPut {
		return errors.New("disk full")
	}
	p := f.rows[f.key(u, v)]
	if p == nil {
		p = &store.Progress{UserID: u, VideoID: v}
		f.rows[f.key(u, v)] = p
	}
	p.PositionSecs = pos
	return nil
}

func (f *fakeProgressRepo) MarkCompleted(_ context.Context, u, v string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	p := f.rows[f.key(u, v)]
	if p == nil {
		p = &store.Progress{UserID: u, VideoID: v}
		f.rows[f.key(u, v)] = p
	}
	p.Completed = true
	return nil
}

func (f *fakeProgressRepo) All(_ context.Context, u string) ([]store.Progress, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []store.Progress
	for _, p := range f.rows {
		if p.UserID == u {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeProgressRepo) DeleteAll(_ context.Context, u string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int
	for k, p := range f.rows {
		if p.UserID == u {
			delete(f.rows, k)
			n++
		}
	}
	return n, nil
}

func TestLoadResume(t *testing.T) {
	repo := newFakeProgressRepo()
	svc := NewService(repo, "local")
	ctx := context.Background()

	if pos, ok := svc.LoadResume(ctx, "vid-1"); ok || pos != 0 {
		t.Errorf("fresh video resume = (%v, %v), want (0, false)", pos, ok)
	}

	repo.Upsert(ctx, "local", "vid-1", 73.5)
	if pos, ok := svc.LoadResume(ctx, "vid-1"); !ok || pos != 73.5 {
		t.Errorf("resume = (%v, %v), want (73.5, true)", pos, ok)
	}
}

func TestSaveAsync_WritesAndNotifies(t *testing.T) {
	repo := newFakeProgressRepo()
	svc := NewService(repo, "local")

	var notified []float64
	var mu sync.Mutex
	svc.OnPersisted(func(_ string, s float64) {
		mu.Lock()
		notified = append(notified, s)
		mu.Unlock()
	})

	svc.SaveAsync("vid-1", 10)
	svc.Wait()

	p, _ := repo.Get(context.Background(), "local", "vid-1")
	if p == nil || p.PositionSecs != 10 {
		t.Fatalf("progress = %+v, want position 10", p)
	}
	mu.Lock()
	defer mu.Unlock()
	if len(notified) != 1 || notified[0] != 10 {
		t.Errorf("notified = %v, want [10]", notified)
	}
}

func TestSaveAsync_FailureIsSilent(t *testing.T) {
	repo := newFakeProgressRepo()
	repo.failPut = true
	svc := NewService(repo, "local")

	called := false
	svc.OnPersisted(func(string, float64) { called = true })

	svc.SaveAsync("vid-1", 10)
	svc.Wait()

	if called {
		t.Error("failed write still notified")
	}
	// The next write attempt goes through once the store recovers.
	repo.failPut = false
	svc.SaveAsync("vid-1", 20)
	svc.Wait()
	p, _ := repo.Get(context.Background(), "local", "vid-1")
	if p == nil || p.PositionSecs != 20 {
		t.Errorf("recovery write missing: %+v", p)
	}
}

func TestClose_DropsNewWritesAndCallbacks(t *testing.T) {
	repo := newFakeProgressRepo()
	svc := NewService(repo, "local")

	svc.Close()
	svc.SaveAsync("vid-1", 10)
	svc.Wait()

	if repo.puts != 0 {
		t.Errorf("writes after Close: %d", repo.puts)
	}
}

func TestMarkCompleted(t *testing.T) {
	repo := newFakeProgressRepo()
	svc := NewService(repo, "local")
	ctx := context.Background()

	if err := svc.MarkCompleted(ctx, "vid-1"); err != nil {
		t.Fatal(err)
	}
	p, _ := repo.Get(ctx, "local", "vid-1")
	if p == nil || !p.Completed {
		t.Errorf("progress = %+v, want completed", p)
	}
}
