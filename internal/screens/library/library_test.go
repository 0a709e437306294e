package library

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/rmehra/retain/internal/course"
	"github.com/rmehra/retain/internal/player"
	"github.com/rmehra/retain/internal/progress"
	"github.com/rmehra/retain/internal/router"
	"github.com/rmehra/retain/internal/screens/watch"
	"github.com/rmehra/retain/internal/store"
)

// fakeProgressRepo implements store.ProgressRepo with canned rows.
type fakeProgressRepo struct {
	rows []store.Progress
}

func (f *fakeProgressRepo) Get(_ context.Context, _, v string) (*store.Progress, error) {
	for _, p := range f.rows {
		if p.VideoID == v {
			cp := p
			return &cp, nil
		}
	}
	return nil, nil
}
func (f *fakeProgressRepo) Upsert(_ context.Context, _, _ string, _ float64) error { return nil }
func (f *fakeProgressRepo) MarkCompleted(_ context.Context, _, _ string) error     { return nil }
func (f *fakeProgressRepo) All(_ context.Context, _ string) ([]store.Progress, error) {
	return f.rows, nil
}
func (f *fakeProgressRepo) DeleteAll(_ context.Context, _ string) (int, error) { return 0, nil }

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func testCourses() []*course.Course {
	return []*course.Course{{
		ID:    "course-1",
		Title: "Frontend Internals",
		Videos: []course.Video{
			{ID: "vid-1", Title: "Signals and Slots", Duration: 60},
			{ID: "vid-2", Title: "Event Loops", Duration: 90},
		},
	}}
}

func testLibrary(rows []store.Progress, factory PlayerFactory) (*LibraryScreen, *progress.Service) {
	prog := progress.NewService(&fakeProgressRepo{rows: rows}, "local")
	deps := watch.Deps{UserID: "local", Progress: prog}
	if factory == nil {
		factory = func(v course.Video) (player.Player, error) {
			sp := player.NewScripted(v.Duration)
			sp.Start()
			return sp, nil
		}
	}
	return New(testCourses(), deps, factory), prog
}

func TestLibrary_BrowseAndStartWatch(t *testing.T) {
	s, prog := testLibrary(nil, nil)
	defer prog.Close()

	// Enter the first course from the menu.
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if s.browsing == nil {
		t.Fatal("expected course browse mode after enter")
	}

	// Down to the second video and start it.
	s.Update(keyPress('j'))
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected navigation command")
	}
	msg, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	ws, ok := msg.Screen.(*watch.WatchScreen)
	if !ok {
		t.Fatalf("expected watch screen, got %T", msg.Screen)
	}
	if ws.Title() != "Event Loops" {
		t.Errorf("watch title = %q, want Event Loops", ws.Title())
	}
}

func TestLibrary_PlayerFailureStaysOnLibrary(t *testing.T) {
	s, prog := testLibrary(nil, func(course.Video) (player.Player, error) {
		return nil, errors.New("no socket")
	})
	defer prog.Close()

	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd != nil {
		t.Error("expected no navigation on player failure")
	}
	if s.errMsg == "" {
		t.Error("expected error message after player failure")
	}
	if !strings.Contains(s.View(100, 30), "Can't start player") {
		t.Error("expected error shown in view")
	}
}

func TestLibrary_EscLeavesBrowse(t *testing.T) {
	s, prog := testLibrary(nil, nil)
	defer prog.Close()

	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if s.browsing != nil {
		t.Error("expected esc to leave browse mode")
	}
}

func TestLibrary_ProgressRendering(t *testing.T) {
	rows := []store.Progress{
		{UserID: "local", VideoID: "vid-1", PositionSecs: 30},
		{UserID: "local", VideoID: "vid-2", Completed: true},
	}
	s, prog := testLibrary(rows, nil)
	defer prog.Close()

	if msg, ok := s.Init()().(progressLoadedMsg); ok {
		s.Update(msg)
	} else {
		t.Fatal("expected progressLoadedMsg from Init")
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	view := s.View(100, 30)
	if !strings.Contains(view, "✔ completed") {
		t.Error("expected completion mark for vid-2")
	}
	if strings.Contains(view, "not started") {
		t.Error("expected no unwatched rows with progress present")
	}
}

func TestLibrary_TitleFollowsBrowse(t *testing.T) {
	s, prog := testLibrary(nil, nil)
	defer prog.Close()

	if s.Title() != "Library" {
		t.Errorf("Title = %q, want Library", s.Title())
	}
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if s.Title() != "Frontend Internals" {
		t.Errorf("Title = %q, want course title", s.Title())
	}
}
