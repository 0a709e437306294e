package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/rmehra/retain/internal/screen"
)

type stubScreen struct {
	title   string
	initRan bool
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return s.title }
func (s *stubScreen) Title() string                           { return s.title }

// assertTop checks the stack depth and the title of the active screen.
func assertTop(t *testing.T, r *Router, depth int, title string) {
	t.Helper()
	if r.Depth() != depth {
		t.Errorf("depth = %d, want %d", r.Depth(), depth)
	}
	if got := r.Active().Title(); got != title {
		t.Errorf("active screen = %q, want %q", got, title)
	}
}

func TestPush(t *testing.T) {
	r := New(&stubScreen{title: "library"})

	watch := &stubScreen{title: "watch"}
	r.Push(watch)

	assertTop(t, r, 2, "watch")
	if !watch.initRan {
		t.Error("pushed screen was not initialized")
	}
}

func TestPop(t *testing.T) {
	r := New(&stubScreen{title: "library"})
	r.Push(&stubScreen{title: "watch"})

	r.Pop()

	assertTop(t, r, 1, "library")
}

func TestPopNoopAtBottom(t *testing.T) {
	r := New(&stubScreen{title: "library"})

	r.Pop()

	assertTop(t, r, 1, "library")
}

func TestReplace(t *testing.T) {
	r := New(&stubScreen{title: "library"})

	quiz := &stubScreen{title: "quiz"}
	r.Replace(quiz)

	assertTop(t, r, 1, "quiz")
	if !quiz.initRan {
		t.Error("replacement screen was not initialized")
	}
}

func TestReplaceScreenMsg(t *testing.T) {
	r := New(&stubScreen{title: "library"})

	quiz := &stubScreen{title: "quiz"}
	r.Update(ReplaceScreenMsg{Screen: quiz})

	assertTop(t, r, 1, "quiz")
	if !quiz.initRan {
		t.Error("replacement screen was not initialized")
	}
}

func TestReplacePreservesStackDepth(t *testing.T) {
	r := New(&stubScreen{title: "library"})
	r.Push(&stubScreen{title: "watch"})

	r.Replace(&stubScreen{title: "quiz"})

	assertTop(t, r, 2, "quiz")
}

func TestPopToRoot(t *testing.T) {
	r := New(&stubScreen{title: "library"})
	r.Push(&stubScreen{title: "watch"})
	r.Push(&stubScreen{title: "quiz"})

	r.PopToRoot()

	assertTop(t, r, 1, "library")
}

func TestPopToRootMsg(t *testing.T) {
	r := New(&stubScreen{title: "library"})
	r.Push(&stubScreen{title: "watch"})

	r.Update(PopToRootMsg{})

	assertTop(t, r, 1, "library")
}
