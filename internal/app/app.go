package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/rmehra/retain/internal/course"
	"github.com/rmehra/retain/internal/playback"
	"github.com/rmehra/retain/internal/progress"
	"github.com/rmehra/retain/internal/quiz"
	"github.com/rmehra/retain/internal/router"
	"github.com/rmehra/retain/internal/screen"
	"github.com/rmehra/retain/internal/screens/library"
	"github.com/rmehra/retain/internal/screens/watch"
	"github.com/rmehra/retain/internal/store"
	"github.com/rmehra/retain/internal/tutor"
	"github.com/rmehra/retain/internal/ui/layout"
)

// Options carries the dependencies the TUI needs. Tutor and Quiz are nil
// when no LLM provider is configured; the rest are required.
type Options struct {
	UserID    string
	Courses   []*course.Course
	EventRepo store.EventRepo
	Progress  *progress.Service
	Tutor     *tutor.Service
	Quiz      *quiz.Service
	Config    playback.Config
	NewPlayer library.PlayerFactory

	// InitialVideoID, when set, skips the library and opens this video
	// directly (the `retain watch` command).
	InitialVideoID string
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router       *router.Router
	initCmd      tea.Cmd
	width        int
	height       int
	watchedCount int
	totalVideos  int
}

// newAppModel creates the root model with the library as the bottom
// screen, optionally with a watch session already pushed.
func newAppModel(opts Options) (AppModel, error) {
	deps := watch.Deps{
		UserID:   opts.UserID,
		Progress: opts.Progress,
		Events:   opts.EventRepo,
		Tutor:    opts.Tutor,
		Quiz:     opts.Quiz,
		Config:   opts.Config,
	}

	lib := library.New(opts.Courses, deps, opts.NewPlayer)
	r := router.New(lib)

	watched, total := countWatched(opts)

	m := AppModel{
		router:       r,
		initCmd:      lib.Init(),
		watchedCount: watched,
		totalVideos:  total,
	}

	if opts.InitialVideoID != "" {
		c, v, ok := findVideo(opts.Courses, opts.InitialVideoID)
		if !ok {
			return m, fmt.Errorf("unknown video %q", opts.InitialVideoID)
		}
		pl, err := opts.NewPlayer(v)
		if err != nil {
			return m, fmt.Errorf("start player: %w", err)
		}
		m.initCmd = r.Push(watch.New(c, v, pl, deps))
	}

	return m, nil
}

func findVideo(courses []*course.Course, videoID string) (course.Course, course.Video, bool) {
	for _, c := range courses {
		if v, ok := c.FindVideo(videoID); ok {
			return *c, v, true
		}
	}
	return course.Course{}, course.Video{}, false
}

// countWatched reads completion counts once at startup for the header.
func countWatched(opts Options) (watched, total int) {
	for _, c := range opts.Courses {
		total += len(c.Videos)
	}
	rows, err := opts.Progress.All(context.Background())
	if err != nil {
		return 0, total
	}
	for _, row := range rows {
		if row.Completed {
			watched++
		}
	}
	return watched, total
}

func (m AppModel) Init() tea.Cmd {
	return m.initCmd
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.watchedCount, m.totalVideos, m.width)

	footerHints := []layout.KeyHint{
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if provider, ok := active.(screen.KeyHintProvider); ok {
		footerHints = append(provider.KeyHints(), footerHints...)
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	model, err := newAppModel(opts)
	if err != nil {
		return err
	}
	p := tea.NewProgram(model)
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
