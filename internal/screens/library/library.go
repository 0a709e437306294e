// Package library is the root screen: the course catalog, with saved
// progress per video and entry into watch sessions.
package library

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/rmehra/retain/internal/course"
	"github.com/rmehra/retain/internal/player"
	"github.com/rmehra/retain/internal/router"
	"github.com/rmehra/retain/internal/screen"
	"github.com/rmehra/retain/internal/screens/history"
	"github.com/rmehra/retain/internal/screens/watch"
	"github.com/rmehra/retain/internal/store"
	"github.com/rmehra/retain/internal/ui/components"
	"github.com/rmehra/retain/internal/ui/layout"
	"github.com/rmehra/retain/internal/ui/theme"
)

type progressLoadedMsg struct {
	rows []store.Progress
	err  error
}

// PlayerFactory dials the external player for a video.
type PlayerFactory func(v course.Video) (player.Player, error)

// LibraryScreen lists courses and their videos.
type LibraryScreen struct {
	courses   []*course.Course
	deps      watch.Deps
	newPlayer PlayerFactory

	menu     components.Menu
	browsing *course.Course
	selected int

	progressByVideo map[string]store.Progress
	errMsg          string
}

var _ screen.Screen = (*LibraryScreen)(nil)
var _ screen.KeyHintProvider = (*LibraryScreen)(nil)

// New creates the library screen.
func New(courses []*course.Course, deps watch.Deps, newPlayer PlayerFactory) *LibraryScreen {
	s := &LibraryScreen{
		courses:         courses,
		deps:            deps,
		newPlayer:       newPlayer,
		progressByVideo: make(map[string]store.Progress),
	}

	var items []components.MenuItem
	for _, c := range courses {
		c := c
		items = append(items, components.MenuItem{
			Label: strings.ToUpper(c.Title),
			Action: func() tea.Cmd {
				s.browsing = c
				s.selected = 0
				return nil
			},
		})
	}
	items = append(items,
		components.MenuItem{Label: "HISTORY", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(s.deps.Events)}
			}
		}},
		components.MenuItem{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	)
	s.menu = components.NewMenu(items)
	return s
}

func (s *LibraryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		rows, err := s.deps.Progress.All(context.Background())
		return progressLoadedMsg{rows: rows, err: err}
	}
}

func (s *LibraryScreen) Title() string {
	if s.browsing != nil {
		return s.browsing.Title
	}
	return "Library"
}

func (s *LibraryScreen) KeyHints() []layout.KeyHint {
	if s.browsing != nil {
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Watch"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *LibraryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case progressLoadedMsg:
		if msg.err == nil {
			for _, row := range msg.rows {
				s.progressByVideo[row.VideoID] = row
			}
		}
		return s, nil

	case tea.KeyMsg:
		if s.browsing != nil {
			return s.handleBrowseKey(msg)
		}
		var cmd tea.Cmd
		s.menu, cmd = s.menu.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *LibraryScreen) handleBrowseKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	videos := s.browsing.Videos
	switch msg.String() {
	case "esc":
		s.browsing = nil
		s.errMsg = ""
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < len(videos)-1 {
			s.selected++
		}
	case "enter":
		if s.selected < len(videos) {
			return s.startWatch(*s.browsing, videos[s.selected])
		}
	}
	return s, nil
}

// startWatch dials the player and pushes the watch screen. A dial failure
// stays on the library with the error shown.
func (s *LibraryScreen) startWatch(c course.Course, v course.Video) (screen.Screen, tea.Cmd) {
	pl, err := s.newPlayer(v)
	if err != nil {
		s.errMsg = fmt.Sprintf("Can't start player: %v", err)
		return s, nil
	}
	s.errMsg = ""
	ws := watch.New(c, v, pl, s.deps)
	return s, func() tea.Msg {
		return router.PushScreenMsg{Screen: ws}
	}
}

func (s *LibraryScreen) View(width, height int) string {
	if s.browsing != nil {
		return s.renderVideoList(width)
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).
		Foreground(theme.Primary).Bold(true).
		Render("RETAIN"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Watch. Pause. Answer. Remember."))
	b.WriteString("\n\n")

	if len(s.courses) == 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).
			Foreground(theme.TextDim).Italic(true).
			Render("No courses found. Drop course manifests into the courses directory."))
		b.WriteString("\n\n")
	}

	menu := s.menu.View()
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, menu))

	if s.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(s.errMsg))
	}

	return b.String()
}

func (s *LibraryScreen) renderVideoList(width int) string {
	var b strings.Builder
	b.WriteString("\n")

	for i, v := range s.browsing.Videos {
		prefix := "  "
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			prefix = "▸ "
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		}

		line := prefix + v.Title
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			style.Render(padRight(line, min(width-20, 50)))+s.renderProgress(v)))
		b.WriteString("\n")
	}

	if s.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(s.errMsg))
	}

	return b.String()
}

// renderProgress shows a small watch-progress bar, a completion mark, or
// nothing for an unwatched video.
func (s *LibraryScreen) renderProgress(v course.Video) string {
	p, ok := s.progressByVideo[v.ID]
	if !ok {
		return lipgloss.NewStyle().Foreground(theme.TextDim).Render("  not started")
	}
	if p.Completed {
		return lipgloss.NewStyle().Foreground(theme.Success).Render("  ✔ completed")
	}
	percent := 0.0
	if v.Duration > 0 {
		percent = p.PositionSecs / v.Duration
	}
	bar := components.NewProgressBar("", percent, true, 24)
	return "  " + bar.View()
}

func padRight(s string, width int) string {
	if lipgloss.Width(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-lipgloss.Width(s))
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
