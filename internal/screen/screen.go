package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/rmehra/retain/internal/ui/layout"
)

// Screen is what the router stacks and the app renders. View receives
// the content area only; the app owns the header and footer.
type Screen interface {
	Init() tea.Cmd

	// Update handles a message and returns the (possibly replaced)
	// screen plus a command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	View(width, height int) string

	// Title labels the screen in the header.
	Title() string
}

// KeyHintProvider lets a screen supply its own footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}
