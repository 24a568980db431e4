// Package screen holds the contract every full-window view implements.
// The router keeps screens on a stack; the app draws the active one
// between the shared header and footer.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/ecoamazonia/guardioes/internal/ui/layout"
)

type Screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View draws the body in width x height cells. The header and
	// footer are not included.
	View(width, height int) string

	// Title is shown in the header, already localized.
	Title() string
}

// KeyHintProvider replaces the footer's default key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// Closer is implemented by screens that must release state, such as an
// open journey, when they leave the stack.
type Closer interface {
	Close()
}
