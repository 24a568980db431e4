package home

import (
	"charm.land/lipgloss/v2"

	"github.com/ecoamazonia/guardioes/internal/ui/theme"
)

// MascotVariant selects which mascot art to display.
type MascotVariant int

const (
	MascotIdle        MascotVariant = iota
	MascotCelebrating               // every journey finished
	MascotAlert                     // enough PN to unlock a guardian
)

const mascotIdle = ` /\_/\
( o.o )
 > ^ <`

const mascotCelebrating = ` /\_/\
( ^.^ )
 > ✿ <`

const mascotAlert = ` /\_/\  !
( o.o )
 > ^ <`

// RenderMascot returns the jaguar art for the given variant.
func RenderMascot(v MascotVariant) string {
	art := mascotIdle
	fg := theme.Warning

	switch v {
	case MascotCelebrating:
		art = mascotCelebrating
		fg = theme.Accent
	case MascotAlert:
		art = mascotAlert
		fg = theme.Primary
	}

	return lipgloss.NewStyle().
		Foreground(fg).
		Render(art)
}

func renderMascotBox(v MascotVariant, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(RenderMascot(v))
}
