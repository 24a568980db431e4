package components

import "github.com/ecoamazonia/guardioes/internal/ui/theme"

// Action renders the call to action of a card. A disabled action is dimmed
// and loses its pointer but keeps its label, so the player still sees what
// it would do.
func Action(label string, enabled bool) string {
	if !enabled {
		return theme.ButtonInactive.Render("  " + label)
	}
	return theme.ButtonActive.Render("▸ " + label)
}
