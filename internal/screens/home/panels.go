package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/ecoamazonia/guardioes/internal/ui/components"
	"github.com/ecoamazonia/guardioes/internal/ui/theme"
)

const titleFull = `╔═╗╔═╗╔═╗ ╔═╗╔╦╗╔═╗╔═╗╔═╗╔╗╔╦╔═╗
║╣ ║  ║ ║ ╠═╣║║║╠═╣╔═╝║ ║║║║║╠═╣
╚═╝╚═╝╚═╝ ╩ ╩╩ ╩╩ ╩╚═╝╚═╝╝╚╝╩╩ ╩`

const titleCompact = "E · C · O · A · M · A · Z · Ô · N · I · A"

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 30

func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	art := titleFull
	if compact {
		art = titleCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(art))
}

type stats struct {
	balance   int
	unlocked  int
	guardians int
	stages    int
}

func renderStatsBar(s stats, cw int, compact bool) string {
	pointsStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	guardianStyle := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	stageStyle := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)

	var line string
	if compact {
		line = fmt.Sprintf("%s %s %s",
			pointsStyle.Render(fmt.Sprintf("✿%d", s.balance)),
			guardianStyle.Render(fmt.Sprintf("♣%d/%d", s.unlocked, s.guardians)),
			stageStyle.Render(fmt.Sprintf("≈%d", s.stages)),
		)
	} else {
		line = fmt.Sprintf("%s  %s  %s",
			pointsStyle.Render(fmt.Sprintf("✿ %d PN", s.balance)),
			guardianStyle.Render(fmt.Sprintf("♣ %d/%d", s.unlocked, s.guardians)),
			stageStyle.Render(fmt.Sprintf("≈ %d", s.stages)),
		)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Secondary).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(line)
}

func renderMenu(menu components.Menu, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(menu.ButtonsView(buttonWidth))
}

// renderMenuCompact renders menu items as plain lines for small terminals
// where bordered buttons would overflow.
func renderMenuCompact(items []string, selected int, cw int) string {
	lines := make([]string, 0, len(items))
	for i, label := range items {
		if i == selected {
			lines = append(lines, lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.Primary).
				Bold(true).
				Render(" ▸ "+label+" "))
			continue
		}
		lines = append(lines, lipgloss.NewStyle().
			Foreground(theme.Text).
			Render("   "+label))
	}

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(lines, "\n"))
}

func renderNote(text string, cw int) string {
	return lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Width(cw).
		Align(lipgloss.Center).
		Render(text)
}
