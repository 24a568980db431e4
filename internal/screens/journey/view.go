package journey

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	jny "github.com/ecoamazonia/guardioes/internal/journey"
	"github.com/ecoamazonia/guardioes/internal/minigame"
	"github.com/ecoamazonia/guardioes/internal/ui/components"
	"github.com/ecoamazonia/guardioes/internal/ui/theme"
)

func (s *JourneyScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	var body string

	switch s.j.View() {
	case jny.ViewLoading:
		body = s.renderLoading(cw)
	case jny.ViewStory:
		body = s.renderStory(cw)
	case jny.ViewGame:
		body = s.renderGame(cw)
	case jny.ViewStageComplete:
		body = s.renderStageComplete(cw)
	case jny.ViewFinalComplete:
		body = s.renderFinal(cw)
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}

func (s *JourneyScreen) text(cw int) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Text).Width(cw - 6)
}

func (s *JourneyScreen) renderLoading(cw int) string {
	if err := s.j.Err(); err != nil {
		msg := theme.Incorrect.Render(s.env.T("gdetail_blocked")) + "\n\n" +
			theme.Hint.Width(cw-6).Render(err.Error())
		return components.Card(msg, cw)
	}
	return theme.Hint.Render(s.env.T("gdetail_loading"))
}

func (s *JourneyScreen) renderStory(cw int) string {
	lang := s.env.Language()
	var b strings.Builder
	b.WriteString(theme.Title.Width(cw - 6).Render(s.guardian.Name.Get(lang)))
	b.WriteString("\n\n")
	b.WriteString(s.text(cw).Render(s.guardian.Story.Get(lang)))
	b.WriteString("\n\n")
	b.WriteString(components.Action(s.env.T("gdetail_start_journey"), true))
	return components.Card(b.String(), cw)
}

func (s *JourneyScreen) renderStageComplete(cw int) string {
	stage, ok := s.j.Stage()
	if !ok {
		return ""
	}
	var b strings.Builder
	b.WriteString(theme.Title.Width(cw - 6).Render(s.env.T("gdetail_stage_complete_title", stage.Number)))
	b.WriteString("\n\n")
	b.WriteString(theme.Points.Render(s.env.T("gdetail_stage_complete_points", stage.Points)))
	b.WriteString("\n\n")
	b.WriteString(components.NewProgressBar("", stage.Number, s.guardian.StageCount(), cw-6).View())
	b.WriteString("\n\n")
	b.WriteString(components.Action(s.env.T("gdetail_next_stage"), true))
	return components.Card(b.String(), cw)
}

func (s *JourneyScreen) renderFinal(cw int) string {
	lang := s.env.Language()
	var b strings.Builder
	b.WriteString(theme.Title.Width(cw - 6).Render(s.env.T("gdetail_journey_complete")))
	b.WriteString("\n\n")
	if quote := s.guardian.FinalQuote.Get(lang); quote != "" {
		b.WriteString(theme.Quote.Width(cw - 6).Render("“" + quote + "”"))
		b.WriteString("\n\n")
	}
	if reward := s.j.Reward(); reward > 0 {
		b.WriteString(theme.Points.Render(s.env.T("gdetail_final_reward", reward)))
		b.WriteString("\n\n")
	}
	b.WriteString(components.Action(s.env.T("gdetail_return_guardians"), true))
	return components.Card(b.String(), cw)
}

func (s *JourneyScreen) renderGame(cw int) string {
	lang := s.env.Language()
	var b strings.Builder

	if s.attempt != nil {
		st := s.attempt.Stage()
		b.WriteString(theme.Title.Width(cw - 6).Render(s.env.T("gdetail_stage_title", st.Number, st.Title.Get(lang))))
		b.WriteString("\n")
		b.WriteString(components.NewProgressBar("", st.Number-1, s.guardian.StageCount(), cw-6).View())
		b.WriteString("\n\n")
		if ins := st.Instructions.Get(lang); ins != "" {
			b.WriteString(theme.Hint.Width(cw - 6).Render(ins))
			b.WriteString("\n\n")
		}
	}

	switch {
	case s.errMsg != "":
		b.WriteString(theme.Incorrect.Render(s.env.T("gdetail_blocked")))
		b.WriteString("\n")
		b.WriteString(theme.Hint.Width(cw - 6).Render(s.errMsg))
	case s.game != nil:
		b.WriteString(s.game.View(cw - 6))
	default:
		b.WriteString(theme.Hint.Render(s.env.T("gdetail_loading")))
	}
	return components.Card(b.String(), cw)
}

func (g *termoGame) View(width int) string {
	var b strings.Builder
	rows := g.t.Rows()
	for _, row := range rows {
		tiles := make([]string, len(row.Guess))
		for i, r := range row.Guess {
			style := theme.TileAbsent
			switch row.Scores[i] {
			case minigame.Correct:
				style = theme.TileCorrect
			case minigame.Present:
				style = theme.TilePresent
			}
			tiles[i] = style.Render(string(r))
		}
		b.WriteString(strings.Join(tiles, " "))
		b.WriteString("\n")
	}
	for range minigame.TermoAttempts - len(rows) {
		empty := make([]string, minigame.TermoLength)
		for i := range empty {
			empty[i] = theme.TileEmpty.Render(" ")
		}
		b.WriteString(strings.Join(empty, " "))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(theme.Hint.Width(width).Render(g.env.T("gdetail_termo_hint", g.hint)))
	b.WriteString("\n")

	switch g.t.Status() {
	case minigame.Lost:
		b.WriteString(theme.Incorrect.Width(width).Render(g.env.T("gdetail_termo_lost", strings.ToUpper(g.t.Secret()))))
	default:
		b.WriteString(theme.Subtitle.Render(g.env.T("gdetail_termo_attempts", g.t.AttemptsLeft())))
		b.WriteString("\n\n")
		b.WriteString(g.input.View())
		if g.errMsg != "" {
			b.WriteString("\n")
			b.WriteString(theme.Incorrect.Render(g.errMsg))
		}
	}
	return b.String()
}

func (g *scrambleGame) View(width int) string {
	var b strings.Builder
	placed := strings.Join(g.s.Placed(), " ")
	if placed == "" {
		placed = "…"
	}
	b.WriteString(lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Foreground(theme.Text).
		Width(width - 2).
		Render(placed))
	b.WriteString("\n\n")

	chips := make([]string, len(g.s.Pool()))
	for i, w := range g.s.Pool() {
		if i == g.cursor {
			chips[i] = theme.ButtonActive.Render(w)
		} else {
			chips[i] = lipgloss.NewStyle().Foreground(theme.Text).Padding(0, 1).Render(w)
		}
	}
	b.WriteString(lipgloss.NewStyle().Width(width).Render(strings.Join(chips, " ")))

	if g.wrong {
		b.WriteString("\n\n")
		b.WriteString(theme.Incorrect.Render(g.env.T("gdetail_scramble_wrong")))
	}
	return b.String()
}

func (g *riddleGame) View(width int) string {
	var b strings.Builder
	b.WriteString(theme.Quote.Width(width).Render(g.riddle))
	b.WriteString("\n\n")
	b.WriteString(g.input.View())
	if g.wrong {
		b.WriteString("\n")
		b.WriteString(theme.Incorrect.Render(g.env.T("gdetail_riddle_wrong")))
	}
	return b.String()
}

func (g *wordSearchGame) View(width int) string {
	var b strings.Builder
	n := g.ws.Size()

	header := "   "
	for c := range n {
		header += fmt.Sprintf("%2d", (c+1)%100)
	}
	b.WriteString(theme.Hint.Render(header))
	b.WriteString("\n")
	for r := range n {
		b.WriteString(theme.Hint.Render(fmt.Sprintf("%2d ", r+1)))
		for c := range n {
			cell := minigame.Cell{Row: r, Col: c}
			letter := " " + string(g.ws.Letter(cell))
			if g.found[cell] {
				b.WriteString(theme.Correct.Render(letter))
			} else {
				b.WriteString(theme.Body.Render(letter))
			}
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	words := g.ws.Words()
	list := make([]string, len(words))
	for i, w := range words {
		if g.ws.IsFound(i) {
			list[i] = theme.Correct.Render("✓ " + w)
		} else {
			list[i] = theme.Body.Render("· " + w)
		}
	}
	b.WriteString(lipgloss.NewStyle().Width(width).Render(strings.Join(list, "  ")))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Render(g.env.T("gdetail_wordsearch_found", g.ws.FoundCount(), len(words))))
	b.WriteString("\n\n")
	b.WriteString(theme.Hint.Render(g.env.T("gdetail_wordsearch_prompt")))
	b.WriteString("\n")
	b.WriteString(g.input.View())
	if g.missed {
		b.WriteString("\n")
		b.WriteString(theme.Incorrect.Render(g.env.T("gdetail_wordsearch_miss")))
	}
	return b.String()
}

func (g *adventureGame) View(width int) string {
	phase, num, ok := g.a.Phase()
	if !ok {
		return ""
	}
	lang := g.env.Language()
	var b strings.Builder
	b.WriteString(theme.Subtitle.Render(g.env.T("gdetail_adventure_phase", num, g.a.Phases())))
	b.WriteString("\n")
	b.WriteString(theme.Selected.Render(fmt.Sprintf("%s · %s", phase.Element.Get(lang), phase.Title.Get(lang))))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Width(width).Render(phase.Intro.Get(lang)))
	b.WriteString("\n\n")
	b.WriteString(g.mc.View(width))
	if g.chosen != nil {
		style := theme.Correct
		if !g.chosen.Correct {
			style = theme.Incorrect
		}
		b.WriteString("\n")
		b.WriteString(style.Width(width).Render(g.chosen.Feedback.Get(lang)))
		b.WriteString("\n\n")
		b.WriteString(theme.Hint.Render(g.env.T("gdetail_choice_next")))
	}
	return b.String()
}

func (g *quizGame) View(width int) string {
	var b strings.Builder
	b.WriteString(theme.Points.Render(g.env.T("gdetail_choice_correct_needed", g.target.Correct(), g.target.Needed())))
	b.WriteString("\n\n")
	if g.question == nil {
		b.WriteString(theme.Hint.Render(g.env.T("gdetail_choice_fetching")))
		return b.String()
	}
	b.WriteString(g.mc.View(width))
	if g.answered {
		b.WriteString("\n")
		if g.mc.IsCorrect() {
			b.WriteString(theme.Correct.Width(width).Render(g.question.Feedback))
		} else {
			answer := ""
			if i := g.question.CorrectIndex(); i >= 0 {
				answer = g.question.Options[i].Text
			}
			b.WriteString(theme.Incorrect.Width(width).Render(g.env.T("quiz_incorrect", answer)))
		}
		b.WriteString("\n\n")
		b.WriteString(theme.Hint.Render(g.env.T("gdetail_choice_next")))
	}
	return b.String()
}

func (g *cleanupGame) View(width int) string {
	var b strings.Builder
	b.WriteString(theme.Subtitle.Render(g.env.T("gdetail_cleanup_left", g.c.Remaining())))
	b.WriteString("\n\n")
	b.WriteString(g.mc.View(width))
	if g.miss != "" {
		b.WriteString("\n")
		b.WriteString(theme.Incorrect.Width(width).Render(g.env.T("gdetail_cleanup_wrong", g.miss)))
	}
	if g.tip != "" {
		b.WriteString("\n\n")
		b.WriteString(theme.Hint.Width(width).Render(g.tip))
	}
	return b.String()
}

func (g *selfReportGame) View(width int) string {
	var b strings.Builder
	for _, line := range g.details(g.env.Language()) {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Width(width).Render(line))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(components.Action(g.env.T("gdetail_self_report"), true))
	return b.String()
}
