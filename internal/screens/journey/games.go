package journey

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"unicode"

	tea "charm.land/bubbletea/v2"

	"github.com/ecoamazonia/guardioes/internal/catalog"
	"github.com/ecoamazonia/guardioes/internal/i18n"
	"github.com/ecoamazonia/guardioes/internal/minigame"
	"github.com/ecoamazonia/guardioes/internal/quiz"
	"github.com/ecoamazonia/guardioes/internal/screen"
	"github.com/ecoamazonia/guardioes/internal/ui/components"
	"github.com/ecoamazonia/guardioes/internal/ui/layout"
	"github.com/ecoamazonia/guardioes/internal/variant"
)

// outcome is what a game asks of the journey after handling a message.
type outcome int

const (
	keepPlaying outcome = iota
	finished
	needNewWord
)

// game is the terminal rendition of one stage attempt.
type game interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (outcome, tea.Cmd)
	View(width int) string
	KeyHints() []layout.KeyHint
}

// newGame builds the terminal game for a resolved stage. ctx bounds any
// background work the game starts.
func newGame(ctx context.Context, env *screen.Env, r variant.Resolved, rng *rand.Rand) (game, error) {
	lang := env.Language()
	mode := minigame.ModeOf(r.Stage.Type)
	switch p := r.Payload.(type) {
	case catalog.TermoPayload:
		if r.Secret == nil {
			return nil, fmt.Errorf("termo stage %d: %w", r.Stage.Number, minigame.ErrEmptyInput)
		}
		return newTermoGame(env, *r.Secret)
	case catalog.WordScramblePayload:
		s, err := minigame.NewScramble(p.Sentence.Get(lang), rng)
		if err != nil {
			return nil, err
		}
		return &scrambleGame{env: env, s: s}, nil
	case catalog.RiddlePayload:
		return newRiddleGame(env, p)
	case catalog.WordSearchPayload:
		words := r.WordSet
		if words == nil {
			words = p.Words
		}
		ws, err := minigame.NewWordSearch(words.Get(lang), p.Size, rng)
		if err != nil {
			return nil, err
		}
		return newWordSearchGame(env, ws), nil
	case catalog.AdventurePayload:
		a, err := minigame.NewAdventure(p)
		if err != nil {
			return nil, err
		}
		g := &adventureGame{env: env, a: a}
		g.resetChoice()
		return g, nil
	case catalog.InteractiveQuizPayload:
		return &quizGame{ctx: ctx, env: env, target: minigame.NewTarget(p.CorrectNeeded)}, nil
	case catalog.RiverCleanupPayload:
		return newCleanupGame(env, p)
	}
	if mode != minigame.ModeSelfReport {
		return nil, fmt.Errorf("stage %d: %s payload for %s mode", r.Stage.Number, r.Payload.GameType(), mode)
	}
	return &selfReportGame{env: env, stage: r.Stage, payload: r.Payload}, nil
}

func enterHint(desc string) layout.KeyHint {
	return layout.KeyHint{Key: "Enter", Description: desc}
}

// Termo

type termoGame struct {
	env    *screen.Env
	t      *minigame.Termo
	hint   string
	input  components.TextInput
	errMsg string
}

func newTermoGame(env *screen.Env, secret catalog.SecretWord) (*termoGame, error) {
	lang := env.Language()
	t, err := minigame.NewTermo(secret.Word.Get(lang))
	if err != nil {
		return nil, err
	}
	input := components.NewTextInput(strings.Repeat("_", minigame.TermoLength), minigame.TermoLength)
	input.Accept = unicode.IsLetter
	return &termoGame{env: env, t: t, hint: secret.Hint.Get(lang), input: input}, nil
}

func (g *termoGame) Init() tea.Cmd { return g.input.Focus() }

func (g *termoGame) Update(msg tea.Msg) (outcome, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && k.String() == "enter" {
		if g.t.Status() == minigame.Lost {
			return needNewWord, nil
		}
		_, err := g.t.Guess(g.input.Value())
		switch {
		case errors.Is(err, minigame.ErrWrongLength):
			g.errMsg = g.env.T("gdetail_termo_length", minigame.TermoLength)
			return keepPlaying, nil
		case err != nil:
			return keepPlaying, nil
		}
		g.errMsg = ""
		g.input.Reset()
		if g.t.Status() == minigame.Won {
			return finished, nil
		}
		return keepPlaying, nil
	}
	if g.t.Status() != minigame.Playing {
		return keepPlaying, nil
	}
	var cmd tea.Cmd
	g.input, cmd = g.input.Update(msg)
	return keepPlaying, cmd
}

func (g *termoGame) KeyHints() []layout.KeyHint {
	if g.t.Status() == minigame.Lost {
		return []layout.KeyHint{enterHint("New word")}
	}
	return []layout.KeyHint{enterHint("Guess")}
}

// Word scramble

type scrambleGame struct {
	env    *screen.Env
	s      *minigame.Scramble
	cursor int
	wrong  bool
}

func (g *scrambleGame) Init() tea.Cmd { return nil }

func (g *scrambleGame) Update(msg tea.Msg) (outcome, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return keepPlaying, nil
	}
	switch k.String() {
	case "left", "h":
		if g.cursor > 0 {
			g.cursor--
		}
	case "right", "l":
		if g.cursor < len(g.s.Pool())-1 {
			g.cursor++
		}
	case "backspace":
		if n := len(g.s.Placed()); n > 0 {
			_ = g.s.Remove(n - 1)
			g.wrong = false
		}
	case "enter", "space":
		if !g.s.Ready() {
			if err := g.s.Place(g.cursor); err != nil {
				return keepPlaying, nil
			}
			g.cursor = min(g.cursor, max(len(g.s.Pool())-1, 0))
		}
		if g.s.Ready() {
			if g.s.Check() {
				return finished, nil
			}
			g.wrong = true
		}
	}
	return keepPlaying, nil
}

func (g *scrambleGame) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←→", Description: "Pick"},
		enterHint("Place"),
		{Key: "Bksp", Description: "Undo"},
	}
}

// Riddle

type riddleGame struct {
	env    *screen.Env
	r      *minigame.Riddle
	riddle string
	input  components.TextInput
	wrong  bool
}

func newRiddleGame(env *screen.Env, p catalog.RiddlePayload) (*riddleGame, error) {
	lang := env.Language()
	r, err := minigame.NewRiddle(p.Answers.Get(lang))
	if err != nil {
		return nil, err
	}
	return &riddleGame{
		env:    env,
		r:      r,
		riddle: p.Riddle.Get(lang),
		input:  components.NewTextInput("...", 40),
	}, nil
}

func (g *riddleGame) Init() tea.Cmd { return g.input.Focus() }

func (g *riddleGame) Update(msg tea.Msg) (outcome, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && k.String() == "enter" {
		if strings.TrimSpace(g.input.Value()) == "" {
			return keepPlaying, nil
		}
		if g.r.Answer(g.input.Value()) {
			return finished, nil
		}
		g.wrong = true
		g.input.Submit(false)
		return keepPlaying, nil
	}
	var cmd tea.Cmd
	g.input, cmd = g.input.Update(msg)
	return keepPlaying, cmd
}

func (g *riddleGame) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{enterHint("Answer")}
}

// Word search

type wordSearchGame struct {
	env    *screen.Env
	ws     *minigame.WordSearch
	input  components.TextInput
	found  map[minigame.Cell]bool
	missed bool
}

func newWordSearchGame(env *screen.Env, ws *minigame.WordSearch) *wordSearchGame {
	input := components.NewTextInput("1,1,1,4", 16)
	input.Accept = func(r rune) bool { return unicode.IsDigit(r) || r == ',' || r == ' ' }
	return &wordSearchGame{env: env, ws: ws, input: input, found: make(map[minigame.Cell]bool)}
}

func (g *wordSearchGame) Init() tea.Cmd { return g.input.Focus() }

func (g *wordSearchGame) Update(msg tea.Msg) (outcome, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && k.String() == "enter" {
		a, b, ok := parseSelection(g.input.Value())
		g.input.Reset()
		if !ok {
			g.missed = true
			return keepPlaying, nil
		}
		if _, hit := g.ws.Select(a, b); !hit {
			g.missed = true
			return keepPlaying, nil
		}
		g.missed = false
		g.markFound(a, b)
		if g.ws.Status() == minigame.Won {
			return finished, nil
		}
		return keepPlaying, nil
	}
	var cmd tea.Cmd
	g.input, cmd = g.input.Update(msg)
	return keepPlaying, cmd
}

func (g *wordSearchGame) markFound(a, b minigame.Cell) {
	dr, dc := sign(b.Row-a.Row), sign(b.Col-a.Col)
	for c := a; ; c = (minigame.Cell{Row: c.Row + dr, Col: c.Col + dc}) {
		g.found[c] = true
		if c == b {
			return
		}
	}
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	}
	return 0
}

// parseSelection reads "row,col,row,col" with 1-based coordinates.
func parseSelection(s string) (minigame.Cell, minigame.Cell, bool) {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' })
	if len(fields) != 4 {
		return minigame.Cell{}, minigame.Cell{}, false
	}
	var n [4]int
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return minigame.Cell{}, minigame.Cell{}, false
		}
		n[i] = v - 1
	}
	return minigame.Cell{Row: n[0], Col: n[1]}, minigame.Cell{Row: n[2], Col: n[3]}, true
}

func (g *wordSearchGame) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{enterHint("Select")}
}

// Educational adventure

type adventureGame struct {
	env    *screen.Env
	a      *minigame.Adventure
	mc     components.MultiChoice
	chosen *catalog.ChallengeOption
}

func (g *adventureGame) resetChoice() {
	g.chosen = nil
	phase, _, ok := g.a.Phase()
	if !ok {
		return
	}
	lang := g.env.Language()
	opts := make([]string, len(phase.Challenge.Options))
	correct := -1
	for i, o := range phase.Challenge.Options {
		opts[i] = o.Text.Get(lang)
		if o.Correct {
			correct = i
		}
	}
	g.mc = components.NewMultiChoice(phase.Challenge.Question.Get(lang), opts, correct)
}

func (g *adventureGame) Init() tea.Cmd { return nil }

func (g *adventureGame) Update(msg tea.Msg) (outcome, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return keepPlaying, nil
	}
	if g.chosen != nil {
		if k.String() != "enter" {
			return keepPlaying, nil
		}
		if err := g.a.Continue(); err != nil {
			return keepPlaying, nil
		}
		if g.a.Status() == minigame.Won {
			return finished, nil
		}
		g.resetChoice()
		return keepPlaying, nil
	}

	g.mc, _ = g.mc.Update(msg)
	if g.mc.Submitted {
		opt, err := g.a.Choose(g.mc.ChosenIndex)
		if err == nil {
			g.chosen = &opt
		}
	}
	return keepPlaying, nil
}

func (g *adventureGame) KeyHints() []layout.KeyHint {
	if g.chosen != nil {
		return []layout.KeyHint{enterHint("Continue")}
	}
	return []layout.KeyHint{{Key: "↑↓", Description: "Choose"}, enterHint("Confirm")}
}

// Interactive quiz

type quizGame struct {
	ctx       context.Context
	env       *screen.Env
	target    *minigame.Target
	question  *quiz.RiverQuestion
	generated bool
	mc        components.MultiChoice
	answered  bool
}

func (g *quizGame) Init() tea.Cmd { return g.fetch() }

func (g *quizGame) fetch() tea.Cmd {
	g.question = nil
	g.answered = false
	ctx, svc, lang := g.ctx, g.env.Quiz, g.env.Language()
	return func() tea.Msg {
		if svc == nil {
			return riverQuestionMsg{For: g, Question: quiz.FallbackRiverQuestion(lang, 0)}
		}
		q, generated := svc.RiverQuestion(ctx, lang)
		return riverQuestionMsg{For: g, Question: q, Generated: generated}
	}
}

func (g *quizGame) Update(msg tea.Msg) (outcome, tea.Cmd) {
	switch msg := msg.(type) {
	case riverQuestionMsg:
		if msg.For != g {
			return keepPlaying, nil
		}
		q := msg.Question
		g.question = &q
		g.generated = msg.Generated
		opts := make([]string, len(q.Options))
		for i, o := range q.Options {
			opts[i] = o.Text
		}
		g.mc = components.NewMultiChoice(q.Text, opts, q.CorrectIndex())
		return keepPlaying, nil

	case tea.KeyMsg:
		if g.question == nil {
			return keepPlaying, nil
		}
		if g.answered {
			if msg.String() != "enter" {
				return keepPlaying, nil
			}
			if g.target.Status() == minigame.Won {
				return finished, nil
			}
			return keepPlaying, g.fetch()
		}
		g.mc, _ = g.mc.Update(msg)
		if g.mc.Submitted {
			g.answered = true
			g.target.Record(g.mc.IsCorrect())
		}
	}
	return keepPlaying, nil
}

func (g *quizGame) KeyHints() []layout.KeyHint {
	if g.answered {
		return []layout.KeyHint{enterHint("Continue")}
	}
	return []layout.KeyHint{{Key: "↑↓", Description: "Choose"}, enterHint("Confirm")}
}

// River cleanup

type cleanupGame struct {
	env   *screen.Env
	c     *minigame.Cleanup
	names map[string]string
	tip   string
	mc    components.MultiChoice
	miss  string
}

func newCleanupGame(env *screen.Env, p catalog.RiverCleanupPayload) (*cleanupGame, error) {
	lang := env.Language()
	items := make([]minigame.Litter, len(p.Items))
	for i, it := range p.Items {
		items[i] = minigame.Litter{Name: it.Name.Get(lang), Bin: it.Bin}
	}
	c, err := minigame.NewCleanup(items)
	if err != nil {
		return nil, err
	}
	g := &cleanupGame{env: env, c: c, tip: p.Tip.Get(lang)}
	g.resetChoice()
	return g, nil
}

// resetChoice asks for the bin of the current item. The choice is judged
// by the cleanup core, so the selector has no correct index.
func (g *cleanupGame) resetChoice() {
	item, ok := g.c.Current()
	if !ok {
		return
	}
	bins := make([]string, len(minigame.Bins))
	for i, b := range minigame.Bins {
		bins[i] = g.env.T("gdetail_cleanup_bin_" + b)
	}
	g.mc = components.NewMultiChoice(g.env.T("gdetail_cleanup_question", item.Name), bins, -1)
}

func (g *cleanupGame) Init() tea.Cmd { return nil }

func (g *cleanupGame) Update(msg tea.Msg) (outcome, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); !ok {
		return keepPlaying, nil
	}
	g.mc, _ = g.mc.Update(msg)
	if !g.mc.Submitted {
		return keepPlaying, nil
	}
	item, _ := g.c.Current()
	hit, err := g.c.Drop(minigame.Bins[g.mc.ChosenIndex])
	if err != nil {
		return keepPlaying, nil
	}
	g.miss = ""
	if !hit {
		g.miss = item.Name
	}
	if g.c.Status() == minigame.Won {
		return finished, nil
	}
	g.resetChoice()
	return keepPlaying, nil
}

func (g *cleanupGame) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{{Key: "↑↓", Description: "Choose bin"}, enterHint("Drop")}
}

// Self-reported activities

type selfReportGame struct {
	env     *screen.Env
	stage   *catalog.Stage
	payload catalog.Payload
}

func (g *selfReportGame) Init() tea.Cmd { return nil }

func (g *selfReportGame) Update(msg tea.Msg) (outcome, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && k.String() == "enter" {
		return finished, nil
	}
	return keepPlaying, nil
}

func (g *selfReportGame) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{enterHint("Done")}
}

// details lists what the activity is about.
func (g *selfReportGame) details(lang i18n.Language) []string {
	switch p := g.payload.(type) {
	case catalog.PuzzlePayload:
		return []string{g.env.T("gdetail_puzzle_grid", p.Grid[0], p.Grid[1])}
	case catalog.MemoryPayload:
		return []string{g.env.T("gdetail_memory_words", strings.Join(p.Words.Get(lang), ", "))}
	case catalog.AnimalRescuePayload:
		names := make([]string, len(p.Animals))
		for i, a := range p.Animals {
			names[i] = a.Name.Get(lang)
		}
		return []string{g.env.T("gdetail_rescue_animals", strings.Join(names, ", "))}
	}
	return nil
}
