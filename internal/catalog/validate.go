package catalog

import (
	"fmt"
	"slices"
	"strings"
)

// validateGuardians performs the structural checks required for a journey
// to be well-formed. Returns a combined error describing all problems found.
//
// Empty variant lists are not rejected here: they surface when the stage is
// played. Lint reports them ahead of time.
func validateGuardians(guardians []Guardian) error {
	var errs []string

	ids := make(map[int]bool, len(guardians))
	for _, g := range guardians {
		if ids[g.ID] {
			errs = append(errs, fmt.Sprintf("duplicate guardian ID: %d", g.ID))
		}
		ids[g.ID] = true

		if g.ID <= 0 {
			errs = append(errs, fmt.Sprintf("guardian ID must be positive, got %d", g.ID))
		}
		if g.Name.Get("") == "" {
			errs = append(errs, fmt.Sprintf("guardian %d has no name", g.ID))
		}
		if g.Cost < 0 {
			errs = append(errs, fmt.Sprintf("guardian %d has negative cost %d", g.ID, g.Cost))
		}
		if g.FinalReward < 0 {
			errs = append(errs, fmt.Sprintf("guardian %d has negative final reward %d", g.ID, g.FinalReward))
		}
		if len(g.Stages) == 0 {
			errs = append(errs, fmt.Sprintf("guardian %d has no stages", g.ID))
		}

		for i, s := range g.Stages {
			if s.Number != i+1 {
				errs = append(errs, fmt.Sprintf("guardian %d: stage at position %d is numbered %d", g.ID, i+1, s.Number))
			}
			if !s.Type.Valid() {
				errs = append(errs, fmt.Sprintf("guardian %d stage %d: unknown game type %q", g.ID, s.Number, s.Type))
			}
			if s.Points <= 0 {
				errs = append(errs, fmt.Sprintf("guardian %d stage %d: points must be positive, got %d", g.ID, s.Number, s.Points))
			}
			if s.Payload == nil {
				errs = append(errs, fmt.Sprintf("guardian %d stage %d: missing payload", g.ID, s.Number))
			} else if s.Payload.GameType() != s.Type {
				errs = append(errs, fmt.Sprintf("guardian %d stage %d: payload is %s, stage is %s", g.ID, s.Number, s.Payload.GameType(), s.Type))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("guardian catalog validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

// Lint reports content problems that do not prevent loading but will block
// a journey when the affected stage is reached.
func (c *Catalog) Lint() []string {
	var warnings []string
	for i := range c.guardians {
		g := &c.guardians[i]
		for _, w := range g.Lint() {
			warnings = append(warnings, fmt.Sprintf("guardian %d %s", g.ID, w))
		}
	}
	return warnings
}

// Lint reports the content problems of g's stages.
func (g *Guardian) Lint() []string {
	var warnings []string
	for _, s := range g.Stages {
		for _, w := range lintStage(s) {
			warnings = append(warnings, fmt.Sprintf("stage %d: %s", s.Number, w))
		}
	}
	return warnings
}

func lintStage(s Stage) []string {
	var out []string
	switch p := s.Payload.(type) {
	case WordSearchPayload:
		if len(p.WordSets) == 0 && len(p.Words) == 0 {
			out = append(out, "word search has no word sets")
		}
		if p.Size <= 0 {
			out = append(out, "word search has no grid size")
		}
	case TermoPayload:
		if len(p.WordList) == 0 {
			out = append(out, "secret word list is empty")
		}
		for i, w := range p.WordList {
			for lang, word := range w.Word {
				if len([]rune(word)) != 5 {
					out = append(out, fmt.Sprintf("secret word %d (%s) %q is not 5 letters", i+1, lang, word))
				}
			}
		}
	case WordScramblePayload:
		if !p.Sentence.Complete() {
			out = append(out, "scramble sentence is missing a language")
		}
	case AdventurePayload:
		if len(p.Phases) == 0 {
			out = append(out, "adventure has no phases")
		}
		for i, ph := range p.Phases {
			correct := 0
			for _, o := range ph.Challenge.Options {
				if o.Correct {
					correct++
				}
			}
			if correct == 0 {
				out = append(out, fmt.Sprintf("adventure phase %d has no correct option", i+1))
			}
		}
	case RiddlePayload:
		if len(p.Answers) == 0 {
			out = append(out, "riddle has no answers")
		}
	case MemoryPayload:
		if len(p.Words) == 0 {
			out = append(out, "memory game has no words")
		}
	case RiverCleanupPayload:
		if len(p.Items) == 0 {
			out = append(out, "river cleanup has no items")
		}
		for _, it := range p.Items {
			if !slices.Contains(CleanupBins, it.Bin) {
				out = append(out, fmt.Sprintf("river cleanup item %d has unknown bin %q", it.ID, it.Bin))
			}
		}
	case AnimalRescuePayload:
		if len(p.Animals) == 0 {
			out = append(out, "animal rescue has no animals")
		}
	case PuzzlePayload:
		if p.Grid[0] <= 0 || p.Grid[1] <= 0 {
			out = append(out, "puzzle grid must be positive")
		}
	case InteractiveQuizPayload:
	}
	return out
}
