// Package catalog holds the static guardian definitions: each guardian's
// story, unlock cost, final reward and ordered mini-game stages.
package catalog

import (
	"github.com/ecoamazonia/guardioes/internal/i18n"
)

// GameType identifies the mini-game played in a stage.
type GameType string

const (
	GamePuzzle          GameType = "puzzle"
	GameWordSearch      GameType = "wordsearch"
	GameRiddle          GameType = "riddle"
	GameMemory          GameType = "memory"
	GameAdventure       GameType = "educationalAdventure"
	GameRiverCleanup    GameType = "rivercleanup"
	GameAnimalRescue    GameType = "animalRescue"
	GameWordScramble    GameType = "wordScramble"
	GameTermo           GameType = "termo"
	GameInteractiveQuiz GameType = "interactiveQuiz"
)

// AllGameTypes lists every known game type.
var AllGameTypes = []GameType{
	GamePuzzle, GameWordSearch, GameRiddle, GameMemory, GameAdventure,
	GameRiverCleanup, GameAnimalRescue, GameWordScramble, GameTermo, GameInteractiveQuiz,
}

// Valid reports whether t is one of the known game types.
func (t GameType) Valid() bool {
	for _, g := range AllGameTypes {
		if g == t {
			return true
		}
	}
	return false
}

// DisplayName returns a short human-readable label.
func (t GameType) DisplayName() string {
	switch t {
	case GamePuzzle:
		return "Puzzle"
	case GameWordSearch:
		return "Word Search"
	case GameRiddle:
		return "Riddle"
	case GameMemory:
		return "Memory"
	case GameAdventure:
		return "Adventure"
	case GameRiverCleanup:
		return "River Cleanup"
	case GameAnimalRescue:
		return "Animal Rescue"
	case GameWordScramble:
		return "Word Scramble"
	case GameTermo:
		return "Secret Word"
	case GameInteractiveQuiz:
		return "Quiz"
	default:
		return string(t)
	}
}

// Guardian is an immutable catalog entry.
type Guardian struct {
	ID          int                  `yaml:"id"`
	Name        i18n.LocalizedString `yaml:"name"`
	Description i18n.LocalizedString `yaml:"description"`
	Story       i18n.LocalizedString `yaml:"story"`
	FinalQuote  i18n.LocalizedString `yaml:"finalQuote"`
	Image       string               `yaml:"image"`
	Cost        int                  `yaml:"cost"`
	FinalReward int                  `yaml:"finalReward"`
	Stages      []Stage              `yaml:"stages"`
}

// StageCount returns the number of stages in the journey.
func (g *Guardian) StageCount() int {
	return len(g.Stages)
}

// Stage returns the stage with the given 1-based number.
func (g *Guardian) Stage(n int) (*Stage, bool) {
	if n < 1 || n > len(g.Stages) {
		return nil, false
	}
	return &g.Stages[n-1], true
}

// TotalPoints sums the point values of every stage.
func (g *Guardian) TotalPoints() int {
	total := 0
	for _, s := range g.Stages {
		total += s.Points
	}
	return total
}

// Stage is one mini-game activity within a guardian's journey.
type Stage struct {
	Number       int
	Type         GameType
	Title        i18n.LocalizedString
	Instructions i18n.LocalizedString
	Points       int
	Payload      Payload
}
