// Package minigame holds the rules of the stage games that can be played
// in a terminal. Each core is a small state machine without I/O; the
// journey screen drives it and completes the stage attempt when it is won.
package minigame

import (
	"errors"

	"github.com/ecoamazonia/guardioes/internal/catalog"
)

var (
	ErrGameOver    = errors.New("game is over")
	ErrWrongLength = errors.New("guess has the wrong length")
	ErrOutOfRange  = errors.New("index out of range")
	ErrEmptyInput  = errors.New("no playable content")
)

// Status is the outcome of a game so far.
type Status int

const (
	Playing Status = iota
	Won
	Lost
)

func (s Status) String() string {
	switch s {
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "playing"
	}
}

// Mode says how a stage is played in the terminal.
type Mode string

const (
	ModeTermo           Mode = "termo"
	ModeScramble        Mode = "scramble"
	ModeRiddle          Mode = "riddle"
	ModeWordSearch      Mode = "wordsearch"
	ModeAdventure       Mode = "adventure"
	ModeInteractiveQuiz Mode = "interactive-quiz"
	ModeCleanup         Mode = "cleanup"

	// ModeSelfReport stages need pictures or dragging; the player does the
	// activity as described and confirms it.
	ModeSelfReport Mode = "self-report"
)

// ModeOf maps a stage's game type to how it is played.
func ModeOf(t catalog.GameType) Mode {
	switch t {
	case catalog.GameTermo:
		return ModeTermo
	case catalog.GameWordScramble:
		return ModeScramble
	case catalog.GameRiddle:
		return ModeRiddle
	case catalog.GameWordSearch:
		return ModeWordSearch
	case catalog.GameAdventure:
		return ModeAdventure
	case catalog.GameInteractiveQuiz:
		return ModeInteractiveQuiz
	case catalog.GameRiverCleanup:
		return ModeCleanup
	default:
		return ModeSelfReport
	}
}
