package journey

import (
	"github.com/ecoamazonia/guardioes/internal/quiz"
)

// settledMsg is sent when the loading delay is over and the journey has
// settled on its first view.
type settledMsg struct {
	Err error
}

// riverQuestionMsg delivers a question to the interactive quiz game that
// asked for it.
type riverQuestionMsg struct {
	For       *quizGame
	Question  quiz.RiverQuestion
	Generated bool
}
