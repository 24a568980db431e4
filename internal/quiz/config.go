package quiz

// DefaultTopic is the subject of a quiz when none is chosen.
const DefaultTopic = "crise climática na Amazônia: desmatamento, consumo consciente e energias renováveis"

// Config holds quiz generation settings.
type Config struct {
	Questions        int // Questions per quiz.
	Options          int // Options per quiz question.
	RiverOptions     int // Options per river question.
	PointsPerCorrect int
	MaxTokens        int
	Temperature      float64
}

// DefaultConfig returns the standard quiz shape: five questions with four
// options each, and 10 PN per correct answer.
func DefaultConfig() Config {
	return Config{
		Questions:        5,
		Options:          4,
		RiverOptions:     3,
		PointsPerCorrect: 10,
		MaxTokens:        2048,
		Temperature:      0.7,
	}
}
