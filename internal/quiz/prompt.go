package quiz

import (
	"fmt"

	"github.com/ecoamazonia/guardioes/internal/i18n"
)

const systemPrompt = `You write short educational questions for a game about protecting the Amazon rainforest.
Players are children and teenagers. Keep questions factual, friendly and free of markdown.
Every text you produce (questions, options, explanations, feedback) must be written in the language the user asks for.`

// languageName names lang in English for use inside prompts.
func languageName(lang i18n.Language) string {
	switch lang {
	case i18n.English:
		return "English"
	case i18n.Spanish:
		return "Spanish"
	default:
		return "Brazilian Portuguese"
	}
}

func buildQuizMessage(topic string, lang i18n.Language, cfg Config) string {
	return fmt.Sprintf(
		"Write %d multiple-choice questions in %s about: %s.\n"+
			"Each question has exactly %d options. correct_answer must be copied exactly from options. "+
			"Add a brief explanation of why the answer is correct.",
		cfg.Questions, languageName(lang), topic, cfg.Options)
}

func buildRiverMessage(lang i18n.Language, cfg Config) string {
	return fmt.Sprintf(
		"Write one multiple-choice question in %s about preserving rivers and aquatic life in the Amazon.\n"+
			"Give exactly %d options where exactly one has correct set to true, "+
			"and a short positive feedback message for the correct answer.",
		languageName(lang), cfg.RiverOptions)
}
