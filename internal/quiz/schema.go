package quiz

import "github.com/ecoamazonia/guardioes/internal/llm"

// QuizSchema defines the JSON schema for a batch of quiz questions.
var QuizSchema = &llm.Schema{
	Name:        "climate-quiz",
	Description: "A list of multiple-choice questions about the climate crisis in the Amazon",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"quiz": map[string]any{
				"type":        "array",
				"description": "The quiz questions",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question": map[string]any{
							"type":        "string",
							"description": "The question text",
						},
						"options": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "Exactly 4 answer options",
						},
						"correct_answer": map[string]any{
							"type":        "string",
							"description": "The correct answer, copied exactly from options",
						},
						"explanation": map[string]any{
							"type":        "string",
							"description": "A short explanation of why the answer is correct",
						},
					},
					"required":             []any{"question", "options", "correct_answer", "explanation"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"quiz"},
		"additionalProperties": false,
	},
}

// RiverQuestionSchema defines the JSON schema for a single river question.
var RiverQuestionSchema = &llm.Schema{
	Name:        "river-question",
	Description: "One multiple-choice question about river preservation and aquatic life",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question": map[string]any{
				"type":        "string",
				"description": "The question text",
			},
			"options": map[string]any{
				"type":        "array",
				"description": "Exactly 3 options, exactly one marked correct",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"text":    map[string]any{"type": "string"},
						"correct": map[string]any{"type": "boolean"},
					},
					"required":             []any{"text", "correct"},
					"additionalProperties": false,
				},
			},
			"feedback": map[string]any{
				"type":        "string",
				"description": "Short positive feedback for the correct answer",
			},
		},
		"required":             []any{"question", "options", "feedback"},
		"additionalProperties": false,
	},
}
