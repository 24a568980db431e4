package quiz

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ecoamazonia/guardioes/internal/i18n"
	"github.com/ecoamazonia/guardioes/internal/llm"
)

// Generator produces quiz content with an LLM provider.
type Generator struct {
	provider llm.Provider
	cfg      Config
}

// NewGenerator creates a Generator using provider.
func NewGenerator(provider llm.Provider, cfg Config) *Generator {
	return &Generator{provider: provider, cfg: cfg}
}

type quizOutput struct {
	Quiz []struct {
		Question      string   `json:"question"`
		Options       []string `json:"options"`
		CorrectAnswer string   `json:"correct_answer"`
		Explanation   string   `json:"explanation"`
	} `json:"quiz"`
}

type riverOutput struct {
	Question string `json:"question"`
	Options  []struct {
		Text    string `json:"text"`
		Correct bool   `json:"correct"`
	} `json:"options"`
	Feedback string `json:"feedback"`
}

// GenerateQuestions asks the provider for a batch of questions about topic
// in lang. The result is validated; any defect is returned as an error.
func (g *Generator) GenerateQuestions(ctx context.Context, topic string, lang i18n.Language) ([]Question, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeQuiz)
	if strings.TrimSpace(topic) == "" {
		topic = DefaultTopic
	}

	resp, err := g.provider.Generate(ctx, llm.Request{
		System:      systemPrompt,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: buildQuizMessage(topic, lang, g.cfg)}},
		Schema:      QuizSchema,
		MaxTokens:   g.cfg.MaxTokens,
		Temperature: g.cfg.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("quiz generation: %w", err)
	}

	var out quizOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse quiz response: %w", err)
	}

	qs := make([]Question, 0, len(out.Quiz))
	for _, raw := range out.Quiz {
		opts := make([]string, len(raw.Options))
		for i, o := range raw.Options {
			opts[i] = strings.TrimSpace(o)
		}
		qs = append(qs, Question{
			Text:        strings.TrimSpace(raw.Question),
			Options:     opts,
			Answer:      strings.TrimSpace(raw.CorrectAnswer),
			Explanation: strings.TrimSpace(raw.Explanation),
		})
	}
	if err := validateQuestions(qs, g.cfg); err != nil {
		return nil, err
	}
	return qs, nil
}

// GenerateRiverQuestion asks the provider for one river question in lang.
// It fails unless the question has exactly RiverOptions options with
// exactly one marked correct.
func (g *Generator) GenerateRiverQuestion(ctx context.Context, lang i18n.Language) (*RiverQuestion, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeRiverQuestion)

	resp, err := g.provider.Generate(ctx, llm.Request{
		System:      systemPrompt,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: buildRiverMessage(lang, g.cfg)}},
		Schema:      RiverQuestionSchema,
		MaxTokens:   g.cfg.MaxTokens / 4,
		Temperature: g.cfg.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("river question generation: %w", err)
	}

	var out riverOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse river question response: %w", err)
	}

	q := &RiverQuestion{
		Text:     strings.TrimSpace(out.Question),
		Feedback: strings.TrimSpace(out.Feedback),
	}
	for _, o := range out.Options {
		q.Options = append(q.Options, RiverOption{Text: strings.TrimSpace(o.Text), Correct: o.Correct})
	}
	if err := validateRiverQuestion(*q, g.cfg); err != nil {
		return nil, err
	}
	return q, nil
}
