package quiz

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap/zaptest"

	"github.com/ecoamazonia/guardioes/internal/i18n"
	"github.com/ecoamazonia/guardioes/internal/llm"
)

func TestMain(m *testing.M) {
	// genai links opencensus, whose stats worker starts in init.
	goleak.VerifyTestMain(m, goleak.IgnoreTopFunction("go.opencensus.io/stats/view.(*worker).start"))
}

func quizJSON(n int) json.RawMessage {
	items := make([]string, n)
	for i := range items {
		items[i] = fmt.Sprintf(`{
			"question": "  Pergunta %d?  ",
			"options": ["A%d", "B%d", "C%d", "D%d"],
			"correct_answer": "B%d ",
			"explanation": "Porque sim."
		}`, i, i, i, i, i, i)
	}
	return json.RawMessage(`{"quiz":[` + strings.Join(items, ",") + `]}`)
}

const riverJSON = `{
	"question": "Como proteger o rio?",
	"options": [
		{"text": "Jogar lixo", "correct": false},
		{"text": "Recolher o lixo", "correct": true},
		{"text": "Ignorar", "correct": false}
	],
	"feedback": "Muito bem!"
}`

func TestGenerateQuestions(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: quizJSON(5)})
	gen := NewGenerator(mock, DefaultConfig())

	qs, err := gen.GenerateQuestions(context.Background(), "", i18n.Spanish)
	require.NoError(t, err)
	require.Len(t, qs, 5)

	assert.Equal(t, "Pergunta 0?", qs[0].Text)
	assert.Equal(t, "B0", qs[0].Answer)
	assert.True(t, qs[0].IsCorrect("B0"))
	assert.Len(t, qs[0].Options, 4)

	require.Equal(t, 1, mock.CallCount())
	req := mock.Calls[0]
	assert.Equal(t, QuizSchema, req.Schema)
	assert.Contains(t, req.Messages[0].Content, "Spanish")
	assert.Contains(t, req.Messages[0].Content, DefaultTopic)
}

func TestGenerateQuestionsRejectsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"too few questions", string(quizJSON(3))},
		{"answer not in options", `{"quiz":[` + strings.Repeat(`{"question":"Q","options":["a","b","c","d"],"correct_answer":"e","explanation":"x"},`, 4) +
			`{"question":"Q","options":["a","b","c","d"],"correct_answer":"e","explanation":"x"}]}`},
		{"three options", `{"quiz":[` + strings.Repeat(`{"question":"Q","options":["a","b","c"],"correct_answer":"a","explanation":"x"},`, 4) +
			`{"question":"Q","options":["a","b","c"],"correct_answer":"a","explanation":"x"}]}`},
		{"not json", `quiz`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(tt.content)})
			_, err := NewGenerator(mock, DefaultConfig()).GenerateQuestions(context.Background(), "rios", i18n.Portuguese)
			assert.Error(t, err)
		})
	}
}

func TestValidateQuestionDuplicates(t *testing.T) {
	err := validateQuestion(Question{Text: "Q", Options: []string{"a", "a", "b", "c"}, Answer: "a"}, 4)
	require.NotNil(t, err)
	assert.Contains(t, err.Message, "duplicate")
}

func TestGenerateRiverQuestion(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(riverJSON)})
	q, err := NewGenerator(mock, DefaultConfig()).GenerateRiverQuestion(context.Background(), i18n.Portuguese)
	require.NoError(t, err)
	assert.Equal(t, 1, q.CorrectIndex())
	assert.Equal(t, "Muito bem!", q.Feedback)
	assert.Equal(t, RiverQuestionSchema, mock.Calls[0].Schema)
}

func TestGenerateRiverQuestionRejectsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"two correct", `{"question":"Q","options":[{"text":"a","correct":true},{"text":"b","correct":true},{"text":"c","correct":false}],"feedback":"f"}`},
		{"none correct", `{"question":"Q","options":[{"text":"a","correct":false},{"text":"b","correct":false},{"text":"c","correct":false}],"feedback":"f"}`},
		{"four options", `{"question":"Q","options":[{"text":"a","correct":true},{"text":"b","correct":false},{"text":"c","correct":false},{"text":"d","correct":false}],"feedback":"f"}`},
		{"empty question", `{"question":" ","options":[{"text":"a","correct":true},{"text":"b","correct":false},{"text":"c","correct":false}],"feedback":"f"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(tt.content)})
			_, err := NewGenerator(mock, DefaultConfig()).GenerateRiverQuestion(context.Background(), i18n.Portuguese)
			var verr *ValidationError
			assert.True(t, errors.As(err, &verr), "want ValidationError, got %v", err)
		})
	}
}

func TestServiceFallsBack(t *testing.T) {
	ctx := context.Background()
	logger := zaptest.NewLogger(t)

	t.Run("no provider", func(t *testing.T) {
		svc := NewService(nil, WithLogger(logger))
		assert.False(t, svc.Available())
		set := svc.Questions(ctx, "", i18n.English)
		assert.True(t, set.Fallback)
		assert.Equal(t, FallbackQuestions(i18n.English), set.Questions)
	})

	t.Run("provider error", func(t *testing.T) {
		mock := llm.NewMockProvider(llm.MockResponse{Err: errors.New("quota exceeded")})
		svc := NewService(mock, WithLogger(logger))
		set := svc.Questions(ctx, "energia", i18n.Portuguese)
		assert.True(t, set.Fallback)
		assert.Equal(t, "energia", set.Topic)
		assert.NotEmpty(t, set.Questions)
	})

	t.Run("generated", func(t *testing.T) {
		mock := llm.NewMockProvider(llm.MockResponse{Content: quizJSON(5)})
		svc := NewService(mock, WithLogger(logger))
		set := svc.Questions(ctx, "", i18n.Portuguese)
		assert.False(t, set.Fallback)
		assert.Len(t, set.Questions, 5)
	})

	t.Run("river question cycles built-ins", func(t *testing.T) {
		svc := NewService(nil, WithLogger(logger))
		first, generated := svc.RiverQuestion(ctx, i18n.Spanish)
		assert.False(t, generated)
		second, _ := svc.RiverQuestion(ctx, i18n.Spanish)
		assert.NotEqual(t, first.Text, second.Text)
	})

	t.Run("invalid river question", func(t *testing.T) {
		mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"question":"Q","options":[],"feedback":""}`)})
		svc := NewService(mock, WithLogger(logger))
		q, generated := svc.RiverQuestion(ctx, i18n.Portuguese)
		assert.False(t, generated)
		assert.Equal(t, 3, len(q.Options))
	})
}

func TestFallbackContentIsValid(t *testing.T) {
	cfg := DefaultConfig()
	for _, lang := range i18n.Languages {
		t.Run(string(lang), func(t *testing.T) {
			assert.NoError(t, validateQuestions(FallbackQuestions(lang), cfg))
			for n := range len(fallbackRiverQuestions[lang]) {
				assert.NoError(t, validateRiverQuestion(FallbackRiverQuestion(lang, n), cfg))
			}
		})
	}
}

func TestRound(t *testing.T) {
	set := Set{Questions: FallbackQuestions(i18n.Portuguese)}
	r := NewRound(set, 10)
	require.Equal(t, 5, r.Len())

	_, err := r.Next()
	assert.ErrorIs(t, err, ErrNotAnswered)

	q, ok := r.Current()
	require.True(t, ok)
	_, err = r.Answer("not an option")
	assert.ErrorIs(t, err, ErrUnknownOption)

	correct, err := r.Answer(q.Answer)
	require.NoError(t, err)
	assert.True(t, correct)
	_, err = r.Answer(q.Answer)
	assert.ErrorIs(t, err, ErrAlreadyAnswered)

	for !r.Done() {
		more, err := r.Next()
		require.NoError(t, err)
		if !more {
			break
		}
		q, _ := r.Current()
		wrong := q.Options[0]
		if wrong == q.Answer {
			wrong = q.Options[1]
		}
		_, err = r.Answer(wrong)
		require.NoError(t, err)
	}

	assert.True(t, r.Done())
	assert.Equal(t, 1, r.Correct())
	assert.Equal(t, 10, r.Points())
	_, err = r.Answer("x")
	assert.ErrorIs(t, err, ErrRoundOver)
}
