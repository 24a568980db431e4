package llm

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeOutput(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"plain", riverReply},
		{"fenced", "```json\n" + riverReply + "\n```"},
		{"bare fence", "```\n" + riverReply + "```"},
		{"prose around", "Aqui está a pergunta:\n" + riverReply + "\nBoa sorte!"},
		{"whitespace", "\n\t " + riverReply + " \n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeOutput(riverSchema(), tt.text)
			require.NoError(t, err)
			assert.JSONEq(t, riverReply, string(got))
		})
	}
}

func TestDecodeOutputWithoutSchema(t *testing.T) {
	got, err := decodeOutput(nil, `A floresta "respira"`)
	require.NoError(t, err)

	var s string
	require.NoError(t, json.Unmarshal(got, &s))
	assert.Equal(t, `A floresta "respira"`, s)
}

func TestValidateResponseRejects(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty", ``},
		{"not json", `{not json}`},
		{"missing feedback", `{"question":"Q","options":[{"text":"a","correct":true},{"text":"b","correct":false},{"text":"c","correct":false}]}`},
		{"two options", `{"question":"Q","options":[{"text":"a","correct":true},{"text":"b","correct":false}],"feedback":"f"}`},
		{"correct not boolean", `{"question":"Q","options":[{"text":"a","correct":"yes"},{"text":"b","correct":false},{"text":"c","correct":false}],"feedback":"f"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(riverSchema(), json.RawMessage(tt.raw))
			require.Error(t, err)
			assert.True(t, IsKind(err, KindInvalid), "got %v", err)

			var perr *Error
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, tt.raw, string(perr.Content))
		})
	}
}

func TestValidateResponseNilSchema(t *testing.T) {
	assert.NoError(t, validateResponse(nil, json.RawMessage(`anything`)))
}

func TestCompileSchemaIsCached(t *testing.T) {
	s := riverSchema()
	s.Name = "test-cache"
	first, err := compileSchema(s)
	require.NoError(t, err)
	second, err := compileSchema(s)
	require.NoError(t, err)
	assert.Same(t, first, second)
}
