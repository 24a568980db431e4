package llm

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// compiled caches compiled schemas by Schema.Name.
var compiled sync.Map // map[string]*jsonschema.Schema

// decodeOutput turns the model's text into the response Content. With a
// schema the text must hold one JSON value that conforms to it; markdown
// fences and prose around the value are dropped first. Without a schema the
// text is returned as a JSON string.
func decodeOutput(schema *Schema, text string) (json.RawMessage, error) {
	if schema == nil {
		b, err := json.Marshal(text)
		if err != nil {
			return nil, err
		}
		return b, nil
	}

	raw := json.RawMessage(extractJSON(text))
	if err := validateResponse(schema, raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// extractJSON strips a ```json fence or leading/trailing prose around the
// outermost object.
func extractJSON(text string) string {
	s := strings.TrimSpace(text)
	if rest, ok := strings.CutPrefix(s, "```"); ok {
		if nl := strings.IndexByte(rest, '\n'); nl >= 0 {
			rest = rest[nl+1:]
		}
		s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(rest), "```"))
	}
	if strings.HasPrefix(s, "{") || strings.HasPrefix(s, "[") {
		return s
	}
	start, end := strings.IndexByte(s, '{'), strings.LastIndexByte(s, '}')
	if start >= 0 && end > start {
		return s[start : end+1]
	}
	return s
}

// validateResponse checks raw against schema. A nil schema accepts
// anything.
func validateResponse(schema *Schema, raw json.RawMessage) error {
	if schema == nil {
		return nil
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return &Error{Kind: KindInvalid, Content: raw, Err: errors.New("empty response")}
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return &Error{Kind: KindInvalid, Content: raw, Err: fmt.Errorf("not JSON: %w", err)}
	}

	sch, err := compileSchema(schema)
	if err != nil {
		// A broken schema is a programming error; retrying will not help.
		return fmt.Errorf("schema %q: %w", schema.Name, err)
	}
	if err := sch.Validate(doc); err != nil {
		return &Error{Kind: KindInvalid, Content: raw, Err: err}
	}
	return nil
}

func compileSchema(schema *Schema) (*jsonschema.Schema, error) {
	if sch, ok := compiled.Load(schema.Name); ok {
		return sch.(*jsonschema.Schema), nil
	}

	// Round-trip the Go map so the compiler sees plain JSON values.
	def, err := json.Marshal(schema.Definition)
	if err != nil {
		return nil, err
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(def))
	if err != nil {
		return nil, err
	}

	url := "mem://schemas/" + schema.Name + ".json"
	c := jsonschema.NewCompiler()
	if err := c.AddResource(url, doc); err != nil {
		return nil, err
	}
	sch, err := c.Compile(url)
	if err != nil {
		return nil, err
	}
	compiled.Store(schema.Name, sch)
	return sch, nil
}
