package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func testSchema() *Schema {
	return &Schema{
		Name:        "test-word",
		Description: "A test object",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"word":  map[string]any{"type": "string", "minLength": 1},
				"index": map[string]any{"type": "integer", "minimum": 0, "maximum": 2},
				"tags": map[string]any{
					"type":     "array",
					"items":    map[string]any{"type": "string"},
					"maxItems": 2,
				},
			},
			"required": []any{"word", "index"},
		},
	}
}

func TestValidateContent(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string // "", "malformed" or "invalid"
	}{
		{"valid", `{"word":"eloquent","index":0}`, ""},
		{"valid with optional", `{"word":"eloquent","index":2,"tags":["a"]}`, ""},
		{"missing required", `{"word":"eloquent"}`, "invalid"},
		{"wrong type", `{"word":"eloquent","index":"zero"}`, "invalid"},
		{"out of range", `{"word":"eloquent","index":3}`, "invalid"},
		{"too many items", `{"word":"eloquent","index":0,"tags":["a","b","c"]}`, "invalid"},
		{"empty string", `{"word":"","index":0}`, "invalid"},
		{"not json", `{not json}`, "malformed"},
		{"prose", `Here is your question!`, "malformed"},
		{"empty", ``, "malformed"},
		{"whitespace", "  \n ", "malformed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateContent(testSchema(), json.RawMessage(tt.raw))

			var malformed *ErrMalformedResponse
			var invalid *ErrInvalidResponse
			switch tt.want {
			case "":
				if err != nil {
					t.Fatalf("expected no error, got: %v", err)
				}
			case "malformed":
				if !errors.As(err, &malformed) {
					t.Fatalf("expected ErrMalformedResponse, got: %T (%v)", err, err)
				}
			case "invalid":
				if !errors.As(err, &invalid) {
					t.Fatalf("expected ErrInvalidResponse, got: %T (%v)", err, err)
				}
			}
		})
	}
}

func TestValidateContent_NilSchema(t *testing.T) {
	if err := ValidateContent(nil, json.RawMessage(`[1,2,3]`)); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	var malformed *ErrMalformedResponse
	if err := ValidateContent(nil, json.RawMessage(`[1,2`)); !errors.As(err, &malformed) {
		t.Fatalf("expected ErrMalformedResponse, got: %T", err)
	}
}
