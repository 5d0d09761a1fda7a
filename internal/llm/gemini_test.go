package llm

import (
	"testing"
)

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-flash", "gemini-2.5-flash"},
		{"gemini-pro", "gemini-2.5-pro"},
		{"gemini-lite", "gemini-2.5-flash-lite"},
		{"gemini-2.5-flash-preview-04-17", "gemini-2.5-flash-preview-04-17"},
	}
	for _, tt := range tests {
		got := resolveModel(tt.input, geminiModels)
		if got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestBuildGeminiSchema(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"word": map[string]any{"type": "string", "minLength": 1},
			"sentences": map[string]any{
				"type":     "array",
				"items":    map[string]any{"type": "string"},
				"minItems": 3,
				"maxItems": 3,
			},
			"correctSentenceIndex": map[string]any{"type": "integer", "minimum": 0, "maximum": 2},
			"level":                map[string]any{"type": "string", "enum": []any{"easy", "hard"}},
		},
		"required": []any{"word", "sentences", "correctSentenceIndex"},
	}

	schema := buildGeminiSchema(def)

	if schema.Type != "OBJECT" {
		t.Fatalf("expected OBJECT type, got %s", schema.Type)
	}
	if len(schema.Properties) != 4 {
		t.Fatalf("expected 4 properties, got %d", len(schema.Properties))
	}
	if len(schema.Required) != 3 {
		t.Fatalf("expected 3 required fields, got %d", len(schema.Required))
	}

	word := schema.Properties["word"]
	if word.Type != "STRING" || word.MinLength == nil || *word.MinLength != 1 {
		t.Fatalf("unexpected word schema: %+v", word)
	}

	sentences := schema.Properties["sentences"]
	if sentences.Type != "ARRAY" || sentences.Items.Type != "STRING" {
		t.Fatalf("unexpected sentences schema: %+v", sentences)
	}
	if sentences.MinItems == nil || *sentences.MinItems != 3 {
		t.Fatalf("expected minItems 3, got %v", sentences.MinItems)
	}
	if sentences.MaxItems == nil || *sentences.MaxItems != 3 {
		t.Fatalf("expected maxItems 3, got %v", sentences.MaxItems)
	}

	idx := schema.Properties["correctSentenceIndex"]
	if idx.Type != "INTEGER" {
		t.Fatalf("expected INTEGER, got %s", idx.Type)
	}
	if idx.Minimum == nil || *idx.Minimum != 0 || idx.Maximum == nil || *idx.Maximum != 2 {
		t.Fatalf("unexpected index bounds: %v..%v", idx.Minimum, idx.Maximum)
	}

	if len(schema.Properties["level"].Enum) != 2 {
		t.Fatalf("expected 2 enum values, got %d", len(schema.Properties["level"].Enum))
	}
}
