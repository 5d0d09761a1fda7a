package vocab

import "github.com/abhisek/wordwise/internal/llm"

// QuestionSchema defines the JSON schema for LLM vocabulary question responses.
var QuestionSchema = &llm.Schema{
	Name:        "vocab-question",
	Description: "A vocabulary word, three fill-in-the-blank sentences and an explanation",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"word": map[string]any{
				"type":        "string",
				"minLength":   1,
				"description": "A single vocabulary word suitable for a 7th grader",
			},
			"sentences": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":    "string",
					"pattern": Placeholder,
				},
				"minItems":    SentenceCount,
				"maxItems":    SentenceCount,
				"description": "Three distinct sentences, each with the word replaced by '_____'",
			},
			"correctSentenceIndex": map[string]any{
				"type":        "integer",
				"minimum":     0,
				"maximum":     SentenceCount - 1,
				"description": "Index of the sentence where the word fits",
			},
			"explanation": map[string]any{
				"type":        "string",
				"minLength":   1,
				"description": "What the word means and why it fits the correct sentence",
			},
		},
		"required":             []any{"word", "sentences", "correctSentenceIndex", "explanation"},
		"additionalProperties": false,
	},
}
