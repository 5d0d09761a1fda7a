package vocab

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validQuestion() *Question {
	return &Question{
		Word:         "eloquent",
		Sentences:    []string{"A _____ house.", "An _____ speech.", "He _____ ate."},
		CorrectIndex: 1,
		Explanation:  "Eloquent means fluent or persuasive.",
	}
}

func TestStructuralValidator(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(q *Question)
		wantErr string
	}{
		{"valid", func(q *Question) {}, ""},
		{"empty word", func(q *Question) { q.Word = "" }, "word is empty"},
		{"empty explanation", func(q *Question) { q.Explanation = " " }, "explanation is empty"},
		{"two sentences", func(q *Question) { q.Sentences = q.Sentences[:2] }, "expected 3 sentences, got 2"},
		{"missing placeholder", func(q *Question) { q.Sentences[2] = "He ate." }, "sentence 3"},
		{"index too high", func(q *Question) { q.CorrectIndex = 3 }, "out of range"},
		{"index negative", func(q *Question) { q.CorrectIndex = -1 }, "out of range"},
	}

	v := &StructuralValidator{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := validQuestion()
			tt.mutate(q)
			err := v.Validate(q)
			if tt.wantErr == "" {
				assert.Nil(t, err)
				return
			}
			if assert.NotNil(t, err) {
				assert.Equal(t, "structural", err.Validator)
				assert.Contains(t, err.Message, tt.wantErr)
			}
		})
	}
}

func TestDistinctSentencesValidator(t *testing.T) {
	v := &DistinctSentencesValidator{}
	assert.Nil(t, v.Validate(validQuestion()))

	q := validQuestion()
	q.Sentences[2] = "  a _____ HOUSE. "
	assert.NotNil(t, v.Validate(q))
}
