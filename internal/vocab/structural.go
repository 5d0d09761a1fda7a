package vocab

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// StructuralValidator enforces the question shape: non-empty word and
// explanation, exactly three sentences each carrying one placeholder, and
// an in-range correct index.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(q *Question) *ValidationError {
	fail := func(format string, args ...any) *ValidationError {
		return &ValidationError{Validator: v.Name(), Message: fmt.Sprintf(format, args...)}
	}

	if strings.TrimSpace(q.Word) == "" {
		return fail("word is empty")
	}
	if strings.TrimSpace(q.Explanation) == "" {
		return fail("explanation is empty")
	}
	if len(q.Sentences) != SentenceCount {
		return fail("expected %d sentences, got %d", SentenceCount, len(q.Sentences))
	}
	if _, i, found := lo.FindIndexOf(q.Sentences, func(s string) bool {
		return strings.Count(s, Placeholder) != 1
	}); found {
		return fail("sentence %d must contain the %q placeholder exactly once", i+1, Placeholder)
	}
	if q.CorrectIndex < 0 || q.CorrectIndex >= SentenceCount {
		return fail("correctSentenceIndex %d out of range 0-%d", q.CorrectIndex, SentenceCount-1)
	}
	return nil
}

// DistinctSentencesValidator rejects questions that repeat a sentence,
// which would leave the player two identical choices.
type DistinctSentencesValidator struct{}

func (v *DistinctSentencesValidator) Name() string { return "distinct-sentences" }

func (v *DistinctSentencesValidator) Validate(q *Question) *ValidationError {
	normalized := lo.Map(q.Sentences, func(s string, _ int) string {
		return strings.ToLower(strings.TrimSpace(s))
	})
	if len(lo.Uniq(normalized)) != len(normalized) {
		return &ValidationError{Validator: v.Name(), Message: "sentences are not distinct"}
	}
	return nil
}
