package vocab

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/rs/zerolog/log"

	"github.com/abhisek/wordwise/internal/llm"
)

// Purpose labels provider events emitted while supplying questions.
const Purpose = "vocab-question"

// Supplier produces one validated question per call. Each call may yield a
// different question; callers decide whether to call again after a failure.
type Supplier interface {
	RequestQuestion(ctx context.Context) (*Question, error)
}

// LLMSupplier implements Supplier on top of an llm.Provider.
type LLMSupplier struct {
	provider llm.Provider
	config   Config
}

// NewSupplier creates an LLMSupplier. A nil provider is allowed and makes
// every call fail with ErrNotConfigured, so a missing credential surfaces
// on the first fetch instead of at start-up.
func NewSupplier(provider llm.Provider, cfg Config) *LLMSupplier {
	return &LLMSupplier{provider: provider, config: cfg}
}

// RequestQuestion asks the provider for a question, strips an optional
// code fence, and validates the payload. Errors are always *SupplyError.
func (s *LLMSupplier) RequestQuestion(ctx context.Context) (*Question, error) {
	if s.provider == nil {
		return nil, notConfigured(nil)
	}

	ctx = llm.WithPurpose(ctx, Purpose)

	resp, err := s.provider.Generate(ctx, llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: questionPrompt},
		},
		Schema:      QuestionSchema,
		MaxTokens:   s.config.MaxTokens,
		Temperature: s.config.Temperature,
	})
	if err != nil {
		return nil, classifyProviderError(err)
	}

	q, err := s.decode(resp.Content)
	if err != nil {
		log.Warn().Err(err).Str("model", resp.Model).Msg("rejected vocabulary question")
		return nil, err
	}

	log.Debug().Str("word", q.Word).Int("correct_index", q.CorrectIndex).Msg("vocabulary question ready")
	return q, nil
}

// decode turns raw provider output into a validated Question.
func (s *LLMSupplier) decode(content json.RawMessage) (*Question, error) {
	cleaned := json.RawMessage(llm.StripCodeFence(string(content)))

	if err := llm.ValidateContent(QuestionSchema, cleaned); err != nil {
		var malformed *llm.ErrMalformedResponse
		if errors.As(err, &malformed) {
			return nil, &SupplyError{
				Kind:    KindMalformedResponse,
				Message: "Received a response that is not valid JSON.",
				Err:     err,
			}
		}
		return nil, invalidSchema(err)
	}

	var raw questionOutput
	if err := json.Unmarshal(cleaned, &raw); err != nil {
		return nil, invalidSchema(err)
	}
	if raw.CorrectSentenceIndex != math.Trunc(raw.CorrectSentenceIndex) {
		return nil, invalidSchema(fmt.Errorf("correctSentenceIndex %v is not an integer", raw.CorrectSentenceIndex))
	}

	q := &Question{
		Word:         raw.Word,
		Sentences:    raw.Sentences,
		CorrectIndex: int(raw.CorrectSentenceIndex),
		Explanation:  raw.Explanation,
	}

	for _, v := range s.config.Validators {
		if verr := v.Validate(q); verr != nil {
			return nil, invalidSchema(verr)
		}
	}

	return q, nil
}

func classifyProviderError(err error) *SupplyError {
	if errors.Is(err, llm.ErrNotConfigured) {
		return notConfigured(err)
	}

	var malformed *llm.ErrMalformedResponse
	var truncated *llm.ErrMaxTokensExceeded
	if errors.As(err, &malformed) || errors.As(err, &truncated) {
		return &SupplyError{
			Kind:    KindMalformedResponse,
			Message: "Received an incomplete response from the language model.",
			Err:     err,
		}
	}

	return &SupplyError{
		Kind:    KindTransportFailure,
		Message: fmt.Sprintf("Failed to fetch a question: %v", err),
		Err:     err,
	}
}

func notConfigured(cause error) *SupplyError {
	return &SupplyError{
		Kind:    KindNotConfigured,
		Message: "API Key is not configured. Cannot fetch question.",
		Err:     cause,
	}
}

func invalidSchema(cause error) *SupplyError {
	return &SupplyError{
		Kind:    KindInvalidSchema,
		Message: fmt.Sprintf("Received invalid data structure from API: %v", cause),
		Err:     cause,
	}
}
