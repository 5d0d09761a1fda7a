package vocab

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/wordwise/internal/llm"
)

const eloquentJSON = `{
  "word": "eloquent",
  "sentences": ["A _____ house.", "An _____ speech.", "He _____ ate."],
  "correctSentenceIndex": 1,
  "explanation": "Eloquent means fluent or persuasive in speaking or writing."
}`

func supplierWith(responses ...llm.MockResponse) (*LLMSupplier, *llm.MockProvider) {
	mock := llm.NewMockProvider(responses...)
	return NewSupplier(mock, DefaultConfig()), mock
}

func content(s string) llm.MockResponse {
	return llm.MockResponse{Content: json.RawMessage(s)}
}

func TestRequestQuestion_Valid(t *testing.T) {
	s, mock := supplierWith(content(eloquentJSON))

	q, err := s.RequestQuestion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "eloquent", q.Word)
	assert.Len(t, q.Sentences, 3)
	assert.Equal(t, 1, q.CorrectIndex)
	assert.NotEmpty(t, q.Explanation)

	require.Equal(t, 1, mock.CallCount())
	call := mock.Calls[0]
	assert.Equal(t, QuestionSchema, call.Schema)
	require.Len(t, call.Messages, 1)
	assert.Contains(t, call.Messages[0].Content, "7th-grade")
}

func TestRequestQuestion_CodeFences(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"json tag", "```json\n" + eloquentJSON + "\n```"},
		{"no tag", "```\n" + eloquentJSON + "\n```"},
		{"padded", "\n\n  ```json\n" + eloquentJSON + "\n```  \n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := supplierWith(content(tt.body))
			q, err := s.RequestQuestion(context.Background())
			require.NoError(t, err)
			assert.Equal(t, "eloquent", q.Word)
		})
	}
}

func TestRequestQuestion_IntegralFloatIndex(t *testing.T) {
	body := `{"word":"eloquent","sentences":["A _____.","B _____.","C _____."],"correctSentenceIndex":2.0,"explanation":"x"}`
	s, _ := supplierWith(content(body))

	q, err := s.RequestQuestion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, q.CorrectIndex)
}

func TestRequestQuestion_InvalidSchema(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"two sentences", `{"word":"w","sentences":["A _____.","B _____."],"correctSentenceIndex":0,"explanation":"x"}`},
		{"four sentences", `{"word":"w","sentences":["A _____.","B _____.","C _____.","D _____."],"correctSentenceIndex":0,"explanation":"x"}`},
		{"index three", `{"word":"w","sentences":["A _____.","B _____.","C _____."],"correctSentenceIndex":3,"explanation":"x"}`},
		{"negative index", `{"word":"w","sentences":["A _____.","B _____.","C _____."],"correctSentenceIndex":-1,"explanation":"x"}`},
		{"fractional index", `{"word":"w","sentences":["A _____.","B _____.","C _____."],"correctSentenceIndex":1.5,"explanation":"x"}`},
		{"missing placeholder", `{"word":"w","sentences":["A _____.","B blank.","C _____."],"correctSentenceIndex":0,"explanation":"x"}`},
		{"double placeholder", `{"word":"w","sentences":["A _____ _____.","B _____.","C _____."],"correctSentenceIndex":0,"explanation":"x"}`},
		{"empty word", `{"word":"","sentences":["A _____.","B _____.","C _____."],"correctSentenceIndex":0,"explanation":"x"}`},
		{"blank word", `{"word":"   ","sentences":["A _____.","B _____.","C _____."],"correctSentenceIndex":0,"explanation":"x"}`},
		{"missing explanation", `{"word":"w","sentences":["A _____.","B _____.","C _____."],"correctSentenceIndex":0}`},
		{"index as string", `{"word":"w","sentences":["A _____.","B _____.","C _____."],"correctSentenceIndex":"1","explanation":"x"}`},
		{"extra field", `{"word":"w","sentences":["A _____.","B _____.","C _____."],"correctSentenceIndex":0,"explanation":"x","hint":"h"}`},
		{"duplicate sentences", `{"word":"w","sentences":["A _____.","a _____.","C _____."],"correctSentenceIndex":0,"explanation":"x"}`},
		{"array payload", `[1,2,3]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := supplierWith(content(tt.body))
			q, err := s.RequestQuestion(context.Background())
			assert.Nil(t, q)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidSchema)

			var se *SupplyError
			require.ErrorAs(t, err, &se)
			assert.Equal(t, KindInvalidSchema, se.Kind)
			assert.Contains(t, se.Message, "invalid data structure")
		})
	}
}

func TestRequestQuestion_Malformed(t *testing.T) {
	for _, body := range []string{`{"word":`, `Here is a question for you!`, ``, "```json\n```"} {
		t.Run(fmt.Sprintf("%q", body), func(t *testing.T) {
			s, _ := supplierWith(content(body))
			_, err := s.RequestQuestion(context.Background())
			assert.ErrorIs(t, err, ErrMalformedResponse)
		})
	}
}

func TestRequestQuestion_Truncated(t *testing.T) {
	s, _ := supplierWith(llm.MockResponse{Err: &llm.ErrMaxTokensExceeded{Content: json.RawMessage(`{"word":`)}})

	_, err := s.RequestQuestion(context.Background())
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestRequestQuestion_TransportFailure(t *testing.T) {
	cause := &llm.ErrProviderUnavailable{Err: errors.New("connection refused")}
	s, _ := supplierWith(llm.MockResponse{Err: cause})

	_, err := s.RequestQuestion(context.Background())
	require.ErrorIs(t, err, ErrTransportFailure)
	assert.Contains(t, err.Error(), "connection refused")

	var unavail *llm.ErrProviderUnavailable
	assert.ErrorAs(t, err, &unavail)
}

func TestRequestQuestion_NotConfigured(t *testing.T) {
	s := NewSupplier(nil, DefaultConfig())

	_, err := s.RequestQuestion(context.Background())
	require.ErrorIs(t, err, ErrNotConfigured)
	assert.Equal(t, "API Key is not configured. Cannot fetch question.", err.Error())
}

func TestRequestQuestion_ProviderNotConfigured(t *testing.T) {
	s, _ := supplierWith(llm.MockResponse{Err: fmt.Errorf("init: %w", llm.ErrNotConfigured)})

	_, err := s.RequestQuestion(context.Background())
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestRequestQuestion_Purpose(t *testing.T) {
	var purpose string
	p := purposeProbe{fn: func(ctx context.Context) { purpose = llm.PurposeFrom(ctx) }}
	s := NewSupplier(p, DefaultConfig())

	_, err := s.RequestQuestion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Purpose, purpose)
}

type purposeProbe struct {
	fn func(context.Context)
}

func (p purposeProbe) Generate(ctx context.Context, _ llm.Request) (*llm.Response, error) {
	p.fn(ctx)
	return &llm.Response{Content: json.RawMessage(eloquentJSON)}, nil
}

func (p purposeProbe) ModelID() string { return "probe" }

func TestSupplyError_Is(t *testing.T) {
	err := &SupplyError{Kind: KindTransportFailure, Message: "boom"}
	assert.ErrorIs(t, err, ErrTransportFailure)
	assert.NotErrorIs(t, err, ErrInvalidSchema)
	assert.Equal(t, "boom", err.Error())
	assert.Equal(t, "question supply failed: invalid-schema", ErrInvalidSchema.Error())
}
