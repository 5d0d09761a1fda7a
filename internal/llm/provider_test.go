package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

func TestMockProvider_ReturnsCannedResponses(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"a":1}`), Usage: Usage{InputTokens: 10, OutputTokens: 5, TotalTokens: 15}},
		MockResponse{Content: json.RawMessage(`{"b":2}`)},
	)

	resp1, err := mock.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "first"}}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp1.Content) != `{"a":1}` {
		t.Fatalf("expected {\"a\":1}, got %s", resp1.Content)
	}
	if resp1.Usage.InputTokens != 10 {
		t.Fatalf("expected 10 input tokens, got %d", resp1.Usage.InputTokens)
	}

	resp2, err := mock.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp2.Content) != `{"b":2}` {
		t.Fatalf("expected {\"b\":2}, got %s", resp2.Content)
	}

	var unavail *ErrProviderUnavailable
	if _, err := mock.Generate(context.Background(), Request{}); !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable once drained, got: %T", err)
	}
}

func TestMockProvider_Loop(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`1`)},
		MockResponse{Content: json.RawMessage(`2`)},
	)
	mock.Loop = true

	var got []string
	for i := 0; i < 5; i++ {
		resp, err := mock.Generate(context.Background(), Request{})
		if err != nil {
			t.Fatalf("call %d: %v", i, err)
		}
		got = append(got, string(resp.Content))
	}
	want := []string{"1", "2", "1", "2", "1"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("call %d = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestMockProvider_ReturnsConfiguredError(t *testing.T) {
	mock := NewMockProvider(MockResponse{Err: &ErrRateLimit{}})

	_, err := mock.Generate(context.Background(), Request{System: "sys"})
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("expected ErrRateLimit, got: %T", err)
	}
	if mock.CallCount() != 1 || mock.Calls[0].System != "sys" {
		t.Fatalf("expected the call to be recorded, got %+v", mock.Calls)
	}
}

func TestDemoProvider(t *testing.T) {
	demo := NewDemoProvider()
	for i := 0; i < 3; i++ {
		resp, err := demo.Generate(context.Background(), Request{})
		if err != nil {
			t.Fatalf("call %d: %v", i, err)
		}
		if err := ValidateContent(nil, resp.Content); err != nil {
			t.Fatalf("demo question is not valid JSON: %v", err)
		}
	}
}

func TestContextLabels(t *testing.T) {
	ctx := context.Background()
	if p := PurposeFrom(ctx); p != "unknown" {
		t.Fatalf("expected 'unknown', got %q", p)
	}
	if s := SessionFrom(ctx); s != "" {
		t.Fatalf("expected empty session, got %q", s)
	}

	ctx = WithSession(WithPurpose(ctx, "vocab-question"), "run-1")
	if p := PurposeFrom(ctx); p != "vocab-question" {
		t.Fatalf("expected 'vocab-question', got %q", p)
	}
	if s := SessionFrom(ctx); s != "run-1" {
		t.Fatalf("expected 'run-1', got %q", s)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name          string
		cfg           Config
		wantErr       bool
		notConfigured bool
	}{
		{name: "gemini without key", cfg: Config{Provider: ProviderGemini}, wantErr: true, notConfigured: true},
		{name: "gemini with key", cfg: Config{Provider: ProviderGemini, Gemini: GeminiConfig{APIKey: "k"}}},
		{name: "anthropic without key", cfg: Config{Provider: ProviderAnthropic}, wantErr: true, notConfigured: true},
		{name: "openai with key", cfg: Config{Provider: ProviderOpenAI, OpenAI: OpenAIConfig{APIKey: "sk-test"}}},
		{name: "openrouter without key", cfg: Config{Provider: ProviderOpenRouter}, wantErr: true, notConfigured: true},
		{name: "mock needs no key", cfg: Config{Provider: ProviderMock}},
		{name: "unknown provider", cfg: Config{Provider: "unknown"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got := errors.Is(err, ErrNotConfigured); got != tt.notConfigured {
				t.Fatalf("errors.Is(err, ErrNotConfigured) = %v, want %v", got, tt.notConfigured)
			}
		})
	}
}

func TestConfig_SetModel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SetModel("gemini-2.5-pro")
	if cfg.Gemini.Model != "gemini-2.5-pro" {
		t.Fatalf("expected gemini model override, got %q", cfg.Gemini.Model)
	}
	cfg.SetModel("")
	if cfg.Gemini.Model != "gemini-2.5-pro" {
		t.Fatal("empty model should not override")
	}
}

func TestNewProvider_Mock(t *testing.T) {
	p, err := NewProvider(context.Background(), Config{Provider: ProviderMock}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ModelID() != "mock" {
		t.Fatalf("expected 'mock', got %q", p.ModelID())
	}
}

func TestNewProvider_NotConfigured(t *testing.T) {
	_, err := NewProvider(context.Background(), Config{Provider: ProviderGemini}, nil)
	if !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}
