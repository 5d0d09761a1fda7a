package store

import (
	"context"
	"fmt"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// journal_mode reports "memory" for in-memory databases.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL
	}

	for _, tt := range tests {
		var got string
		if err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got); err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceCounterMonotonic(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var last int64
	for i := 0; i < 5; i++ {
		n, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next: %v", err)
		}
		if n <= last {
			t.Fatalf("sequence went from %d to %d", last, n)
		}
		last = n
	}
}

func appendEvents(t *testing.T, repo EventRepo, events ...LLMRequestEventData) {
	t.Helper()
	for _, e := range events {
		if err := repo.AppendLLMRequest(context.Background(), e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}
}

func TestAppendAndQueryLLMEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	appendEvents(t, repo,
		LLMRequestEventData{SessionID: "s1", Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "vocab-question", InputTokens: 100, OutputTokens: 40, LatencyMs: 900, Success: true, RequestBody: "[user]\nhi", ResponseBody: `{"word":"eloquent"}`},
		LLMRequestEventData{SessionID: "s1", Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "vocab-question", LatencyMs: 300, ErrorMessage: "boom"},
		LLMRequestEventData{SessionID: "s2", Provider: "mock", Model: "mock", Purpose: "preview", Success: true},
	)

	all, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 events, got %d", len(all))
	}
	if all[0].Sequence <= all[1].Sequence || all[1].Sequence <= all[2].Sequence {
		t.Fatalf("expected newest first, got sequences %d, %d, %d", all[0].Sequence, all[1].Sequence, all[2].Sequence)
	}
	if all[2].ResponseBody != `{"word":"eloquent"}` {
		t.Errorf("response body = %q", all[2].ResponseBody)
	}

	limited, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 1})
	if err != nil {
		t.Fatalf("query limit: %v", err)
	}
	if len(limited) != 1 || limited[0].Provider != "mock" {
		t.Fatalf("expected only the newest event, got %+v", limited)
	}

	bySession, err := repo.QueryLLMEvents(ctx, QueryOpts{SessionID: "s1"})
	if err != nil {
		t.Fatalf("query session: %v", err)
	}
	if len(bySession) != 2 {
		t.Fatalf("expected 2 events for s1, got %d", len(bySession))
	}

	byPurpose, err := repo.QueryLLMEvents(ctx, QueryOpts{Purpose: "preview"})
	if err != nil {
		t.Fatalf("query purpose: %v", err)
	}
	if len(byPurpose) != 1 {
		t.Fatalf("expected 1 preview event, got %d", len(byPurpose))
	}
}

func TestGetLLMEvent(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	appendEvents(t, repo, LLMRequestEventData{Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "vocab-question", Success: true})

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}

	got, err := repo.GetLLMEvent(ctx, events[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.Model != "gemini-2.5-flash" {
		t.Fatalf("unexpected event: %+v", got)
	}

	missing, err := repo.GetLLMEvent(ctx, events[0].ID+100)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Fatalf("expected nil for missing event, got %+v", missing)
	}
}

func TestLLMUsageAggregation(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	appendEvents(t, repo,
		LLMRequestEventData{Model: "gemini-2.5-flash", Purpose: "vocab-question", InputTokens: 100, OutputTokens: 50, LatencyMs: 1000, Success: true},
		LLMRequestEventData{Model: "gemini-2.5-flash", Purpose: "vocab-question", InputTokens: 120, OutputTokens: 60, LatencyMs: 500},
		LLMRequestEventData{Model: "mock", Purpose: "preview", InputTokens: 10, OutputTokens: 5, LatencyMs: 1, Success: true},
	)

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(byPurpose) != 2 {
		t.Fatalf("expected 2 purposes, got %d", len(byPurpose))
	}
	top := byPurpose[0]
	if top.Purpose != "vocab-question" || top.Calls != 2 || top.Failures != 1 {
		t.Fatalf("unexpected top row: %+v", top)
	}
	if top.InputTokens != 220 || top.OutputTokens != 110 || top.AvgLatencyMs != 750 {
		t.Fatalf("unexpected totals: %+v", top)
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(byModel) != 2 || byModel[1].Model != "mock" {
		t.Fatalf("unexpected model rows: %+v", byModel)
	}
}
