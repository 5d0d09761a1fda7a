package cmd

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/wordwise/internal/vocab"
)

type fixedSupplier struct {
	q   *vocab.Question
	err error
}

func (f fixedSupplier) RequestQuestion(context.Context) (*vocab.Question, error) {
	return f.q, f.err
}

func sampleQuestion() *vocab.Question {
	return &vocab.Question{
		Word: "eloquent",
		Sentences: []string{
			"She gave an _____ speech that moved the audience.",
			"The _____ rock sat at the bottom of the lake.",
			"He ate an _____ sandwich for lunch.",
		},
		CorrectIndex: 0,
		Explanation:  "Fluent or persuasive in speaking or writing.",
	}
}

func TestPreviewRoundsSolved(t *testing.T) {
	var out bytes.Buffer
	in := strings.NewReader("2\n1\n")

	err := previewRounds(context.Background(), fixedSupplier{q: sampleQuestion()}, 1, in, &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "Try one more time") {
		t.Error("expected retry feedback")
	}
	if !strings.Contains(got, "Correct!") {
		t.Error("expected solved feedback")
	}
	if !strings.Contains(got, "1/1 solved") {
		t.Errorf("expected summary, got:\n%s", got)
	}
}

func TestPreviewRoundsRejectsBadInput(t *testing.T) {
	var out bytes.Buffer
	in := strings.NewReader("x\n9\n3\n2\n")

	if err := previewRounds(context.Background(), fixedSupplier{q: sampleQuestion()}, 1, in, &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := out.String()
	if strings.Count(got, "Enter a number from 1 to 3.") != 2 {
		t.Errorf("expected two input errors, got:\n%s", got)
	}
	if !strings.Contains(got, "sentence #1") {
		t.Error("expected reveal feedback")
	}
	if !strings.Contains(got, "0/1 solved") {
		t.Errorf("expected summary, got:\n%s", got)
	}
}

func TestPreviewRoundsReportsErrors(t *testing.T) {
	var out bytes.Buffer
	sup := fixedSupplier{err: errors.New("Failed to fetch a question: offline")}

	if err := previewRounds(context.Background(), sup, 2, strings.NewReader(""), &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := out.String()
	if strings.Count(got, "Error: Failed to fetch a question: offline") != 2 {
		t.Errorf("expected an error per round, got:\n%s", got)
	}
	if !strings.Contains(got, "0/0 solved") {
		t.Errorf("expected empty summary, got:\n%s", got)
	}
}
