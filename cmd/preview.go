package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/wordwise/internal/quiz"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Play quiz rounds in line mode (no TUI, no event log)",
	Long: `Fetch questions and answer them on stdin.

This is a developer tool for checking question quality and provider
behaviour without the full-screen interface. Provider calls are not
recorded.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().Int("count", 3, "Number of rounds to play")
}

func runPreview(cmd *cobra.Command, args []string) error {
	count, _ := cmd.Flags().GetInt("count")

	rt, err := newRunEnv(cmd, false)
	if err != nil {
		return err
	}
	defer rt.Close()

	return previewRounds(rt.ctx, rt.supplier, count, cmd.InOrStdin(), cmd.OutOrStdout())
}

// previewRounds plays count rounds against sup, reading guesses from in.
func previewRounds(ctx context.Context, sup quiz.Supplier, count int, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	session := quiz.NewSession()
	var solved, played int

	for i := 1; i <= count; i++ {
		round := session.Restart()
		fmt.Fprintf(out, "Fetching question %d/%d...\n", i, count)
		session.Apply(quiz.Fetch(ctx, sup, round))

		if session.Phase() == quiz.PhaseError {
			fmt.Fprintf(out, "Error: %s\n\n", session.ErrorMessage())
			continue
		}

		q := session.Question()
		played++
		fmt.Fprintf(out, "── %s ──\n", q.Word)
		for j := range q.Sentences {
			fmt.Fprintf(out, "  %d) %s\n", j+1, session.DisplaySentence(j))
		}

		for session.Phase() == quiz.PhasePlaying {
			fmt.Fprintf(out, "\nYour pick (%d left): ", session.AttemptsLeft())
			if !scanner.Scan() {
				fmt.Fprintln(out, "\n(input closed)")
				fmt.Fprintf(out, "── Summary: %d/%d solved ──\n", solved, played)
				return nil
			}
			n, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
			if err != nil || n < 1 || n > len(q.Sentences) {
				fmt.Fprintf(out, "Enter a number from 1 to %d.\n", len(q.Sentences))
				continue
			}
			session.Select(n - 1)
			fmt.Fprintln(out, session.FeedbackText())
		}

		if session.FeedbackKind() == quiz.FeedbackSolved {
			solved++
		}
		fmt.Fprintln(out)
	}

	fmt.Fprintf(out, "── Summary: %d/%d solved ──\n", solved, played)
	return nil
}
