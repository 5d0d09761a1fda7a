package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/abhisek/wordwise/internal/app"
	"github.com/abhisek/wordwise/internal/config"
	"github.com/abhisek/wordwise/internal/llm"
	"github.com/abhisek/wordwise/internal/logging"
	"github.com/abhisek/wordwise/internal/screens/quiz"
	"github.com/abhisek/wordwise/internal/store"
	"github.com/abhisek/wordwise/internal/vocab"
)

// runEnv holds what a quiz run needs, built from configuration.
type runEnv struct {
	ctx      context.Context
	cfg      *config.Config
	supplier *vocab.LLMSupplier
	closers  []io.Closer
}

func (r *runEnv) Close() {
	for i := len(r.closers) - 1; i >= 0; i-- {
		_ = r.closers[i].Close()
	}
}

// newRunEnv loads configuration, sets up logging and builds the question
// supplier. withEvents controls whether provider calls are recorded. A
// missing API key is not an error here; it surfaces on the first fetch.
func newRunEnv(cmd *cobra.Command, withEvents bool) (*runEnv, error) {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	rt := &runEnv{cfg: cfg}
	logCloser, err := logging.Setup(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return nil, fmt.Errorf("setup logging: %w", err)
	}
	rt.closers = append(rt.closers, logCloser)

	sessionID := uuid.New().String()
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	rt.ctx = llm.WithSession(ctx, sessionID)

	var eventRepo store.EventRepo
	if withEvents && cfg.Events {
		dbPath, err := resolveDBPath(cfg)
		if err != nil {
			rt.Close()
			return nil, fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			rt.Close()
			return nil, fmt.Errorf("open store: %w", err)
		}
		rt.closers = append(rt.closers, st)
		eventRepo = st.EventRepo()
	}

	provider, err := llm.NewProvider(rt.ctx, cfg.LLM, eventRepo)
	switch {
	case errors.Is(err, llm.ErrNotConfigured):
		log.Warn().Err(err).Str("provider", cfg.LLM.Provider).Msg("llm provider not configured")
		provider = nil
	case err != nil:
		rt.Close()
		return nil, fmt.Errorf("llm provider: %w", err)
	}

	rt.supplier = vocab.NewSupplier(provider, vocab.DefaultConfig())

	log.Info().
		Str("session", sessionID).
		Str("provider", cfg.LLM.Provider).
		Bool("events", eventRepo != nil).
		Msg("wordwise started")
	return rt, nil
}

// runApp launches the TUI quiz.
func runApp(cmd *cobra.Command) error {
	rt, err := newRunEnv(cmd, true)
	if err != nil {
		return err
	}
	defer rt.Close()

	return app.Run(quiz.New(rt.ctx, rt.supplier))
}
