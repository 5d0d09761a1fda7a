package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/wordwise/internal/config"
	"github.com/abhisek/wordwise/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "wordwise",
	Short: "Vocabulary quiz in your terminal",
	Long: "WordWise asks a language model for a word and three sentences, and you " +
		"pick the one that uses the word correctly.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	config.BindFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the configured database path, or the default XDG
// path when none is set.
func resolveDBPath(cfg *config.Config) (string, error) {
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}
