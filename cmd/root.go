package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/promptvary/internal/store"
)

var rootCmd = &cobra.Command{
	Use:           "promptvary",
	Short:         "Generate LLM-powered variants of a prompt",
	Long:          "promptvary rewrites a base prompt into easier, equivalent or harder variants by fanning out requests to an LLM and deduplicating the replies.",
	SilenceUsage:  true,
	SilenceErrors: false,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite event log (overrides PROMPTVARY_DB env var)")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the event log path using --db flag (highest
// priority), then PROMPTVARY_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
