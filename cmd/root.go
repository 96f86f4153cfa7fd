package cmd

import (
	"github.com/spf13/cobra"

	"oscesim/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "oscesim",
	Short: "Clinical simulation session tracker and evaluator",
	Long: "OSCESim tracks a student's activity during a simulated patient encounter\n" +
		"and produces a multi-rubric evaluation of their performance on diagnosis\n" +
		"submission.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides OSCESIM_DB env var)")

	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(casesCmd)
	rootCmd.AddCommand(sessionsCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then OSCESIM_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore resolves the DB path and opens the store.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, err
	}
	return store.Open(dbPath)
}
