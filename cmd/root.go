package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/skadvisory/findna/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "findna",
	Short: "Financial DNA quiz in your terminal",
	Long: "findna — a terminal quiz that decodes how you really handle money\n" +
		"and classifies your financial behavioral archetype.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Optional .env for FINDNA_FORM_URL / FINDNA_DB. Missing file is fine.
	_ = godotenv.Load()

	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides FINDNA_DB env var)")
	rootCmd.PersistentFlags().String("catalog", "", "Path to a question catalog JSON file (default: built-in)")

	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using the --db flag (highest
// priority), then FINDNA_DB, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
