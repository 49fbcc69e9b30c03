package cmd

import (
	"github.com/codecampus/pathway/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pathway",
	Short: "Assessment and learning-path decision engine",
	Long:  "Pathway — grades multi-part student submissions and steers each student's route through the curriculum graph.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides PATHWAY_DB env var)")

	rootCmd.AddCommand(submitCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(studentCmd)
	rootCmd.AddCommand(graphCmd)
	rootCmd.AddCommand(rubricCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then PATHWAY_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	p, err := store.DefaultDBPath()
	if err != nil {
		return "", err
	}
	return p, store.EnsureDir(p)
}
