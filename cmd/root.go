package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ecoamazonia/guardioes/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "ecoamazonia",
	Short: "Guardians of the Amazon, in your terminal",
	Long:  "EcoAmazônia: unlock the forest guardians with nature points, play their journeys and take the climate quiz.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, false)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides ECOAMAZONIA_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to YAML config file")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log at debug level")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(guardiansCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then ECOAMAZONIA_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
