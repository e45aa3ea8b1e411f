package cmd

import (
	"github.com/boussole-app/boussole/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "boussole",
	Short: "Orientation test for finding your field of study",
	Long:  "Boussole — terminal client for the orientation test: answer the questionnaire and get a field-of-study recommendation.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, nil)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to the local journal file (overrides BOUSSOLE_DB env var)")

	rootCmd.AddCommand(testCmd)
	rootCmd.AddCommand(resultCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the journal path using --db flag (highest priority),
// then BOUSSOLE_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
