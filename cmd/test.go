package cmd

import (
	"github.com/spf13/cobra"

	"github.com/boussole-app/boussole/internal/app"
	"github.com/boussole-app/boussole/internal/router"
	"github.com/boussole-app/boussole/internal/screens/test"
)

var testSessionID int64

var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Take the orientation test",
	Long:  "Starts the questionnaire, resuming an unfinished session when one exists. Use --session to resume a specific session.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, func(opts app.Options) router.Screen {
			return test.New(opts.Source, opts.Sessions, opts.Events, opts.RunID, testSessionID)
		})
	},
}

func init() {
	testCmd.Flags().Int64Var(&testSessionID, "session", 0, "Session ID to resume (default: pick up the latest unfinished session)")
}
