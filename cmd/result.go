package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/boussole-app/boussole/internal/app"
	"github.com/boussole-app/boussole/internal/router"
	"github.com/boussole-app/boussole/internal/screens/result"
)

var resultSessionID int64

var resultCmd = &cobra.Command{
	Use:   "result",
	Short: "Show the result of a completed session",
	RunE: func(cmd *cobra.Command, args []string) error {
		if resultSessionID == 0 {
			return errors.New("--session is required")
		}
		return runApp(cmd, func(opts app.Options) router.Screen {
			return result.New(opts.Sessions, opts.Events, opts.RunID, resultSessionID, nil)
		})
	},
}

func init() {
	resultCmd.Flags().Int64Var(&resultSessionID, "session", 0, "Session ID to show the result for")
}
