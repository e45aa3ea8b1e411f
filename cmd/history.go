package cmd

import (
	"github.com/spf13/cobra"

	"github.com/boussole-app/boussole/internal/app"
	"github.com/boussole-app/boussole/internal/router"
	"github.com/boussole-app/boussole/internal/screens/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List sessions seen by this client",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, func(opts app.Options) router.Screen {
			return history.New(opts.Source, opts.Sessions, opts.Events, opts.RunID)
		})
	},
}
