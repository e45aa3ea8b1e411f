package cmd

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/boussole-app/boussole/internal/api"
	"github.com/boussole-app/boussole/internal/app"
	"github.com/boussole-app/boussole/internal/router"
	"github.com/boussole-app/boussole/internal/store"
)

// buildDeps constructs the API client and local journal shared by all
// TUI entry points. The journal is optional; the test works without it.
func buildDeps(cmd *cobra.Command) (app.Options, func(), error) {
	cfg, err := api.ConfigFromEnv()
	if err != nil {
		return app.Options{}, nil, fmt.Errorf("read API config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return app.Options{}, nil, fmt.Errorf("invalid API config: %w", err)
	}

	client, err := api.NewClient(cfg)
	if err != nil {
		return app.Options{}, nil, fmt.Errorf("build API client: %w", err)
	}
	retrying := api.WithRetry(client, api.DefaultRetryConfig())

	opts := app.Options{
		Source:   retrying,
		Sessions: retrying,
		RunID:    uuid.New().String(),
	}

	cleanup := func() {}
	dbPath, err := resolveDBPath(cmd)
	if err == nil {
		st, openErr := store.Open(dbPath)
		if openErr == nil {
			opts.Events = st.EventRepo()
			cleanup = func() { st.Close() }
		} else {
			fmt.Fprintln(os.Stderr, "local journal unavailable:", openErr)
		}
	} else {
		fmt.Fprintln(os.Stderr, "local journal unavailable:", err)
	}

	return opts, cleanup, nil
}

// runApp launches the TUI. initial, when non-nil, builds the entry
// screen from the wired dependencies; nil starts at the home screen.
func runApp(cmd *cobra.Command, initial func(app.Options) router.Screen) error {
	opts, cleanup, err := buildDeps(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	if initial != nil {
		opts.Initial = initial(opts)
	}

	return app.Run(opts)
}
