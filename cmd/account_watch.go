package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newAccountWatchCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Re-render the account list whenever the accounts file changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			render := func() {
				snapshot, loadErr := app.collection.Load(cmd.Context())
				if err := writeSnapshot(cmd, app, snapshot, loadErr); err != nil {
					app.logger.Warn("render accounts failed", zap.Error(err))
				}
			}

			render()
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Watching %s (Ctrl+C to stop)\n", app.repo.Path())

			return app.repo.Watch(cmd.Context(), render, func(err error) {
				app.logger.Warn("watch accounts file", zap.Error(err))
			})
		},
	}
}
