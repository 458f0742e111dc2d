package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/bnema/windsurf-accounts-cli/internal/domain"
	"github.com/spf13/cobra"
)

func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	root := newRootCmd()
	err := root.ExecuteContext(ctx)
	if err != nil {
		_, _ = fmt.Fprintln(root.ErrOrStderr(), formatError(err))
	}

	return err
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "wa",
		Short:         "Windsurf Accounts CLI (wa): manage accounts, tokens and credits",
		Long:          "wa (Windsurf Accounts CLI) keeps a local collection of Windsurf accounts, acquires their API tokens, refreshes subscription credits and exports or imports the collection.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.PersistentPostRun = func(_ *cobra.Command, _ []string) {
		_ = app.logger.Sync()
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newAccountCmd(app),
	)

	return rootCmd
}

// formatError renders err with its taxonomy kind so store and provider
// failures read differently from input mistakes.
func formatError(err error) string {
	kind := domain.KindOf(err)
	if kind == domain.KindUnknown {
		return fmt.Sprintf("Error: %v", err)
	}

	return fmt.Sprintf("Error (%s): %v", kind, err)
}

// cancelled turns a declined confirmation into a notice. Any other error is
// returned unchanged.
func cancelled(cmd *cobra.Command, err error) error {
	if !errors.Is(err, domain.ErrCancelled) {
		return err
	}

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "cancelled")
	return nil
}
