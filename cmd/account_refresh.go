package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/windsurf-accounts-cli/internal/application"
	"github.com/bnema/windsurf-accounts-cli/internal/domain"
	"github.com/spf13/cobra"
)

const logTimeLayout = "15:04:05"

func newAccountRefreshCmd(app *app) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "refresh [<id>]",
		Short: "Query the provider for subscription type, credits and expiry",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch {
			case all && len(args) > 0:
				return fmt.Errorf("%w: pass an account id or --all, not both", domain.ErrValidation)
			case all:
				return runRefreshAll(cmd, app)
			case len(args) == 0:
				return fmt.Errorf("%w: account id is required (or --all)", domain.ErrValidation)
			default:
				return runRefresh(cmd, app, domain.AccountID(strings.TrimSpace(args[0])))
			}
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Refresh every account that has a refresh token")

	return cmd
}

func runRefresh(cmd *cobra.Command, app *app, id domain.AccountID) error {
	var update domain.RefreshUpdate
	err := runSpinner(cmd.Context(), cmd.ErrOrStderr(), "Refreshing account...", func(ctx context.Context) error {
		var err error
		update, err = app.dispatcher.Refresh(ctx, id)
		return err
	})
	if err != nil {
		return err
	}

	label := string(id)
	if snapshot, err := app.collection.Load(cmd.Context()); err == nil {
		if view, ok := snapshot.Find(id); ok {
			label = view.Account.Email
		}
	}

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "Refreshed %s: %s\n", label, refreshSummary(update))
	return err
}

func runRefreshAll(cmd *cobra.Command, app *app) error {
	var results []application.RefreshResult
	err := runSpinner(cmd.Context(), cmd.ErrOrStderr(), "Refreshing accounts...", func(ctx context.Context) error {
		var err error
		results, err = app.dispatcher.RefreshAll(ctx)
		return err
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(results) == 0 {
		_, err := fmt.Fprintln(out, "No accounts with a refresh token")
		return err
	}

	var errs []error
	for _, result := range results {
		if result.Err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", result.Email, result.Err))
			_, _ = fmt.Fprintf(out, "fail  %s: %v\n", result.Email, result.Err)
			continue
		}
		_, _ = fmt.Fprintf(out, "ok    %s: %s\n", result.Email, refreshSummary(result.Update))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%d of %d refreshes failed: %w", len(errs), len(results), errors.Join(errs...))
	}

	return nil
}

func refreshSummary(update domain.RefreshUpdate) string {
	return fmt.Sprintf("type %s, credits %s, usage %s",
		update.Type,
		domain.FormatCredits(&update.Credits),
		domain.FormatUsage(&update.Usage),
	)
}

func newAccountTokenCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "token <id>",
		Short: "Log in with the stored password and acquire an API token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			logLine := func(line string) {
				_, _ = fmt.Fprintf(out, "[%s] %s\n", app.now().Format(logTimeLayout), line)
			}

			id := domain.AccountID(strings.TrimSpace(args[0]))
			account, err := app.dispatcher.AcquireToken(cmd.Context(), id, logLine)
			if err != nil {
				if domain.KindOf(err) == domain.KindProvider {
					logLine("token acquisition failed")
				}
				return err
			}

			logLine(fmt.Sprintf("token acquired for %s (%s)", account.Email, domain.ClassifyToken(account).Label()))
			return nil
		},
	}
}
