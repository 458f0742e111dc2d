package cmd

import (
	"fmt"
	"strings"

	statusadapter "github.com/bnema/windsurf-accounts-cli/internal/adapters/render/status"
	"github.com/bnema/windsurf-accounts-cli/internal/application"
	"github.com/bnema/windsurf-accounts-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newAccountCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "account",
		Aliases: []string{"accounts"},
		Short:   "Manage accounts",
	}

	cmd.AddCommand(
		newAccountListCmd(app),
		newAccountShowCmd(app),
		newAccountAddCmd(app),
		newAccountDeleteCmd(app),
		newAccountDeleteAllCmd(app),
		newAccountRefreshCmd(app),
		newAccountTokenCmd(app),
		newAccountExportCmd(app),
		newAccountImportCmd(app),
		newAccountCopyCmd(app),
		newAccountWatchCmd(app),
	)

	return cmd
}

func newAccountListCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List accounts with the collection summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			snapshot, loadErr := app.collection.Load(cmd.Context())
			if asJSON {
				if loadErr != nil {
					return loadErr
				}
				return writeJSON(cmd.OutOrStdout(), newCollectionJSON(snapshot))
			}

			if err := writeSnapshot(cmd, app, snapshot, loadErr); err != nil {
				return err
			}
			return loadErr
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func newAccountShowCmd(app *app) *cobra.Command {
	var asJSON bool
	var showSecrets bool

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show every field of one account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := loadAccountView(cmd, app, args[0])
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), newAccountJSON(view, showSecrets))
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), statusadapter.RenderDetails(view, statusadapter.RenderOptions{ShowSecrets: showSecrets}))
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")
	cmd.Flags().BoolVar(&showSecrets, "show-secrets", false, "Print password, api key and refresh token in clear")

	return cmd
}

func newAccountAddCmd(app *app) *cobra.Command {
	var draft domain.AccountDraft

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			account, err := app.dispatcher.Add(cmd.Context(), draft)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Added account %s (%s)\n", account.Email, account.ID)
			return err
		},
	}

	cmd.Flags().StringVar(&draft.Email, "email", "", "Account email")
	cmd.Flags().StringVar(&draft.Password, "password", "", "Account password")
	cmd.Flags().StringVar(&draft.APIKey, "api-key", "", "API key, when already known")
	cmd.Flags().StringVar(&draft.RefreshToken, "refresh-token", "", "Refresh token, when already known")
	cmd.Flags().StringVar(&draft.FirstName, "first-name", "", "First name")
	cmd.Flags().StringVar(&draft.LastName, "last-name", "", "Last name")
	cmd.Flags().StringVar(&draft.Name, "name", "", "Display name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newAccountDeleteCmd(app *app) *cobra.Command {
	var assumeYes bool

	cmd := &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete one account",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := domain.AccountID(strings.TrimSpace(args[0]))
			label := string(id)
			if snapshot, err := app.collection.Load(cmd.Context()); err == nil {
				if view, ok := snapshot.Find(id); ok {
					label = fmt.Sprintf("%s (%s)", view.Account.Email, id)
				}
			}

			if err := newPrompter(cmd, assumeYes).confirm(fmt.Sprintf("Delete account %s?", label)); err != nil {
				return cancelled(cmd, err)
			}

			if err := app.dispatcher.Delete(cmd.Context(), id); err != nil {
				return err
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "Deleted account %s\n", label)
			return err
		},
	}

	cmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

func newAccountDeleteAllCmd(app *app) *cobra.Command {
	var assumeYes bool

	cmd := &cobra.Command{
		Use:   "delete-all",
		Short: "Delete every account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			snapshot, err := app.collection.Load(cmd.Context())
			if err != nil {
				return err
			}
			total := snapshot.Summary.Total
			if total == 0 {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "No accounts to delete")
				return err
			}

			prompt := newPrompter(cmd, assumeYes)
			if err := prompt.confirm(fmt.Sprintf("Delete all %d accounts?", total)); err != nil {
				return cancelled(cmd, err)
			}
			if err := prompt.confirm(fmt.Sprintf("This cannot be undone. Really delete %d accounts?", total)); err != nil {
				return cancelled(cmd, err)
			}

			result, err := app.dispatcher.DeleteAll(cmd.Context())
			if err != nil {
				return err
			}
			if result.NothingToDelete {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "No accounts to delete")
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d accounts\n", result.Deleted)
			return err
		},
	}

	cmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Skip both confirmation prompts")

	return cmd
}

// writeSnapshot renders the list view; a non-nil loadErr is shown as a
// banner under the empty summary.
func writeSnapshot(cmd *cobra.Command, app *app, snapshot application.Snapshot, loadErr error) error {
	rendered, err := app.statusRenderer(snapshot, statusadapter.RenderOptions{LoadError: loadErr})
	if err != nil {
		return fmt.Errorf("render accounts: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}

// loadAccountView reloads the collection and picks raw out of it.
func loadAccountView(cmd *cobra.Command, app *app, raw string) (application.AccountView, error) {
	id := domain.AccountID(strings.TrimSpace(raw))
	if id == "" {
		return application.AccountView{}, fmt.Errorf("%w: account id is required", domain.ErrValidation)
	}

	snapshot, err := app.collection.Load(cmd.Context())
	if err != nil {
		return application.AccountView{}, err
	}

	view, ok := snapshot.Find(id)
	if !ok {
		return application.AccountView{}, fmt.Errorf("%w: %w: %s", domain.ErrStore, domain.ErrAccountNotFound, id)
	}

	return view, nil
}
