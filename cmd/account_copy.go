package cmd

import (
	"fmt"
	"strings"

	"github.com/bnema/windsurf-accounts-cli/internal/domain"
	"github.com/spf13/cobra"
)

var copyFields = map[string]func(domain.Account) string{
	"email":         func(a domain.Account) string { return a.Email },
	"password":      func(a domain.Account) string { return a.Password },
	"api-key":       func(a domain.Account) string { return a.APIKey },
	"refresh-token": func(a domain.Account) string { return a.RefreshToken },
}

func newAccountCopyCmd(app *app) *cobra.Command {
	var field string

	cmd := &cobra.Command{
		Use:   "copy <id>",
		Short: "Copy one account field to the clipboard",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			field = strings.ToLower(strings.TrimSpace(field))
			pick, ok := copyFields[field]
			if !ok {
				return fmt.Errorf("%w: unknown field %q (want email, password, api-key or refresh-token)", domain.ErrValidation, field)
			}

			view, err := loadAccountView(cmd, app, args[0])
			if err != nil {
				return err
			}

			value := pick(view.Account)
			if value == "" {
				return fmt.Errorf("%w: account %s has no %s", domain.ErrPrecondition, view.Account.ID, field)
			}

			if err := app.clipboard.Copy(cmd.Context(), value); err != nil {
				return fmt.Errorf("copy to clipboard: %w", err)
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Copied %s of %s to the clipboard\n", field, view.Account.Email)
			return err
		},
	}

	cmd.Flags().StringVarP(&field, "field", "f", "email", "Field to copy: email, password, api-key or refresh-token")

	return cmd
}
