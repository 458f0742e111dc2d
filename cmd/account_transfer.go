package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	exportfile "github.com/bnema/windsurf-accounts-cli/internal/adapters/export/file"
	"github.com/bnema/windsurf-accounts-cli/internal/application"
	"github.com/bnema/windsurf-accounts-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newAccountExportCmd(app *app) *cobra.Command {
	var output string
	var force bool

	cmd := &cobra.Command{
		Use:   "export [<id>]",
		Short: "Export one account or the whole collection to JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				document    any
				defaultName string
			)

			if len(args) == 1 {
				view, err := loadAccountView(cmd, app, args[0])
				if err != nil {
					return err
				}
				document = app.exporter.ExportAccount(view.Account)
				defaultName = application.AccountExportFileName(view.Account, app.now())
			} else {
				snapshot, err := app.collection.Load(cmd.Context())
				if err != nil {
					return err
				}
				if len(snapshot.Accounts) == 0 {
					_, err := fmt.Fprintln(cmd.OutOrStdout(), "Nothing to export")
					return err
				}

				accounts := make([]domain.Account, 0, len(snapshot.Accounts))
				for _, view := range snapshot.Accounts {
					accounts = append(accounts, view.Account)
				}
				document = app.exporter.ExportCollection(accounts)
				defaultName = application.CollectionExportFileName(app.now())
			}

			data, err := application.MarshalExport(document)
			if err != nil {
				return err
			}

			return saveExport(cmd, resolveExportPath(output, defaultName), data, force)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Destination file or directory (default: a generated name in the current directory)")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file without asking")

	return cmd
}

// saveExport writes data, asking before it replaces an existing file. A
// declined overwrite leaves the file untouched.
func saveExport(cmd *cobra.Command, path string, data []byte, force bool) error {
	written, err := exportfile.Writer{Force: force}.Save(path, data)
	if errors.Is(err, exportfile.ErrExists) {
		if err := newPrompter(cmd, false).confirm(fmt.Sprintf("%s already exists. Overwrite?", path)); err != nil {
			return cancelled(cmd, err)
		}
		written, err = exportfile.Writer{Force: true}.Save(path, data)
	}
	if err != nil {
		return fmt.Errorf("save export: %w", err)
	}

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", written)
	return err
}

func resolveExportPath(output string, defaultName string) string {
	output = strings.TrimSpace(output)
	if output == "" {
		return defaultName
	}

	if strings.HasSuffix(output, string(os.PathSeparator)) {
		return filepath.Join(output, defaultName)
	}
	if info, err := os.Stat(output); err == nil && info.IsDir() {
		return filepath.Join(output, defaultName)
	}

	return output
}

func newAccountImportCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Create accounts from an export document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read import file: %w", err)
			}

			records, err := application.ParseExport(data)
			if err != nil {
				return err
			}

			result, importErr := app.dispatcher.Import(cmd.Context(), records)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Imported %d of %d accounts\n", len(result.Created), len(records))
			if importErr != nil {
				return fmt.Errorf("%d records failed: %w", result.Failed, importErr)
			}

			return nil
		},
	}
}
