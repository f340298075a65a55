package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ryo246912/ghnova/internal/service"
	"github.com/ryo246912/ghnova/internal/ui"
)

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage GitHub accounts",
	}
	cmd.AddCommand(
		newConfigAddCmd(app),
		newConfigUpdateCmd(app),
		newConfigDeleteCmd(app),
		newConfigListCmd(app),
	)
	return cmd
}

func (a *App) accountService() *service.AccountService {
	return service.NewAccountService(a.configManager(), a.Prompter)
}

func newConfigAddCmd(app *App) *cobra.Command {
	var (
		token      string
		baseURL    string
		setDefault bool
	)
	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add an account; the token is prompted for when --token is omitted",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.accountService().AddAccount(args[0], token, baseURL, setDefault); err != nil {
				return err
			}
			app.Logger.Info("account added", "account", args[0], "config", app.configPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&token, "token", "", "Token for the account")
	cmd.Flags().StringVar(&baseURL, "base-url", "", "Base URL of the GitHub API (default https://api.github.com)")
	cmd.Flags().BoolVar(&setDefault, "default", false, "Make this the default account")
	return cmd
}

func newConfigUpdateCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <name>",
		Short: "Update an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fs := cmd.Flags()
			err := app.accountService().UpdateAccount(args[0],
				optString(fs, "token"),
				optString(fs, "base-url"),
				optBool(fs, "default"),
			)
			if err != nil {
				return err
			}
			app.Logger.Info("account updated", "account", args[0])
			return nil
		},
	}

	cmd.Flags().String("token", "", "New token for the account")
	cmd.Flags().String("base-url", "", "New base URL of the GitHub API")
	cmd.Flags().Bool("default", false, "Set (--default) or clear (--default=false) the default account")
	return cmd
}

func newConfigDeleteCmd(app *App) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.accountService().DeleteAccount(args[0], yes); err != nil {
				return err
			}
			app.Logger.Info("account deleted", "account", args[0])
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}

func newConfigListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List accounts; the default account is marked with *",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			accounts, defaultAccount, err := app.accountService().ListAccounts()
			if err != nil {
				return err
			}
			if err := ui.RenderAccounts(app.Printer.Out, accounts, defaultAccount); err != nil {
				return fmt.Errorf("failed to render accounts: %w", err)
			}
			return nil
		},
	}
}
