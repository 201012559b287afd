package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/tempo/internal/cli/formatter"
	"github.com/alexanderramin/tempo/internal/keyring"
	"github.com/spf13/cobra"
)

func newKeyCmd(app *App) *cobra.Command {
	var provider string

	cmd := &cobra.Command{
		Use:   "key",
		Short: "Manage the model provider API key in the OS keyring",
	}
	cmd.PersistentFlags().StringVar(&provider, "provider", "", "Provider the key belongs to (default: configured provider)")

	providerName := func() string {
		if provider != "" {
			return provider
		}
		return app.Provider
	}

	cmd.AddCommand(
		newKeySetCmd(app, providerName),
		newKeyClearCmd(app, providerName),
		newKeyStatusCmd(app, providerName),
	)
	return cmd
}

func newKeySetCmd(app *App, providerName func() string) *cobra.Command {
	var value string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Store an API key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := providerName()
			if value == "" {
				if !app.interactive() {
					return fmt.Errorf("%w: pass --value", errNotInteractive)
				}
				if err := apiKeyForm(p, &value).Run(); err != nil {
					return err
				}
			}
			if err := app.Keys.Set(p, value); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.StyleGreen.Render("✔")+" Stored API key for "+formatter.Bold(p))
			return nil
		},
	}

	cmd.Flags().StringVar(&value, "value", "", "API key (prompted for when omitted)")
	return cmd
}

func newKeyClearCmd(app *App, providerName func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove the stored API key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := providerName()
			err := app.Keys.Delete(p)
			if errors.Is(err, keyring.ErrNotFound) {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("No API key stored for "+p))
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.StyleGreen.Render("✔")+" Removed API key for "+formatter.Bold(p))
			return nil
		},
	}
}

func newKeyStatusCmd(app *App, providerName func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show whether an API key is stored",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := providerName()
			_, err := app.Keys.Get(p)

			var status string
			switch {
			case err == nil:
				status = formatter.StyleGreen.Render("● stored")
			case errors.Is(err, keyring.ErrNotFound):
				status = formatter.StyleYellow.Render("○ not stored")
			default:
				status = formatter.StyleRed.Render("✖ keyring unavailable")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", formatter.Bold(p), status)
			return nil
		},
	}
}
