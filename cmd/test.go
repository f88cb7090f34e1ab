package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/s0up4200/frontgo/frontgo"
)

func newTestCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "test",
		Short: "Test connection to FrontGo",
		Long:  `Test the connection and API key by listing order statuses.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			env := "production"
			if a.cfg.FrontGo.Demo {
				env = "demo"
			}
			fmt.Fprintf(out, "Testing connection to FrontGo (%s) at %s...\n", env, a.baseURL)

			resp, err := a.client.GetAllOrderStatus(cmd.Context(), nil)
			if err != nil {
				var apiErr *frontgo.Error
				if errors.As(err, &apiErr) && apiErr.IsUnauthorized() {
					return fmt.Errorf("authentication failed: %w", err)
				}
				return fmt.Errorf("connection failed: %w", err)
			}

			fmt.Fprintln(out, "✓ Connection successful!")
			if resp.Message != "" {
				fmt.Fprintf(out, "- API message: %s\n", resp.Message)
			}
			return nil
		},
	}
}
