package cmd

import (
	"context"
	"net/url"

	"github.com/spf13/cobra"

	"github.com/s0up4200/frontgo/frontgo"
)

// resend triggers the terminal again, so it takes exactly one order
func newTerminalResendCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "resend <order-uuid>",
		Short: "Push an order to its terminal again",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := a.client.ResendTerminalOrder(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return a.render(cmd.OutOrStdout(), resp)
		},
	}
}

func newTerminalsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "terminals",
		Aliases: []string{"terminal"},
		Short:   "Drive payment terminals",
	}

	cmd.AddCommand(
		newListCmd(a, "list <organization-uuid>", "List the terminals of an organization", cobra.ExactArgs(1),
			func(api frontgo.API, ctx context.Context, args []string, _ url.Values) (*frontgo.Response, error) {
				return api.GetTerminalLists(ctx, args[0])
			}),
		newBodyCmd(a, "create", "Push an order to a terminal", frontgo.API.CreateTerminalOrder),
		newIDBodyCmd(a, "cancel <order-uuid>", "Cancel a terminal payment",
			frontgo.CancelTypeRequest{Type: "payment"}, frontgo.API.CancelTerminalOrder),
		newTerminalResendCmd(a),
		newLookupCmd(a, "payment-status <order-uuid>...", "Show the payment status of one or more terminal orders",
			frontgo.API.GetPaymentStatus),
		newIDBodyCmd(a, "refund <order-uuid>", "Refund or reverse a terminal payment", nil,
			frontgo.API.RefundTerminalOrder),
		newLookupCmd(a, "refund-status <order-uuid>...", "Show the refund status of one or more terminal orders",
			frontgo.API.GetRefundStatus),
		newIDBodyCmd(a, "cancel-refund <order-uuid>", "Cancel a pending terminal refund",
			frontgo.CancelTypeRequest{Type: "refund"}, frontgo.API.CancelRefundRequest),
	)

	return cmd
}

func newCreditCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "credit",
		Short: "Run and list credit checks",
	}

	cmd.AddCommand(
		newBodyCmd(a, "check-private", "Credit check a private person", frontgo.API.CreditCheckPrivate),
		newBodyCmd(a, "check-corporate", "Credit check a company", frontgo.API.CreditCheckCorporate),
		newListCmd(a, "list", "List previous credit checks", cobra.NoArgs,
			func(api frontgo.API, ctx context.Context, _ []string, _ url.Values) (*frontgo.Response, error) {
				return api.GetCreditCheckList(ctx)
			}),
	)

	return cmd
}
