package cmd

import (
	"context"
	"net/url"

	"github.com/spf13/cobra"

	"github.com/s0up4200/frontgo/frontgo"
)

func newOrdersCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "orders",
		Aliases: []string{"order"},
		Short:   "Create, send and track orders",
	}

	cmd.AddCommand(
		newBodyCmd(a, "create-payment-link", "Create a one-time payment link session",
			frontgo.API.CreateSessionForOneTimePaymentLink),
		newBodyCmd(a, "create-invoice", "Create an invoice order session",
			frontgo.API.CreateSessionForInvoiceOrder),
		newListCmd(a, "list-status", "List order statuses (filter with --query type=...)", cobra.NoArgs,
			func(api frontgo.API, ctx context.Context, _ []string, params url.Values) (*frontgo.Response, error) {
				return api.GetAllOrderStatus(ctx, params)
			}),
		newLookupCmd(a, "status <order-uuid>...", "Show the status of one or more orders",
			frontgo.API.GetOrderStatusByUUID),
		newLookupCmd(a, "details <order-uuid>...", "Show the details of one or more orders",
			frontgo.API.GetOrderDetailsByUUID),
		newBodyCmd(a, "send-efaktura", "Send an order as eFaktura", frontgo.API.SendEFaktura),
		newBodyCmd(a, "send-ehf", "Send an order as an EHF invoice", frontgo.API.SendEHFInvoice),
		newIDBodyCmd(a, "cancel <order-uuid>", "Cancel an order", struct{}{}, frontgo.API.CancelOrder),
		newBodyCmd(a, "send-payment-link", "Create an order and send its payment link",
			frontgo.API.SendPaymentLink),
		newBodyCmd(a, "send-invoice", "Create an order and send it as an invoice", frontgo.API.SendInvoice),
		newIDBodyCmd(a, "resend <order-uuid>", "Resend the payment link of an order", struct{}{},
			frontgo.API.ResendPaymentLink),
		newIDBodyCmd(a, "refund <order-uuid>", "Refund an order", nil, frontgo.API.RefundOrder),
		newLookupCmd(a, "invoice-number <order-uuid>...", "Show the invoice number of one or more orders",
			frontgo.API.GetInvoiceNumberByUUID),
	)

	return cmd
}
