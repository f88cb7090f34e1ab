package cmd

import (
	"context"
	"net/url"

	"github.com/spf13/cobra"

	"github.com/s0up4200/frontgo/frontgo"
)

func newSubscriptionsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "subscriptions",
		Aliases: []string{"subscription", "subs"},
		Short:   "Manage recurring subscriptions",
	}

	cmd.AddCommand(
		newBodyCmd(a, "create", "Create a subscription", frontgo.API.CreateSubscription),
		newBodyCmd(a, "create-session", "Create a subscription checkout session",
			frontgo.API.CreateSessionForSubscriptionPayment),
		newListCmd(a, "list [status]", "List subscriptions, optionally by status", cobra.MaximumNArgs(1),
			func(api frontgo.API, ctx context.Context, args []string, params url.Values) (*frontgo.Response, error) {
				return api.GetSubscriptionList(ctx, optionalArg(args), params)
			}),
		newListCmd(a, "failed [status]", "List failed subscription payments, optionally by status", cobra.MaximumNArgs(1),
			func(api frontgo.API, ctx context.Context, args []string, params url.Values) (*frontgo.Response, error) {
				return api.GetFailedPaymentList(ctx, optionalArg(args), params)
			}),
		newLookupCmd(a, "details <subscription-uuid>...", "Show the details of one or more subscriptions",
			frontgo.API.GetSubscriptionDetailsByUUID),
		newLookupCmd(a, "failed-details <order-uuid>...", "Show failed payment details of one or more cycle orders",
			frontgo.API.GetFailedPaymentDetails),
		newIDBodyCmd(a, "resend <subscription-uuid>", "Resend the payment link of a subscription", struct{}{},
			frontgo.API.ResendSubscription),
		newIDBodyCmd(a, "cancel <subscription-uuid>", "Cancel a subscription", struct{}{},
			frontgo.API.CancelSubscription),
		newIDBodyCmd(a, "refund-cycles <subscription-uuid>", "Refund subscription cycles", nil,
			frontgo.API.RefundSubscriptionCycle),
	)

	return cmd
}

func optionalArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
