package cmd

import (
	"github.com/spf13/cobra"

	"github.com/s0up4200/frontgo/frontgo"
)

func newCustomersCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "customers",
		Aliases: []string{"customer"},
		Short:   "Look up and update customers",
	}

	cmd.AddCommand(
		newLookupCmd(a, "details <customer-uuid>...", "Show the details of one or more customers",
			frontgo.API.GetCustomerDetailsByUUID),
		newIDBodyCmd(a, "update-private <customer-uuid>", "Update a private customer", nil,
			frontgo.API.UpdatePrivateCustomer),
		newIDBodyCmd(a, "update-corporate <customer-uuid>", "Update a corporate customer", nil,
			frontgo.API.UpdateCorporateCustomer),
	)

	return cmd
}

func newRefundsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "refunds",
		Aliases: []string{"refund"},
		Short:   "Refunds that need approval",
	}

	cmd.AddCommand(
		newIDBodyCmd(a, "request-approval <order-uuid>", "Request approval for a refund above the threshold", nil,
			frontgo.API.RequestRefundApproval),
	)

	return cmd
}
