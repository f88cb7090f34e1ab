package cmd

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/s0up4200/frontgo/frontgo"
)

func newReservationsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "reservations",
		Aliases: []string{"reservation"},
		Short:   "Reserve, capture, charge and refund amounts",
	}

	cmd.AddCommand(
		newBodyCmd(a, "submit", "Submit a reservation", frontgo.API.SubmitReservation),
		newLookupCmd(a, "details <reservation-uuid>...", "Show the details of one or more reservations",
			frontgo.API.GetReservationDetailsByUUID),
		newIDBodyCmd(a, "cancel <reservation-uuid>", "Cancel a reservation", struct{}{},
			frontgo.API.CancelReservation),
		newIDBodyCmd(a, "capture <reservation-uuid>", "Capture reserved funds", nil,
			frontgo.API.CaptureReservation),
		newIDBodyCmd(a, "charge <reservation-uuid>", "Charge an additional amount", nil,
			frontgo.API.ChargeReservation),
		newIDBodyCmd(a, "complete <reservation-uuid>", "Complete a reservation", struct{}{},
			frontgo.API.CompleteReservation),
		newIDBodyCmd(a, "resend <reservation-uuid>", "Resend the reservation payment link", struct{}{},
			frontgo.API.ResendReservation),
		newIDBodyCmd(a, "refund <reservation-uuid>", "Refund captured or charged amounts", nil,
			frontgo.API.RefundReservation),
		newBodyCmd(a, "create-session", "Create a reservation checkout session",
			frontgo.API.CreateSessionForReservation),
		newHistoryCmd(a),
	)

	return cmd
}

func newHistoryCmd(a *app) *cobra.Command {
	var start, end string

	cmd := newListCmd(a, "history", "List reservations in a time frame (default: last 24 hours)", cobra.NoArgs,
		func(api frontgo.API, ctx context.Context, _ []string, _ url.Values) (*frontgo.Response, error) {
			from, err := parseTime(start)
			if err != nil {
				return nil, fmt.Errorf("invalid --start: %w", err)
			}
			to, err := parseTime(end)
			if err != nil {
				return nil, fmt.Errorf("invalid --end: %w", err)
			}
			return api.GetReservationHistoryByTimeFrame(ctx, from, to)
		})

	cmd.Flags().StringVar(&start, "start", "", "start of the time frame (unix seconds, RFC3339 or YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "end of the time frame (unix seconds, RFC3339 or YYYY-MM-DD)")
	return cmd
}

// parseTime accepts unix seconds, RFC3339 or a date; empty gives the zero time
func parseTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	if secs, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.Unix(secs, 0), nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("cannot parse %q", s)
	}
	return t, nil
}
