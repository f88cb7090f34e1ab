package frontgo

import (
	"context"
	"fmt"
	"strconv"
	"time"
)

func (c *Client) reservationAction(ctx context.Context, operation, action, reservationUUID string, body any) (*Response, error) {
	id, err := pathSegment("reservation UUID", reservationUUID)
	if err != nil {
		return nil, err
	}
	return c.post(ctx, operation, "connect/reservations/"+action+"/"+id, body)
}

// SubmitReservation submits a new reservation
func (c *Client) SubmitReservation(ctx context.Context, body any) (*Response, error) {
	return c.post(ctx, "SubmitReservation", "connect/reservations/submit", body)
}

// GetReservationDetailsByUUID retrieves a reservation
func (c *Client) GetReservationDetailsByUUID(ctx context.Context, reservationUUID string) (*Response, error) {
	id, err := pathSegment("reservation UUID", reservationUUID)
	if err != nil {
		return nil, err
	}
	return c.get(ctx, "GetReservationDetailsByUUID", "connect/reservations/details/"+id, nil)
}

// CancelReservation cancels a reservation
func (c *Client) CancelReservation(ctx context.Context, reservationUUID string, body any) (*Response, error) {
	return c.reservationAction(ctx, "CancelReservation", "cancel", reservationUUID, body)
}

// CaptureReservation captures reserved funds
func (c *Client) CaptureReservation(ctx context.Context, reservationUUID string, body any) (*Response, error) {
	return c.reservationAction(ctx, "CaptureReservation", "capture", reservationUUID, body)
}

// ChargeReservation charges an additional amount from a reservation
func (c *Client) ChargeReservation(ctx context.Context, reservationUUID string, body any) (*Response, error) {
	return c.reservationAction(ctx, "ChargeReservation", "charge", reservationUUID, body)
}

// CompleteReservation completes a reservation, releasing what was not captured
func (c *Client) CompleteReservation(ctx context.Context, reservationUUID string, body any) (*Response, error) {
	return c.reservationAction(ctx, "CompleteReservation", "complete", reservationUUID, body)
}

// ResendReservation re-sends the reservation payment link
func (c *Client) ResendReservation(ctx context.Context, reservationUUID string, body any) (*Response, error) {
	return c.reservationAction(ctx, "ResendReservation", "resend", reservationUUID, body)
}

// RefundReservation refunds captured or charged reservation amounts
func (c *Client) RefundReservation(ctx context.Context, reservationUUID string, body any) (*Response, error) {
	return c.reservationAction(ctx, "RefundReservation", "refund", reservationUUID, body)
}

// CreateSessionForReservation creates a reservation checkout session
func (c *Client) CreateSessionForReservation(ctx context.Context, body any) (*Response, error) {
	return c.post(ctx, "CreateSessionForReservation", "connect/reservations/create", body)
}

// GetReservationHistoryByTimeFrame lists reservations between start and end.
// A zero time leaves its segment empty; with both empty the API returns the
// last 24 hours.
func (c *Client) GetReservationHistoryByTimeFrame(ctx context.Context, start, end time.Time) (*Response, error) {
	endpoint := fmt.Sprintf("connect/reservations/history/%s/%s", unixSegment(start), unixSegment(end))
	return c.get(ctx, "GetReservationHistoryByTimeFrame", endpoint, nil)
}

func unixSegment(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return strconv.FormatInt(t.Unix(), 10)
}
