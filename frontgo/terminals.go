package frontgo

import "context"

// GetTerminalLists lists the payment terminals of an organization
func (c *Client) GetTerminalLists(ctx context.Context, organizationUUID string) (*Response, error) {
	id, err := pathSegment("organization UUID", organizationUUID)
	if err != nil {
		return nil, err
	}
	return c.get(ctx, "GetTerminalLists", "connect/terminal/lists/"+id, nil)
}

// CreateTerminalOrder pushes an order to a payment terminal
func (c *Client) CreateTerminalOrder(ctx context.Context, body any) (*Response, error) {
	return c.post(ctx, "CreateTerminalOrder", "connect/terminal/orders/create", body)
}

// CancelTerminalOrder cancels a terminal payment. Use {"type": "payment"}.
func (c *Client) CancelTerminalOrder(ctx context.Context, orderUUID string, body any) (*Response, error) {
	return c.terminalOrderPost(ctx, "CancelTerminalOrder", "cancel", orderUUID, body)
}

// ResendTerminalOrder pushes an existing order to its terminal again
func (c *Client) ResendTerminalOrder(ctx context.Context, orderUUID string) (*Response, error) {
	return c.terminalOrderPost(ctx, "ResendTerminalOrder", "resend", orderUUID, struct{}{})
}

// GetPaymentStatus polls the payment status of a terminal order
func (c *Client) GetPaymentStatus(ctx context.Context, orderUUID string) (*Response, error) {
	id, err := pathSegment("order UUID", orderUUID)
	if err != nil {
		return nil, err
	}
	return c.get(ctx, "GetPaymentStatus", "connect/terminal/orders/payment-status/"+id, nil)
}

// RefundTerminalOrder refunds or, with isReversal, reverses a terminal payment
func (c *Client) RefundTerminalOrder(ctx context.Context, orderUUID string, body any) (*Response, error) {
	return c.terminalOrderPost(ctx, "RefundTerminalOrder", "refund", orderUUID, body)
}

// GetRefundStatus polls the refund status of a terminal order
func (c *Client) GetRefundStatus(ctx context.Context, orderUUID string) (*Response, error) {
	id, err := pathSegment("order UUID", orderUUID)
	if err != nil {
		return nil, err
	}
	return c.get(ctx, "GetRefundStatus", "connect/terminal/orders/refund-status/"+id, nil)
}

// CancelRefundRequest cancels a pending terminal refund. It shares the
// cancel endpoint with CancelTerminalOrder; use {"type": "refund"}.
func (c *Client) CancelRefundRequest(ctx context.Context, orderUUID string, body any) (*Response, error) {
	return c.terminalOrderPost(ctx, "CancelRefundRequest", "cancel", orderUUID, body)
}

func (c *Client) terminalOrderPost(ctx context.Context, operation, action, orderUUID string, body any) (*Response, error) {
	id, err := pathSegment("order UUID", orderUUID)
	if err != nil {
		return nil, err
	}
	return c.post(ctx, operation, "connect/terminal/orders/"+action+"/"+id, body)
}
