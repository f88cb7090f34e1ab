package frontgo

import (
	"context"
	"net/url"
)

// CreateSessionForOneTimePaymentLink submits a regular order and returns a
// payment URL for the customer
func (c *Client) CreateSessionForOneTimePaymentLink(ctx context.Context, body any) (*Response, error) {
	return c.post(ctx, "CreateSessionForOneTimePaymentLink", "connect/orders/regular/submit", body)
}

// CreateSessionForInvoiceOrder submits a regular order paid by invoice.
// It shares its endpoint with CreateSessionForOneTimePaymentLink; the body's
// submitPayment.via selects the flow.
func (c *Client) CreateSessionForInvoiceOrder(ctx context.Context, body any) (*Response, error) {
	return c.post(ctx, "CreateSessionForInvoiceOrder", "connect/orders/regular/submit", body)
}

// GetAllOrderStatus lists order statuses. Pass "type" in params to filter.
func (c *Client) GetAllOrderStatus(ctx context.Context, params url.Values) (*Response, error) {
	return c.get(ctx, "GetAllOrderStatus", "connect/orders/status", params)
}

// GetOrderStatusByUUID retrieves the status of one order
func (c *Client) GetOrderStatusByUUID(ctx context.Context, orderUUID string) (*Response, error) {
	id, err := pathSegment("order UUID", orderUUID)
	if err != nil {
		return nil, err
	}
	return c.get(ctx, "GetOrderStatusByUUID", "connect/orders/status/"+id, nil)
}

// GetOrderDetailsByUUID retrieves the full details of one order
func (c *Client) GetOrderDetailsByUUID(ctx context.Context, orderUUID string) (*Response, error) {
	id, err := pathSegment("order UUID", orderUUID)
	if err != nil {
		return nil, err
	}
	return c.get(ctx, "GetOrderDetailsByUUID", "connect/orders/details/"+id, nil)
}

// SendEFaktura sends an order as an eFaktura invoice
func (c *Client) SendEFaktura(ctx context.Context, body any) (*Response, error) {
	return c.post(ctx, "SendEFaktura", "connect/orders/invoice/create/faktura", body)
}

// SendEHFInvoice sends an order as an EHF invoice
func (c *Client) SendEHFInvoice(ctx context.Context, body any) (*Response, error) {
	return c.post(ctx, "SendEHFInvoice", "connect/orders/invoice/create/ehf", body)
}

// CancelOrder cancels an order
func (c *Client) CancelOrder(ctx context.Context, orderUUID string, body any) (*Response, error) {
	id, err := pathSegment("order UUID", orderUUID)
	if err != nil {
		return nil, err
	}
	return c.post(ctx, "CancelOrder", "connect/orders/cancel/"+id, body)
}

// SendPaymentLink creates an order and sends its payment link
func (c *Client) SendPaymentLink(ctx context.Context, body any) (*Response, error) {
	return c.post(ctx, "SendPaymentLink", "connect/orders/payment-link/create", body)
}

// SendInvoice creates an order and sends it as an invoice
func (c *Client) SendInvoice(ctx context.Context, body any) (*Response, error) {
	return c.post(ctx, "SendInvoice", "connect/orders/invoice/create", body)
}

// ResendPaymentLink re-sends the payment link of an existing order
func (c *Client) ResendPaymentLink(ctx context.Context, orderUUID string, body any) (*Response, error) {
	id, err := pathSegment("order UUID", orderUUID)
	if err != nil {
		return nil, err
	}
	return c.post(ctx, "ResendPaymentLink", "connect/orders/resend/"+id, body)
}

// RefundOrder refunds all or part of a paid order
func (c *Client) RefundOrder(ctx context.Context, orderUUID string, body any) (*Response, error) {
	id, err := pathSegment("order UUID", orderUUID)
	if err != nil {
		return nil, err
	}
	return c.post(ctx, "RefundOrder", "connect/orders/refund/"+id, body)
}

// GetInvoiceNumberByUUID retrieves the invoice number assigned to an order
func (c *Client) GetInvoiceNumberByUUID(ctx context.Context, orderUUID string) (*Response, error) {
	id, err := pathSegment("order UUID", orderUUID)
	if err != nil {
		return nil, err
	}
	return c.get(ctx, "GetInvoiceNumberByUUID", "connect/orders/invoice-number/"+id, nil)
}
