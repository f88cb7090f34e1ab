package frontgo

import (
	"context"
	"net/url"
)

// CreateSubscription creates a recurring subscription
func (c *Client) CreateSubscription(ctx context.Context, body any) (*Response, error) {
	return c.post(ctx, "CreateSubscription", "connect/subscription/submit", body)
}

// CreateSessionForSubscriptionPayment creates a subscription checkout session
func (c *Client) CreateSessionForSubscriptionPayment(ctx context.Context, body any) (*Response, error) {
	return c.post(ctx, "CreateSessionForSubscriptionPayment", "connect/subscription/create", body)
}

// GetSubscriptionList lists subscriptions, optionally limited to a status
// such as "ongoing". Params filter further (page, customerName, phone,
// startDate, endDate).
func (c *Client) GetSubscriptionList(ctx context.Context, status string, params url.Values) (*Response, error) {
	endpoint := "connect/subscriptions/list"
	if status != "" {
		endpoint += "/" + url.PathEscape(status)
	}
	return c.get(ctx, "GetSubscriptionList", endpoint, params)
}

// GetFailedPaymentList lists failed subscription payments, optionally
// limited to a status such as "invoiced"
func (c *Client) GetFailedPaymentList(ctx context.Context, status string, params url.Values) (*Response, error) {
	endpoint := "connect/subscriptions/failed/list"
	if status != "" {
		endpoint += "/" + url.PathEscape(status)
	}
	return c.get(ctx, "GetFailedPaymentList", endpoint, params)
}

// GetSubscriptionDetailsByUUID retrieves a subscription and its cycles
func (c *Client) GetSubscriptionDetailsByUUID(ctx context.Context, subscriptionUUID string) (*Response, error) {
	id, err := pathSegment("subscription UUID", subscriptionUUID)
	if err != nil {
		return nil, err
	}
	return c.get(ctx, "GetSubscriptionDetailsByUUID", "connect/subscriptions/details/"+id, nil)
}

// GetFailedPaymentDetails retrieves the failed payment for a cycle order
func (c *Client) GetFailedPaymentDetails(ctx context.Context, orderUUID string) (*Response, error) {
	id, err := pathSegment("order UUID", orderUUID)
	if err != nil {
		return nil, err
	}
	return c.get(ctx, "GetFailedPaymentDetails", "connect/subscriptions/failed/details/"+id, nil)
}

// ResendSubscription re-sends the payment link for a subscription cycle
func (c *Client) ResendSubscription(ctx context.Context, subscriptionUUID string, body any) (*Response, error) {
	id, err := pathSegment("subscription UUID", subscriptionUUID)
	if err != nil {
		return nil, err
	}
	return c.post(ctx, "ResendSubscription", "connect/subscriptions/resend/"+id, body)
}

// CancelSubscription stops a subscription
func (c *Client) CancelSubscription(ctx context.Context, subscriptionUUID string, body any) (*Response, error) {
	id, err := pathSegment("subscription UUID", subscriptionUUID)
	if err != nil {
		return nil, err
	}
	return c.post(ctx, "CancelSubscription", "connect/subscriptions/cancel/"+id, body)
}

// RefundSubscriptionCycle refunds specific billing cycles
func (c *Client) RefundSubscriptionCycle(ctx context.Context, subscriptionUUID string, body any) (*Response, error) {
	id, err := pathSegment("subscription UUID", subscriptionUUID)
	if err != nil {
		return nil, err
	}
	return c.post(ctx, "RefundSubscriptionCycle", "connect/subscriptions/cycles/refund/"+id, body)
}
