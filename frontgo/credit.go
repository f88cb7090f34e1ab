package frontgo

import "context"

// CreditCheckPrivate runs a credit check on a private person
func (c *Client) CreditCheckPrivate(ctx context.Context, body any) (*Response, error) {
	return c.post(ctx, "CreditCheckPrivate", "connect/credit/check/private", body)
}

// CreditCheckCorporate runs a credit check on a company
func (c *Client) CreditCheckCorporate(ctx context.Context, body any) (*Response, error) {
	return c.post(ctx, "CreditCheckCorporate", "connect/credit/check/corporate", body)
}

// GetCreditCheckList lists previous credit checks
func (c *Client) GetCreditCheckList(ctx context.Context) (*Response, error) {
	return c.get(ctx, "GetCreditCheckList", "connect/credit/check/list", nil)
}
