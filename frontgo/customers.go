package frontgo

import "context"

// GetCustomerDetailsByUUID retrieves a customer
func (c *Client) GetCustomerDetailsByUUID(ctx context.Context, customerUUID string) (*Response, error) {
	id, err := pathSegment("customer UUID", customerUUID)
	if err != nil {
		return nil, err
	}
	return c.get(ctx, "GetCustomerDetailsByUUID", "connect/customers/details/"+id, nil)
}

// UpdatePrivateCustomer updates a private customer
func (c *Client) UpdatePrivateCustomer(ctx context.Context, customerUUID string, body any) (*Response, error) {
	id, err := pathSegment("customer UUID", customerUUID)
	if err != nil {
		return nil, err
	}
	return c.put(ctx, "UpdatePrivateCustomer", "connect/customers/update/private/"+id, body)
}

// UpdateCorporateCustomer updates a corporate customer
func (c *Client) UpdateCorporateCustomer(ctx context.Context, customerUUID string, body any) (*Response, error) {
	id, err := pathSegment("customer UUID", customerUUID)
	if err != nil {
		return nil, err
	}
	return c.put(ctx, "UpdateCorporateCustomer", "connect/customers/update/corporate/"+id, body)
}
