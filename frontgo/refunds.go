package frontgo

import "context"

// RequestRefundApproval asks for approval of a refund that exceeds the
// merchant's refund threshold. Unlike the other endpoints it lives outside
// the connect/ prefix.
func (c *Client) RequestRefundApproval(ctx context.Context, orderUUID string, body any) (*Response, error) {
	id, err := pathSegment("order UUID", orderUUID)
	if err != nil {
		return nil, err
	}
	return c.post(ctx, "RequestRefundApproval", "orders/refund/request/approval/"+id, body)
}
