package frontgo

import (
	"context"
	"net/url"
	"time"
)

// OrderAPI defines the order management endpoints
type OrderAPI interface {
	CreateSessionForOneTimePaymentLink(ctx context.Context, body any) (*Response, error)
	CreateSessionForInvoiceOrder(ctx context.Context, body any) (*Response, error)
	// GetAllOrderStatus lists order statuses, filterable by "type"
	GetAllOrderStatus(ctx context.Context, params url.Values) (*Response, error)
	GetOrderStatusByUUID(ctx context.Context, orderUUID string) (*Response, error)
	GetOrderDetailsByUUID(ctx context.Context, orderUUID string) (*Response, error)
	SendEFaktura(ctx context.Context, body any) (*Response, error)
	SendEHFInvoice(ctx context.Context, body any) (*Response, error)
	CancelOrder(ctx context.Context, orderUUID string, body any) (*Response, error)
	SendPaymentLink(ctx context.Context, body any) (*Response, error)
	SendInvoice(ctx context.Context, body any) (*Response, error)
	ResendPaymentLink(ctx context.Context, orderUUID string, body any) (*Response, error)
	RefundOrder(ctx context.Context, orderUUID string, body any) (*Response, error)
	GetInvoiceNumberByUUID(ctx context.Context, orderUUID string) (*Response, error)
}

// ReservationAPI defines the reservation lifecycle endpoints
type ReservationAPI interface {
	SubmitReservation(ctx context.Context, body any) (*Response, error)
	GetReservationDetailsByUUID(ctx context.Context, reservationUUID string) (*Response, error)
	CancelReservation(ctx context.Context, reservationUUID string, body any) (*Response, error)
	CaptureReservation(ctx context.Context, reservationUUID string, body any) (*Response, error)
	ChargeReservation(ctx context.Context, reservationUUID string, body any) (*Response, error)
	CompleteReservation(ctx context.Context, reservationUUID string, body any) (*Response, error)
	ResendReservation(ctx context.Context, reservationUUID string, body any) (*Response, error)
	RefundReservation(ctx context.Context, reservationUUID string, body any) (*Response, error)
	CreateSessionForReservation(ctx context.Context, body any) (*Response, error)
	GetReservationHistoryByTimeFrame(ctx context.Context, start, end time.Time) (*Response, error)
}

// SubscriptionAPI defines the subscription endpoints
type SubscriptionAPI interface {
	CreateSubscription(ctx context.Context, body any) (*Response, error)
	CreateSessionForSubscriptionPayment(ctx context.Context, body any) (*Response, error)
	GetSubscriptionList(ctx context.Context, status string, params url.Values) (*Response, error)
	GetFailedPaymentList(ctx context.Context, status string, params url.Values) (*Response, error)
	GetSubscriptionDetailsByUUID(ctx context.Context, subscriptionUUID string) (*Response, error)
	GetFailedPaymentDetails(ctx context.Context, orderUUID string) (*Response, error)
	ResendSubscription(ctx context.Context, subscriptionUUID string, body any) (*Response, error)
	CancelSubscription(ctx context.Context, subscriptionUUID string, body any) (*Response, error)
	RefundSubscriptionCycle(ctx context.Context, subscriptionUUID string, body any) (*Response, error)
}

// CustomerAPI defines the customer management endpoints
type CustomerAPI interface {
	GetCustomerDetailsByUUID(ctx context.Context, customerUUID string) (*Response, error)
	UpdatePrivateCustomer(ctx context.Context, customerUUID string, body any) (*Response, error)
	UpdateCorporateCustomer(ctx context.Context, customerUUID string, body any) (*Response, error)
}

// RefundAPI defines the refund management endpoints
type RefundAPI interface {
	RequestRefundApproval(ctx context.Context, orderUUID string, body any) (*Response, error)
}

// TerminalAPI defines the payment terminal endpoints
type TerminalAPI interface {
	GetTerminalLists(ctx context.Context, organizationUUID string) (*Response, error)
	CreateTerminalOrder(ctx context.Context, body any) (*Response, error)
	CancelTerminalOrder(ctx context.Context, orderUUID string, body any) (*Response, error)
	ResendTerminalOrder(ctx context.Context, orderUUID string) (*Response, error)
	GetPaymentStatus(ctx context.Context, orderUUID string) (*Response, error)
	RefundTerminalOrder(ctx context.Context, orderUUID string, body any) (*Response, error)
	GetRefundStatus(ctx context.Context, orderUUID string) (*Response, error)
	CancelRefundRequest(ctx context.Context, orderUUID string, body any) (*Response, error)
}

// CreditAPI defines the credit check endpoints
type CreditAPI interface {
	CreditCheckPrivate(ctx context.Context, body any) (*Response, error)
	CreditCheckCorporate(ctx context.Context, body any) (*Response, error)
	GetCreditCheckList(ctx context.Context) (*Response, error)
}

// API is the complete FrontGo Connect surface implemented by Client
type API interface {
	OrderAPI
	ReservationAPI
	SubscriptionAPI
	CustomerAPI
	RefundAPI
	TerminalAPI
	CreditAPI
}

var _ API = (*Client)(nil)
