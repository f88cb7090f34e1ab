package frontgo

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// Response is the envelope every FrontGo endpoint answers with
type Response struct {
	StatusCode    int             `json:"status_code"`
	StatusMessage string          `json:"status_message"`
	Message       string          `json:"message"`
	IsData        bool            `json:"is_data"`
	IsError       bool            `json:"is_error"`
	Data          json.RawMessage `json:"data,omitempty"`
	Errors        json.RawMessage `json:"errors,omitempty"`

	// HTTPStatus is the status of the HTTP response itself.
	HTTPStatus int `json:"-"`
	// Raw is the undecoded response body.
	Raw []byte `json:"-"`
}

// DecodeData decodes the data member into v
func (r *Response) DecodeData(v any) error {
	if len(r.Data) == 0 {
		return fmt.Errorf("response has no data")
	}
	if err := json.Unmarshal(r.Data, v); err != nil {
		return fmt.Errorf("failed to decode response data: %w", err)
	}
	return nil
}

// OrderSession is the data returned when an order session is submitted
type OrderSession struct {
	OrderUUID    string `json:"orderUuid"`
	CustomerUUID string `json:"customerUuid"`
	PaymentURL   string `json:"paymentUrl"`
}

// OrderStatus is the data returned by the order status endpoints
type OrderStatus struct {
	OrderUUID string `json:"orderUuid"`
	Status    string `json:"status"`
}

// Address is a postal address
type Address struct {
	Street  string `json:"street,omitempty"`
	Zip     string `json:"zip,omitempty"`
	City    string `json:"city,omitempty"`
	Country string `json:"country,omitempty"`
}

// Addresses holds separate billing and shipping addresses
type Addresses struct {
	Billing  *Address `json:"billing,omitempty"`
	Shipping *Address `json:"shipping,omitempty"`
}

// CustomerType distinguishes private persons from companies
type CustomerType string

const (
	// CustomerTypePrivate is a private person
	CustomerTypePrivate CustomerType = "private"
	// CustomerTypeCorporate is a company
	CustomerTypeCorporate CustomerType = "corporate"
)

// CustomerDetails identifies the paying customer on orders and reservations
type CustomerDetails struct {
	Type              CustomerType `json:"type,omitempty"`
	Name              string       `json:"name,omitempty"`
	Email             string       `json:"email,omitempty"`
	CountryCode       string       `json:"countryCode,omitempty"`
	MSISDN            string       `json:"msisdn,omitempty"`
	PreferredLanguage string       `json:"preferredLanguage,omitempty"`
	PersonalNumber    string       `json:"personalNumber,omitempty"`
	OrganizationID    string       `json:"organizationId,omitempty"`
	Address           *Address     `json:"address,omitempty"`
}

// Product is an order line
type Product struct {
	ID        int             `json:"id,omitempty"`
	Name      string          `json:"name,omitempty"`
	ProductID string          `json:"productId,omitempty"`
	Quantity  decimal.Decimal `json:"quantity"`
	Rate      decimal.Decimal `json:"rate"`
	Discount  decimal.Decimal `json:"discount"`
	Tax       decimal.Decimal `json:"tax"`
	Amount    decimal.Decimal `json:"amount"`
}

// OrderSummary holds order totals
type OrderSummary struct {
	SubTotal      decimal.Decimal `json:"subTotal"`
	TotalTax      decimal.Decimal `json:"totalTax"`
	TotalDiscount decimal.Decimal `json:"totalDiscount"`
	ShippingCost  decimal.Decimal `json:"shippingCost"`
	GrandTotal    decimal.Decimal `json:"grandTotal"`
}

// SendOrderBy selects the channels an order is delivered through
type SendOrderBy struct {
	SMS     bool `json:"sms"`
	Email   bool `json:"email"`
	Invoice bool `json:"invoice,omitempty"`
}

// SubmitPayment selects the payment method for a session
type SubmitPayment struct {
	Via      string `json:"via"`
	Currency string `json:"currency,omitempty"`
}

// Callback holds the URLs the API redirects or posts to after payment
type Callback struct {
	CallbackURL string `json:"callbackUrl,omitempty"`
	Success     string `json:"success,omitempty"`
	Failure     string `json:"failure,omitempty"`
}

// OrderRequest is the body for order sessions, payment links and invoices
type OrderRequest struct {
	Products               []Product       `json:"products"`
	OrderSummary           OrderSummary    `json:"orderSummary"`
	OrderDate              string          `json:"orderDate,omitempty"`
	DueDateForPaymentLink  string          `json:"dueDateForPaymentLink,omitempty"`
	SendOrderBy            *SendOrderBy    `json:"sendOrderBy,omitempty"`
	InvoiceAsPaymentOption bool            `json:"invoiceAsPaymentOption"`
	IsCreditCheckAvailable bool            `json:"isCreditCheckAvailable"`
	CustomerDetails        CustomerDetails `json:"customerDetails"`
	InvoiceReferences      *string         `json:"invoiceReferences"`
	InternalReferences     *string         `json:"internalReferences"`
	InvoiceInterval        int             `json:"invoiceInterval"`
	SeparateInvoices       bool            `json:"separateInvoices"`
	SubmitPayment          *SubmitPayment  `json:"submitPayment,omitempty"`
	Callback               *Callback       `json:"callback,omitempty"`
}

// ReservationSettings tunes reservation behaviour
type ReservationSettings struct {
	IsChargePartiallyRefundable bool `json:"isChargePartiallyRefundable"`
}

// ReservationRequest is the body for submitting a reservation or creating a
// reservation session
type ReservationRequest struct {
	CustomerDetails CustomerDetails      `json:"customerDetails"`
	Products        []Product            `json:"products"`
	OrderSummary    *OrderSummary        `json:"orderSummary,omitempty"`
	ChargeValidity  string               `json:"chargeValidity,omitempty"`
	SubmitPayment   *SubmitPayment       `json:"submitPayment,omitempty"`
	Callback        *Callback            `json:"callback,omitempty"`
	Settings        *ReservationSettings `json:"settings,omitempty"`
}

// CaptureRequest captures funds from a reservation. Products reference
// existing reservation lines by ID.
type CaptureRequest struct {
	Products       []RefundProduct `json:"products"`
	GrandTotal     decimal.Decimal `json:"grandTotal"`
	AdditionalText string          `json:"additionalText,omitempty"`
}

// ChargeRequest charges an additional amount against a reservation
type ChargeRequest struct {
	Products       []Product       `json:"products"`
	GrandTotal     decimal.Decimal `json:"grandTotal"`
	AdditionalText string          `json:"additionalText,omitempty"`
}

// RefundProduct is a refunded amount for one order line
type RefundProduct struct {
	ID     int             `json:"id"`
	Amount decimal.Decimal `json:"amount"`
}

// RefundType is the kind of order a refund applies to
type RefundType string

const (
	// RefundTypeRegular refunds a regular order
	RefundTypeRegular RefundType = "regular"
	// RefundTypeReservation refunds a reservation
	RefundTypeReservation RefundType = "reservation"
)

// RefundRequest is the body for order, reservation, terminal and approval refunds
type RefundRequest struct {
	Type       RefundType      `json:"type"`
	GrandTotal decimal.Decimal `json:"grandTotal"`
	Products   []RefundProduct `json:"products"`
	Message    string          `json:"message,omitempty"`
	// Source and Reference select a captured or charged reservation amount.
	Source     string `json:"source,omitempty"`
	Reference  string `json:"reference,omitempty"`
	IsReversal *bool  `json:"isReversal,omitempty"`
}

// NoteRequest carries a free-text note for cancel and complete operations
type NoteRequest struct {
	Note string `json:"note,omitempty"`
}

// ResendRequest re-sends a payment link to the given contact
type ResendRequest struct {
	OrderUUID   string `json:"orderUuid,omitempty"`
	CountryCode string `json:"countryCode,omitempty"`
	MSISDN      string `json:"msisdn,omitempty"`
	Email       string `json:"email,omitempty"`
}

// BillingFrequency is the interval between subscription cycles
type BillingFrequency string

const (
	BillingFrequencyWeek  BillingFrequency = "week"
	BillingFrequencyMonth BillingFrequency = "month"
	BillingFrequencyYear  BillingFrequency = "year"
)

// SubscriptionRequest creates a subscription or a subscription session
type SubscriptionRequest struct {
	Products         []Product        `json:"products"`
	BillingFrequency BillingFrequency `json:"billingFrequency"`
	NumberOfRepeats  int              `json:"numberOfRepeats,omitempty"`
	CustomerDetails  *CustomerDetails `json:"customerDetails,omitempty"`
	SubmitPayment    *SubmitPayment   `json:"submitPayment,omitempty"`
	Callback         *Callback        `json:"callback,omitempty"`
}

// CycleRefundRequest refunds specific subscription cycles
type CycleRefundRequest struct {
	Cycles []string        `json:"cycles"`
	Amount decimal.Decimal `json:"amount"`
}

// AdditionalContact is an extra contact person on a corporate customer
type AdditionalContact struct {
	Name        string `json:"name,omitempty"`
	Email       string `json:"email,omitempty"`
	Designation string `json:"designation,omitempty"`
	CountryCode string `json:"countryCode,omitempty"`
	MSISDN      string `json:"msisdn,omitempty"`
	Note        string `json:"note,omitempty"`
}

// CustomerUpdate is the body for updating private and corporate customers.
// AdditionalContact is keyed by position ("0", "1", ...).
type CustomerUpdate struct {
	Name              string                       `json:"name,omitempty"`
	OrganizationID    string                       `json:"organizationId,omitempty"`
	CountryCode       string                       `json:"countryCode,omitempty"`
	MSISDN            string                       `json:"msisdn,omitempty"`
	Email             string                       `json:"email,omitempty"`
	PreferredLanguage string                       `json:"preferredLanguage,omitempty"`
	PersonalNumber    string                       `json:"personalNumber,omitempty"`
	Addresses         *Addresses                   `json:"addresses,omitempty"`
	AdditionalContact map[string]AdditionalContact `json:"additionalContact,omitempty"`
}

// CreditCheckPrivateRequest runs a credit check on a private person
type CreditCheckPrivateRequest struct {
	PersonalID  string `json:"personalId"`
	CountryCode string `json:"countryCode,omitempty"`
	MSISDN      string `json:"msisdn,omitempty"`
}

// CreditCheckCorporateRequest runs a credit check on a company
type CreditCheckCorporateRequest struct {
	OrganizationID string `json:"organizationId"`
}

// TerminalOrderRequest creates an order on a payment terminal
type TerminalOrderRequest struct {
	Products        []Product        `json:"products"`
	OrderSummary    OrderSummary     `json:"orderSummary"`
	OrderDate       string           `json:"orderDate,omitempty"`
	TerminalUUID    string           `json:"terminalUuid"`
	ReceiptPrint    bool             `json:"receiptPrint"`
	SendOrderBy     *SendOrderBy     `json:"sendOrderBy,omitempty"`
	CustomerDetails *CustomerDetails `json:"customerDetails,omitempty"`
	CallbackURL     string           `json:"callbackUrl,omitempty"`
}

// CancelTypeRequest selects what a terminal cancel applies to: "payment"
// cancels the order payment, "refund" cancels a pending refund.
type CancelTypeRequest struct {
	Type string `json:"type"`
}
