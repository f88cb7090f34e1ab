// Package frontgo provides a client for the Front Payment "FrontGo Connect" API.
//
// FrontGo Connect is a REST API for taking payments: payment-link and invoice
// orders, card reservations, recurring subscriptions, payment terminals,
// customer records and credit checks. This package maps each documented
// endpoint to a method on Client and takes care of authentication, JSON
// encoding and error classification.
//
// # Architecture
//
//   - Client: the HTTP client, one method per endpoint
//   - Options: functional options for environment, timeouts and retries
//   - Types: request models and the response envelope
//   - API: interfaces grouping the endpoints by resource
//   - Errors: sentinel errors and the *Error type for non-2xx responses
//
// # Usage
//
//	logger := zerolog.New(os.Stderr)
//	client, err := frontgo.NewClient(
//		os.Getenv("FRONTGO_API_KEY"),
//		logger,
//		frontgo.WithDemo(true),
//		frontgo.WithTimeout(20*time.Second),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	resp, err := client.GetOrderStatusByUUID(ctx, "ODR123456789")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	var status frontgo.OrderStatus
//	if err := resp.DecodeData(&status); err != nil {
//		log.Fatal(err)
//	}
//
// # Error Handling
//
// Responses with a status in 400–499 are returned as an *Error of kind
// KindClient, responses in 500–599 as an *Error of kind KindServer. Server
// errors are retriable and are retried automatically (twice by default, see
// WithMaxRetries). Failures below HTTP, such as timeouts, refused connections
// or TLS errors, are returned wrapped and never as *Error.
//
//	var apiErr *frontgo.Error
//	if errors.As(err, &apiErr) {
//		if apiErr.IsUnauthorized() {
//			// Handle bad API key
//		}
//	}
//
//	if errors.Is(err, frontgo.ErrServer) {
//		// The API failed even after retrying
//	}
package frontgo
