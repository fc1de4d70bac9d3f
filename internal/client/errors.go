package client

import "errors"

// Error kinds raised by the Shopify client. All of them abort the current
// fetch wave; the service layer decides what the caller sees.
var (
	// ErrTransport covers connection failures, timeouts and non-2xx statuses.
	ErrTransport = errors.New("shopify: transport error")
	// ErrAPI means the API answered with a GraphQL errors payload.
	ErrAPI = errors.New("shopify: api error")
	// ErrParse means the response body was not the JSON we expect.
	ErrParse = errors.New("shopify: response parse error")
)
