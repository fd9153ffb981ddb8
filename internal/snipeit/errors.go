package snipeit

import (
	"errors"
)

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	// ErrNotConfigured is returned when the client is built without a
	// base URL or API token.
	ErrNotConfigured = errors.New("snipe-it credentials not configured")

	// ErrTransport covers network-level failures before a status code
	// was received.
	ErrTransport = errors.New("snipe-it request failed")

	// ErrDecode covers unparseable response bodies.
	ErrDecode = errors.New("snipe-it response decode failed")

	// ErrAuth maps HTTP 401/403.
	ErrAuth = errors.New("snipe-it authentication failed")

	// ErrNotFound maps HTTP 404 and "not found" API envelopes.
	ErrNotFound = errors.New("snipe-it resource not found")

	// ErrRateLimited maps HTTP 429.
	ErrRateLimited = errors.New("snipe-it rate limited")

	// ErrValidation maps {"status":"error"} envelopes on 2xx responses.
	ErrValidation = errors.New("snipe-it validation failed")

	// ErrAPI covers any other non-2xx response.
	ErrAPI = errors.New("snipe-it api error")
)

// Kind returns a short label for an error, used as a metrics dimension.
func Kind(err error) string {
	switch {
	case errors.Is(err, ErrNotConfigured):
		return "not_configured"
	case errors.Is(err, ErrAuth):
		return "auth"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrRateLimited):
		return "rate_limited"
	case errors.Is(err, ErrValidation):
		return "validation"
	case errors.Is(err, ErrDecode):
		return "decode"
	case errors.Is(err, ErrTransport):
		return "transport"
	case errors.Is(err, ErrAPI):
		return "api"
	default:
		return "unknown"
	}
}
