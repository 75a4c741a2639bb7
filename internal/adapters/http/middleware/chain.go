// Package middleware holds the inbound HTTP pipeline. The server installs
// it as
//
//	Recovery > RequestID > CorrelationID > OpenTelemetry > Logging > Timeout > router
//
// with Chain, whose first argument is the outermost layer.
package middleware

import (
	"net/http"
	"slices"
)

// Middleware wraps a handler.
type Middleware = func(http.Handler) http.Handler

// Chain composes mws so that Chain(a, b)(h) is a(b(h)).
func Chain(mws ...Middleware) Middleware {
	return func(h http.Handler) http.Handler {
		for _, mw := range slices.Backward(mws) {
			h = mw(h)
		}
		return h
	}
}
