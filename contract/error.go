// Package contract exposes the minimal HTTP client error surface used by other packages.
//
// Implementations must return a nil Response (not a typed nil) when no response
// was received, and support errors.Unwrap for interoperability with standard
// error helpers.
package contract

// Response is the part of an HTTP response a failed request may carry.
type Response interface {
	StatusCode() int
	Reason() string
}

// RequestError is any failure of an HTTP request.
//
// Response returns nil when the request failed before a response arrived.
type RequestError interface {
	error
	Response() Response
}

// ConnectionError is a failure that may have happened at the connection level.
//
// Category is the short kind name of the failure (e.g. "ConnectTimeout").
type ConnectionError interface {
	error
	Connection() bool
	Category() string
}
