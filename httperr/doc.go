// Package httperr provides a transport-aware HTTP client error type and helpers
// for turning client failures into short, display-ready messages.
//
// It exposes a single concrete type Error that implements contract.RequestError
// and contract.ConnectionError and integrates with the standard library's errors
// helpers (Is/As) via Unwrap.
//
// Key characteristics:
//   - Kind places every failure in the usual client hierarchy (HTTPError,
//     ConnectionError, ConnectTimeout, ReadTimeout, ...)
//   - Response carries status code and reason phrase when one was received
//   - Structured Context map with defensive cloning on read/write
//   - Optional underlying cause preserved for errors.Is / errors.As
//
// Classify adapts raw net/http transport errors, CheckStatus turns error
// responses into *Error, and ShortMessage renders any error for a UI.
package httperr
