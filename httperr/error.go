package httperr

import (
	"fmt"

	"github.com/next-trace/scg-uikit/contract"
	"github.com/next-trace/scg-uikit/internal/clone"
)

// Error is the canonical HTTP client failure.
//
// Fields:
//   - Kind:     category in the client hierarchy (e.g. ConnectTimeout)
//   - Response: status line, only when a response was received
//   - Detail:   human detail, safe to show
//   - Context:  everything else (url, method, attempt, ...)
type Error struct {
	kind     Kind
	response *Response
	detail   string
	context  map[string]any
	cause    error
}

// compile-time guarantees
var (
	_ contract.RequestError    = (*Error)(nil)
	_ contract.ConnectionError = (*Error)(nil)
)

// ------ standard error interface

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}

	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.kind, e.detail, e.cause)
	}

	return fmt.Sprintf("%s: %s", e.kind, e.detail)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}

	return e.cause
}

// ------ getters

func (e *Error) Kind() Kind              { return e.kind }
func (e *Error) Detail() string          { return e.detail }
func (e *Error) Context() map[string]any { return clone.Map(e.context) }

// Response returns the received response, or a nil interface when there was none.
func (e *Error) Response() contract.Response {
	if e == nil || e.response == nil {
		return nil
	}

	return e.response
}

func (e *Error) Connection() bool { return e != nil && e.kind.Connection() }
func (e *Error) Timeout() bool    { return e != nil && e.kind.Timeout() }
func (e *Error) Category() string { return string(e.kind) }

// ------ core constructors

// New creates a new Error of the given kind. An empty kind becomes KindRequest.
func New(kind Kind, detail string, opts ...Option) *Error {
	if kind == "" {
		kind = KindRequest
	}

	e := &Error{kind: kind, detail: detail}
	for _, o := range opts {
		o(e)
	}

	return e
}

// ------ fluent helpers (chainable, mutate receiver intentionally)

// WithContextKV sets a single key/value in the error context map and returns the same receiver for chaining.
func (e *Error) WithContextKV(k string, v any) *Error {
	if e == nil {
		return nil
	}

	if e.context == nil {
		e.context = map[string]any{}
	}

	e.context[k] = v

	return e
}

// WithContextMap merges the provided map into the error context and returns the same receiver for chaining.
// Nil or empty maps are ignored. Existing keys are overwritten.
func (e *Error) WithContextMap(m map[string]any) *Error {
	if e == nil || len(m) == 0 {
		return e
	}

	if e.context == nil {
		e.context = map[string]any{}
	}

	for k, v := range clone.Map(m) {
		e.context[k] = v
	}

	return e
}
