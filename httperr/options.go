package httperr

import "github.com/next-trace/scg-uikit/internal/clone"

// Option configures an Error during construction via New().
type Option func(*Error)

// WithResponse attaches the received response. A nil response is ignored.
func WithResponse(r *Response) Option {
	return func(e *Error) {
		if r != nil {
			e.response = r
		}
	}
}

// WithDetail overrides the detail passed to New.
func WithDetail(detail string) Option { return func(e *Error) { e.detail = detail } }

// WithContext sets the initial context map. The provided map is defensively cloned.
func WithContext(ctx map[string]any) Option {
	return func(e *Error) { e.context = clone.Map(ctx) }
}

// WithCause sets the underlying cause to be returned by Unwrap().
func WithCause(cause error) Option { return func(e *Error) { e.cause = cause } }
