package httperr

import "slices"

// Kind is the category of an HTTP client failure.
//
// Values are named after the exception family most HTTP clients expose, so that
// Category() doubles as a short human-readable label.
type Kind string

const (
	KindRequest          Kind = "RequestException"
	KindHTTP             Kind = "HTTPError"
	KindConnection       Kind = "ConnectionError"
	KindProxy            Kind = "ProxyError"
	KindSSL              Kind = "SSLError"
	KindTimeout          Kind = "Timeout"
	KindConnectTimeout   Kind = "ConnectTimeout"
	KindReadTimeout      Kind = "ReadTimeout"
	KindURLRequired      Kind = "URLRequired"
	KindTooManyRedirects Kind = "TooManyRedirects"
	KindInvalidURL       Kind = "InvalidURL"
)

// Connection reports whether k is a connection-level failure (no response).
// ConnectTimeout counts as both a connection failure and a timeout.
func (k Kind) Connection() bool {
	switch k {
	case KindConnection, KindProxy, KindSSL, KindConnectTimeout:
		return true
	default:
		return false
	}
}

// Timeout reports whether k is one of the timeout kinds.
func (k Kind) Timeout() bool {
	switch k {
	case KindTimeout, KindConnectTimeout, KindReadTimeout:
		return true
	default:
		return false
	}
}

func (k Kind) String() string { return string(k) }

// KindMatcher reports whether an error chain holds an *Error of one of kinds.
// It plugs into fn.Catching and fn.Defaulting as a Matcher.
func KindMatcher(kinds ...Kind) func(error) bool {
	return func(err error) bool {
		e, ok := Classify(err)
		if !ok || e == nil {
			return false
		}

		return slices.Contains(kinds, e.Kind())
	}
}
