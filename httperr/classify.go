package httperr

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
)

// ErrTooManyRedirects is returned by RedirectPolicy once the limit is exceeded.
var ErrTooManyRedirects = errors.New("too many redirects")

var kindDetail = map[Kind]string{
	KindConnection:       "connection failed",
	KindProxy:            "proxy connection failed",
	KindSSL:              "TLS verification failed",
	KindConnectTimeout:   "connect timed out",
	KindReadTimeout:      "read timed out",
	KindTooManyRedirects: "too many redirects",
	KindInvalidURL:       "invalid URL",
	KindURLRequired:      "URL required",
}

// Wrap attaches a cause to a new Error. If cause is nil, an opaque cause is created.
// It preserves the original cause for errors.Is / errors.As via Unwrap().
func Wrap(cause error, kind Kind, detail string) *Error {
	if cause == nil {
		cause = errors.New("unknown")
	}

	return New(kind, detail, WithCause(cause))
}

// Classify converts a failure returned by an http.Client into *Error.
//
// Behavior:
//   - nil input => (nil, false)
//   - if err already is an *Error => that error (same pointer)
//   - a recognised failure inside a *url.Error (the wrapper http.Client
//     returns) => a new *Error of the matching Kind, with the request method
//     and URL in Context
//   - anything else, including errors that never went through an HTTP
//     request => (nil, false)
func Classify(err error) (*Error, bool) {
	if err == nil {
		return nil, false
	}

	var e *Error
	if errors.As(err, &e) {
		return e, true
	}

	var ue *url.Error
	if !errors.As(err, &ue) {
		return nil, false
	}

	kind, ok := classifyKind(ue)
	if !ok {
		return nil, false
	}

	ctx := map[string]any{"url": ue.URL}
	if ue.Op != "parse" {
		ctx["method"] = strings.ToUpper(ue.Op)
	}

	return Wrap(err, kind, kindDetail[kind]).WithContextMap(ctx), true
}

func classifyKind(ue *url.Error) (Kind, bool) {
	if ue.Op == "parse" {
		return KindInvalidURL, true
	}

	inner := ue.Err
	if inner == nil {
		return "", false
	}

	if isCertificateError(inner) {
		return KindSSL, true
	}

	msg := inner.Error()
	switch {
	case errors.Is(inner, ErrTooManyRedirects) || strings.Contains(msg, "stopped after"):
		return KindTooManyRedirects, true
	case strings.Contains(msg, "nil Request.URL") || strings.Contains(msg, "no Host in request URL"):
		return KindURLRequired, true
	case strings.Contains(msg, "unsupported protocol scheme"):
		return KindInvalidURL, true
	}

	var oe *net.OpError
	if errors.As(inner, &oe) {
		switch {
		case oe.Op == "proxyconnect":
			return KindProxy, true
		case oe.Op == "dial" && (oe.Timeout() || errors.Is(oe, context.DeadlineExceeded)):
			return KindConnectTimeout, true
		case oe.Timeout():
			return KindReadTimeout, true
		default:
			return KindConnection, true
		}
	}

	var dnsErr *net.DNSError
	if errors.As(inner, &dnsErr) {
		if dnsErr.IsTimeout {
			return KindConnectTimeout, true
		}
		return KindConnection, true
	}

	if ue.Timeout() || errors.Is(inner, context.DeadlineExceeded) {
		return KindReadTimeout, true
	}

	if errors.Is(inner, io.EOF) || errors.Is(inner, io.ErrUnexpectedEOF) {
		return KindConnection, true
	}

	return "", false
}

func isCertificateError(err error) bool {
	var (
		unknownAuthority x509.UnknownAuthorityError
		hostname         x509.HostnameError
		invalid          x509.CertificateInvalidError
		verification     *tls.CertificateVerificationError
	)

	return errors.As(err, &unknownAuthority) ||
		errors.As(err, &hostname) ||
		errors.As(err, &invalid) ||
		errors.As(err, &verification)
}

// RedirectPolicy returns an http.Client CheckRedirect func that fails with
// ErrTooManyRedirects once limit redirects have been followed.
func RedirectPolicy(limit int) func(*http.Request, []*http.Request) error {
	return func(_ *http.Request, via []*http.Request) error {
		if len(via) >= limit {
			return ErrTooManyRedirects
		}
		return nil
	}
}
