package httperr

import (
	"errors"
	"fmt"

	"github.com/next-trace/scg-uikit/contract"
)

// ShortMessage generates a reasonable short message why an HTTP request failed.
//
// The first matching rule wins, searching err's wrap chain:
//   - any request error in the chain that carries a response => "<status> <reason>" (e.g. "401 Unauthorized")
//   - a connection-level failure => its category (e.g. "ConnectionError", "ConnectTimeout")
//   - anything else => err.Error()
//
// Raw net/http transport errors are classified first. A nil err yields "".
func ShortMessage(err error) string {
	if err == nil {
		return ""
	}

	if resp := findResponse(err); resp != nil {
		return fmt.Sprintf("%d %s", resp.StatusCode(), resp.Reason())
	}

	subject := err
	if classified, ok := Classify(err); ok {
		subject = classified
	}

	var ce contract.ConnectionError
	if errors.As(subject, &ce) && ce.Connection() {
		return ce.Category()
	}

	return err.Error()
}

// findResponse walks err's whole chain (joined errors included) and returns the
// first response found. An outer RequestError without a response does not hide
// one carried further in.
func findResponse(err error) contract.Response {
	if err == nil {
		return nil
	}

	if re, ok := err.(contract.RequestError); ok {
		if resp := safeResponse(re); resp != nil {
			return resp
		}
	}

	switch u := err.(type) {
	case interface{ Unwrap() error }:
		return findResponse(u.Unwrap())
	case interface{ Unwrap() []error }:
		for _, inner := range u.Unwrap() {
			if resp := findResponse(inner); resp != nil {
				return resp
			}
		}
	}

	return nil
}

// safeResponse guards against RequestError implementations that panic or
// hand back a typed nil.
func safeResponse(re contract.RequestError) (resp contract.Response) {
	defer func() {
		if recover() != nil {
			resp = nil
		}
	}()

	resp = re.Response()
	if r, ok := resp.(*Response); ok && r == nil {
		return nil
	}

	return resp
}
