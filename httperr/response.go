package httperr

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/next-trace/scg-uikit/contract"
)

// Response is the status line of a received HTTP response.
type Response struct {
	statusCode int
	reason     string
}

var _ contract.Response = (*Response)(nil)

// NewResponse builds a Response. An empty reason falls back to http.StatusText.
func NewResponse(statusCode int, reason string) *Response {
	if reason == "" {
		reason = http.StatusText(statusCode)
	}

	return &Response{statusCode: statusCode, reason: reason}
}

// ResponseOf extracts the status line of resp. It returns nil for a nil resp.
func ResponseOf(resp *http.Response) *Response {
	if resp == nil {
		return nil
	}

	return NewResponse(resp.StatusCode, reasonPhrase(resp))
}

func (r *Response) StatusCode() int { return r.statusCode }
func (r *Response) Reason() string  { return r.reason }

// reasonPhrase prefers the phrase the server actually sent ("404 Gone Fishing").
func reasonPhrase(resp *http.Response) string {
	prefix := strconv.Itoa(resp.StatusCode)
	if rest, ok := strings.CutPrefix(resp.Status, prefix); ok {
		return strings.TrimSpace(rest)
	}

	return ""
}
