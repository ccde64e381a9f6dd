package httperr

import (
	"fmt"
	"net/http"
)

// CheckStatus returns an HTTPError carrying resp's status line when resp
// reports a 4xx or 5xx status, and nil otherwise.
func CheckStatus(resp *http.Response) error {
	if resp == nil || resp.StatusCode < http.StatusBadRequest {
		return nil
	}

	r := ResponseOf(resp)

	side := "Client"
	if resp.StatusCode >= http.StatusInternalServerError {
		side = "Server"
	}

	var target string
	ctx := map[string]any{}
	if req := resp.Request; req != nil {
		ctx["method"] = req.Method
		if req.URL != nil {
			target = req.URL.String()
			ctx["url"] = target
		}
	}

	detail := fmt.Sprintf("%d %s Error: %s for url: %s", r.StatusCode(), side, r.Reason(), target)

	return New(KindHTTP, detail, WithResponse(r)).WithContextMap(ctx)
}
