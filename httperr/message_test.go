package httperr_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/next-trace/scg-uikit/contract"
	"github.com/next-trace/scg-uikit/httperr"
)

func TestShortMessage(t *testing.T) {
	t.Parallel()

	unauthorized := httperr.New(httperr.KindHTTP, "401 Client Error",
		httperr.WithResponse(httperr.NewResponse(401, "Unauthorized")))

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"response carrying", unauthorized, "401 Unauthorized"},
		{"wrapped response carrying", fmt.Errorf("load dashboard: %w", unauthorized), "401 Unauthorized"},
		{"response under outer Error", httperr.Wrap(unauthorized, httperr.KindRequest, "load dashboard"), "401 Unauthorized"},
		{"response under joined errors", errors.Join(errors.New("retry"), fmt.Errorf("sync: %w", unauthorized)), "401 Unauthorized"},
		{"connection", httperr.New(httperr.KindConnection, "refused"), "ConnectionError"},
		{"connect timeout", httperr.New(httperr.KindConnectTimeout, "slow"), "ConnectTimeout"},
		{"read timeout is not connection level", httperr.New(httperr.KindReadTimeout, "slow"), "ReadTimeout: slow"},
		{"request without response", httperr.New(httperr.KindRequest, "odd"), "RequestException: odd"},
		{"plain", errors.New("runtime failure"), "runtime failure"},
		{"typed nil", (*httperr.Error)(nil), "<nil>"},
		{"foreign request error", foreignErr{resp: httperr.NewResponse(503, "")}, "503 Service Unavailable"},
		{"foreign request error without response", foreignErr{}, "foreign"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tt.want, httperr.ShortMessage(tt.err))
		})
	}
}

func TestShortMessage_RawTransportError(t *testing.T) {
	t.Parallel()

	_, err := http.Get("http://" + deadAddr(t) + "/")
	require.Error(t, err)
	require.Equal(t, "ConnectionError", httperr.ShortMessage(err))
}

func TestShortMessage_FromCheckStatus(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	resp.Body.Close()

	require.Equal(t, "401 Unauthorized", httperr.ShortMessage(httperr.CheckStatus(resp)))
}

type foreignErr struct {
	resp contract.Response
}

func (f foreignErr) Error() string               { return "foreign" }
func (f foreignErr) Response() contract.Response { return f.resp }

func FuzzShortMessage_NeverPanics(f *testing.F) {
	f.Add("boom", 0, "")
	f.Add("", 401, "Unauthorized")
	f.Fuzz(func(t *testing.T, msg string, status int, reason string) {
		_ = httperr.ShortMessage(errors.New(msg))
		_ = httperr.ShortMessage(httperr.New(httperr.Kind(reason), msg,
			httperr.WithResponse(httperr.NewResponse(status, reason))))
	})
}
