package testkit

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// Request drives a handler with a synthetic request and records the
// response. Body handling depends on type: url.Values posts a form,
// anything else non-nil is sent as JSON.
func Request(t *testing.T, h http.Handler, method, target string, body interface{}, opts ...func(*http.Request)) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	switch b := body.(type) {
	case nil:
		req = httptest.NewRequest(method, target, nil)
	case url.Values:
		req = httptest.NewRequest(method, target, strings.NewReader(b.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err, "marshal request body")
		req = httptest.NewRequest(method, target, bytes.NewReader(raw))
		req.Header.Set("Content-Type", "application/json")
	}

	for _, opt := range opts {
		opt(req)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

// WithCookies copies cookies from a previous response onto the request,
// carrying the session across calls.
func WithCookies(res *http.Response) func(*http.Request) {
	return func(req *http.Request) {
		for _, c := range res.Cookies() {
			req.AddCookie(c)
		}
	}
}

// DecodeJSON unmarshals the recorded body into dest, failing the test
// on malformed output.
func DecodeJSON(t *testing.T, rec *httptest.ResponseRecorder, dest interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), dest),
		"response body is not valid JSON: %s", rec.Body.String())
}
