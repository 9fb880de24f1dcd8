// Package testutil drives the gin routers of the job board from handler tests.
package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// MakeJSONRequest sends body as JSON to endpoint and returns the recorder with
// the decoded object body. A nil body sends no payload and an empty authToken
// sends no Authorization header.
func MakeJSONRequest(body gin.H, authToken string, r http.Handler, endpoint string, method string) (*httptest.ResponseRecorder, map[string]interface{}) {
	var payload io.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		payload = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, endpoint, payload)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authToken != "" {
		req.Header.Set("Authorization", "Bearer "+authToken)
	}

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	resp := map[string]interface{}{}
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)

	return rec, resp
}

// DecodeJSON decodes the recorded body into T, failing the test on bad JSON
func DecodeJSON[T any](t testing.TB, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}
