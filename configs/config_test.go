package config

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func preflight(t *testing.T, origins, origin string) *httptest.ResponseRecorder {
	t.Helper()
	h := CORS(origins).Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodOptions, "/api/contractor/abc", nil)
	req.Header.Set("Origin", origin)
	req.Header.Set("Access-Control-Request-Method", http.MethodPut)
	resp := httptest.NewRecorder()
	h.ServeHTTP(resp, req)
	return resp
}

func TestCORSPermissiveByDefault(t *testing.T) {
	resp := preflight(t, "", "http://reception.local:5173")
	assert.Equal(t, "*", resp.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSAllowList(t *testing.T) {
	resp := preflight(t, "http://localhost:5173, https://register.example.com", "https://register.example.com")
	assert.Equal(t, "https://register.example.com", resp.Header().Get("Access-Control-Allow-Origin"))

	resp = preflight(t, "http://localhost:5173", "https://evil.example.com")
	assert.Empty(t, resp.Header().Get("Access-Control-Allow-Origin"))
}

func TestCustomLoggerMiddleware(t *testing.T) {
	var buf bytes.Buffer
	old := log.StandardLogger().Out
	log.SetOutput(&buf)
	defer log.SetOutput(old)

	h := CustomLoggerMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPut, "/api/contractor/abc", nil))

	out := buf.String()
	assert.Contains(t, out, "PUT /api/contractor/abc")
	assert.Contains(t, out, "404 Not Found")
	assert.Contains(t, out, "level=warning")
}
