package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCors(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name           string
		allowed        []string
		origin         string
		method         string
		expectedStatus int
		expectedOrigin string
	}{
		{name: "origem liberada", allowed: []string{"http://a.test"}, origin: "http://a.test", method: http.MethodGet, expectedStatus: http.StatusOK, expectedOrigin: "http://a.test"},
		{name: "origem bloqueada", allowed: []string{"http://a.test"}, origin: "http://b.test", method: http.MethodGet, expectedStatus: http.StatusOK},
		{name: "curinga", allowed: []string{"*"}, origin: "http://b.test", method: http.MethodGet, expectedStatus: http.StatusOK, expectedOrigin: "http://b.test"},
		{name: "preflight", allowed: []string{"*"}, origin: "http://b.test", method: http.MethodOptions, expectedStatus: http.StatusNoContent, expectedOrigin: "http://b.test"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/v1/forecast/predictions", nil)
			req.Header.Set("Origin", tt.origin)
			rec := httptest.NewRecorder()

			Cors(tt.allowed)(ok).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, tt.expectedOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestLogPanicMiddleware(t *testing.T) {
	panicking := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	rec := httptest.NewRecorder()
	handler := LoggingMiddleware()(LogPanicMiddleware()(panicking))

	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "SRV_001")
}
