package main

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimeoutHandler(t *testing.T) {
	slow := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
			w.WriteHeader(http.StatusOK)
		}
	})
	fast := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	rec := httptest.NewRecorder()
	timeoutHandler(slow, 600*time.Millisecond).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/data/server", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "Timeout")

	rec = httptest.NewRecorder()
	timeoutHandler(fast, 600*time.Millisecond).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/data/server", nil))
	assert.Equal(t, http.StatusTeapot, rec.Code)
}
