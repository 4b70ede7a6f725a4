package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouter_Metrics(t *testing.T) {
	router := newTestRouter(t, Options{})

	require.Equal(t, http.StatusCreated, do(t, router, http.MethodPost, "/api/v1/checkouts",
		`{"tool_code":"LADW","rental_days":3,"discount_percent":10,"checkout_date":"7/2/20"}`).Code)
	require.Equal(t, http.StatusConflict, do(t, router, http.MethodPost, "/api/v1/checkouts",
		`{"tool_code":"ladw","rental_days":3,"discount_percent":10,"checkout_date":"7/2/20"}`).Code)
	require.Equal(t, http.StatusNotFound, do(t, router, http.MethodPost, "/api/v1/checkouts",
		`{"tool_code":"DRIL","rental_days":3,"checkout_date":"7/2/20"}`).Code)

	rec := do(t, router, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()

	assert.Contains(t, body, `rentatool_checkouts_total{code="LADW",outcome="success"} 1`)
	assert.Contains(t, body, `rentatool_checkouts_total{code="LADW",outcome="conflict"} 1`)
	assert.Contains(t, body, `rentatool_checkouts_total{code="unknown",outcome="not_found"} 1`)
	assert.Contains(t, body, `rentatool_checkout_final_charge_dollars_total{code="LADW"} 3.58`)
	assert.Contains(t, body, `rentatool_http_requests_total{method="POST",route="/api/v1/checkouts",status="201"} 1`)
	assert.Contains(t, body, `rentatool_http_requests_total{method="POST",route="/api/v1/checkouts",status="409"} 1`)
}

func TestRouter_RateLimit(t *testing.T) {
	router := newTestRouter(t, Options{RateLimit: 0.001, RateBurst: 2})

	assert.Equal(t, http.StatusOK, do(t, router, http.MethodGet, "/healthz", "").Code)
	assert.Equal(t, http.StatusOK, do(t, router, http.MethodGet, "/healthz", "").Code)

	rec := do(t, router, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "too many requests", decodeError(t, rec).Error)
	assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))
}

func TestRouter_CORS(t *testing.T) {
	t.Run("Allowed origin", func(t *testing.T) {
		router := newTestRouter(t, Options{AllowedOrigins: []string{"http://counter.local"}})

		req := httptest.NewRequest(http.MethodOptions, "/api/v1/checkouts", nil)
		req.Header.Set("Origin", "http://counter.local")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, "http://counter.local", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Other origin", func(t *testing.T) {
		router := newTestRouter(t, Options{AllowedOrigins: []string{"http://counter.local"}})

		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		req.Header.Set("Origin", "http://elsewhere.local")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})
}
