package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anithagummuluri12345/ai-powered-personal-finance-advicer/internal/errors"
)

func limitedHandler(t *testing.T, rps, burst int) (*echo.Echo, echo.HandlerFunc) {
	t.Helper()

	e := echo.New()
	handler := RateLimiterWithConfig(rps, burst)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	return e, handler
}

func hitOnce(e *echo.Echo, handler echo.HandlerFunc, ip string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Real-IP", ip)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	_ = handler(c)
	return rec
}

func TestRateLimiterRejectsBeyondBurst(t *testing.T) {
	e, handler := limitedHandler(t, 1, 2)

	assert.Equal(t, http.StatusOK, hitOnce(e, handler, "10.0.0.1").Code)
	assert.Equal(t, http.StatusOK, hitOnce(e, handler, "10.0.0.1").Code)

	rec := hitOnce(e, handler, "10.0.0.1")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	var resp errors.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, string(errors.SystemRateLimitExceeded), resp.Error.Code)
}

func TestRateLimiterTracksClientsSeparately(t *testing.T) {
	e, handler := limitedHandler(t, 1, 1)

	assert.Equal(t, http.StatusOK, hitOnce(e, handler, "10.0.0.1").Code)
	assert.Equal(t, http.StatusTooManyRequests, hitOnce(e, handler, "10.0.0.1").Code)

	// A different client has its own bucket.
	assert.Equal(t, http.StatusOK, hitOnce(e, handler, "10.0.0.2").Code)
}
