package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func performRequest(t *testing.T, header http.Header) (*httptest.ResponseRecorder, string) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for key, values := range header {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen string
	handler := RequestID()(func(c echo.Context) error {
		seen = GetTraceID(c)
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))

	return rec, seen
}

func TestRequestIDGeneratesTraceID(t *testing.T) {
	rec, seen := performRequest(t, nil)

	headerID := rec.Header().Get(TraceIDHeader)
	assert.NotEmpty(t, headerID)
	assert.Equal(t, headerID, seen)

	_, err := uuid.Parse(headerID)
	assert.NoError(t, err)
}

func TestRequestIDReusesIncomingTraceID(t *testing.T) {
	header := http.Header{}
	header.Set(TraceIDHeader, "caller-supplied-id")

	rec, seen := performRequest(t, header)

	assert.Equal(t, "caller-supplied-id", rec.Header().Get(TraceIDHeader))
	assert.Equal(t, "caller-supplied-id", seen)
}

func TestGetTraceIDMissing(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	assert.Empty(t, GetTraceID(c))
}
