package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestRequestID(t *testing.T) {
	var seenRequestID string
	handler := RequestID(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		seenRequestID = request.Header.Get(RequestIDHeader)
	}))

	// a fresh id is generated when the caller doesn't supply one
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.NotEmpty(t, seenRequestID)
	_, err := uuid.Parse(seenRequestID)
	assert.NoError(t, err)
	assert.Equal(t, seenRequestID, w.Result().Header.Get(RequestIDHeader))

	// a caller supplied id is passed through
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "caller-supplied-id")
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, "caller-supplied-id", seenRequestID)
	assert.Equal(t, "caller-supplied-id", w.Result().Header.Get(RequestIDHeader))
}
