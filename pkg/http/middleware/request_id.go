package middleware

import (
	"net/http"

	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-Id"

// RequestID tags every request with a uuid so log lines and error reports can
// be correlated. An id supplied by the caller is passed through unchanged.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		requestID := request.Header.Get(RequestIDHeader)
		if len(requestID) == 0 {
			requestID = uuid.NewString()
			request.Header.Set(RequestIDHeader, requestID)
		}

		writer.Header().Set(RequestIDHeader, requestID)
		next.ServeHTTP(writer, request)
	})
}
