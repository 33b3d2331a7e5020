package routers

import (
	"fmt"
	"net/http"

	"github.com/go-chi/render"
)

// APIError carries an HTTP status and a catalog error code so handlers can
// render business failures without losing the underlying error.
type APIError struct {
	httpStatusCode int
	ErrorCode      int    `json:"error_code"`
	Message        string `json:"message"`
	err            error
}

func NewAPIError(httpStatusCode int, catalogErrorCode int, err error) *APIError {
	return &APIError{
		httpStatusCode: httpStatusCode,
		ErrorCode:      catalogErrorCode,
		Message:        err.Error(),
		err:            err,
	}
}

func (a *APIError) Error() string {
	return fmt.Sprintf("apiError: %s", a.Message)
}

func (a *APIError) Unwrap() error {
	return a.err
}

func (a *APIError) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, a.httpStatusCode)
	return nil
}
