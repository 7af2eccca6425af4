package problems

import (
	"errors"
	"net/http"

	"github.com/JaimeStill/homework/internal/workflow"
)

var (
	ErrNotFound       = errors.New("problem not found")
	ErrDuplicate      = errors.New("problem already exists")
	ErrInvalidInput   = errors.New("problem_text or upload_ids is required")
	ErrInvalidRequest = errors.New("invalid request")
	ErrUploadNotFound = errors.New("upload not found")
	ErrEmailRequired  = errors.New("email is required")
)

// MapHTTPStatus maps problem domain errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrUploadNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, ErrInvalidInput),
		errors.Is(err, ErrInvalidRequest),
		errors.Is(err, ErrEmailRequired):
		return http.StatusBadRequest
	case errors.Is(err, workflow.ErrInvalidMode), errors.Is(err, workflow.ErrModeUnavailable):
		return workflow.MapHTTPStatus(err)
	default:
		return http.StatusInternalServerError
	}
}
