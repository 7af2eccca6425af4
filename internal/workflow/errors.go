package workflow

import (
	"errors"
	"net/http"
)

var (
	ErrInvalidMode     = errors.New("mode must be heuristic or llm")
	ErrModeUnavailable = errors.New("llm mode requires a configured language model")
)

// MapHTTPStatus maps workflow errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrInvalidMode):
		return http.StatusBadRequest
	case errors.Is(err, ErrModeUnavailable):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
