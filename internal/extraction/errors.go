package extraction

import (
	"errors"
	"net/http"
)

var (
	ErrUnsupportedType = errors.New("only images and PDF files are supported")
	ErrOCRUnavailable  = errors.New("image text extraction requires a configured language model")
	ErrExtractFailed   = errors.New("text extraction failed")
)

// MapHTTPStatus maps extraction errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrUnsupportedType):
		return http.StatusUnsupportedMediaType
	case errors.Is(err, ErrOCRUnavailable):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrExtractFailed):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
