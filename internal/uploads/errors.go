package uploads

import (
	"errors"
	"net/http"

	"github.com/JaimeStill/homework/internal/extraction"
	"github.com/JaimeStill/homework/pkg/storage"
)

var (
	ErrNotFound     = errors.New("upload not found")
	ErrDuplicate    = errors.New("upload already exists")
	ErrFileTooLarge = errors.New("file exceeds maximum upload size")
	ErrInvalidFile  = errors.New("invalid file")
	ErrNoFiles      = errors.New("at least one file is required")
	ErrTooManyFiles = errors.New("too many files in one upload")
	ErrInvalidType  = errors.New("type must be problem, solution or combined")
)

// MapHTTPStatus maps upload domain errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound), errors.Is(err, storage.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, ErrInvalidFile),
		errors.Is(err, ErrNoFiles),
		errors.Is(err, ErrTooManyFiles),
		errors.Is(err, ErrInvalidType):
		return http.StatusBadRequest
	case errors.Is(err, extraction.ErrUnsupportedType),
		errors.Is(err, extraction.ErrOCRUnavailable),
		errors.Is(err, extraction.ErrExtractFailed):
		return extraction.MapHTTPStatus(err)
	default:
		return http.StatusInternalServerError
	}
}
