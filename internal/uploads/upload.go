// Package uploads implements the upload domain: homework images and PDFs
// are stored in blob storage, their text is extracted, and the metadata is
// registered for later analysis.
package uploads

import (
	"time"

	"github.com/google/uuid"

	"github.com/JaimeStill/homework/internal/extraction"
)

// Upload types select the extraction instructions for images.
const (
	TypeProblem  = "problem"
	TypeSolution = "solution"
	TypeCombined = "combined"
)

// Upload is a registered file with its extracted text.
type Upload struct {
	ID               uuid.UUID `json:"id"`
	UserEmail        *string   `json:"user_email"`
	Filename         string    `json:"filename"`
	ContentType      string    `json:"content_type"`
	SizeBytes        int64     `json:"size_bytes"`
	PageCount        *int      `json:"page_count"`
	StorageKey       string    `json:"storage_key"`
	UploadType       string    `json:"upload_type"`
	ExtractionMethod string    `json:"extraction_method"`
	ExtractedText    string    `json:"extracted_text"`
	UploadedAt       time.Time `json:"uploaded_at"`
}

// CreateCommand carries the files of one upload request.
type CreateCommand struct {
	Files     []extraction.File
	UserEmail string
	Type      string
}

// CreateResult is the response of an upload. CombinedText joins the
// extracted texts of all files with source markers.
type CreateResult struct {
	Uploads      []Upload `json:"uploads"`
	CombinedText string   `json:"combined_text"`
}

// ValidType reports whether t is an accepted upload type. The empty type
// is treated as combined.
func ValidType(t string) bool {
	switch t {
	case "", TypeProblem, TypeSolution, TypeCombined:
		return true
	}
	return false
}
