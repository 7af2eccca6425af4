package uploads

import (
	"net/url"

	"github.com/JaimeStill/homework/pkg/query"
	"github.com/JaimeStill/homework/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "uploads", "u").
	Project("id", "ID").
	Project("user_email", "UserEmail").
	Project("filename", "Filename").
	Project("content_type", "ContentType").
	Project("size_bytes", "SizeBytes").
	Project("page_count", "PageCount").
	Project("storage_key", "StorageKey").
	Project("upload_type", "UploadType").
	Project("extraction_method", "ExtractionMethod").
	Project("extracted_text", "ExtractedText").
	Project("uploaded_at", "UploadedAt")

var defaultSort = query.SortField{
	Field:      "UploadedAt",
	Descending: true,
}

// Filters narrows upload queries. Nil fields are ignored. Filename uses
// case-insensitive contains matching; the rest match exactly.
type Filters struct {
	UserEmail   *string `json:"user_email,omitempty"`
	Filename    *string `json:"filename,omitempty"`
	ContentType *string `json:"content_type,omitempty"`
	UploadType  *string `json:"upload_type,omitempty"`
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.
		WhereEquals("UserEmail", f.UserEmail).
		WhereContains("Filename", f.Filename).
		WhereEquals("ContentType", f.ContentType).
		WhereEquals("UploadType", f.UploadType)
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if v := values.Get("user_email"); v != "" {
		f.UserEmail = &v
	}
	if v := values.Get("filename"); v != "" {
		f.Filename = &v
	}
	if v := values.Get("content_type"); v != "" {
		f.ContentType = &v
	}
	if v := values.Get("upload_type"); v != "" {
		f.UploadType = &v
	}

	return f
}

func scanUpload(s repository.Scanner) (Upload, error) {
	var u Upload
	err := s.Scan(
		&u.ID,
		&u.UserEmail,
		&u.Filename,
		&u.ContentType,
		&u.SizeBytes,
		&u.PageCount,
		&u.StorageKey,
		&u.UploadType,
		&u.ExtractionMethod,
		&u.ExtractedText,
		&u.UploadedAt,
	)
	return u, err
}
